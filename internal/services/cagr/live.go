package cagr

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/advisor/internal/interfaces"
	"github.com/ternarybob/advisor/internal/models"
)

// AggregateUnavailableNotice is surfaced when no asset class could be priced.
const AggregateUnavailableNotice = "market data unavailable for all asset classes"

// PriceSource supplies closing price series for a symbol over a date range,
// in ascending date order.
type PriceSource interface {
	ClosePrices(ctx context.Context, symbol string, from, to time.Time) ([]float64, error)
}

// LiveEstimator computes CAGR from historical close prices: it takes the
// first and last close over [now - horizon, now] and annualizes the ratio.
// Data failures degrade to absent per-asset values, never errors.
type LiveEstimator struct {
	prices  PriceSource
	symbols map[models.AssetClass]string
	logger  arbor.ILogger
	now     func() time.Time
}

// Compile-time assertion
var _ interfaces.CagrEstimator = (*LiveEstimator)(nil)

// NewLiveEstimator creates a market-data-backed estimator. symbols maps each
// asset class to the ticker used to price it.
func NewLiveEstimator(prices PriceSource, symbols map[models.AssetClass]string, logger arbor.ILogger) *LiveEstimator {
	return &LiveEstimator{
		prices:  prices,
		symbols: symbols,
		logger:  logger,
		now:     time.Now,
	}
}

// WithClock overrides the time source. Used by tests.
func (l *LiveEstimator) WithClock(now func() time.Time) *LiveEstimator {
	l.now = now
	return l
}

// Estimate computes per-asset CAGR over the horizon. Assets whose series is
// empty, malformed, or unfetchable get an absent value with a notice; if no
// asset could be computed the report carries a single aggregate notice.
func (l *LiveEstimator) Estimate(ctx context.Context, horizonYears int) (*models.CagrReport, error) {
	if horizonYears <= 0 {
		return nil, fmt.Errorf("%w: horizon must be positive, got %d years", interfaces.ErrInvalidArgument, horizonYears)
	}

	to := l.now().UTC()
	from := to.AddDate(-horizonYears, 0, 0)

	report := &models.CagrReport{HorizonYears: horizonYears}
	for _, asset := range models.AssetClasses() {
		report.Estimates = append(report.Estimates, l.estimateAsset(ctx, asset, from, to, horizonYears))
	}

	report.AveragePct = averagePresent(report.Estimates)
	if report.AveragePct == nil {
		report.Notice = AggregateUnavailableNotice
	}

	return report, nil
}

func (l *LiveEstimator) estimateAsset(ctx context.Context, asset models.AssetClass, from, to time.Time, years int) models.CagrEstimate {
	symbol, ok := l.symbols[asset]
	if !ok || symbol == "" {
		return l.unavailable(asset, "", "no ticker symbol configured")
	}

	closes, err := l.prices.ClosePrices(ctx, symbol, from, to)
	if err != nil {
		return l.unavailable(asset, symbol, err.Error())
	}
	if len(closes) < 2 {
		return l.unavailable(asset, symbol, "empty price series")
	}

	start, end := closes[0], closes[len(closes)-1]
	if start <= 0 || end <= 0 {
		return l.unavailable(asset, symbol, "malformed price series")
	}

	pct := round2((math.Pow(end/start, 1/float64(years)) - 1) * 100)

	if l.logger != nil {
		l.logger.Debug().
			Str("asset", string(asset)).
			Str("symbol", symbol).
			Int("horizon_years", years).
			Float64("cagr_pct", pct).
			Msg("Computed live CAGR")
	}

	return models.CagrEstimate{Asset: asset, Percent: &pct}
}

func (l *LiveEstimator) unavailable(asset models.AssetClass, symbol, reason string) models.CagrEstimate {
	notice := &interfaces.DataUnavailableError{Asset: asset, Symbol: symbol, Reason: reason}

	if l.logger != nil {
		l.logger.Warn().
			Str("asset", string(asset)).
			Str("symbol", symbol).
			Str("reason", reason).
			Msg("CAGR estimate unavailable")
	}

	return models.CagrEstimate{Asset: asset, Notice: notice.Error()}
}
