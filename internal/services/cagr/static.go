// Package cagr estimates compound annual growth rates per asset class.
// Two interchangeable strategies exist: a static historical table and a
// live estimator backed by market-data price series. The strategy is
// selected by configuration.
package cagr

import (
	"context"
	"fmt"
	"math"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/advisor/internal/interfaces"
	"github.com/ternarybob/advisor/internal/models"
)

// staticTable holds the historical CAGR percentages per asset class,
// keyed by horizon in years. Design constant.
var staticTable = map[int]map[models.AssetClass]float64{
	1: {models.AssetEquity: 22.5, models.AssetDebt: 6.2, models.AssetGold: 12.1},
	3: {models.AssetEquity: 18.3, models.AssetDebt: 5.9, models.AssetGold: 11.4},
	5: {models.AssetEquity: 14.7, models.AssetDebt: 6.0, models.AssetGold: 10.6},
}

// StaticEstimator serves CAGR estimates from the fixed historical table.
// It performs no I/O and always succeeds for the tabled horizons.
type StaticEstimator struct {
	logger arbor.ILogger
}

// Compile-time assertion
var _ interfaces.CagrEstimator = (*StaticEstimator)(nil)

// NewStaticEstimator creates a table-backed estimator.
func NewStaticEstimator(logger arbor.ILogger) *StaticEstimator {
	return &StaticEstimator{
		logger: logger,
	}
}

// Horizons returns the horizons covered by the static table, ascending.
func (s *StaticEstimator) Horizons() []int {
	return []int{1, 3, 5}
}

// Estimate returns the tabled estimates for a horizon. Horizons outside the
// table fail with ErrInvalidArgument.
func (s *StaticEstimator) Estimate(_ context.Context, horizonYears int) (*models.CagrReport, error) {
	row, ok := staticTable[horizonYears]
	if !ok {
		return nil, fmt.Errorf("%w: no static CAGR data for %d-year horizon", interfaces.ErrInvalidArgument, horizonYears)
	}

	report := &models.CagrReport{HorizonYears: horizonYears}
	for _, asset := range models.AssetClasses() {
		pct := row[asset]
		report.Estimates = append(report.Estimates, models.CagrEstimate{
			Asset:   asset,
			Percent: &pct,
		})
	}

	avg := averagePresent(report.Estimates)
	report.AveragePct = avg

	return report, nil
}

// averagePresent returns the arithmetic mean of the computed estimates,
// rounded to two decimals, or nil when none were computed.
func averagePresent(estimates []models.CagrEstimate) *float64 {
	var sum float64
	var count int
	for _, e := range estimates {
		if e.Percent != nil {
			sum += *e.Percent
			count++
		}
	}
	if count == 0 {
		return nil
	}
	avg := round2(sum / float64(count))
	return &avg
}

// round2 rounds to two decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
