package cagr

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/advisor/internal/interfaces"
	"github.com/ternarybob/advisor/internal/models"
)

// fakePriceSource serves canned close series (or errors) per symbol.
type fakePriceSource struct {
	series map[string][]float64
	errs   map[string]error
}

func (f *fakePriceSource) ClosePrices(_ context.Context, symbol string, _, _ time.Time) ([]float64, error) {
	if err, ok := f.errs[symbol]; ok {
		return nil, err
	}
	return f.series[symbol], nil
}

func testSymbols() map[models.AssetClass]string {
	return map[models.AssetClass]string{
		models.AssetEquity: "NIFTY.INDX",
		models.AssetDebt:   "LQD.US",
		models.AssetGold:   "GLD.US",
	}
}

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	}
}

func TestLiveEstimateComputesCagr(t *testing.T) {
	// 100 -> 121 over 2 years is exactly 10% annualized.
	prices := &fakePriceSource{series: map[string][]float64{
		"NIFTY.INDX": {100, 105, 121},
		"LQD.US":     {50, 51, 52.5},
		"GLD.US":     {200, 210, 242},
	}}

	est := NewLiveEstimator(prices, testSymbols(), nil).WithClock(fixedClock())

	report, err := est.Estimate(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, report.Estimates, 3)

	byAsset := map[models.AssetClass]models.CagrEstimate{}
	for _, e := range report.Estimates {
		byAsset[e.Asset] = e
	}

	require.NotNil(t, byAsset[models.AssetEquity].Percent)
	assert.Equal(t, 10.0, *byAsset[models.AssetEquity].Percent)

	require.NotNil(t, byAsset[models.AssetGold].Percent)
	assert.Equal(t, 10.0, *byAsset[models.AssetGold].Percent)

	require.NotNil(t, report.AveragePct)
	assert.Empty(t, report.Notice)
}

func TestLiveEstimateDegradesPerAsset(t *testing.T) {
	prices := &fakePriceSource{
		series: map[string][]float64{
			"NIFTY.INDX": {100, 121},
			"GLD.US":     {200}, // too short to compute
		},
		errs: map[string]error{
			"LQD.US": errors.New("upstream timeout"),
		},
	}

	est := NewLiveEstimator(prices, testSymbols(), nil).WithClock(fixedClock())

	report, err := est.Estimate(context.Background(), 2)
	require.NoError(t, err, "data failures must not surface as errors")

	byAsset := map[models.AssetClass]models.CagrEstimate{}
	for _, e := range report.Estimates {
		byAsset[e.Asset] = e
	}

	// Equity computed, debt and gold absent with notices.
	require.NotNil(t, byAsset[models.AssetEquity].Percent)
	assert.Equal(t, 10.0, *byAsset[models.AssetEquity].Percent)

	assert.Nil(t, byAsset[models.AssetDebt].Percent)
	assert.Contains(t, byAsset[models.AssetDebt].Notice, "market data unavailable for Debt")
	assert.Contains(t, byAsset[models.AssetDebt].Notice, "upstream timeout")

	assert.Nil(t, byAsset[models.AssetGold].Percent)
	assert.Contains(t, byAsset[models.AssetGold].Notice, "empty price series")

	// Average covers only the computed estimate.
	require.NotNil(t, report.AveragePct)
	assert.Equal(t, 10.0, *report.AveragePct)
	assert.Empty(t, report.Notice)
}

func TestLiveEstimateAllUnavailable(t *testing.T) {
	prices := &fakePriceSource{}

	est := NewLiveEstimator(prices, testSymbols(), nil).WithClock(fixedClock())

	report, err := est.Estimate(context.Background(), 5)
	require.NoError(t, err)

	for _, e := range report.Estimates {
		assert.Nil(t, e.Percent)
		assert.NotEmpty(t, e.Notice)
	}

	assert.Nil(t, report.AveragePct)
	assert.Equal(t, AggregateUnavailableNotice, report.Notice)
}

func TestLiveEstimateMalformedSeries(t *testing.T) {
	prices := &fakePriceSource{series: map[string][]float64{
		"NIFTY.INDX": {0, 100},
	}}

	est := NewLiveEstimator(prices, map[models.AssetClass]string{models.AssetEquity: "NIFTY.INDX"}, nil).WithClock(fixedClock())

	report, err := est.Estimate(context.Background(), 1)
	require.NoError(t, err)

	byAsset := map[models.AssetClass]models.CagrEstimate{}
	for _, e := range report.Estimates {
		byAsset[e.Asset] = e
	}

	assert.Nil(t, byAsset[models.AssetEquity].Percent)
	assert.Contains(t, byAsset[models.AssetEquity].Notice, "malformed price series")

	// Unmapped asset classes degrade too.
	assert.Contains(t, byAsset[models.AssetDebt].Notice, "no ticker symbol configured")
}

func TestLiveEstimateInvalidHorizon(t *testing.T) {
	est := NewLiveEstimator(&fakePriceSource{}, testSymbols(), nil)

	for _, horizon := range []int{0, -3} {
		_, err := est.Estimate(context.Background(), horizon)
		require.Error(t, err)
		assert.True(t, errors.Is(err, interfaces.ErrInvalidArgument))
	}
}
