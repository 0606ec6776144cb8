package cagr

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/advisor/internal/interfaces"
	"github.com/ternarybob/advisor/internal/models"
)

func TestStaticEstimate(t *testing.T) {
	est := NewStaticEstimator(nil)

	tests := []struct {
		horizon int
		want    map[models.AssetClass]float64
		avg     float64
	}{
		{1, map[models.AssetClass]float64{models.AssetEquity: 22.5, models.AssetDebt: 6.2, models.AssetGold: 12.1}, 13.6},
		{3, map[models.AssetClass]float64{models.AssetEquity: 18.3, models.AssetDebt: 5.9, models.AssetGold: 11.4}, 11.87},
		{5, map[models.AssetClass]float64{models.AssetEquity: 14.7, models.AssetDebt: 6.0, models.AssetGold: 10.6}, 10.43},
	}

	for _, tt := range tests {
		report, err := est.Estimate(context.Background(), tt.horizon)
		require.NoError(t, err)

		assert.Equal(t, tt.horizon, report.HorizonYears)
		require.Len(t, report.Estimates, 3)

		for _, e := range report.Estimates {
			require.NotNil(t, e.Percent, "static estimates are always present")
			assert.Equal(t, tt.want[e.Asset], *e.Percent)
			assert.Empty(t, e.Notice)
		}

		require.NotNil(t, report.AveragePct)
		assert.Equal(t, tt.avg, *report.AveragePct)
		assert.Empty(t, report.Notice)
	}
}

func TestStaticEstimateOrdersAssets(t *testing.T) {
	est := NewStaticEstimator(nil)

	report, err := est.Estimate(context.Background(), 5)
	require.NoError(t, err)

	var got []models.AssetClass
	for _, e := range report.Estimates {
		got = append(got, e.Asset)
	}
	assert.Equal(t, []models.AssetClass{models.AssetEquity, models.AssetDebt, models.AssetGold}, got)
}

func TestStaticEstimateUnknownHorizon(t *testing.T) {
	est := NewStaticEstimator(nil)

	for _, horizon := range []int{0, 2, 10, -1} {
		_, err := est.Estimate(context.Background(), horizon)
		require.Error(t, err)
		assert.True(t, errors.Is(err, interfaces.ErrInvalidArgument))
	}
}

func TestStaticHorizons(t *testing.T) {
	assert.Equal(t, []int{1, 3, 5}, NewStaticEstimator(nil).Horizons())
}
