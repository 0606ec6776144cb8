package cagr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/advisor/internal/common"
)

func TestNewFromConfigStatic(t *testing.T) {
	cfg := common.NewDefaultConfig()
	cfg.Cagr.Mode = common.CagrModeStatic

	est, err := NewFromConfig(cfg, nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &StaticEstimator{}, est)
}

func TestNewFromConfigLive(t *testing.T) {
	cfg := common.NewDefaultConfig()
	cfg.Cagr.Mode = common.CagrModeLive

	est, err := NewFromConfig(cfg, &fakePriceSource{}, nil)
	require.NoError(t, err)
	assert.IsType(t, &LiveEstimator{}, est)
}

func TestNewFromConfigLiveWithoutPricesFallsBack(t *testing.T) {
	cfg := common.NewDefaultConfig()
	cfg.Cagr.Mode = common.CagrModeLive

	est, err := NewFromConfig(cfg, nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &StaticEstimator{}, est, "live mode without a price source degrades to the static table")
}

func TestNewFromConfigUnknownMode(t *testing.T) {
	cfg := common.NewDefaultConfig()
	cfg.Cagr.Mode = common.CagrMode("realtime")

	_, err := NewFromConfig(cfg, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown cagr mode")
}
