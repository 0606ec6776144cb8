package cagr

import (
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/advisor/internal/common"
	"github.com/ternarybob/advisor/internal/interfaces"
	"github.com/ternarybob/advisor/internal/models"
)

// NewFromConfig selects the CAGR strategy from configuration. The live
// strategy requires a price source; passing nil falls back to static with
// a warning so the application still starts without market-data credentials.
func NewFromConfig(cfg *common.Config, prices PriceSource, logger arbor.ILogger) (interfaces.CagrEstimator, error) {
	switch cfg.Cagr.Mode {
	case common.CagrModeStatic:
		return NewStaticEstimator(logger), nil

	case common.CagrModeLive:
		if prices == nil {
			if logger != nil {
				logger.Warn().Msg("Live CAGR mode configured without market data client, falling back to static table")
			}
			return NewStaticEstimator(logger), nil
		}

		symbols := make(map[models.AssetClass]string, len(cfg.MarketData.Symbols))
		for name, symbol := range cfg.MarketData.Symbols {
			symbols[models.AssetClass(name)] = symbol
		}
		return NewLiveEstimator(prices, symbols, logger), nil

	default:
		return nil, fmt.Errorf("unknown cagr mode %q", cfg.Cagr.Mode)
	}
}
