// Package app wires configuration, services, and handlers into a running
// application.
package app

import (
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/advisor/internal/common"
	"github.com/ternarybob/advisor/internal/handlers"
	"github.com/ternarybob/advisor/internal/interfaces"
	"github.com/ternarybob/advisor/internal/marketdata"
	"github.com/ternarybob/advisor/internal/openrouter"
	"github.com/ternarybob/advisor/internal/services/cagr"
	"github.com/ternarybob/advisor/internal/services/narrator"
	"github.com/ternarybob/advisor/internal/services/planner"
	"github.com/ternarybob/advisor/internal/services/portfolio"
	"github.com/ternarybob/advisor/internal/services/report"
)

// App holds application-wide dependencies
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	// Services
	Portfolio interfaces.AllocationPolicy
	Planner   interfaces.InvestmentPlanner
	Narrator  interfaces.AdvisoryNarrator
	Cagr      interfaces.CagrEstimator
	Renderer  interfaces.ReportRenderer

	// Handlers
	APIHandler     *handlers.APIHandler
	PageHandler    *handlers.PageHandler
	SessionHandler *handlers.SessionHandler
	AdviceHandler  *handlers.AdviceHandler
	ReportHandler  *handlers.ReportHandler
}

// New creates a new application with all dependencies wired
func New(config *common.Config, logger arbor.ILogger) (*App, error) {
	a := &App{
		Config: config,
		Logger: logger,
	}

	// Chat-completion client: optional. Without a key the narrator always
	// answers with its fallback text.
	var chat interfaces.ChatClient
	if config.OpenRouter.APIKey != "" {
		timeout, err := config.OpenRouterTimeout()
		if err != nil {
			return nil, fmt.Errorf("invalid openrouter timeout: %w", err)
		}

		chat = openrouter.NewClient(
			config.OpenRouter.APIKey,
			config.OpenRouter.Model,
			openrouter.WithBaseURL(config.OpenRouter.BaseURL),
			openrouter.WithTimeout(timeout),
			openrouter.WithMaxTokens(config.OpenRouter.MaxTokens),
			openrouter.WithTemperature(config.OpenRouter.Temperature),
			openrouter.WithLogger(logger),
		)

		logger.Info().
			Str("model", config.OpenRouter.Model).
			Msg("Chat completion client initialized")
	} else {
		logger.Warn().Msg("No OpenRouter API key configured, narration will use fallback text")
	}

	// Market data client: only needed in live CAGR mode.
	var prices cagr.PriceSource
	if config.Cagr.Mode == common.CagrModeLive && config.MarketData.APIKey != "" {
		prices = marketdata.NewClient(
			config.MarketData.APIKey,
			marketdata.WithBaseURL(config.MarketData.BaseURL),
			marketdata.WithRateLimit(config.MarketData.RateLimit),
			marketdata.WithLogger(logger),
		)

		logger.Info().
			Str("base_url", config.MarketData.BaseURL).
			Msg("Market data client initialized")
	}

	// Services
	a.Portfolio = portfolio.NewService(logger)
	a.Planner = planner.NewService(logger)
	a.Narrator = narrator.NewService(chat, logger)
	a.Renderer = report.NewService(logger)

	estimator, err := cagr.NewFromConfig(config, prices, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create CAGR estimator: %w", err)
	}
	a.Cagr = estimator

	// Handlers
	a.APIHandler = handlers.NewAPIHandler(logger)
	a.PageHandler = handlers.NewPageHandler(logger)
	a.SessionHandler = handlers.NewSessionHandler(logger)
	a.AdviceHandler = handlers.NewAdviceHandler(a.Portfolio, a.Planner, a.Narrator, a.Cagr, config.Cagr.Horizons, logger)
	a.ReportHandler = handlers.NewReportHandler(a.Portfolio, a.Planner, a.Narrator, a.Cagr, a.Renderer, config.Cagr.Horizons, logger)

	logger.Info().
		Str("cagr_mode", string(config.Cagr.Mode)).
		Msg("Application initialized")

	return a, nil
}

// Close releases application resources. The advisory services hold no
// connections or files, so this is currently a no-op kept for symmetry
// with the server lifecycle.
func (a *App) Close() error {
	return nil
}
