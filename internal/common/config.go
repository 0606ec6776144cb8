package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// CagrMode selects the CAGR estimation strategy.
type CagrMode string

const (
	// CagrModeStatic uses the built-in historical CAGR table.
	CagrModeStatic CagrMode = "static"
	// CagrModeLive computes CAGR from market-data price series.
	CagrModeLive CagrMode = "live"
)

// Config represents the application configuration
type Config struct {
	Environment string           `toml:"environment"` // "development" or "production"
	Server      ServerConfig     `toml:"server"`
	Logging     LoggingConfig    `toml:"logging"`
	OpenRouter  OpenRouterConfig `toml:"openrouter"`
	MarketData  MarketDataConfig `toml:"market_data"`
	Cagr        CagrConfig       `toml:"cagr"`
}

type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

type LoggingConfig struct {
	Level      string   `toml:"level"`       // "debug", "info", "warn", "error"
	Format     string   `toml:"format"`      // "json" or "text"
	Output     []string `toml:"output"`      // "stdout", "file"
	TimeFormat string   `toml:"time_format"` // Time format for logs (default: "15:04:05")
}

// OpenRouterConfig contains the chat-completion collaborator configuration.
// The API key is a bearer credential supplied out-of-band (env or config).
type OpenRouterConfig struct {
	APIKey      string  `toml:"api_key"`     // Bearer credential (env: OPENROUTER_API_KEY)
	Model       string  `toml:"model"`       // Model identifier passed in the request body
	BaseURL     string  `toml:"base_url"`    // API base URL (default: https://openrouter.ai/api/v1)
	Timeout     string  `toml:"timeout"`     // Request timeout as duration string (default: "30s")
	MaxTokens   int     `toml:"max_tokens"`  // Maximum tokens in response (0 = provider default)
	Temperature float32 `toml:"temperature"` // Completion temperature
}

// MarketDataConfig contains the historical price data collaborator
// configuration, used only when the CAGR mode is "live".
type MarketDataConfig struct {
	APIKey    string            `toml:"api_key"`    // Market data API key
	BaseURL   string            `toml:"base_url"`   // API base URL
	RateLimit int               `toml:"rate_limit"` // Requests per second
	Symbols   map[string]string `toml:"symbols"`    // Asset class -> ticker symbol
}

// CagrConfig selects and tunes the CAGR estimation strategy.
type CagrConfig struct {
	Mode     CagrMode `toml:"mode"`     // "static" (default) or "live"
	Horizons []int    `toml:"horizons"` // Horizons in years to report (default: 1, 3, 5)
}

// NewDefaultConfig creates a configuration with default values.
// Only user-facing settings are exposed in advisor.toml; technical
// parameters are hardcoded here for production stability.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port: 8080,
			Host: "localhost",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			Output:     []string{"stdout", "file"},
			TimeFormat: "15:04:05",
		},
		OpenRouter: OpenRouterConfig{
			APIKey:      "", // User must provide API key (OPENROUTER_API_KEY or config)
			Model:       "openai/gpt-4o-mini",
			BaseURL:     "https://openrouter.ai/api/v1",
			Timeout:     "30s", // Narration blocks the interaction; keep the cap tight
			MaxTokens:   0,
			Temperature: 0.7,
		},
		MarketData: MarketDataConfig{
			APIKey:    "",
			BaseURL:   "https://eodhd.com/api",
			RateLimit: 10,
			Symbols: map[string]string{
				"Equity": "NIFTY.INDX",
				"Debt":   "LQD.US",
				"Gold":   "GLD.US",
			},
		},
		Cagr: CagrConfig{
			Mode:     CagrModeStatic,
			Horizons: []int{1, 3, 5},
		},
	}
}

// LoadFromFile loads configuration with priority: default -> file -> env.
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files with priority:
// default -> file1 -> file2 -> ... -> env. Later files override earlier
// files; environment variables override all files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks cross-field configuration constraints.
func (c *Config) Validate() error {
	switch c.Cagr.Mode {
	case CagrModeStatic, CagrModeLive:
	default:
		return fmt.Errorf("invalid cagr mode %q (expected %q or %q)", c.Cagr.Mode, CagrModeStatic, CagrModeLive)
	}

	for _, h := range c.Cagr.Horizons {
		if h <= 0 {
			return fmt.Errorf("invalid cagr horizon %d: must be a positive number of years", h)
		}
	}

	if _, err := c.OpenRouterTimeout(); err != nil {
		return err
	}

	return nil
}

// OpenRouterTimeout parses the configured narration timeout.
func (c *Config) OpenRouterTimeout() (time.Duration, error) {
	if c.OpenRouter.Timeout == "" {
		return 30 * time.Second, nil
	}
	d, err := time.ParseDuration(c.OpenRouter.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid openrouter timeout %q: %w", c.OpenRouter.Timeout, err)
	}
	return d, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	// Environment configuration (highest priority: ADVISOR_ENV, fallback: GO_ENV)
	if env := os.Getenv("ADVISOR_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	// Server configuration
	if port := os.Getenv("ADVISOR_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("ADVISOR_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}

	// Logging configuration
	if level := os.Getenv("ADVISOR_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if format := os.Getenv("ADVISOR_LOG_FORMAT"); format != "" {
		config.Logging.Format = format
	}
	if output := os.Getenv("ADVISOR_LOG_OUTPUT"); output != "" {
		outputs := []string{}
		for _, o := range strings.Split(output, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				outputs = append(outputs, trimmed)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}

	// OpenRouter configuration
	if key := os.Getenv("ADVISOR_OPENROUTER_API_KEY"); key != "" {
		config.OpenRouter.APIKey = key
	} else if key := os.Getenv("OPENROUTER_API_KEY"); key != "" {
		config.OpenRouter.APIKey = key
	}
	if model := os.Getenv("ADVISOR_OPENROUTER_MODEL"); model != "" {
		config.OpenRouter.Model = model
	}
	if baseURL := os.Getenv("ADVISOR_OPENROUTER_BASE_URL"); baseURL != "" {
		config.OpenRouter.BaseURL = baseURL
	}

	// Market data configuration
	if key := os.Getenv("ADVISOR_MARKET_DATA_API_KEY"); key != "" {
		config.MarketData.APIKey = key
	} else if key := os.Getenv("EODHD_API_KEY"); key != "" {
		config.MarketData.APIKey = key
	}
	if baseURL := os.Getenv("ADVISOR_MARKET_DATA_BASE_URL"); baseURL != "" {
		config.MarketData.BaseURL = baseURL
	}

	// CAGR configuration
	if mode := os.Getenv("ADVISOR_CAGR_MODE"); mode != "" {
		config.Cagr.Mode = CagrMode(strings.ToLower(mode))
	}
}

// ApplyFlagOverrides applies command-line flag overrides (highest priority)
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port != 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}
