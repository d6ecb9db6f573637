package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"

	"insider-tracker/models"
)

// EnvPrefix is prepended to every variable name, e.g. INSIDER_TOP_N.
const EnvPrefix = "INSIDER"

const (
	FetchModeHTTP    = "http"
	FetchModeBrowser = "browser"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Threshold float64 `envconfig:"THRESHOLD" default:"100000"`
	TopN      int     `envconfig:"TOP_N" default:"5"`

	FetchMode      string        `envconfig:"FETCH_MODE" default:"http"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`
	UserAgent      string        `envconfig:"USER_AGENT"`
	ChromeBin      string        `envconfig:"CHROME_BIN"`

	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	CSVOutputPath string `envconfig:"CSV_OUTPUT_PATH"`

	TransactionTypes []string `envconfig:"TRANSACTION_TYPES"`
	MinValue         float64  `envconfig:"MIN_VALUE" default:"0"`
	MaxAgeDays       int      `envconfig:"MAX_AGE_DAYS" default:"0"`
	Tickers          []string `envconfig:"TICKERS"`
}

// Load reads the .env file (if any) and decodes the environment into a Config.
func Load() (*Config, error) {
	// A missing .env is normal; system env vars are used instead.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode env: %w", err)
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	cfg.FetchMode = strings.ToLower(strings.TrimSpace(cfg.FetchMode))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	var errs []error
	if !isFinite(c.Threshold) || c.Threshold < 0 {
		errs = append(errs, fmt.Errorf("threshold must be a finite number >= 0, got %v", c.Threshold))
	}
	if c.TopN < 0 {
		errs = append(errs, fmt.Errorf("top n must be >= 0, got %d", c.TopN))
	}
	if c.FetchMode != FetchModeHTTP && c.FetchMode != FetchModeBrowser {
		errs = append(errs, fmt.Errorf("fetch mode must be %q or %q, got %q",
			FetchModeHTTP, FetchModeBrowser, c.FetchMode))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("request timeout must be positive, got %v", c.RequestTimeout))
	}
	if !isFinite(c.MinValue) || c.MinValue < 0 {
		errs = append(errs, fmt.Errorf("min value must be a finite number >= 0, got %v", c.MinValue))
	}
	if c.MaxAgeDays < 0 {
		errs = append(errs, fmt.Errorf("max age days must be >= 0, got %d", c.MaxAgeDays))
	}
	if _, err := parseTransactionTypes(c.TransactionTypes); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// isFinite rejects NaN and ±Inf, which decimal.NewFromFloat cannot represent.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ThresholdDecimal returns the significance threshold as a decimal.
func (c *Config) ThresholdDecimal() decimal.Decimal {
	return decimal.NewFromFloat(c.Threshold)
}

// Filters builds the optional trade filters. Call after Validate.
func (c *Config) Filters() models.FilterOptions {
	types, _ := parseTransactionTypes(c.TransactionTypes)

	var tickers []string
	for _, t := range c.Tickers {
		if t = strings.ToUpper(strings.TrimSpace(t)); t != "" {
			tickers = append(tickers, t)
		}
	}

	return models.FilterOptions{
		TransactionTypes: types,
		MinValue:         decimal.NewFromFloat(c.MinValue),
		MaxAgeDays:       c.MaxAgeDays,
		Tickers:          tickers,
	}
}

// parseTransactionTypes accepts the exact display labels, case-insensitively.
func parseTransactionTypes(raw []string) ([]models.TransactionType, error) {
	var out []models.TransactionType
	for _, r := range raw {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		var found bool
		for _, tt := range models.TransactionTypes {
			if strings.EqualFold(r, string(tt)) {
				out = append(out, tt)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown transaction type %q", r)
		}
	}
	return out, nil
}
