package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// AppConfig holds process-level settings read from the environment.
type AppConfig struct {
	RatesFile          string   `env:"POLICYIRR_RATES_FILE"`
	LogLevel           string   `env:"LOG_LEVEL" envDefault:"info"`
	Environment        string   `env:"ENVIRONMENT" envDefault:"development"`
	HTTPAddr           string   `env:"HTTP_ADDR" envDefault:":8080"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://localhost:8080"`
}

// LoadAppConfig reads configuration from environment variables and .env file (if present).
func LoadAppConfig() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.Environment = strings.ToLower(cfg.Environment)
	return cfg, nil
}

// IsProduction reports whether structured JSON output is expected.
func (c *AppConfig) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "staging"
}
