// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/celesia/flight-insights/internal/infrastructure/logger"
	"github.com/celesia/flight-insights/internal/infrastructure/timeutil"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Upstream  UpstreamConfig
	Timeouts  TimeoutConfig
	Cache     CacheConfig
	Analytics AnalyticsConfig
	Logging   LoggingConfig
	App       AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// UpstreamConfig holds the flight search service client settings.
type UpstreamConfig struct {
	BaseURL     string        `env:"UPSTREAM_BASE_URL" envDefault:"http://localhost:8000"`
	Timeout     time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"4s"`
	RatePerSec  float64       `env:"UPSTREAM_RATE_PER_SEC" envDefault:"10"`
	Burst       int           `env:"UPSTREAM_BURST" envDefault:"5"`
	MaxAttempts int           `env:"UPSTREAM_MAX_ATTEMPTS" envDefault:"3"`
}

// TimeoutConfig holds the per-call budgets of a dashboard search.
type TimeoutConfig struct {
	Search time.Duration `env:"TIMEOUT_SEARCH" envDefault:"5s"`
	Trends time.Duration `env:"TIMEOUT_TRENDS" envDefault:"3s"`
}

// CacheConfig holds the upstream response cache settings.
type CacheConfig struct {
	Enabled       bool          `env:"CACHE_ENABLED" envDefault:"false"`
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL           time.Duration `env:"CACHE_TTL" envDefault:"5m"`
}

// AnalyticsConfig holds price analytics and display settings.
type AnalyticsConfig struct {
	// SampleFallback substitutes demo price history when a route has none
	SampleFallback bool `env:"ANALYTICS_SAMPLE_FALLBACK" envDefault:"true"`

	// DisplayTimezone is the zone offer times are rendered in
	DisplayTimezone string `env:"DISPLAY_TIMEZONE" envDefault:"America/Sao_Paulo"`

	// TrendsDaysBack is the default price history window
	TrendsDaysBack int `env:"TRENDS_DAYS_BACK" envDefault:"30"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	u, err := url.Parse(cfg.Upstream.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("UPSTREAM_BASE_URL must be an absolute URL, got %q", cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.Timeout <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT must be positive")
	}
	if cfg.Upstream.RatePerSec <= 0 {
		return fmt.Errorf("UPSTREAM_RATE_PER_SEC must be positive")
	}
	if cfg.Upstream.Burst < 1 {
		return fmt.Errorf("UPSTREAM_BURST must be at least 1")
	}
	if cfg.Upstream.MaxAttempts < 1 {
		return fmt.Errorf("UPSTREAM_MAX_ATTEMPTS must be at least 1")
	}

	if cfg.Timeouts.Search <= 0 {
		return fmt.Errorf("TIMEOUT_SEARCH must be positive")
	}
	if cfg.Timeouts.Trends <= 0 {
		return fmt.Errorf("TIMEOUT_TRENDS must be positive")
	}

	if cfg.Cache.Enabled {
		if cfg.Cache.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when CACHE_ENABLED is true")
		}
		if cfg.Cache.TTL <= 0 {
			return fmt.Errorf("CACHE_TTL must be positive")
		}
	}

	if _, err := timeutil.DisplayLocation(cfg.Analytics.DisplayTimezone); err != nil {
		return fmt.Errorf("DISPLAY_TIMEZONE: %w", err)
	}
	if cfg.Analytics.TrendsDaysBack < 1 || cfg.Analytics.TrendsDaysBack > 365 {
		return fmt.Errorf("TRENDS_DAYS_BACK must be between 1 and 365, got %d", cfg.Analytics.TrendsDaysBack)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// Location returns the resolved display time zone. Load has already
// validated the name.
func (c *Config) Location() *time.Location {
	loc, err := timeutil.DisplayLocation(c.Analytics.DisplayTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// LoggerConfig converts the logging section for the logger package.
func (c *Config) LoggerConfig() logger.Config {
	cfg := logger.DefaultConfig()
	cfg.Level = c.Logging.Level
	cfg.Format = c.Logging.Format
	return cfg
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
