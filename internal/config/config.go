// Package config loads and validates app config from env and an optional .env file using Viper.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	// HTTPAddr is the address the HTTP API listens on (e.g. :8080).
	HTTPAddr string `mapstructure:"HTTP_ADDR"`
	// DatabaseURL is the Postgres DSN.
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	// BcryptCost is the bcrypt cost factor (4–31); default 12.
	BcryptCost int `mapstructure:"BCRYPT_COST"`
	// SessionTTLRaw is the session lifetime as a Go duration (default 720h, i.e. 30 days).
	SessionTTLRaw string `mapstructure:"SESSION_TTL"`
	// SessionCookieName is the cookie carrying the session token.
	SessionCookieName string `mapstructure:"SESSION_COOKIE_NAME"`
	// CookieSecure sets the Secure attribute on issued cookies. Required in production.
	CookieSecure bool `mapstructure:"COOKIE_SECURE"`
	// Env is the application environment (e.g. "development", "production").
	Env string `mapstructure:"APP_ENV"`
	// TrustProxy takes the client IP from X-Forwarded-For when the peer is a private or
	// loopback address (a reverse proxy). Otherwise the peer address is used as is.
	TrustProxy bool `mapstructure:"TRUST_PROXY"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	// OTLPEndpoint is the collector address; empty disables export.
	OTLPEndpoint    string `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPInsecure    bool   `mapstructure:"OTEL_EXPORTER_OTLP_INSECURE"`
	OTELServiceName string `mapstructure:"OTEL_SERVICE_NAME"`

	// Worker-only: how often expired sessions are purged.
	SessionPurgeIntervalRaw string `mapstructure:"SESSION_PURGE_INTERVAL"`
}

// Load reads .env (if present), then builds and validates Config from the environment via Viper.
// Missing .env is ignored (e.g. in CI). Env vars override .env. Returns an error if required fields are invalid.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore ErrConfigFileNotFound

	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("BCRYPT_COST", 12)
	v.SetDefault("SESSION_TTL", "720h")
	v.SetDefault("SESSION_COOKIE_NAME", "sid")
	v.SetDefault("COOKIE_SECURE", false)
	v.SetDefault("APP_ENV", "")
	v.SetDefault("TRUST_PROXY", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "auto")
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	v.SetDefault("OTEL_EXPORTER_OTLP_INSECURE", false)
	v.SetDefault("OTEL_SERVICE_NAME", "opsboard")
	v.SetDefault("SESSION_PURGE_INTERVAL", "1h")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.HTTPAddr == "" {
		return nil, errors.New("config: HTTP_ADDR must be set")
	}
	if strings.TrimSpace(cfg.SessionCookieName) == "" {
		return nil, errors.New("config: SESSION_COOKIE_NAME must not be empty")
	}

	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = 12
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return nil, errors.New("config: BCRYPT_COST must be between 4 and 31")
	}

	if cfg.IsProduction() && !cfg.CookieSecure {
		return nil, errors.New("config: COOKIE_SECURE must be true when APP_ENV=production")
	}

	if err := checkDuration("SESSION_TTL", cfg.SessionTTLRaw); err != nil {
		return nil, err
	}
	if err := checkDuration("SESSION_PURGE_INTERVAL", cfg.SessionPurgeIntervalRaw); err != nil {
		return nil, err
	}

	switch strings.ToLower(cfg.LogFormat) {
	case "", "auto", "json", "text":
	default:
		return nil, errors.New("config: LOG_FORMAT must be auto, json or text")
	}

	return &cfg, nil
}

// checkDuration rejects values that are not positive Go durations (e.g. "30d").
func checkDuration(key, raw string) error {
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil || d <= 0 {
		return fmt.Errorf("config: %s must be a positive duration such as 720h, got %q", key, raw)
	}
	return nil
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// SessionTTL parses SessionTTLRaw as a time.Duration. Returns 720h if unset or invalid.
func (c *Config) SessionTTL() time.Duration {
	d, err := time.ParseDuration(c.SessionTTLRaw)
	if err != nil || d <= 0 {
		return 720 * time.Hour
	}
	return d
}

// SessionPurgeInterval parses SessionPurgeIntervalRaw. Returns 1h if unset or invalid.
func (c *Config) SessionPurgeInterval() time.Duration {
	d, err := time.ParseDuration(c.SessionPurgeIntervalRaw)
	if err != nil || d <= 0 {
		return time.Hour
	}
	return d
}
