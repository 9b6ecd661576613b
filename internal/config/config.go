package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the environment driven configuration for the CloudReel server.
type Config struct {
	// Service Configuration
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"cloudreel-api"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"CLOUDREEL_API_PORT" envDefault:"8290"`
	LogLevel        string        `env:"CLOUDREEL_LOG_LEVEL" envDefault:"info"`
	EnableTracing   bool          `env:"ENABLE_TRACING" envDefault:"false"`
	OTLPEndpoint    string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Database - Read/Write Split (write required, no default)
	DBPostgresqlWriteDSN string `env:"DB_POSTGRESQL_WRITE_DSN,notEmpty"`
	DBPostgresqlRead1DSN string `env:"DB_POSTGRESQL_READ1_DSN"` // Optional read replica

	// Database Connection Pool
	DBMaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBMaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"15"`
	DBConnLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`

	// Media Store (external transformation/CDN service)
	MediaCloudName     string        `env:"MEDIASTORE_CLOUD_NAME"`
	MediaAPIKey        string        `env:"MEDIASTORE_API_KEY"`
	MediaAPISecret     string        `env:"MEDIASTORE_API_SECRET"`
	MediaUploadPreset  string        `env:"MEDIASTORE_UPLOAD_PRESET" envDefault:"saas_uploads"`
	MediaUploadURL     string        `env:"MEDIASTORE_UPLOAD_URL" envDefault:"https://api.cloudinary.com/v1_1"`
	MediaDeliveryURL   string        `env:"MEDIASTORE_DELIVERY_URL" envDefault:"https://res.cloudinary.com"`
	MediaUploadTimeout time.Duration `env:"MEDIASTORE_UPLOAD_TIMEOUT" envDefault:"30s"`
	MaxImageBytes      int64         `env:"MEDIASTORE_MAX_IMAGE_BYTES" envDefault:"10485760"`

	// Authentication (identity provider)
	AuthEnabled       bool   `env:"AUTH_ENABLED" envDefault:"false"`
	AuthIssuer        string `env:"AUTH_ISSUER"`
	AuthAudience      string `env:"AUTH_AUDIENCE"`
	AuthJWKSURL       string `env:"AUTH_JWKS_URL"`
	AuthDevSubject    string `env:"AUTH_DEV_SUBJECT"` // local-only fallback subject when auth is disabled
	SessionCookieName string `env:"AUTH_SESSION_COOKIE" envDefault:"__session"`
}

// Load parses environment variables into Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	cfg.MediaCloudName = strings.TrimSpace(cfg.MediaCloudName)
	cfg.MediaAPIKey = strings.TrimSpace(cfg.MediaAPIKey)
	cfg.MediaAPISecret = strings.TrimSpace(cfg.MediaAPISecret)
	cfg.MediaUploadURL = strings.TrimRight(strings.TrimSpace(cfg.MediaUploadURL), "/")
	cfg.MediaDeliveryURL = strings.TrimRight(strings.TrimSpace(cfg.MediaDeliveryURL), "/")
	if cfg.MaxImageBytes <= 0 {
		cfg.MaxImageBytes = 10 * 1024 * 1024
	}
	if cfg.AuthEnabled {
		if strings.TrimSpace(cfg.AuthIssuer) == "" {
			return nil, fmt.Errorf("AUTH_ISSUER is required when AUTH_ENABLED is true")
		}
		if strings.TrimSpace(cfg.AuthJWKSURL) == "" {
			return nil, fmt.Errorf("AUTH_JWKS_URL is required when AUTH_ENABLED is true")
		}
	}
	return cfg, nil
}

// GetDatabaseWriteDSN returns the write database connection string.
func (c *Config) GetDatabaseWriteDSN() string {
	return c.DBPostgresqlWriteDSN
}

// GetDatabaseReadDSN returns the read database connection string.
// Falls back to the write DSN when no replica is configured.
func (c *Config) GetDatabaseReadDSN() string {
	if c.DBPostgresqlRead1DSN != "" {
		return c.DBPostgresqlRead1DSN
	}
	return c.GetDatabaseWriteDSN()
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// MediaStoreConfigured reports whether the media store credentials are set.
func (c *Config) MediaStoreConfigured() bool {
	return c.MediaCloudName != "" && c.MediaAPIKey != "" && c.MediaAPISecret != ""
}
