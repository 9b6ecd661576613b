// Package logger builds the root zerolog logger the rest of the server
// derives component loggers from.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"cloudreel-server/internal/config"
)

// New builds the root logger: console output with RFC3339 timestamps, tagged
// with the service name and environment so CloudReel lines stay attributable
// in a shared log stream.
func New(cfg *config.Config) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Logger().
		Level(level(cfg.LogLevel))
}

// level maps the configured level name, falling back to info rather than
// failing startup on an unknown value.
func level(raw string) zerolog.Level {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return zerolog.InfoLevel
	}
	parsed, err := zerolog.ParseLevel(raw)
	if err != nil {
		return zerolog.InfoLevel
	}
	return parsed
}
