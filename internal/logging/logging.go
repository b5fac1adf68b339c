// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"

	"gostarter/config"
)

// Setup installs the default slog logger according to the logging
// configuration: a JSON handler for production, or a colorized tint
// handler for local development when format is "console".
func Setup(cfg config.LoggingConfig) {
	slog.SetDefault(slog.New(NewHandler(os.Stdout, cfg)))
}

// NewHandler builds a slog.Handler for the given output and configuration.
func NewHandler(out io.Writer, cfg config.LoggingConfig) slog.Handler {
	level := ParseLevel(cfg.Level)

	if strings.EqualFold(cfg.Format, "console") {
		return tint.NewHandler(out, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
		})
	}

	return slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
}

// ParseLevel maps a config string to a slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
