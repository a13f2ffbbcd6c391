// Package logging builds the zerolog logger from the application
// configuration and provides context-based logger propagation.
package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/pakomoretlwe/profiler/internal/config"
)

// Setup creates a logger configured according to cfg, writing to stderr.
func Setup(cfg *config.Config) zerolog.Logger {
	return SetupWithWriter(cfg, os.Stderr)
}

// SetupWithWriter creates a logger configured according to cfg, writing to
// w. Use this variant in tests to capture or suppress log output.
func SetupWithWriter(cfg *config.Config, w io.Writer) zerolog.Logger {
	if cfg.LogFormat != config.LogFormatJSON {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.TimeOnly}
	}

	return zerolog.New(w).
		Level(ParseLevel(cfg.EffectiveLogLevel())).
		With().
		Timestamp().
		Logger()
}

// ParseLevel converts a string log level to a zerolog.Level, defaulting to
// info.
func ParseLevel(level string) zerolog.Level {
	switch level {
	case config.LogLevelDebug:
		return zerolog.DebugLevel
	case config.LogLevelWarn:
		return zerolog.WarnLevel
	case config.LogLevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// NewContext returns a child context carrying logger.
func NewContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// FromContext extracts a logger from ctx. Without one it returns a disabled
// logger.
func FromContext(ctx context.Context) zerolog.Logger {
	return *zerolog.Ctx(ctx)
}
