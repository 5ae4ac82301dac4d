package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

type contextKey struct{}

var loggerKey = contextKey{}

// Setup initializes the application's logging system. It creates a
// structured JSON logger writing to stdout at the given level and sets it as
// the process default so slog package functions use it directly.
func Setup(logLevel string) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
		tmp := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmp.Warn("invalid log level configured, using default level",
			"configured_level", logLevel,
			"default_level", "info")
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// WithContext returns a context carrying the given logger. Request-scoped
// middleware uses this to attach trace attributes once and have every layer
// below log through them.
func WithContext(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, log)
}

// FromContext retrieves the logger from the context, falling back to the
// process default when none was attached.
func FromContext(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return log
	}
	return slog.Default()
}

// FromContextOrDefault retrieves the logger from the context, falling back
// to the provided component logger. Stores and services pass their
// component-scoped logger here so logs stay attributed when no request
// logger is present.
func FromContextOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if log, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return log
	}
	if fallback != nil {
		return fallback
	}
	return slog.Default()
}
