// Package logger provides structured logging for the application: slog setup
// from configuration and helpers for carrying a request-scoped logger through
// context.Context.
package logger
