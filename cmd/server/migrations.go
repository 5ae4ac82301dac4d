package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/jashmevada/skill-swap-platform/internal/platform/postgres"
)

// migrationTableName is the table goose uses to track applied migrations.
const migrationTableName = "schema_migrations"

// slogGooseLogger adapts goose's logger interface to slog.
type slogGooseLogger struct{}

func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	slog.Error(fmt.Sprintf(format, v...), "source", "goose")
}

func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	slog.Info(fmt.Sprintf(format, v...), "source", "goose")
}

// runMigrations applies all pending database migrations from the embedded
// migrations directory.
func runMigrations(db *sql.DB, logger *slog.Logger) error {
	goose.SetLogger(&slogGooseLogger{})
	goose.SetBaseFS(postgres.MigrationsFS)
	goose.SetTableName(migrationTableName)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logger.Info("Database migrations applied")
	return nil
}
