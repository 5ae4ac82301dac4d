// Package main implements the entry point for the skill swap platform
// server, which matches users offering and wanting skills and manages the
// swap request lifecycle between them.
package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/jashmevada/skill-swap-platform/internal/config"
	"github.com/jashmevada/skill-swap-platform/internal/platform/logger"
)

func main() {
	// Load .env if present; real environment variables win.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.Setup(cfg.Server.LogLevel)
	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"permissive_transitions", cfg.Swap.PermissiveTransitions)

	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := runMigrations(db, appLogger); err != nil {
		appLogger.Error("Failed to run database migrations", "error", err)
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	ctx := context.Background()
	app, err := newApplication(ctx, cfg, appLogger, db)
	if err != nil {
		appLogger.Error("Failed to initialize application", "error", err)
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.bootstrapAdmin(ctx); err != nil {
		appLogger.Error("Failed to bootstrap admin account", "error", err)
		log.Fatalf("Failed to bootstrap admin account: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		slog.Error("Server exited with error", "error", err)
		log.Fatalf("Server exited with error: %v", err)
	}
}
