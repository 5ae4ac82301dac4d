package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jashmevada/skill-swap-platform/internal/config"
	"github.com/jashmevada/skill-swap-platform/internal/platform/postgres"
	"github.com/jashmevada/skill-swap-platform/internal/service"
	"github.com/jashmevada/skill-swap-platform/internal/service/auth"
	"github.com/jashmevada/skill-swap-platform/internal/service/swap"
	"github.com/jashmevada/skill-swap-platform/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore    store.UserStore
	skillStore   store.SkillStore
	swapStore    store.SwapStore
	feedbackStore store.FeedbackStore
	statsStore   store.StatsStore
	messageStore store.AdminMessageStore

	// Service interfaces
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	userService      service.UserService
	skillService     service.SkillService
	swapService      swap.SwapService
	feedbackService  service.FeedbackService
	adminService     service.AdminService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordHasher = auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	app.passwordVerifier = auth.NewBcryptVerifier()

	// Stores
	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.skillStore = postgres.NewPostgresSkillStore(db, logger)
	app.swapStore = postgres.NewPostgresSwapStore(db, logger)
	app.feedbackStore = postgres.NewPostgresFeedbackStore(db, logger)
	app.statsStore = postgres.NewPostgresStatsStore(db, logger)
	app.messageStore = postgres.NewPostgresAdminMessageStore(db, logger)

	// Services
	app.userService = service.NewUserService(app.userStore, app.skillStore, logger)
	app.skillService = service.NewSkillService(app.skillStore, logger)
	app.swapService = swap.NewSwapService(
		app.swapStore,
		app.userStore,
		app.skillStore,
		cfg.Swap.PermissiveTransitions,
		logger,
	)
	app.feedbackService = service.NewFeedbackService(app.feedbackStore, app.swapStore, logger)
	app.adminService = service.NewAdminService(
		app.userStore,
		app.skillStore,
		app.swapStore,
		app.statsStore,
		app.messageStore,
		logger,
	)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
