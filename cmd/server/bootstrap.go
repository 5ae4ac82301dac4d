package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jashmevada/skill-swap-platform/internal/domain"
	"github.com/jashmevada/skill-swap-platform/internal/store"
)

// bootstrapAdmin provisions the administrator account named in the bootstrap
// configuration. The platform has no API for minting the first admin, so an
// operator supplies its credentials via config; an existing account with the
// configured username is left untouched. The lookup and insert run in one
// transaction so concurrent server starts cannot race each other into a
// half-provisioned state.
func (app *application) bootstrapAdmin(ctx context.Context) error {
	cfg := app.config.Bootstrap
	if cfg.AdminUsername == "" {
		return nil
	}
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return fmt.Errorf("bootstrap admin requires email and password alongside username %q", cfg.AdminUsername)
	}

	err := store.RunInTransaction(ctx, app.db, func(ctx context.Context, tx *sql.Tx) error {
		txUsers := app.userStore.WithTx(tx)

		existing, err := txUsers.GetByUsername(ctx, cfg.AdminUsername)
		switch {
		case err == nil:
			if !existing.IsAdmin {
				app.logger.Warn("bootstrap admin username exists as a non-admin account, leaving it untouched",
					slog.String("username", cfg.AdminUsername))
			}
			return nil
		case !errors.Is(err, store.ErrUserNotFound):
			return fmt.Errorf("looking up bootstrap admin: %w", err)
		}

		admin, err := domain.NewUser(cfg.AdminEmail, cfg.AdminUsername, cfg.AdminPassword)
		if err != nil {
			return fmt.Errorf("invalid bootstrap admin credentials: %w", err)
		}
		admin.IsAdmin = true
		admin.IsPublic = false

		hashed, err := app.passwordHasher.Hash(cfg.AdminPassword)
		if err != nil {
			return fmt.Errorf("hashing bootstrap admin password: %w", err)
		}
		admin.HashedPassword = hashed
		admin.Password = ""

		if err := txUsers.Create(ctx, admin); err != nil {
			return fmt.Errorf("creating bootstrap admin: %w", err)
		}

		app.logger.Info("bootstrap admin account created",
			slog.String("username", cfg.AdminUsername),
			slog.String("user_id", admin.ID.String()))
		return nil
	})
	// Another instance may win the insert race; its row is the canonical one.
	if err != nil && store.IsDuplicateError(err) {
		return nil
	}
	return err
}
