package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jashmevada/skill-swap-platform/internal/domain"
	"github.com/jashmevada/skill-swap-platform/internal/platform/logger"
	"github.com/jashmevada/skill-swap-platform/internal/store"
)

// PostgresAdminMessageStore implements the store.AdminMessageStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAdminMessageStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAdminMessageStore creates a new PostgreSQL implementation of
// the AdminMessageStore interface.
func NewPostgresAdminMessageStore(db store.DBTX, logger *slog.Logger) *PostgresAdminMessageStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAdminMessageStore{
		db:     db,
		logger: logger.With(slog.String("component", "admin_message_store")),
	}
}

// Ensure PostgresAdminMessageStore implements store.AdminMessageStore interface
var _ store.AdminMessageStore = (*PostgresAdminMessageStore)(nil)

// Create implements store.AdminMessageStore.Create
func (s *PostgresAdminMessageStore) Create(ctx context.Context, msg *domain.AdminMessage) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := msg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO admin_messages (id, title, content, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(ctx, query, msg.ID, msg.Title, msg.Content, msg.IsActive, msg.CreatedAt)
	if err != nil {
		log.Error("failed to create admin message",
			slog.String("error", err.Error()),
			slog.String("message_id", msg.ID.String()))
		return MapError(err)
	}

	log.Info("admin message created", slog.String("message_id", msg.ID.String()))
	return nil
}

// List implements store.AdminMessageStore.List
func (s *PostgresAdminMessageStore) List(ctx context.Context, isActive *bool) ([]domain.AdminMessage, error) {
	query := `SELECT id, title, content, is_active, created_at FROM admin_messages`
	args := []any{}

	if isActive != nil {
		args = append(args, *isActive)
		query += ` WHERE is_active = $1`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	msgs := []domain.AdminMessage{}
	for rows.Next() {
		var m domain.AdminMessage
		if err := rows.Scan(&m.ID, &m.Title, &m.Content, &m.IsActive, &m.CreatedAt); err != nil {
			return nil, MapError(err)
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return msgs, nil
}

// Toggle implements store.AdminMessageStore.Toggle
func (s *PostgresAdminMessageStore) Toggle(ctx context.Context, id uuid.UUID) (*domain.AdminMessage, error) {
	query := `
		UPDATE admin_messages SET is_active = NOT is_active
		WHERE id = $1
		RETURNING id, title, content, is_active, created_at
	`

	var m domain.AdminMessage
	err := s.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Title, &m.Content, &m.IsActive, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrMessageNotFound
		}
		return nil, MapError(err)
	}
	return &m, nil
}
