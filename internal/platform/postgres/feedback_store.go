package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jashmevada/skill-swap-platform/internal/domain"
	"github.com/jashmevada/skill-swap-platform/internal/platform/logger"
	"github.com/jashmevada/skill-swap-platform/internal/store"
)

// PostgresFeedbackStore implements the store.FeedbackStore interface
// using a PostgreSQL database as the storage backend.
type PostgresFeedbackStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresFeedbackStore creates a new PostgreSQL implementation of the
// FeedbackStore interface.
func NewPostgresFeedbackStore(db store.DBTX, logger *slog.Logger) *PostgresFeedbackStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresFeedbackStore{
		db:     db,
		logger: logger.With(slog.String("component", "feedback_store")),
	}
}

// Ensure PostgresFeedbackStore implements store.FeedbackStore interface
var _ store.FeedbackStore = (*PostgresFeedbackStore)(nil)

const feedbackColumns = `id, swap_request_id, giver_id, receiver_id, rating, comment, created_at`

// Create implements store.FeedbackStore.Create
func (s *PostgresFeedbackStore) Create(ctx context.Context, fb *domain.Feedback) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := fb.Validate(); err != nil {
		log.Warn("feedback validation failed during create",
			slog.String("error", err.Error()),
			slog.String("feedback_id", fb.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO feedback (id, swap_request_id, giver_id, receiver_id,
			rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		fb.ID,
		fb.SwapRequestID,
		fb.GiverID,
		fb.ReceiverID,
		fb.Rating,
		fb.Comment,
		fb.CreatedAt,
	)
	if err != nil {
		log.Error("failed to create feedback",
			slog.String("error", err.Error()),
			slog.String("feedback_id", fb.ID.String()))
		return MapError(err)
	}

	log.Info("feedback created",
		slog.String("feedback_id", fb.ID.String()),
		slog.String("swap_id", fb.SwapRequestID.String()),
		slog.Int("rating", fb.Rating))
	return nil
}

// ListForReceiver implements store.FeedbackStore.ListForReceiver
func (s *PostgresFeedbackStore) ListForReceiver(ctx context.Context, userID uuid.UUID) ([]domain.Feedback, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM feedback WHERE receiver_id = $1 ORDER BY created_at DESC
	`, feedbackColumns)
	return s.queryFeedback(ctx, query, userID)
}

// ListForSwap implements store.FeedbackStore.ListForSwap
func (s *PostgresFeedbackStore) ListForSwap(ctx context.Context, swapID uuid.UUID) ([]domain.Feedback, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM feedback WHERE swap_request_id = $1 ORDER BY created_at DESC
	`, feedbackColumns)
	return s.queryFeedback(ctx, query, swapID)
}

func (s *PostgresFeedbackStore) queryFeedback(ctx context.Context, query string, args ...any) ([]domain.Feedback, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	items := []domain.Feedback{}
	for rows.Next() {
		var fb domain.Feedback
		err := rows.Scan(
			&fb.ID,
			&fb.SwapRequestID,
			&fb.GiverID,
			&fb.ReceiverID,
			&fb.Rating,
			&fb.Comment,
			&fb.CreatedAt,
		)
		if err != nil {
			return nil, MapError(err)
		}
		items = append(items, fb)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return items, nil
}

// WithTx implements store.FeedbackStore.WithTx
func (s *PostgresFeedbackStore) WithTx(tx *sql.Tx) store.FeedbackStore {
	return &PostgresFeedbackStore{db: tx, logger: s.logger}
}
