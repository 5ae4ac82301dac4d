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

// PostgresSwapStore implements the store.SwapStore interface
// using a PostgreSQL database as the storage backend.
type PostgresSwapStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSwapStore creates a new PostgreSQL implementation of the
// SwapStore interface.
func NewPostgresSwapStore(db store.DBTX, logger *slog.Logger) *PostgresSwapStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSwapStore{
		db:     db,
		logger: logger.With(slog.String("component", "swap_store")),
	}
}

// Ensure PostgresSwapStore implements store.SwapStore interface
var _ store.SwapStore = (*PostgresSwapStore)(nil)

const swapColumns = `id, requester_id, requested_id, skill_offered_id,
	skill_wanted_id, message, status, created_at, updated_at`

// Create implements store.SwapStore.Create
//
// The uq_swap_requests_pending_tuple partial unique index is the arbiter for
// concurrent duplicate creations: of two racing inserts with the same tuple,
// exactly one commits and the other surfaces ErrDuplicatePendingSwap.
func (s *PostgresSwapStore) Create(ctx context.Context, req *domain.SwapRequest) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := req.Validate(); err != nil {
		log.Warn("swap request validation failed during create",
			slog.String("error", err.Error()),
			slog.String("swap_id", req.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO swap_requests (id, requester_id, requested_id,
			skill_offered_id, skill_wanted_id, message, status, created_at,
			updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		req.ID,
		req.RequesterID,
		req.RequestedID,
		req.SkillOfferedID,
		req.SkillWantedID,
		req.Message,
		req.Status,
		req.CreatedAt,
		req.UpdatedAt,
	)
	if err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrDuplicatePendingSwap) {
			log.Warn("duplicate pending swap request",
				slog.String("requester_id", req.RequesterID.String()),
				slog.String("requested_id", req.RequestedID.String()))
		} else {
			log.Error("failed to create swap request",
				slog.String("error", err.Error()),
				slog.String("swap_id", req.ID.String()))
		}
		return mapped
	}

	log.Info("swap request created",
		slog.String("swap_id", req.ID.String()),
		slog.String("requester_id", req.RequesterID.String()),
		slog.String("requested_id", req.RequestedID.String()))
	return nil
}

func scanSwap(row interface{ Scan(dest ...any) error }) (*domain.SwapRequest, error) {
	var req domain.SwapRequest
	var status string
	err := row.Scan(
		&req.ID,
		&req.RequesterID,
		&req.RequestedID,
		&req.SkillOfferedID,
		&req.SkillWantedID,
		&req.Message,
		&status,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	req.Status = domain.SwapStatus(status)
	return &req, nil
}

// GetByID implements store.SwapStore.GetByID
func (s *PostgresSwapStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.SwapRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM swap_requests WHERE id = $1`, swapColumns)

	req, err := scanSwap(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrSwapNotFound
		}
		return nil, MapError(err)
	}
	return req, nil
}

// Update implements store.SwapStore.Update
func (s *PostgresSwapStore) Update(ctx context.Context, req *domain.SwapRequest) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE swap_requests
		SET status = $2, message = $3, updated_at = $4
		WHERE id = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		req.ID,
		req.Status,
		req.Message,
		req.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to update swap request",
			slog.String("error", err.Error()),
			slog.String("swap_id", req.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "swap request"); err != nil {
		return store.ErrSwapNotFound
	}

	log.Info("swap request updated",
		slog.String("swap_id", req.ID.String()),
		slog.String("status", string(req.Status)))
	return nil
}

// Delete implements store.SwapStore.Delete
func (s *PostgresSwapStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM swap_requests WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete swap request",
			slog.String("error", err.Error()),
			slog.String("swap_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "swap request"); err != nil {
		return store.ErrSwapNotFound
	}

	log.Info("swap request deleted", slog.String("swap_id", id.String()))
	return nil
}

// ListForUser implements store.SwapStore.ListForUser
func (s *PostgresSwapStore) ListForUser(ctx context.Context, userID uuid.UUID, params store.ListSwapsParams) ([]domain.SwapRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM swap_requests`, swapColumns)
	args := []any{userID}

	switch params.Direction {
	case store.DirectionSent:
		query += ` WHERE requester_id = $1`
	case store.DirectionReceived:
		query += ` WHERE requested_id = $1`
	default:
		query += ` WHERE (requester_id = $1 OR requested_id = $1)`
	}

	if params.Status != nil {
		args = append(args, string(*params.Status))
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	query += ` ORDER BY created_at DESC`

	return s.querySwaps(ctx, query, args...)
}

// ListAll implements store.SwapStore.ListAll
func (s *PostgresSwapStore) ListAll(ctx context.Context, params store.ListAllSwapsParams) ([]domain.SwapRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM swap_requests`, swapColumns)
	args := []any{}

	if params.Status != nil {
		args = append(args, string(*params.Status))
		query += fmt.Sprintf(" WHERE status = $%d", len(args))
	}
	query += ` ORDER BY created_at DESC`
	if params.Limit > 0 {
		args = append(args, params.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if params.Offset > 0 {
		args = append(args, params.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	return s.querySwaps(ctx, query, args...)
}

func (s *PostgresSwapStore) querySwaps(ctx context.Context, query string, args ...any) ([]domain.SwapRequest, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	reqs := []domain.SwapRequest{}
	for rows.Next() {
		req, err := scanSwap(rows)
		if err != nil {
			return nil, MapError(err)
		}
		reqs = append(reqs, *req)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return reqs, nil
}

// WithTx implements store.SwapStore.WithTx
func (s *PostgresSwapStore) WithTx(tx *sql.Tx) store.SwapStore {
	return &PostgresSwapStore{db: tx, logger: s.logger}
}
