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

// PostgresSkillStore implements the store.SkillStore interface
// using a PostgreSQL database as the storage backend.
type PostgresSkillStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSkillStore creates a new PostgreSQL implementation of the
// SkillStore interface.
func NewPostgresSkillStore(db store.DBTX, logger *slog.Logger) *PostgresSkillStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSkillStore{
		db:     db,
		logger: logger.With(slog.String("component", "skill_store")),
	}
}

// Ensure PostgresSkillStore implements store.SkillStore interface
var _ store.SkillStore = (*PostgresSkillStore)(nil)

const skillColumns = `id, name, category, description, is_approved, created_at`

// Create implements store.SkillStore.Create
func (s *PostgresSkillStore) Create(ctx context.Context, skill *domain.Skill) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := skill.Validate(); err != nil {
		log.Warn("skill validation failed during create",
			slog.String("error", err.Error()),
			slog.String("skill_id", skill.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO skills (id, name, category, description, is_approved, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		skill.ID,
		skill.Name,
		skill.Category,
		skill.Description,
		skill.IsApproved,
		skill.CreatedAt,
	)
	if err != nil {
		mapped := MapError(err)
		if !store.IsDuplicateError(mapped) {
			log.Error("failed to create skill",
				slog.String("error", err.Error()),
				slog.String("skill_id", skill.ID.String()))
		}
		return mapped
	}

	log.Info("skill created",
		slog.String("skill_id", skill.ID.String()),
		slog.String("name", skill.Name))
	return nil
}

func scanSkill(row interface{ Scan(dest ...any) error }) (*domain.Skill, error) {
	var sk domain.Skill
	err := row.Scan(
		&sk.ID,
		&sk.Name,
		&sk.Category,
		&sk.Description,
		&sk.IsApproved,
		&sk.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &sk, nil
}

// GetByID implements store.SkillStore.GetByID
func (s *PostgresSkillStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Skill, error) {
	query := fmt.Sprintf(`SELECT %s FROM skills WHERE id = $1`, skillColumns)

	skill, err := scanSkill(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrSkillNotFound
		}
		return nil, MapError(err)
	}
	return skill, nil
}

// FindByName implements store.SkillStore.FindByName
func (s *PostgresSkillStore) FindByName(ctx context.Context, name string) (*domain.Skill, error) {
	query := fmt.Sprintf(`SELECT %s FROM skills WHERE lower(name) = lower($1)`, skillColumns)

	skill, err := scanSkill(s.db.QueryRowContext(ctx, query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrSkillNotFound
		}
		return nil, MapError(err)
	}
	return skill, nil
}

// List implements store.SkillStore.List
func (s *PostgresSkillStore) List(ctx context.Context, params store.ListSkillsParams) ([]domain.Skill, error) {
	query := fmt.Sprintf(`SELECT %s FROM skills`, skillColumns)
	args := []any{}
	where := ""

	and := func(cond string) {
		if where == "" {
			where = " WHERE " + cond
		} else {
			where += " AND " + cond
		}
	}

	if params.ApprovedOnly {
		and("is_approved = TRUE")
	}
	if params.Category != "" {
		args = append(args, "%"+params.Category+"%")
		and(fmt.Sprintf("category ILIKE $%d", len(args)))
	}
	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		and(fmt.Sprintf("name ILIKE $%d", len(args)))
	}

	query += where + ` ORDER BY name`
	if params.Limit > 0 {
		args = append(args, params.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if params.Offset > 0 {
		args = append(args, params.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	return s.querySkills(ctx, query, args...)
}

// ListCategories implements store.SkillStore.ListCategories
func (s *PostgresSkillStore) ListCategories(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT category FROM skills
		WHERE category <> '' AND is_approved = TRUE
		ORDER BY category
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, MapError(err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return categories, nil
}

// ListPending implements store.SkillStore.ListPending
func (s *PostgresSkillStore) ListPending(ctx context.Context) ([]domain.Skill, error) {
	query := fmt.Sprintf(`SELECT %s FROM skills WHERE is_approved = FALSE ORDER BY created_at`, skillColumns)
	return s.querySkills(ctx, query)
}

func (s *PostgresSkillStore) querySkills(ctx context.Context, query string, args ...any) ([]domain.Skill, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	skills := []domain.Skill{}
	for rows.Next() {
		sk, err := scanSkill(rows)
		if err != nil {
			return nil, MapError(err)
		}
		skills = append(skills, *sk)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return skills, nil
}

// SetApproved implements store.SkillStore.SetApproved
func (s *PostgresSkillStore) SetApproved(ctx context.Context, id uuid.UUID, approved bool) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(
		ctx,
		`UPDATE skills SET is_approved = $2 WHERE id = $1`,
		id,
		approved,
	)
	if err != nil {
		log.Error("failed to set skill approval",
			slog.String("error", err.Error()),
			slog.String("skill_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "skill"); err != nil {
		return store.ErrSkillNotFound
	}

	log.Info("skill approval updated",
		slog.String("skill_id", id.String()),
		slog.Bool("approved", approved))
	return nil
}

// Delete implements store.SkillStore.Delete
func (s *PostgresSkillStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete skill",
			slog.String("error", err.Error()),
			slog.String("skill_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "skill"); err != nil {
		return store.ErrSkillNotFound
	}

	log.Info("skill deleted", slog.String("skill_id", id.String()))
	return nil
}

// WithTx implements store.SkillStore.WithTx
func (s *PostgresSkillStore) WithTx(tx *sql.Tx) store.SkillStore {
	return &PostgresSkillStore{db: tx, logger: s.logger}
}
