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

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

const userColumns = `id, email, username, hashed_password, full_name, location,
	profile_photo, bio, availability, is_public, is_active, is_admin,
	created_at, updated_at`

// Create implements store.UserStore.Create
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO users (id, email, username, hashed_password, full_name,
			location, profile_photo, bio, availability, is_public, is_active,
			is_admin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.Email,
		user.Username,
		user.HashedPassword,
		user.FullName,
		user.Location,
		user.ProfilePhoto,
		user.Bio,
		user.Availability,
		user.IsPublic,
		user.IsActive,
		user.IsAdmin,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		mapped := MapError(err)
		if store.IsDuplicateError(mapped) {
			log.Warn("duplicate user during create",
				slog.String("error", err.Error()),
				slog.String("username", user.Username))
		} else {
			log.Error("failed to create user",
				slog.String("error", err.Error()),
				slog.String("user_id", user.ID.String()))
		}
		return mapped
	}

	log.Info("user created",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username))
	return nil
}

func scanUser(row interface{ Scan(dest ...any) error }) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.HashedPassword,
		&user.FullName,
		&user.Location,
		&user.ProfilePhoto,
		&user.Bio,
		&user.Availability,
		&user.IsPublic,
		&user.IsActive,
		&user.IsAdmin,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID implements store.UserStore.GetByID
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	user, err := scanUser(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrUserNotFound
		}
		return nil, MapError(err)
	}
	return user, nil
}

// GetByUsername implements store.UserStore.GetByUsername
func (s *PostgresUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE username = $1`, userColumns)

	user, err := scanUser(s.db.QueryRowContext(ctx, query, username))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrUserNotFound
		}
		return nil, MapError(err)
	}
	return user, nil
}

// Update implements store.UserStore.Update
func (s *PostgresUserStore) Update(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE users
		SET full_name = $2, location = $3, profile_photo = $4, bio = $5,
			availability = $6, is_public = $7, updated_at = $8
		WHERE id = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.FullName,
		user.Location,
		user.ProfilePhoto,
		user.Bio,
		user.Availability,
		user.IsPublic,
		user.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "user"); err != nil {
		return store.ErrUserNotFound
	}
	return nil
}

// SetActive implements store.UserStore.SetActive
func (s *PostgresUserStore) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(
		ctx,
		`UPDATE users SET is_active = $2, updated_at = now() WHERE id = $1`,
		id,
		active,
	)
	if err != nil {
		log.Error("failed to set user active flag",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "user"); err != nil {
		return store.ErrUserNotFound
	}

	log.Info("user active flag updated",
		slog.String("user_id", id.String()),
		slog.Bool("active", active))
	return nil
}

// Search implements store.UserStore.Search
func (s *PostgresUserStore) Search(ctx context.Context, params store.SearchUsersParams) ([]domain.User, error) {
	query := `
		SELECT DISTINCT u.id, u.email, u.username, u.hashed_password,
			u.full_name, u.location, u.profile_photo, u.bio, u.availability,
			u.is_public, u.is_active, u.is_admin, u.created_at, u.updated_at
		FROM users u`

	args := []any{params.ViewerID}
	where := ` WHERE u.is_public = TRUE AND u.is_active = TRUE AND u.id <> $1`

	if params.SkillName != "" || params.Category != "" {
		query += `
		JOIN user_skills_offered uso ON uso.user_id = u.id
		JOIN skills sk ON sk.id = uso.skill_id`
		if params.SkillName != "" {
			args = append(args, "%"+params.SkillName+"%")
			where += fmt.Sprintf(" AND sk.name ILIKE $%d", len(args))
		}
		if params.Category != "" {
			args = append(args, "%"+params.Category+"%")
			where += fmt.Sprintf(" AND sk.category ILIKE $%d", len(args))
		}
	}
	if params.Location != "" {
		args = append(args, "%"+params.Location+"%")
		where += fmt.Sprintf(" AND u.location ILIKE $%d", len(args))
	}

	query += where + ` ORDER BY u.username`
	if params.Limit > 0 {
		args = append(args, params.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if params.Offset > 0 {
		args = append(args, params.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	return s.queryUsers(ctx, query, args...)
}

// List implements store.UserStore.List
func (s *PostgresUserStore) List(ctx context.Context, params store.ListUsersParams) ([]domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users`, userColumns)
	args := []any{}

	if params.IsActive != nil {
		args = append(args, *params.IsActive)
		query += fmt.Sprintf(" WHERE is_active = $%d", len(args))
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

	return s.queryUsers(ctx, query, args...)
}

func (s *PostgresUserStore) queryUsers(ctx context.Context, query string, args ...any) ([]domain.User, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	users := []domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, MapError(err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return users, nil
}

// ListOfferedSkills implements store.UserStore.ListOfferedSkills
func (s *PostgresUserStore) ListOfferedSkills(ctx context.Context, userID uuid.UUID) ([]domain.Skill, error) {
	return s.listUserSkills(ctx, "user_skills_offered", userID)
}

// ListWantedSkills implements store.UserStore.ListWantedSkills
func (s *PostgresUserStore) ListWantedSkills(ctx context.Context, userID uuid.UUID) ([]domain.Skill, error) {
	return s.listUserSkills(ctx, "user_skills_wanted", userID)
}

func (s *PostgresUserStore) listUserSkills(ctx context.Context, table string, userID uuid.UUID) ([]domain.Skill, error) {
	query := fmt.Sprintf(`
		SELECT sk.id, sk.name, sk.category, sk.description, sk.is_approved, sk.created_at
		FROM %s us
		JOIN skills sk ON sk.id = us.skill_id
		WHERE us.user_id = $1
		ORDER BY sk.name
	`, table)

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	skills := []domain.Skill{}
	for rows.Next() {
		var sk domain.Skill
		if err := rows.Scan(&sk.ID, &sk.Name, &sk.Category, &sk.Description, &sk.IsApproved, &sk.CreatedAt); err != nil {
			return nil, MapError(err)
		}
		skills = append(skills, sk)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return skills, nil
}

// AddOfferedSkill implements store.UserStore.AddOfferedSkill
func (s *PostgresUserStore) AddOfferedSkill(ctx context.Context, userID, skillID uuid.UUID) error {
	return s.addUserSkill(ctx, "user_skills_offered", userID, skillID)
}

// RemoveOfferedSkill implements store.UserStore.RemoveOfferedSkill
func (s *PostgresUserStore) RemoveOfferedSkill(ctx context.Context, userID, skillID uuid.UUID) error {
	return s.removeUserSkill(ctx, "user_skills_offered", userID, skillID)
}

// AddWantedSkill implements store.UserStore.AddWantedSkill
func (s *PostgresUserStore) AddWantedSkill(ctx context.Context, userID, skillID uuid.UUID) error {
	return s.addUserSkill(ctx, "user_skills_wanted", userID, skillID)
}

// RemoveWantedSkill implements store.UserStore.RemoveWantedSkill
func (s *PostgresUserStore) RemoveWantedSkill(ctx context.Context, userID, skillID uuid.UUID) error {
	return s.removeUserSkill(ctx, "user_skills_wanted", userID, skillID)
}

// addUserSkill inserts a membership row. ON CONFLICT DO NOTHING makes the
// add idempotent: re-adding an existing skill is a no-op success.
func (s *PostgresUserStore) addUserSkill(ctx context.Context, table string, userID, skillID uuid.UUID) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, skill_id) VALUES ($1, $2)
		ON CONFLICT (user_id, skill_id) DO NOTHING
	`, table)

	if _, err := s.db.ExecContext(ctx, query, userID, skillID); err != nil {
		return MapError(err)
	}
	return nil
}

// removeUserSkill deletes a membership row. Removing an absent skill is a
// no-op success, so affected rows are deliberately not checked.
func (s *PostgresUserStore) removeUserSkill(ctx context.Context, table string, userID, skillID uuid.UUID) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1 AND skill_id = $2`, table)

	if _, err := s.db.ExecContext(ctx, query, userID, skillID); err != nil {
		return MapError(err)
	}
	return nil
}

// OffersSkill implements store.UserStore.OffersSkill
func (s *PostgresUserStore) OffersSkill(ctx context.Context, userID, skillID uuid.UUID) (bool, error) {
	return s.hasUserSkill(ctx, "user_skills_offered", userID, skillID)
}

// WantsSkill implements store.UserStore.WantsSkill
func (s *PostgresUserStore) WantsSkill(ctx context.Context, userID, skillID uuid.UUID) (bool, error) {
	return s.hasUserSkill(ctx, "user_skills_wanted", userID, skillID)
}

func (s *PostgresUserStore) hasUserSkill(ctx context.Context, table string, userID, skillID uuid.UUID) (bool, error) {
	query := fmt.Sprintf(`
		SELECT EXISTS (SELECT 1 FROM %s WHERE user_id = $1 AND skill_id = $2)
	`, table)

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, userID, skillID).Scan(&exists); err != nil {
		return false, MapError(err)
	}
	return exists, nil
}

// WithTx implements store.UserStore.WithTx
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{db: tx, logger: s.logger}
}
