package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jashmevada/skill-swap-platform/internal/store"
)

// PostgreSQL error codes
const (
	// uniqueViolationCode is the PostgreSQL error code for unique constraint violations
	uniqueViolationCode = "23505"

	// foreignKeyViolationCode is the PostgreSQL error code for foreign key violations
	foreignKeyViolationCode = "23503"

	// checkViolationCode is the PostgreSQL error code for check constraint violations
	checkViolationCode = "23514"

	// notNullViolationCode is the PostgreSQL error code for not null violations
	notNullViolationCode = "23502"
)

// Constraint names referenced when mapping unique violations to specific
// store sentinels. They must match migrations/.
const (
	constraintUserEmail    = "users_email_key"
	constraintUserUsername = "users_username_key"
	constraintSkillName    = "uq_skills_name_lower"
	constraintPendingSwap  = "uq_swap_requests_pending_tuple"
)

// MapError maps a database error to an appropriate store error. It wraps the
// original error to preserve context. Every database operation in this
// package funnels its errors through here (or through mapUniqueViolation
// first for constraint-specific sentinels).
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return fmt.Errorf("%w: %v", mapUniqueConstraint(pgErr.ConstraintName), err)
		case foreignKeyViolationCode:
			return fmt.Errorf(
				"%w: foreign key violation (%s): %v",
				store.ErrInvalidEntity,
				pgErr.ConstraintName,
				err,
			)
		case checkViolationCode:
			return fmt.Errorf(
				"%w: check constraint violation (%s): %v",
				store.ErrInvalidEntity,
				pgErr.ConstraintName,
				err,
			)
		case notNullViolationCode:
			return fmt.Errorf(
				"%w: not null violation (%s): %v",
				store.ErrInvalidEntity,
				pgErr.ColumnName,
				err,
			)
		}
	}

	return err
}

// mapUniqueConstraint resolves a unique-violation constraint name to the
// matching store sentinel, falling back to the generic duplicate error.
func mapUniqueConstraint(constraint string) error {
	switch constraint {
	case constraintUserEmail:
		return store.ErrEmailExists
	case constraintUserUsername:
		return store.ErrUsernameExists
	case constraintSkillName:
		return store.ErrSkillNameExists
	case constraintPendingSwap:
		return store.ErrDuplicatePendingSwap
	default:
		return store.ErrDuplicate
	}
}

// IsUniqueViolation checks if the given error is a PostgreSQL unique
// constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// IsForeignKeyViolation checks if the given error is a PostgreSQL foreign
// key constraint violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}

// CheckRowsAffected examines the number of rows affected by a database
// operation. If no rows were affected it returns store.ErrNotFound, wrapped
// with the entity name when provided. Used on UPDATE and DELETE where zero
// affected rows means the target record does not exist.
func CheckRowsAffected(result sql.Result, entityName string) error {
	if result == nil {
		return fmt.Errorf("nil result provided to CheckRowsAffected")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		if entityName == "" {
			return store.ErrNotFound
		}
		return fmt.Errorf("%w: %s not found", store.ErrNotFound, entityName)
	}

	return nil
}
