package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jashmevada/skill-swap-platform/internal/store"
)

func pgError(code, constraint string) *pgconn.PgError {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil_error", nil, nil},
		{"no_rows", sql.ErrNoRows, store.ErrNotFound},
		{"email_unique_violation", pgError(uniqueViolationCode, constraintUserEmail), store.ErrEmailExists},
		{"username_unique_violation", pgError(uniqueViolationCode, constraintUserUsername), store.ErrUsernameExists},
		{"skill_name_unique_violation", pgError(uniqueViolationCode, constraintSkillName), store.ErrSkillNameExists},
		{"pending_swap_unique_violation", pgError(uniqueViolationCode, constraintPendingSwap), store.ErrDuplicatePendingSwap},
		{"unknown_unique_violation", pgError(uniqueViolationCode, "some_other_constraint"), store.ErrDuplicate},
		{"foreign_key_violation", pgError(foreignKeyViolationCode, "fk_user_skills_user"), store.ErrInvalidEntity},
		{"check_violation", pgError(checkViolationCode, "chk_rating_range"), store.ErrInvalidEntity},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MapError(tc.err)
			if tc.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.want)
		})
	}

	t.Run("wrapped_no_rows", func(t *testing.T) {
		err := fmt.Errorf("scanning user: %w", sql.ErrNoRows)
		assert.ErrorIs(t, MapError(err), store.ErrNotFound)
	})

	t.Run("unrelated_error_passes_through", func(t *testing.T) {
		err := errors.New("connection reset")
		assert.Equal(t, err, MapError(err))
	})
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(pgError(uniqueViolationCode, "x")))
	assert.False(t, IsUniqueViolation(pgError(foreignKeyViolationCode, "x")))
	assert.False(t, IsUniqueViolation(errors.New("nope")))
}
