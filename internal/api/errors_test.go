package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jashmevada/skill-swap-platform/internal/domain"
	"github.com/jashmevada/skill-swap-platform/internal/service"
	"github.com/jashmevada/skill-swap-platform/internal/service/auth"
	"github.com/jashmevada/skill-swap-platform/internal/service/swap"
	"github.com/jashmevada/skill-swap-platform/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid_token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired_token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"invalid_refresh_token", auth.ErrInvalidRefreshToken, http.StatusUnauthorized},
		{"wrong_token_type", auth.ErrWrongTokenType, http.StatusUnauthorized},
		{"not_authorized", swap.ErrNotAuthorized, http.StatusForbidden},
		{"profile_private", service.ErrProfilePrivate, http.StatusForbidden},
		{"not_participant", service.ErrNotParticipant, http.StatusForbidden},
		{"user_not_found", store.ErrUserNotFound, http.StatusNotFound},
		{"skill_not_found", store.ErrSkillNotFound, http.StatusNotFound},
		{"swap_not_found", store.ErrSwapNotFound, http.StatusNotFound},
		{"message_not_found", store.ErrMessageNotFound, http.StatusNotFound},
		{"email_exists", store.ErrEmailExists, http.StatusConflict},
		{"username_exists", store.ErrUsernameExists, http.StatusConflict},
		{"duplicate_request", swap.ErrDuplicateRequest, http.StatusConflict},
		{"skill_pending_approval", service.ErrSkillPendingApproval, http.StatusConflict},
		{"self_swap", swap.ErrSelfSwap, http.StatusBadRequest},
		{"skill_not_offered", swap.ErrSkillNotOffered, http.StatusBadRequest},
		{"invalid_transition", swap.ErrInvalidTransition, http.StatusBadRequest},
		{"not_pending", swap.ErrNotPending, http.StatusBadRequest},
		{"cannot_ban_admin", service.ErrCannotBanAdmin, http.StatusBadRequest},
		{"rating_out_of_range", domain.ErrRatingOutOfRange, http.StatusBadRequest},
		{"giver_is_receiver", domain.ErrGiverIsReceiver, http.StatusBadRequest},
		{"unknown_error", errors.New("database on fire"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestMapErrorToStatusCode_WrappedErrors(t *testing.T) {
	// Services wrap sentinels with context; the mapping must see through the
	// wrapping.
	wrapped := fmt.Errorf("updating swap: %w", swap.ErrInvalidTransition)
	assert.Equal(t, http.StatusBadRequest, MapErrorToStatusCode(wrapped))

	svcErr := &swap.ServiceError{Operation: "create_swap", Message: "storing", Err: store.ErrDuplicatePendingSwap}
	assert.Equal(t, http.StatusConflict, MapErrorToStatusCode(svcErr))
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil_error", nil, "An unexpected error occurred"},
		{"invalid_token", auth.ErrInvalidToken, "Invalid token"},
		{"not_authorized", swap.ErrNotAuthorized, "You are not authorized to perform this action on the swap request"},
		{"profile_private", service.ErrProfilePrivate, "This profile is private"},
		{"user_not_found", store.ErrUserNotFound, "User not found"},
		{"duplicate_request", swap.ErrDuplicateRequest, "A pending request for this skill swap already exists"},
		{"self_swap", swap.ErrSelfSwap, "Cannot create a swap request with yourself"},
		{"unknown_error_is_not_leaked", errors.New("pq: connection refused at 10.0.0.3"), "An unexpected error occurred"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	t.Run("extracts_field_and_tag", func(t *testing.T) {
		err := errors.New("Key: 'LoginRequest.Username' Error:Field validation for 'Username' failed on the 'required' tag")
		assert.Equal(t, "Invalid Username: required field", SanitizeValidationError(err))
	})

	t.Run("falls_back_to_generic_message", func(t *testing.T) {
		assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("unexpected decode failure")))
	})
}
