package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jashmevada/skill-swap-platform/internal/domain"
	"github.com/jashmevada/skill-swap-platform/internal/service"
	"github.com/jashmevada/skill-swap-platform/internal/service/auth"
	"github.com/jashmevada/skill-swap-platform/internal/service/swap"
	"github.com/jashmevada/skill-swap-platform/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, swap.ErrNotAuthorized),
		errors.Is(err, service.ErrProfilePrivate),
		errors.Is(err, service.ErrNotParticipant):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrSkillNotFound),
		errors.Is(err, store.ErrSwapNotFound),
		errors.Is(err, store.ErrFeedbackNotFound),
		errors.Is(err, store.ErrMessageNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists),
		errors.Is(err, store.ErrUsernameExists),
		errors.Is(err, store.ErrDuplicatePendingSwap),
		errors.Is(err, swap.ErrDuplicateRequest),
		errors.Is(err, service.ErrSkillPendingApproval):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, swap.ErrSelfSwap),
		errors.Is(err, swap.ErrSkillNotOffered),
		errors.Is(err, swap.ErrSkillNotOfferedByRequested),
		errors.Is(err, swap.ErrInvalidTransition),
		errors.Is(err, swap.ErrNotPending),
		errors.Is(err, service.ErrCannotBanAdmin),
		errors.Is(err, domain.ErrRatingOutOfRange),
		errors.Is(err, domain.ErrGiverIsReceiver),
		errors.Is(err, domain.ErrSameParties):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return "Invalid token"

	case errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid refresh token"

	// Authorization errors
	case errors.Is(err, swap.ErrNotAuthorized):
		return "You are not authorized to perform this action on the swap request"

	case errors.Is(err, service.ErrProfilePrivate):
		return "This profile is private"

	case errors.Is(err, service.ErrNotParticipant):
		return "You are not a participant in this swap request"

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrSkillNotFound):
		return "Skill not found"

	case errors.Is(err, store.ErrSwapNotFound):
		return "Swap request not found"

	case errors.Is(err, store.ErrFeedbackNotFound):
		return "Feedback not found"

	case errors.Is(err, store.ErrMessageNotFound):
		return "Message not found"

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, store.ErrUsernameExists):
		return "Username already exists"

	case errors.Is(err, swap.ErrDuplicateRequest),
		errors.Is(err, store.ErrDuplicatePendingSwap):
		return "A pending request for this skill swap already exists"

	case errors.Is(err, service.ErrSkillPendingApproval):
		return "A skill with this name exists but is pending approval"

	// Bad request errors
	case errors.Is(err, swap.ErrSelfSwap):
		return "Cannot create a swap request with yourself"

	case errors.Is(err, swap.ErrSkillNotOffered):
		return "You do not offer the skill you are proposing to teach"

	case errors.Is(err, swap.ErrSkillNotOfferedByRequested):
		return "The requested user does not offer the skill you want to learn"

	case errors.Is(err, swap.ErrInvalidTransition):
		return "The swap request's current status does not permit this change"

	case errors.Is(err, swap.ErrNotPending):
		return "Only pending swap requests can be deleted"

	case errors.Is(err, service.ErrCannotBanAdmin):
		return "Admin users cannot be banned"

	case errors.Is(err, domain.ErrRatingOutOfRange):
		return "Rating must be between 1 and 5"

	case errors.Is(err, domain.ErrGiverIsReceiver):
		return "You cannot leave feedback for yourself"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	// Default case for unknown errors
	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// Example format: "Key: 'LoginRequest.Username' Error:Field validation
		// for 'Username' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
