package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jashmevada/skill-swap-platform/internal/api/shared"
)

// getUserIDFromContext extracts the authenticated user's UUID from the request
// context. The user ID is placed in the context by the authentication
// middleware.
func getUserIDFromContext(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

// getPathUUID extracts and parses a UUID from the named URL path parameter.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, fmt.Errorf("%s is required", paramName)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s has invalid format", paramName)
	}

	return id, nil
}

// requireUserAndPathUUID extracts both the authenticated user ID and a UUID
// path parameter, writing an error response and returning false if either is
// missing or malformed.
func requireUserAndPathUUID(
	w http.ResponseWriter,
	r *http.Request,
	paramName string,
) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return uuid.Nil, uuid.Nil, false
	}

	pathID, err := getPathUUID(r, paramName)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return uuid.Nil, uuid.Nil, false
	}

	return userID, pathID, true
}
