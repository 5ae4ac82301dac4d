package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/jashmevada/skill-swap-platform/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	Username string `json:"username"  validate:"required,min=3,max=50"`
	Password string `json:"password"  validate:"required,min=8,max=72"`
	FullName string `json:"full_name" validate:"omitempty,max=100"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// AccessToken is the JWT token used for API authorization
	AccessToken string `json:"access_token"`

	// RefreshToken is the JWT token used to obtain new access tokens
	RefreshToken string `json:"refresh_token,omitempty"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UserResponse is the public representation of a user profile. The email is
// included only on the owner's own profile.
type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email,omitempty"`
	Username     string    `json:"username"`
	FullName     string    `json:"full_name,omitempty"`
	Location     string    `json:"location,omitempty"`
	ProfilePhoto string    `json:"profile_photo,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	Availability string    `json:"availability,omitempty"`
	IsPublic     bool      `json:"is_public"`
	CreatedAt    time.Time `json:"created_at"`
}

// userToResponse converts a domain user into its public API shape.
// includeEmail should be true only when the viewer owns the profile.
func userToResponse(u *domain.User, includeEmail bool) UserResponse {
	resp := UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		FullName:     u.FullName,
		Location:     u.Location,
		ProfilePhoto: u.ProfilePhoto,
		Bio:          u.Bio,
		Availability: u.Availability,
		IsPublic:     u.IsPublic,
		CreatedAt:    u.CreatedAt,
	}
	if includeEmail {
		resp.Email = u.Email
	}
	return resp
}

// CreateSkillRequest defines the payload for adding a skill to the catalog.
type CreateSkillRequest struct {
	Name        string `json:"name"        validate:"required,min=1,max=100"`
	Category    string `json:"category"    validate:"omitempty,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

// UserSkillRequest defines the payload for adding a skill to one of the
// caller's skill sets.
type UserSkillRequest struct {
	SkillID uuid.UUID `json:"skill_id" validate:"required"`
}

// CreateSwapRequest defines the payload for creating a swap request.
type CreateSwapRequest struct {
	RequestedID    uuid.UUID `json:"requested_id"     validate:"required"`
	SkillOfferedID uuid.UUID `json:"skill_offered_id" validate:"required"`
	SkillWantedID  uuid.UUID `json:"skill_wanted_id"  validate:"required"`
	Message        string    `json:"message"          validate:"omitempty,max=1000"`
}

// UpdateSwapRequest defines the payload for a partial swap request update.
// Both fields are optional; an empty patch is a no-op.
type UpdateSwapRequest struct {
	Status  *string `json:"status"  validate:"omitempty,oneof=accepted rejected completed cancelled"`
	Message *string `json:"message" validate:"omitempty,max=1000"`
}

// SubmitFeedbackRequest defines the payload for submitting feedback on a swap.
type SubmitFeedbackRequest struct {
	SwapRequestID uuid.UUID `json:"swap_request_id" validate:"required"`
	ReceiverID    uuid.UUID `json:"receiver_id"     validate:"required"`
	Rating        int       `json:"rating"          validate:"required,gte=1,lte=5"`
	Comment       string    `json:"comment"         validate:"omitempty,max=1000"`
}

// CreateMessageRequest defines the payload for publishing an admin broadcast.
type CreateMessageRequest struct {
	Title    string `json:"title"     validate:"required,min=1,max=200"`
	Content  string `json:"content"   validate:"required,min=1"`
	IsActive *bool  `json:"is_active" validate:"omitempty"`
}
