package domain

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for User
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrEmptyUsername       = errors.New("username cannot be empty")
	ErrUsernameTooLong     = errors.New("username must be at most 50 characters long")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// User represents a registered user of the platform. A user advertises two
// skill sets (offered and wanted) and participates in swap requests with
// other users. IsActive false means the user is banned and blocked from all
// new swap activity; IsPublic false hides the profile from other users.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Username       string    `json:"username"`
	Password       string    `json:"-"` // Plaintext, held only during registration
	HashedPassword string    `json:"-"` // Never expose the hash in JSON
	FullName       string    `json:"full_name,omitempty"`
	Location       string    `json:"location,omitempty"`
	ProfilePhoto   string    `json:"profile_photo,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	Availability   string    `json:"availability,omitempty"`
	IsPublic       bool      `json:"is_public"`
	IsActive       bool      `json:"is_active"`
	IsAdmin        bool      `json:"is_admin"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given email, username, and plaintext
// password. It generates a new UUID, marks the user active and public, and
// sets the creation/update timestamps.
//
// NOTE: the caller is responsible for hashing the password before storage.
func NewUser(email, username, password string) (*User, error) {
	user := &User{
		ID:        uuid.New(),
		Email:     email,
		Username:  username,
		Password:  password,
		IsPublic:  true,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}
	if !emailPattern.MatchString(u.Email) {
		return ErrInvalidEmail
	}

	if u.Username == "" {
		return ErrEmptyUsername
	}
	if len(u.Username) > 50 {
		return ErrUsernameTooLong
	}

	if u.Password != "" {
		if len(u.Password) < 8 {
			return ErrPasswordTooShort
		}
		if len(u.Password) > 72 {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		// Existing users loaded from storage carry only the hash.
		return ErrEmptyPassword
	}

	return nil
}

// UserPatch describes a partial profile update. Nil fields are left
// untouched; non-nil fields overwrite the stored value. Modeling presence
// explicitly keeps "field omitted" distinct from "field set to empty".
type UserPatch struct {
	FullName     *string `json:"full_name,omitempty"`
	Location     *string `json:"location,omitempty"`
	ProfilePhoto *string `json:"profile_photo,omitempty"`
	Bio          *string `json:"bio,omitempty"`
	Availability *string `json:"availability,omitempty"`
	IsPublic     *bool   `json:"is_public,omitempty"`
}

// Apply copies the patch's present fields onto the user and refreshes the
// update timestamp.
func (p UserPatch) Apply(u *User) {
	if p.FullName != nil {
		u.FullName = *p.FullName
	}
	if p.Location != nil {
		u.Location = *p.Location
	}
	if p.ProfilePhoto != nil {
		u.ProfilePhoto = *p.ProfilePhoto
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Availability != nil {
		u.Availability = *p.Availability
	}
	if p.IsPublic != nil {
		u.IsPublic = *p.IsPublic
	}
	u.UpdatedAt = time.Now().UTC()
}
