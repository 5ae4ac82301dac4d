package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("valid_user", func(t *testing.T) {
		user, err := NewUser("alice@example.com", "alice", "password123")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "alice", user.Username)
		assert.True(t, user.IsActive)
		assert.True(t, user.IsPublic)
		assert.False(t, user.IsAdmin)
	})

	t.Run("invalid_email", func(t *testing.T) {
		_, err := NewUser("not-an-email", "alice", "password123")
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("empty_username", func(t *testing.T) {
		_, err := NewUser("alice@example.com", "", "password123")
		assert.ErrorIs(t, err, ErrEmptyUsername)
	})

	t.Run("short_password", func(t *testing.T) {
		_, err := NewUser("alice@example.com", "alice", "short")
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})
}

func TestUserValidate_StoredUser(t *testing.T) {
	// Users loaded from storage carry only the hash; that must validate.
	user, err := NewUser("alice@example.com", "alice", "password123")
	require.NoError(t, err)
	user.Password = ""
	user.HashedPassword = "some-bcrypt-hash"
	assert.NoError(t, user.Validate())

	user.HashedPassword = ""
	assert.ErrorIs(t, user.Validate(), ErrEmptyPassword)
}

func TestUserPatch_Apply(t *testing.T) {
	user, err := NewUser("alice@example.com", "alice", "password123")
	require.NoError(t, err)
	user.FullName = "Alice Smith"
	user.Location = "Berlin"
	before := user.UpdatedAt

	location := "Paris"
	isPublic := false
	UserPatch{Location: &location, IsPublic: &isPublic}.Apply(user)

	assert.Equal(t, "Paris", user.Location)
	assert.False(t, user.IsPublic)
	// Omitted fields stay put.
	assert.Equal(t, "Alice Smith", user.FullName)
	assert.False(t, user.UpdatedAt.Before(before))

	empty := ""
	UserPatch{FullName: &empty}.Apply(user)
	// Present-but-empty clears the field, unlike omitted.
	assert.Empty(t, user.FullName)
}
