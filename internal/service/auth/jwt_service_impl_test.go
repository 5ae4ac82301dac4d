package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jashmevada/skill-swap-platform/internal/config"
)

const testSecret = "test-jwt-secret-that-is-long-enough!"

func newTestJWTService(t *testing.T) *hmacJWTService {
	t.Helper()
	svc, err := NewJWTService(config.AuthConfig{
		JWTSecret:                   testSecret,
		TokenLifetimeMinutes:        30,
		RefreshTokenLifetimeMinutes: 10080,
	})
	require.NoError(t, err)
	return svc.(*hmacJWTService)
}

func TestNewJWTService(t *testing.T) {
	t.Run("rejects_short_secret", func(t *testing.T) {
		_, err := NewJWTService(config.AuthConfig{JWTSecret: "too-short"})
		assert.Error(t, err)
	})

	t.Run("accepts_valid_config", func(t *testing.T) {
		svc, err := NewJWTService(config.AuthConfig{
			JWTSecret:                   testSecret,
			TokenLifetimeMinutes:        30,
			RefreshTokenLifetimeMinutes: 10080,
		})
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})
}

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newTestJWTService(t)
	userID := uuid.New()

	tokenString, err := svc.GenerateToken(ctx, userID)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := svc.ValidateToken(ctx, tokenString)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "access", claims.TokenType)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_RefreshTokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newTestJWTService(t)
	userID := uuid.New()

	tokenString, err := svc.GenerateRefreshToken(ctx, userID)
	require.NoError(t, err)

	claims, err := svc.ValidateRefreshToken(ctx, tokenString)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "refresh", claims.TokenType)
}

func TestJWTService_WrongTokenType(t *testing.T) {
	ctx := context.Background()
	svc := newTestJWTService(t)
	userID := uuid.New()

	accessToken, err := svc.GenerateToken(ctx, userID)
	require.NoError(t, err)
	refreshToken, err := svc.GenerateRefreshToken(ctx, userID)
	require.NoError(t, err)

	t.Run("refresh_token_rejected_as_access", func(t *testing.T) {
		_, err := svc.ValidateToken(ctx, refreshToken)
		assert.ErrorIs(t, err, ErrWrongTokenType)
	})

	t.Run("access_token_rejected_as_refresh", func(t *testing.T) {
		_, err := svc.ValidateRefreshToken(ctx, accessToken)
		assert.ErrorIs(t, err, ErrWrongTokenType)
	})
}

func TestJWTService_Expiry(t *testing.T) {
	ctx := context.Background()
	svc := newTestJWTService(t)
	userID := uuid.New()

	issued := time.Now()
	svc.timeFunc = func() time.Time { return issued }

	accessToken, err := svc.GenerateToken(ctx, userID)
	require.NoError(t, err)
	refreshToken, err := svc.GenerateRefreshToken(ctx, userID)
	require.NoError(t, err)

	t.Run("valid_within_lifetime", func(t *testing.T) {
		svc.timeFunc = func() time.Time { return issued.Add(29 * time.Minute) }
		_, err := svc.ValidateToken(ctx, accessToken)
		assert.NoError(t, err)
	})

	t.Run("clock_skew_tolerated", func(t *testing.T) {
		// One minute past expiry, inside the two minute leeway.
		svc.timeFunc = func() time.Time { return issued.Add(31 * time.Minute) }
		_, err := svc.ValidateToken(ctx, accessToken)
		assert.NoError(t, err)
	})

	t.Run("expired_access_token", func(t *testing.T) {
		svc.timeFunc = func() time.Time { return issued.Add(33 * time.Minute) }
		_, err := svc.ValidateToken(ctx, accessToken)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("expired_refresh_token", func(t *testing.T) {
		svc.timeFunc = func() time.Time { return issued.Add(8 * 24 * time.Hour) }
		_, err := svc.ValidateRefreshToken(ctx, refreshToken)
		assert.ErrorIs(t, err, ErrExpiredRefreshToken)
	})
}

func TestJWTService_InvalidTokens(t *testing.T) {
	ctx := context.Background()
	svc := newTestJWTService(t)

	t.Run("garbage_input", func(t *testing.T) {
		_, err := svc.ValidateToken(ctx, "not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong_signing_key", func(t *testing.T) {
		other, err := NewJWTService(config.AuthConfig{
			JWTSecret:                   "a-completely-different-secret-key-now",
			TokenLifetimeMinutes:        30,
			RefreshTokenLifetimeMinutes: 10080,
		})
		require.NoError(t, err)

		tokenString, err := other.GenerateToken(ctx, uuid.New())
		require.NoError(t, err)

		_, err = svc.ValidateToken(ctx, tokenString)
		assert.ErrorIs(t, err, ErrInvalidToken)

		_, err = svc.ValidateRefreshToken(ctx, tokenString)
		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})
}

func TestBcryptHasherAndVerifier(t *testing.T) {
	hasher := NewBcryptHasher(4) // minimum cost keeps the test fast
	verifier := NewBcryptVerifier()

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NoError(t, verifier.Compare(hash, "correct horse battery staple"))
	assert.Error(t, verifier.Compare(hash, "wrong password"))
}

func TestNewBcryptHasher_ClampsInvalidCost(t *testing.T) {
	hasher := NewBcryptHasher(99)
	hash, err := hasher.Hash("pw")
	require.NoError(t, err)
	assert.NoError(t, NewBcryptVerifier().Compare(hash, "pw"))
}
