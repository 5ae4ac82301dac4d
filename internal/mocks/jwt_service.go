package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/jashmevada/skill-swap-platform/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing
type MockJWTService struct {
	GenerateTokenFn        func(ctx context.Context, userID uuid.UUID) (string, error)
	ValidateTokenFn        func(ctx context.Context, tokenString string) (*auth.Claims, error)
	GenerateRefreshTokenFn func(ctx context.Context, userID uuid.UUID) (string, error)
	ValidateRefreshTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)
}

var _ auth.JWTService = (*MockJWTService)(nil)

func (m *MockJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, userID)
	}
	return "mock-access-token", nil
}

func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return nil, auth.ErrInvalidToken
}

func (m *MockJWTService) GenerateRefreshToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.GenerateRefreshTokenFn != nil {
		return m.GenerateRefreshTokenFn(ctx, userID)
	}
	return "mock-refresh-token", nil
}

func (m *MockJWTService) ValidateRefreshToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateRefreshTokenFn != nil {
		return m.ValidateRefreshTokenFn(ctx, tokenString)
	}
	return nil, auth.ErrInvalidRefreshToken
}
