package mocks

import (
	"github.com/jashmevada/skill-swap-platform/internal/service/auth"
)

// MockPasswordVerifier implements auth.PasswordVerifier for testing
type MockPasswordVerifier struct {
	CompareFn func(hashedPassword, password string) error
}

var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	return nil
}

// MockPasswordHasher implements auth.PasswordHasher for testing
type MockPasswordHasher struct {
	HashFn func(password string) (string, error)
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	return "hashed:" + password, nil
}
