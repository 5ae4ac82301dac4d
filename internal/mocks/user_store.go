package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jashmevada/skill-swap-platform/internal/domain"
	"github.com/jashmevada/skill-swap-platform/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	CreateFn             func(ctx context.Context, user *domain.User) error
	GetByIDFn            func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsernameFn      func(ctx context.Context, username string) (*domain.User, error)
	UpdateFn             func(ctx context.Context, user *domain.User) error
	SetActiveFn          func(ctx context.Context, id uuid.UUID, active bool) error
	SearchFn             func(ctx context.Context, params store.SearchUsersParams) ([]domain.User, error)
	ListFn               func(ctx context.Context, params store.ListUsersParams) ([]domain.User, error)
	ListOfferedSkillsFn  func(ctx context.Context, userID uuid.UUID) ([]domain.Skill, error)
	ListWantedSkillsFn   func(ctx context.Context, userID uuid.UUID) ([]domain.Skill, error)
	AddOfferedSkillFn    func(ctx context.Context, userID, skillID uuid.UUID) error
	RemoveOfferedSkillFn func(ctx context.Context, userID, skillID uuid.UUID) error
	AddWantedSkillFn     func(ctx context.Context, userID, skillID uuid.UUID) error
	RemoveWantedSkillFn  func(ctx context.Context, userID, skillID uuid.UUID) error
	OffersSkillFn        func(ctx context.Context, userID, skillID uuid.UUID) (bool, error)
	WantsSkillFn         func(ctx context.Context, userID, skillID uuid.UUID) (bool, error)
}

var _ store.UserStore = (*MockUserStore)(nil)

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return nil
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrUserNotFound
}

func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}
	return nil, store.ErrUserNotFound
}

func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}
	return nil
}

func (m *MockUserStore) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	if m.SetActiveFn != nil {
		return m.SetActiveFn(ctx, id, active)
	}
	return nil
}

func (m *MockUserStore) Search(ctx context.Context, params store.SearchUsersParams) ([]domain.User, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, params)
	}
	return nil, nil
}

func (m *MockUserStore) List(ctx context.Context, params store.ListUsersParams) ([]domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, params)
	}
	return nil, nil
}

func (m *MockUserStore) ListOfferedSkills(ctx context.Context, userID uuid.UUID) ([]domain.Skill, error) {
	if m.ListOfferedSkillsFn != nil {
		return m.ListOfferedSkillsFn(ctx, userID)
	}
	return nil, nil
}

func (m *MockUserStore) ListWantedSkills(ctx context.Context, userID uuid.UUID) ([]domain.Skill, error) {
	if m.ListWantedSkillsFn != nil {
		return m.ListWantedSkillsFn(ctx, userID)
	}
	return nil, nil
}

func (m *MockUserStore) AddOfferedSkill(ctx context.Context, userID, skillID uuid.UUID) error {
	if m.AddOfferedSkillFn != nil {
		return m.AddOfferedSkillFn(ctx, userID, skillID)
	}
	return nil
}

func (m *MockUserStore) RemoveOfferedSkill(ctx context.Context, userID, skillID uuid.UUID) error {
	if m.RemoveOfferedSkillFn != nil {
		return m.RemoveOfferedSkillFn(ctx, userID, skillID)
	}
	return nil
}

func (m *MockUserStore) AddWantedSkill(ctx context.Context, userID, skillID uuid.UUID) error {
	if m.AddWantedSkillFn != nil {
		return m.AddWantedSkillFn(ctx, userID, skillID)
	}
	return nil
}

func (m *MockUserStore) RemoveWantedSkill(ctx context.Context, userID, skillID uuid.UUID) error {
	if m.RemoveWantedSkillFn != nil {
		return m.RemoveWantedSkillFn(ctx, userID, skillID)
	}
	return nil
}

func (m *MockUserStore) OffersSkill(ctx context.Context, userID, skillID uuid.UUID) (bool, error) {
	if m.OffersSkillFn != nil {
		return m.OffersSkillFn(ctx, userID, skillID)
	}
	return false, nil
}

func (m *MockUserStore) WantsSkill(ctx context.Context, userID, skillID uuid.UUID) (bool, error) {
	if m.WantsSkillFn != nil {
		return m.WantsSkillFn(ctx, userID, skillID)
	}
	return false, nil
}

func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}
