package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jashmevada/skill-swap-platform/internal/domain"
	"github.com/jashmevada/skill-swap-platform/internal/store"
)

// MockSkillStore implements store.SkillStore for testing
type MockSkillStore struct {
	CreateFn         func(ctx context.Context, skill *domain.Skill) error
	GetByIDFn        func(ctx context.Context, id uuid.UUID) (*domain.Skill, error)
	FindByNameFn     func(ctx context.Context, name string) (*domain.Skill, error)
	ListFn           func(ctx context.Context, params store.ListSkillsParams) ([]domain.Skill, error)
	ListCategoriesFn func(ctx context.Context) ([]string, error)
	ListPendingFn    func(ctx context.Context) ([]domain.Skill, error)
	SetApprovedFn    func(ctx context.Context, id uuid.UUID, approved bool) error
	DeleteFn         func(ctx context.Context, id uuid.UUID) error
}

var _ store.SkillStore = (*MockSkillStore)(nil)

func (m *MockSkillStore) Create(ctx context.Context, skill *domain.Skill) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, skill)
	}
	return nil
}

func (m *MockSkillStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Skill, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrSkillNotFound
}

func (m *MockSkillStore) FindByName(ctx context.Context, name string) (*domain.Skill, error) {
	if m.FindByNameFn != nil {
		return m.FindByNameFn(ctx, name)
	}
	return nil, store.ErrSkillNotFound
}

func (m *MockSkillStore) List(ctx context.Context, params store.ListSkillsParams) ([]domain.Skill, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, params)
	}
	return nil, nil
}

func (m *MockSkillStore) ListCategories(ctx context.Context) ([]string, error) {
	if m.ListCategoriesFn != nil {
		return m.ListCategoriesFn(ctx)
	}
	return nil, nil
}

func (m *MockSkillStore) ListPending(ctx context.Context) ([]domain.Skill, error) {
	if m.ListPendingFn != nil {
		return m.ListPendingFn(ctx)
	}
	return nil, nil
}

func (m *MockSkillStore) SetApproved(ctx context.Context, id uuid.UUID, approved bool) error {
	if m.SetApprovedFn != nil {
		return m.SetApprovedFn(ctx, id, approved)
	}
	return nil
}

func (m *MockSkillStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *MockSkillStore) WithTx(tx *sql.Tx) store.SkillStore {
	return m
}
