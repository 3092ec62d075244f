package facilitymock

import (
	"context"

	domain "radsafe-backend/internal/domain/facility"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset lookups return domain.ErrNotFound; unset writes succeed.
type Repo struct {
	CreateFn           func(ctx context.Context, f *domain.Facility) error
	SaveFn             func(ctx context.Context, f *domain.Facility) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.Facility, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.Facility, error)
	ListFn             func(ctx context.Context, filter domain.ListFilter) ([]domain.Facility, error)
}

func (m *Repo) Create(ctx context.Context, f *domain.Facility) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, f)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, f *domain.Facility) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, f)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Facility, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Facility, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) List(ctx context.Context, filter domain.ListFilter) ([]domain.Facility, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter)
	}
	return []domain.Facility{}, nil
}
