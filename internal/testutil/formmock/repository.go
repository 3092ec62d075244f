package formmock

import (
	"context"

	domain "radsafe-backend/internal/domain/form"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn  func(ctx context.Context, t *domain.Template) error
	SaveFn    func(ctx context.Context, t *domain.Template) error
	GetByIDFn func(ctx context.Context, id uint64) (*domain.Template, error)
	ListFn    func(ctx context.Context) ([]domain.Template, error)
	DeleteFn  func(ctx context.Context, id uint64) error
}

func (m *Repo) Create(ctx context.Context, t *domain.Template) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, t *domain.Template) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, t)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Template, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.Template, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []domain.Template{}, nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return domain.ErrNotFound
}
