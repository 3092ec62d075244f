package submissionmock

import (
	"context"

	domain "radsafe-backend/internal/domain/submission"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn  func(ctx context.Context, s *domain.Submission) error
	SaveFn    func(ctx context.Context, s *domain.Submission) error
	GetByIDFn func(ctx context.Context, id uint64) (*domain.Submission, error)
	ListFn    func(ctx context.Context, filter domain.ListFilter) ([]domain.Submission, error)
	DeleteFn  func(ctx context.Context, id uint64) error
}

func (m *Repo) Create(ctx context.Context, s *domain.Submission) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, s *domain.Submission) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Submission, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) List(ctx context.Context, filter domain.ListFilter) ([]domain.Submission, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter)
	}
	return []domain.Submission{}, nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return domain.ErrNotFound
}
