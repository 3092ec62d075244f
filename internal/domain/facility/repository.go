package facility

import "context"

type ListFilter struct {
	// nil means every status
	Status *Status
}

type Repository interface {
	Create(ctx context.Context, f *Facility) error
	Save(ctx context.Context, f *Facility) error

	GetByID(ctx context.Context, id uint64) (*Facility, error)
	// Same as GetByID but takes a row lock; only meaningful inside a tx.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Facility, error)

	// Ordered by updated_at DESC (most recently touched first).
	List(ctx context.Context, filter ListFilter) ([]Facility, error)
}
