package auditlogmock

import (
	"context"
	"sync"

	domain "radsafe-backend/internal/domain/auditlog"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// When CreateFn is unset, created entries are kept in Entries.
type Repo struct {
	CreateFn           func(ctx context.Context, e *domain.AuditLog) error
	ListByFacilityIDFn func(ctx context.Context, facilityID uint64) ([]domain.AuditLog, error)

	mu      sync.Mutex
	Entries []domain.AuditLog
}

func (m *Repo) Create(ctx context.Context, e *domain.AuditLog) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e.ID = uint64(len(m.Entries) + 1)
	m.Entries = append(m.Entries, *e)
	return nil
}

func (m *Repo) ListByFacilityID(ctx context.Context, facilityID uint64) ([]domain.AuditLog, error) {
	if m.ListByFacilityIDFn != nil {
		return m.ListByFacilityIDFn(ctx, facilityID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.AuditLog, 0)
	for i := len(m.Entries) - 1; i >= 0; i-- {
		if m.Entries[i].FacilityID == facilityID {
			out = append(out, m.Entries[i])
		}
	}
	return out, nil
}
