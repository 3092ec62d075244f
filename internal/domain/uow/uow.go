package uow

import (
	"context"

	"radsafe-backend/internal/domain/auditlog"
	"radsafe-backend/internal/domain/facility"
)

// Repos bound to the same transaction.
type Repos struct {
	Facilities facility.Repository
	AuditLogs  auditlog.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// lock the facility row first, then pass it in; facility.ErrNotFound if absent
	WithinFacilityTx(ctx context.Context, facilityID uint64, fn func(r Repos, f *facility.Facility) error) error
}
