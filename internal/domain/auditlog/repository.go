package auditlog

import "context"

type Repository interface {
	// Insert only; there is no update or delete.
	Create(ctx context.Context, e *AuditLog) error

	// Newest first.
	ListByFacilityID(ctx context.Context, facilityID uint64) ([]AuditLog, error)
}
