package mysql

import (
	"context"

	auditDomain "radsafe-backend/internal/domain/auditlog"

	"gorm.io/gorm"
)

type AuditLogRepository struct{ db *gorm.DB }

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository { return &AuditLogRepository{db: db} }

func (r *AuditLogRepository) Create(ctx context.Context, e *auditDomain.AuditLog) error {
	// Omit the association so a populated Facility pointer is never upserted.
	return r.db.WithContext(ctx).Omit("Facility").Create(e).Error
}

func (r *AuditLogRepository) ListByFacilityID(ctx context.Context, facilityID uint64) ([]auditDomain.AuditLog, error) {
	out := make([]auditDomain.AuditLog, 0)
	err := r.db.WithContext(ctx).
		Where("facility_id = ?", facilityID).
		Order("performed_at DESC, id DESC").
		Find(&out).Error
	return out, err
}
