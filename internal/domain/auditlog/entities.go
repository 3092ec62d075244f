package auditlog

import (
	"time"

	"radsafe-backend/internal/domain/facility"
)

const (
	ActionCreate  = "create"
	ActionUpdate  = "update"
	ActionApprove = "approve"
)

// Table: facility_audit_logs. Rows are append-only; they go away only when
// the owning facility is deleted (FK ON DELETE CASCADE).
type AuditLog struct {
	ID          uint64             `gorm:"column:id;primaryKey;autoIncrement"`
	FacilityID  uint64             `gorm:"column:facility_id;not null;index:idx_audit_facility_time,priority:1"`
	Facility    *facility.Facility `gorm:"foreignKey:FacilityID;constraint:OnDelete:CASCADE"`
	Action      string             `gorm:"column:action;size:32;not null"`
	PerformedBy *string            `gorm:"column:performed_by;size:128"`
	Note        *string            `gorm:"column:note;type:text"`
	PerformedAt time.Time          `gorm:"column:performed_at;autoCreateTime;index:idx_audit_facility_time,priority:2"`
}

func (AuditLog) TableName() string { return "facility_audit_logs" }
