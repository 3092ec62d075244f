package submission

import (
	"context"
	"errors"
	"time"

	"radsafe-backend/internal/domain/facility"
	"radsafe-backend/internal/domain/form"

	"gorm.io/datatypes"
)

var ErrNotFound = errors.New("submission not found")

const DefaultStatus = "submitted"

// Table: submissions
type Submission struct {
	ID          uint64             `gorm:"column:id;primaryKey;autoIncrement"`
	FormID      uint64             `gorm:"column:form_id;not null;index"`
	Form        *form.Template     `gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE"`
	FacilityID  *uint64            `gorm:"column:facility_id;index"`
	Facility    *facility.Facility `gorm:"foreignKey:FacilityID;constraint:OnDelete:SET NULL"`
	Data        datatypes.JSONMap  `gorm:"column:data"`
	SubmittedBy *string            `gorm:"column:submitted_by;size:128"`
	Status      string             `gorm:"column:status;size:32;not null;default:'submitted'"`
	CreatedAt   time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

func (Submission) TableName() string { return "submissions" }

type ListFilter struct {
	FormID *uint64
}

type Repository interface {
	Create(ctx context.Context, s *Submission) error
	Save(ctx context.Context, s *Submission) error
	GetByID(ctx context.Context, id uint64) (*Submission, error)
	List(ctx context.Context, filter ListFilter) ([]Submission, error)
	Delete(ctx context.Context, id uint64) error
}
