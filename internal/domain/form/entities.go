package form

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
)

var ErrNotFound = errors.New("form template not found")

// Table: form_templates
type Template struct {
	ID          uint64            `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string            `gorm:"column:name;size:255;not null"`
	Description *string           `gorm:"column:description;type:text"`
	Schema      datatypes.JSONMap `gorm:"column:schema"`
	IsActive    bool              `gorm:"column:is_active;not null"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

func (Template) TableName() string { return "form_templates" }

type Repository interface {
	Create(ctx context.Context, t *Template) error
	Save(ctx context.Context, t *Template) error
	GetByID(ctx context.Context, id uint64) (*Template, error)
	List(ctx context.Context) ([]Template, error)
	Delete(ctx context.Context, id uint64) error
}
