package form

import (
	"time"

	domain "radsafe-backend/internal/domain/form"
)

type CreateTemplateInput struct {
	Name        string
	Description *string
	Schema      map[string]any
	IsActive    *bool // defaults to true
}

// UpdateTemplateInput is a partial patch; nil fields are left untouched.
type UpdateTemplateInput struct {
	Name        *string
	Description *string
	Schema      map[string]any
	IsActive    *bool
}

type TemplateDTO struct {
	ID          uint64         `json:"id"`
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	Schema      map[string]any `json:"schema"`
	IsActive    bool           `json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func toDTO(t *domain.Template) *TemplateDTO {
	schema := map[string]any(t.Schema)
	if schema == nil {
		schema = map[string]any{}
	}
	return &TemplateDTO{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Schema:      schema,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
