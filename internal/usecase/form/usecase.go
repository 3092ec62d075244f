package form

import (
	"context"

	domain "radsafe-backend/internal/domain/form"

	"gorm.io/datatypes"
)

// Usecase is plain CRUD over form templates. Templates carry no lifecycle
// and are not audited.
type Usecase struct {
	templates domain.Repository
}

func NewUsecase(templates domain.Repository) *Usecase {
	return &Usecase{templates: templates}
}

func (u *Usecase) Create(ctx context.Context, in CreateTemplateInput) (*TemplateDTO, error) {
	t := &domain.Template{
		Name:        in.Name,
		Description: in.Description,
		Schema:      datatypes.JSONMap(in.Schema),
		IsActive:    true,
	}
	if t.Schema == nil {
		t.Schema = datatypes.JSONMap{}
	}
	if in.IsActive != nil {
		t.IsActive = *in.IsActive
	}
	if err := u.templates.Create(ctx, t); err != nil {
		return nil, err
	}
	return toDTO(t), nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*TemplateDTO, error) {
	t, err := u.templates.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(t), nil
}

func (u *Usecase) List(ctx context.Context) ([]TemplateDTO, error) {
	rows, err := u.templates.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]TemplateDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

func (u *Usecase) Update(ctx context.Context, id uint64, in UpdateTemplateInput) (*TemplateDTO, error) {
	t, err := u.templates.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		t.Name = *in.Name
	}
	if in.Description != nil {
		d := *in.Description
		t.Description = &d
	}
	if in.Schema != nil {
		t.Schema = datatypes.JSONMap(in.Schema)
	}
	if in.IsActive != nil {
		t.IsActive = *in.IsActive
	}
	if err := u.templates.Save(ctx, t); err != nil {
		return nil, err
	}
	return toDTO(t), nil
}

func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	return u.templates.Delete(ctx, id)
}
