package mysql

import (
	"context"

	formDomain "radsafe-backend/internal/domain/form"

	"gorm.io/gorm"
)

type FormRepository struct{ db *gorm.DB }

func NewFormRepository(db *gorm.DB) *FormRepository { return &FormRepository{db: db} }

func (r *FormRepository) Create(ctx context.Context, t *formDomain.Template) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *FormRepository) Save(ctx context.Context, t *formDomain.Template) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *FormRepository) GetByID(ctx context.Context, id uint64) (*formDomain.Template, error) {
	var out formDomain.Template
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, translate(err, formDomain.ErrNotFound, nil)
	}
	return &out, nil
}

func (r *FormRepository) List(ctx context.Context) ([]formDomain.Template, error) {
	out := make([]formDomain.Template, 0)
	err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (r *FormRepository) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&formDomain.Template{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return formDomain.ErrNotFound
	}
	return nil
}
