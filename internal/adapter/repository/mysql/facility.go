package mysql

import (
	"context"

	facilityDomain "radsafe-backend/internal/domain/facility"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FacilityRepository struct{ db *gorm.DB }

func NewFacilityRepository(db *gorm.DB) *FacilityRepository { return &FacilityRepository{db: db} }

func (r *FacilityRepository) Create(ctx context.Context, f *facilityDomain.Facility) error {
	err := r.db.WithContext(ctx).Create(f).Error
	return translate(err, nil, facilityDomain.ErrDuplicateCode)
}

func (r *FacilityRepository) Save(ctx context.Context, f *facilityDomain.Facility) error {
	err := r.db.WithContext(ctx).Save(f).Error
	return translate(err, facilityDomain.ErrNotFound, facilityDomain.ErrDuplicateCode)
}

func (r *FacilityRepository) GetByID(ctx context.Context, id uint64) (*facilityDomain.Facility, error) {
	var out facilityDomain.Facility
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, translate(err, facilityDomain.ErrNotFound, nil)
	}
	return &out, nil
}

// GetByIDForUpdate issues SELECT ... FOR UPDATE (ignored by sqlite).
func (r *FacilityRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*facilityDomain.Facility, error) {
	var out facilityDomain.Facility
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out).Error
	if err != nil {
		return nil, translate(err, facilityDomain.ErrNotFound, nil)
	}
	return &out, nil
}

func (r *FacilityRepository) List(ctx context.Context, filter facilityDomain.ListFilter) ([]facilityDomain.Facility, error) {
	q := r.db.WithContext(ctx).Model(&facilityDomain.Facility{})
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	out := make([]facilityDomain.Facility, 0)
	if err := q.Order("updated_at DESC, id DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
