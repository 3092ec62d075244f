package mysql

import (
	"context"

	submissionDomain "radsafe-backend/internal/domain/submission"

	"gorm.io/gorm"
)

type SubmissionRepository struct{ db *gorm.DB }

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) Create(ctx context.Context, s *submissionDomain.Submission) error {
	return r.db.WithContext(ctx).Omit("Form", "Facility").Create(s).Error
}

func (r *SubmissionRepository) Save(ctx context.Context, s *submissionDomain.Submission) error {
	return r.db.WithContext(ctx).Omit("Form", "Facility").Save(s).Error
}

func (r *SubmissionRepository) GetByID(ctx context.Context, id uint64) (*submissionDomain.Submission, error) {
	var out submissionDomain.Submission
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, translate(err, submissionDomain.ErrNotFound, nil)
	}
	return &out, nil
}

func (r *SubmissionRepository) List(ctx context.Context, filter submissionDomain.ListFilter) ([]submissionDomain.Submission, error) {
	q := r.db.WithContext(ctx).Model(&submissionDomain.Submission{})
	if filter.FormID != nil {
		q = q.Where("form_id = ?", *filter.FormID)
	}
	out := make([]submissionDomain.Submission, 0)
	err := q.Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (r *SubmissionRepository) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&submissionDomain.Submission{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return submissionDomain.ErrNotFound
	}
	return nil
}
