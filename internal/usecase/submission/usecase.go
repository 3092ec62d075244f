package submission

import (
	"context"
	"errors"

	"radsafe-backend/internal/auth"
	domainFacility "radsafe-backend/internal/domain/facility"
	domainForm "radsafe-backend/internal/domain/form"
	domain "radsafe-backend/internal/domain/submission"

	"gorm.io/datatypes"
)

type Usecase struct {
	submissions domain.Repository
	forms       domainForm.Repository
	facilities  domainFacility.Repository
}

// NewUsecase: forms and facilities are only read, to reject dangling references.
func NewUsecase(submissions domain.Repository, forms domainForm.Repository, facilities domainFacility.Repository) *Usecase {
	return &Usecase{submissions: submissions, forms: forms, facilities: facilities}
}

func (u *Usecase) Create(ctx context.Context, in CreateSubmissionInput) (*SubmissionDTO, error) {
	if err := u.checkForm(ctx, in.FormID); err != nil {
		return nil, err
	}
	if err := u.checkFacility(ctx, in.FacilityID); err != nil {
		return nil, err
	}
	s := &domain.Submission{
		FormID:      in.FormID,
		FacilityID:  in.FacilityID,
		Data:        datatypes.JSONMap(in.Data),
		SubmittedBy: in.SubmittedBy,
		Status:      domain.DefaultStatus,
	}
	if s.Data == nil {
		s.Data = datatypes.JSONMap{}
	}
	if s.SubmittedBy == nil {
		s.SubmittedBy = auth.ActorFromContext(ctx)
	}
	if in.Status != nil && *in.Status != "" {
		s.Status = *in.Status
	}
	if err := u.submissions.Create(ctx, s); err != nil {
		return nil, err
	}
	return toDTO(s), nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*SubmissionDTO, error) {
	s, err := u.submissions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(s), nil
}

// List returns submissions newest first; formID == nil lists every form.
func (u *Usecase) List(ctx context.Context, formID *uint64) ([]SubmissionDTO, error) {
	rows, err := u.submissions.List(ctx, domain.ListFilter{FormID: formID})
	if err != nil {
		return nil, err
	}
	out := make([]SubmissionDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

func (u *Usecase) Update(ctx context.Context, id uint64, in UpdateSubmissionInput) (*SubmissionDTO, error) {
	s, err := u.submissions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.FacilityID != nil {
		if err := u.checkFacility(ctx, in.FacilityID); err != nil {
			return nil, err
		}
		fid := *in.FacilityID
		s.FacilityID = &fid
	}
	if in.Data != nil {
		s.Data = datatypes.JSONMap(in.Data)
	}
	if in.SubmittedBy != nil {
		by := *in.SubmittedBy
		s.SubmittedBy = &by
	}
	if in.Status != nil && *in.Status != "" {
		s.Status = *in.Status
	}
	if err := u.submissions.Save(ctx, s); err != nil {
		return nil, err
	}
	return toDTO(s), nil
}

func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	return u.submissions.Delete(ctx, id)
}

func (u *Usecase) checkForm(ctx context.Context, id uint64) error {
	if _, err := u.forms.GetByID(ctx, id); err != nil {
		if errors.Is(err, domainForm.ErrNotFound) {
			return ErrUnknownForm
		}
		return err
	}
	return nil
}

func (u *Usecase) checkFacility(ctx context.Context, id *uint64) error {
	if id == nil || u.facilities == nil {
		return nil
	}
	if _, err := u.facilities.GetByID(ctx, *id); err != nil {
		if errors.Is(err, domainFacility.ErrNotFound) {
			return ErrUnknownFacility
		}
		return err
	}
	return nil
}
