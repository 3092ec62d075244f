package submission

import (
	"errors"
	"time"

	domain "radsafe-backend/internal/domain/submission"
)

var (
	ErrUnknownForm     = errors.New("form_id does not reference an existing form")
	ErrUnknownFacility = errors.New("facility_id does not reference an existing facility")
)

type CreateSubmissionInput struct {
	FormID      uint64
	FacilityID  *uint64
	Data        map[string]any
	SubmittedBy *string // defaults to the authenticated operator
	Status      *string // defaults to "submitted"
}

// UpdateSubmissionInput is a partial patch; nil fields are left untouched.
type UpdateSubmissionInput struct {
	FacilityID  *uint64
	Data        map[string]any
	SubmittedBy *string
	Status      *string
}

type SubmissionDTO struct {
	ID          uint64         `json:"id"`
	FormID      uint64         `json:"form_id"`
	FacilityID  *uint64        `json:"facility_id"`
	Data        map[string]any `json:"data"`
	SubmittedBy *string        `json:"submitted_by"`
	Status      string         `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func toDTO(s *domain.Submission) *SubmissionDTO {
	data := map[string]any(s.Data)
	if data == nil {
		data = map[string]any{}
	}
	return &SubmissionDTO{
		ID:          s.ID,
		FormID:      s.FormID,
		FacilityID:  s.FacilityID,
		Data:        data,
		SubmittedBy: s.SubmittedBy,
		Status:      s.Status,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
