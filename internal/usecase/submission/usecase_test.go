package submission

import (
	"context"
	"errors"
	"testing"

	"radsafe-backend/internal/auth"
	domainFacility "radsafe-backend/internal/domain/facility"
	domainForm "radsafe-backend/internal/domain/form"
	domain "radsafe-backend/internal/domain/submission"
	"radsafe-backend/internal/testutil/facilitymock"
	"radsafe-backend/internal/testutil/formmock"
	"radsafe-backend/internal/testutil/submissionmock"
)

func u64(v uint64) *uint64 { return &v }

func strPtr(s string) *string { return &s }

func newFixture() (*Usecase, *[]domain.Submission) {
	var created []domain.Submission
	subs := &submissionmock.Repo{
		CreateFn: func(_ context.Context, s *domain.Submission) error {
			s.ID = uint64(len(created) + 1)
			created = append(created, *s)
			return nil
		},
	}
	forms := &formmock.Repo{
		GetByIDFn: func(_ context.Context, id uint64) (*domainForm.Template, error) {
			if id == 1 {
				return &domainForm.Template{ID: 1, Name: "Khai báo"}, nil
			}
			return nil, domainForm.ErrNotFound
		},
	}
	facilities := &facilitymock.Repo{
		GetByIDFn: func(_ context.Context, id uint64) (*domainFacility.Facility, error) {
			if id == 5 {
				return &domainFacility.Facility{ID: 5}, nil
			}
			return nil, domainFacility.ErrNotFound
		},
	}
	return NewUsecase(subs, forms, facilities), &created
}

func TestUsecase_Create(t *testing.T) {
	tests := []struct {
		name       string
		ctx        context.Context
		in         CreateSubmissionInput
		wantErr    error
		wantStatus string
		wantBy     *string
	}{
		{
			name:       "defaults",
			ctx:        context.Background(),
			in:         CreateSubmissionInput{FormID: 1, Data: map[string]any{"a": 1}},
			wantStatus: "submitted",
		},
		{
			name:       "actor fills submitted_by",
			ctx:        auth.WithActor(context.Background(), "operator"),
			in:         CreateSubmissionInput{FormID: 1, FacilityID: u64(5), Status: strPtr("draft")},
			wantStatus: "draft",
			wantBy:     strPtr("operator"),
		},
		{
			name:    "unknown form",
			ctx:     context.Background(),
			in:      CreateSubmissionInput{FormID: 2},
			wantErr: ErrUnknownForm,
		},
		{
			name:    "unknown facility",
			ctx:     context.Background(),
			in:      CreateSubmissionInput{FormID: 1, FacilityID: u64(6)},
			wantErr: ErrUnknownFacility,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, created := newFixture()
			dto, err := uc.Create(tt.ctx, tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want %v, got %v", tt.wantErr, err)
				}
				if len(*created) != 0 {
					t.Fatalf("row written despite error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			if dto.Status != tt.wantStatus || dto.Data == nil {
				t.Fatalf("unexpected dto: %+v", dto)
			}
			switch {
			case tt.wantBy == nil && dto.SubmittedBy != nil:
				t.Fatalf("submitted_by = %q, want nil", *dto.SubmittedBy)
			case tt.wantBy != nil && (dto.SubmittedBy == nil || *dto.SubmittedBy != *tt.wantBy):
				t.Fatalf("submitted_by = %v, want %q", dto.SubmittedBy, *tt.wantBy)
			}
		})
	}
}

func TestUsecase_UpdateListDelete(t *testing.T) {
	var saved *domain.Submission
	var gotFilter domain.ListFilter
	subs := &submissionmock.Repo{
		GetByIDFn: func(_ context.Context, id uint64) (*domain.Submission, error) {
			if id != 4 {
				return nil, domain.ErrNotFound
			}
			return &domain.Submission{ID: 4, FormID: 1, Status: "submitted"}, nil
		},
		SaveFn: func(_ context.Context, s *domain.Submission) error {
			saved = s
			return nil
		},
		ListFn: func(_ context.Context, f domain.ListFilter) ([]domain.Submission, error) {
			gotFilter = f
			return []domain.Submission{{ID: 4, FormID: 1}}, nil
		},
		DeleteFn: func(_ context.Context, id uint64) error {
			if id == 4 {
				return nil
			}
			return domain.ErrNotFound
		},
	}
	uc := NewUsecase(subs, &formmock.Repo{}, &facilitymock.Repo{})
	ctx := context.Background()

	dto, err := uc.Update(ctx, 4, UpdateSubmissionInput{Status: strPtr("reviewed"), Data: map[string]any{"k": "v"}})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if dto.Status != "reviewed" || saved.Data["k"] != "v" {
		t.Fatalf("patch not applied: %+v", dto)
	}
	if _, err := uc.Update(ctx, 4, UpdateSubmissionInput{FacilityID: u64(9)}); !errors.Is(err, ErrUnknownFacility) {
		t.Fatalf("want ErrUnknownFacility, got %v", err)
	}
	if _, err := uc.Update(ctx, 8, UpdateSubmissionInput{}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}

	out, err := uc.List(ctx, u64(1))
	if err != nil || len(out) != 1 {
		t.Fatalf("List = %+v, %v", out, err)
	}
	if gotFilter.FormID == nil || *gotFilter.FormID != 1 {
		t.Fatalf("filter not forwarded: %+v", gotFilter)
	}

	if err := uc.Delete(ctx, 4); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := uc.Delete(ctx, 5); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
