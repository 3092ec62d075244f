package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	domainFacility "radsafe-backend/internal/domain/facility"
	domainForm "radsafe-backend/internal/domain/form"
	domainSubmission "radsafe-backend/internal/domain/submission"
	"radsafe-backend/internal/testutil/facilitymock"
	"radsafe-backend/internal/testutil/formmock"
	"radsafe-backend/internal/testutil/submissionmock"
	ucForm "radsafe-backend/internal/usecase/form"
	ucSubmission "radsafe-backend/internal/usecase/submission"

	"github.com/labstack/echo/v4"
)

func serve(e *echo.Echo, method, target string, body any, id string, fn func(echo.Context) error) (*httptest.ResponseRecorder, error) {
	var req *stdhttp.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, mustJSON(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	return rec, fn(c)
}

func TestFormHandler_CRUD(t *testing.T) {
	e := newEchoWithValidator()
	store := map[uint64]domainForm.Template{}
	repo := &formmock.Repo{
		CreateFn: func(_ context.Context, tpl *domainForm.Template) error {
			tpl.ID = uint64(len(store) + 1)
			store[tpl.ID] = *tpl
			return nil
		},
		SaveFn: func(_ context.Context, tpl *domainForm.Template) error {
			store[tpl.ID] = *tpl
			return nil
		},
		GetByIDFn: func(_ context.Context, id uint64) (*domainForm.Template, error) {
			tpl, ok := store[id]
			if !ok {
				return nil, domainForm.ErrNotFound
			}
			return &tpl, nil
		},
		DeleteFn: func(_ context.Context, id uint64) error {
			if _, ok := store[id]; !ok {
				return domainForm.ErrNotFound
			}
			delete(store, id)
			return nil
		},
	}
	h := NewFormHandler(ucForm.NewUsecase(repo), nil)

	rec, err := serve(e, stdhttp.MethodPost, "/forms", map[string]any{"name": "Khai báo", "schema": map[string]any{"fields": []string{"a"}}}, "", h.Create)
	if err != nil || rec.Code != stdhttp.StatusCreated {
		t.Fatalf("create: %d %v %s", rec.Code, err, rec.Body.String())
	}
	var dto ucForm.TemplateDTO
	_ = json.Unmarshal(rec.Body.Bytes(), &dto)
	if dto.ID != 1 || !dto.IsActive {
		t.Fatalf("unexpected dto: %+v", dto)
	}

	rec, _ = serve(e, stdhttp.MethodPost, "/forms", map[string]any{"name": ""}, "", h.Create)
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("blank name: status = %d, want 422", rec.Code)
	}

	rec, _ = serve(e, stdhttp.MethodPut, "/forms/1", map[string]any{"is_active": false}, "1", h.Update)
	_ = json.Unmarshal(rec.Body.Bytes(), &dto)
	if rec.Code != stdhttp.StatusOK || dto.IsActive || dto.Name != "Khai báo" {
		t.Fatalf("update: %d %+v", rec.Code, dto)
	}

	if rec, _ = serve(e, stdhttp.MethodGet, "/forms/1", nil, "1", h.Get); rec.Code != stdhttp.StatusOK {
		t.Fatalf("get: status = %d", rec.Code)
	}
	if rec, _ = serve(e, stdhttp.MethodGet, "/forms", nil, "", h.List); rec.Code != stdhttp.StatusOK {
		t.Fatalf("list: status = %d", rec.Code)
	}
	if rec, _ = serve(e, stdhttp.MethodDelete, "/forms/1", nil, "1", h.Delete); rec.Code != stdhttp.StatusNoContent {
		t.Fatalf("delete: status = %d", rec.Code)
	}
	if rec, _ = serve(e, stdhttp.MethodDelete, "/forms/1", nil, "1", h.Delete); rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("delete again: status = %d, want 404", rec.Code)
	}
	if rec, _ = serve(e, stdhttp.MethodGet, "/forms/abc", nil, "abc", h.Get); rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("bad id: status = %d, want 400", rec.Code)
	}
}

func TestSubmissionHandler(t *testing.T) {
	e := newEchoWithValidator()
	var gotFilter domainSubmission.ListFilter
	subs := &submissionmock.Repo{
		CreateFn: func(_ context.Context, s *domainSubmission.Submission) error {
			s.ID = 10
			return nil
		},
		ListFn: func(_ context.Context, f domainSubmission.ListFilter) ([]domainSubmission.Submission, error) {
			gotFilter = f
			return []domainSubmission.Submission{{ID: 10, FormID: 1, Status: "submitted"}}, nil
		},
	}
	forms := &formmock.Repo{
		GetByIDFn: func(_ context.Context, id uint64) (*domainForm.Template, error) {
			if id == 1 {
				return &domainForm.Template{ID: 1}, nil
			}
			return nil, domainForm.ErrNotFound
		},
	}
	facilities := &facilitymock.Repo{
		GetByIDFn: func(_ context.Context, id uint64) (*domainFacility.Facility, error) {
			return nil, domainFacility.ErrNotFound
		},
	}
	h := NewSubmissionHandler(ucSubmission.NewUsecase(subs, forms, facilities), nil)

	rec, err := serve(e, stdhttp.MethodPost, "/submissions", map[string]any{"form_id": 1, "data": map[string]any{"x": 1}}, "", h.Create)
	if err != nil || rec.Code != stdhttp.StatusCreated {
		t.Fatalf("create: %d %v %s", rec.Code, err, rec.Body.String())
	}
	var dto ucSubmission.SubmissionDTO
	_ = json.Unmarshal(rec.Body.Bytes(), &dto)
	if dto.ID != 10 || dto.Status != "submitted" {
		t.Fatalf("unexpected dto: %+v", dto)
	}

	tests := []struct {
		name  string
		body  map[string]any
		field string
	}{
		{"missing form", map[string]any{}, "form_id"},
		{"unknown form", map[string]any{"form_id": 2}, "form_id"},
		{"unknown facility", map[string]any{"form_id": 1, "facility_id": 3}, "facility_id"},
	}
	for _, tt := range tests {
		rec, _ := serve(e, stdhttp.MethodPost, "/submissions", tt.body, "", h.Create)
		var er ErrorResponse
		_ = json.Unmarshal(rec.Body.Bytes(), &er)
		if rec.Code != stdhttp.StatusUnprocessableEntity || len(er.Details) == 0 || er.Details[0].Field != tt.field {
			t.Fatalf("%s: %d %+v", tt.name, rec.Code, er)
		}
	}

	rec, _ = serve(e, stdhttp.MethodGet, "/submissions?form_id=1", nil, "", h.List)
	if rec.Code != stdhttp.StatusOK || gotFilter.FormID == nil || *gotFilter.FormID != 1 {
		t.Fatalf("list: %d filter=%+v", rec.Code, gotFilter)
	}
	if rec, _ = serve(e, stdhttp.MethodGet, "/submissions?form_id=zero", nil, "", h.List); rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("bad filter: status = %d, want 400", rec.Code)
	}
	if rec, _ = serve(e, stdhttp.MethodGet, "/submissions/4", nil, "4", h.Get); rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("get missing: status = %d, want 404", rec.Code)
	}
	if rec, _ = serve(e, stdhttp.MethodPut, "/submissions/4", map[string]any{"status": "ok"}, "4", h.Update); rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("update missing: status = %d, want 404", rec.Code)
	}
	if rec, _ = serve(e, stdhttp.MethodDelete, "/submissions/4", nil, "4", h.Delete); rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("delete missing: status = %d, want 404", rec.Code)
	}
}
