package http

import (
	"net/http"
	"strconv"

	ucSubmission "radsafe-backend/internal/usecase/submission"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type SubmissionHandler struct {
	uc  *ucSubmission.Usecase
	log *zap.Logger
}

func NewSubmissionHandler(uc *ucSubmission.Usecase, log *zap.Logger) *SubmissionHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &SubmissionHandler{uc: uc, log: log}
}

type createSubmissionReq struct {
	FormID      uint64         `json:"form_id"      validate:"required"`
	FacilityID  *uint64        `json:"facility_id"  validate:"omitnil,gte=1"`
	Data        map[string]any `json:"data"`
	SubmittedBy *string        `json:"submitted_by" validate:"omitnil,max=128"`
	Status      *string        `json:"status"       validate:"omitnil,max=32"`
}

type updateSubmissionReq struct {
	FacilityID  *uint64        `json:"facility_id"  validate:"omitnil,gte=1"`
	Data        map[string]any `json:"data"`
	SubmittedBy *string        `json:"submitted_by" validate:"omitnil,max=128"`
	Status      *string        `json:"status"       validate:"omitnil,max=32"`
}

func (h *SubmissionHandler) Create(c echo.Context) error {
	var req createSubmissionReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), ucSubmission.CreateSubmissionInput(req))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

// List accepts an optional ?form_id= filter.
func (h *SubmissionHandler) List(c echo.Context) error {
	var formID *uint64
	if raw := c.QueryParam("form_id"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || n == 0 {
			return badRequest(c, "form_id must be a positive integer")
		}
		formID = &n
	}
	out, err := h.uc.List(c.Request().Context(), formID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SubmissionHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *SubmissionHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	var req updateSubmissionReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Update(c.Request().Context(), id, ucSubmission.UpdateSubmissionInput(req))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *SubmissionHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}
