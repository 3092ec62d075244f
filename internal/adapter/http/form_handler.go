package http

import (
	"net/http"

	ucForm "radsafe-backend/internal/usecase/form"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type FormHandler struct {
	uc  *ucForm.Usecase
	log *zap.Logger
}

func NewFormHandler(uc *ucForm.Usecase, log *zap.Logger) *FormHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &FormHandler{uc: uc, log: log}
}

type createFormReq struct {
	Name        string         `json:"name"        validate:"required,notblank,max=255"`
	Description *string        `json:"description"`
	Schema      map[string]any `json:"schema"`
	IsActive    *bool          `json:"is_active"`
}

type updateFormReq struct {
	Name        *string        `json:"name"        validate:"omitnil,notblank,max=255"`
	Description *string        `json:"description"`
	Schema      map[string]any `json:"schema"`
	IsActive    *bool          `json:"is_active"`
}

func (h *FormHandler) Create(c echo.Context) error {
	var req createFormReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), ucForm.CreateTemplateInput(req))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *FormHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FormHandler) Get(c echo.Context) error {
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

func (h *FormHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	var req updateFormReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Update(c.Request().Context(), id, ucForm.UpdateTemplateInput(req))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *FormHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}
