package http

import (
	"errors"
	"net/http"
	"strconv"

	domainFacility "radsafe-backend/internal/domain/facility"
	domainForm "radsafe-backend/internal/domain/form"
	domainSubmission "radsafe-backend/internal/domain/submission"
	ucSubmission "radsafe-backend/internal/usecase/submission"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var errInvalidID = errors.New("id must be a positive integer")

// parseID reads a positive integer path param.
func parseID(c echo.Context, name string) (uint64, error) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || n == 0 {
		return 0, errInvalidID
	}
	return n, nil
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

// bindAndValidate: malformed JSON → 400, rule violations → 422.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, badRequest(c, "invalid body")
	}
	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	return true, nil
}

// respondError maps domain errors → HTTP codes. Anything unknown is logged
// and hidden behind a generic 500.
func respondError(c echo.Context, log *zap.Logger, err error) error {
	switch {
	case errors.Is(err, domainFacility.ErrNotFound),
		errors.Is(err, domainForm.ErrNotFound),
		errors.Is(err, domainSubmission.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, domainFacility.ErrInvalidStatus):
		return unprocessable(c, "status", "must be one of new, pending, approved, rejected")
	case errors.Is(err, domainFacility.ErrInvalidCertificateDate):
		return unprocessable(c, "certificate_date", "must be an ISO date (YYYY-MM-DD)")
	case errors.Is(err, ucSubmission.ErrUnknownForm):
		return unprocessable(c, "form_id", "does not reference an existing form")
	case errors.Is(err, ucSubmission.ErrUnknownFacility):
		return unprocessable(c, "facility_id", "does not reference an existing facility")
	}
	if log != nil {
		log.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("route", c.Path()),
			zap.Error(err),
		)
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func unprocessable(c echo.Context, field, msg string) error {
	return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:   "validation failed",
		Details: []FieldError{{Field: field, Message: msg}},
	})
}
