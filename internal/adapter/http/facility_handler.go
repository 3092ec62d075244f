package http

import (
	"net/http"

	ucFacility "radsafe-backend/internal/usecase/facility"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type FacilityHandler struct {
	uc  *ucFacility.Usecase
	log *zap.Logger
}

func NewFacilityHandler(uc *ucFacility.Usecase, log *zap.Logger) *FacilityHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &FacilityHandler{uc: uc, log: log}
}

type createFacilityReq struct {
	Name                string            `json:"name"                 validate:"required,notblank,max=255"`
	TaxCode             *string           `json:"tax_code"`
	Type                string            `json:"type"                 validate:"required,notblank,max=64"`
	Address             string            `json:"address"              validate:"required,notblank"`
	LegalRepresentative string            `json:"legal_representative" validate:"required,notblank,max=255"`
	DeviceCount         int               `json:"device_count"         validate:"gte=1"`
	DeviceTypes         []string          `json:"device_types"         validate:"omitempty,dive,notblank"`
	Purpose             *string           `json:"purpose"`
	RadiationOfficer    string            `json:"radiation_officer"    validate:"required,notblank,max=255"`
	LicenseNumber       *string           `json:"license_number"`
	CertificateNumber   *string           `json:"certificate_number"`
	CertificateDate     *string           `json:"certificate_date"     validate:"omitnil,isodate"`
	Attachments         map[string]string `json:"attachments"`
	Status              *string           `json:"status"               validate:"omitnil,status"`
}

// Every field optional. Nullable columns: absent keeps, null clears
// (certificate_date also clears on "").
type updateFacilityReq struct {
	Name                *string                     `json:"name"                 validate:"omitnil,notblank,max=255"`
	TaxCode             optional[string]            `json:"tax_code"`
	Type                *string                     `json:"type"                 validate:"omitnil,notblank,max=64"`
	Address             *string                     `json:"address"              validate:"omitnil,notblank"`
	LegalRepresentative *string                     `json:"legal_representative" validate:"omitnil,notblank,max=255"`
	DeviceCount         *int                        `json:"device_count"         validate:"omitnil,gte=1"`
	DeviceTypes         optional[[]string]          `json:"device_types"         validate:"omitempty,dive,notblank"`
	Purpose             optional[string]            `json:"purpose"`
	RadiationOfficer    *string                     `json:"radiation_officer"    validate:"omitnil,notblank,max=255"`
	LicenseNumber       optional[string]            `json:"license_number"`
	CertificateNumber   optional[string]            `json:"certificate_number"`
	CertificateDate     optional[string]            `json:"certificate_date"     validate:"omitempty,isodate"`
	Attachments         optional[map[string]string] `json:"attachments"`
	Status              *string                     `json:"status"               validate:"omitnil,status"`
	Note                *string                     `json:"note"`
}

func (h *FacilityHandler) Create(c echo.Context) error {
	var req createFacilityReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), ucFacility.CreateFacilityInput(req))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *FacilityHandler) List(c echo.Context) error {
	// an unknown status comes back as ErrInvalidStatus → 422
	out, err := h.uc.List(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FacilityHandler) Get(c echo.Context) error {
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

func (h *FacilityHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	var req updateFacilityReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *FacilityHandler) Approve(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	dto, err := h.uc.Approve(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *FacilityHandler) AuditTrail(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	out, err := h.uc.AuditTrail(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (r updateFacilityReq) toInput() ucFacility.UpdateFacilityInput {
	return ucFacility.UpdateFacilityInput{
		Name:                r.Name,
		TaxCode:             r.TaxCode.nullable(),
		Type:                r.Type,
		Address:             r.Address,
		LegalRepresentative: r.LegalRepresentative,
		DeviceCount:         r.DeviceCount,
		DeviceTypes:         r.DeviceTypes.nullable(),
		Purpose:             r.Purpose.nullable(),
		RadiationOfficer:    r.RadiationOfficer,
		LicenseNumber:       r.LicenseNumber.nullable(),
		CertificateNumber:   r.CertificateNumber.nullable(),
		CertificateDate:     r.CertificateDate.nullable(),
		Attachments:         r.Attachments.nullable(),
		Status:              r.Status,
		Note:                r.Note,
	}
}

func (o optional[T]) nullable() ucFacility.Nullable[T] {
	return ucFacility.Nullable[T]{Set: o.Set, Value: o.Value}
}
