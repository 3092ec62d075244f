package facility

import (
	"time"

	"radsafe-backend/internal/domain/auditlog"
	"radsafe-backend/internal/domain/facility"
)

const (
	NoteCreated  = "Khởi tạo hồ sơ cơ sở"
	NoteApproved = "Phê duyệt hồ sơ"
	NoteUpdated  = "Cập nhật hồ sơ"
	// followed by the new status value
	NoteStatusChangedPrefix = "Cập nhật trạng thái: "
)

type CreateFacilityInput struct {
	Name                string
	TaxCode             *string
	Type                string
	Address             string
	LegalRepresentative string
	DeviceCount         int
	DeviceTypes         []string
	Purpose             *string
	RadiationOfficer    string
	LicenseNumber       *string
	CertificateNumber   *string
	CertificateDate     *string // ISO date string
	Attachments         map[string]string
	Status              *string // defaults to pending
}

// Nullable is a patch value for a column that may be null. Unset leaves the
// column alone; Set with a nil Value clears it.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

func SetTo[T any](v T) Nullable[T] { return Nullable[T]{Set: true, Value: &v} }

func Null[T any]() Nullable[T] { return Nullable[T]{Set: true} }

// UpdateFacilityInput is a partial patch: nil or unset fields are left
// untouched. CertificateDate set to "" clears the stored date like null does.
type UpdateFacilityInput struct {
	Name                *string
	TaxCode             Nullable[string]
	Type                *string
	Address             *string
	LegalRepresentative *string
	DeviceCount         *int
	DeviceTypes         Nullable[[]string]
	Purpose             Nullable[string]
	RadiationOfficer    *string
	LicenseNumber       Nullable[string]
	CertificateNumber   Nullable[string]
	CertificateDate     Nullable[string]
	Attachments         Nullable[map[string]string]
	Status              *string
	Note                *string
}

type FacilityDTO struct {
	ID                  uint64            `json:"id"`
	FacilityCode        string            `json:"facility_code"`
	Name                string            `json:"name"`
	TaxCode             *string           `json:"tax_code"`
	Type                string            `json:"type"`
	Address             string            `json:"address"`
	LegalRepresentative string            `json:"legal_representative"`
	DeviceCount         int               `json:"device_count"`
	DeviceTypes         []string          `json:"device_types"`
	Purpose             *string           `json:"purpose"`
	RadiationOfficer    string            `json:"radiation_officer"`
	LicenseNumber       *string           `json:"license_number"`
	CertificateNumber   *string           `json:"certificate_number"`
	CertificateDate     *string           `json:"certificate_date"`
	Attachments         map[string]string `json:"attachments"`
	Status              string            `json:"status"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

type AuditLogDTO struct {
	ID          uint64    `json:"id"`
	FacilityID  uint64    `json:"facility_id"`
	Action      string    `json:"action"`
	PerformedBy *string   `json:"performed_by"`
	Note        *string   `json:"note"`
	PerformedAt time.Time `json:"performed_at"`
}

func toDTO(f *facility.Facility) *FacilityDTO {
	return &FacilityDTO{
		ID:                  f.ID,
		FacilityCode:        f.FacilityCode,
		Name:                f.Name,
		TaxCode:             f.TaxCode,
		Type:                f.Type,
		Address:             f.Address,
		LegalRepresentative: f.LegalRepresentative,
		DeviceCount:         f.DeviceCount,
		DeviceTypes:         []string(f.DeviceTypes),
		Purpose:             f.Purpose,
		RadiationOfficer:    f.RadiationOfficer,
		LicenseNumber:       f.LicenseNumber,
		CertificateNumber:   f.CertificateNumber,
		CertificateDate:     facility.FormatCertificateDate(f.CertificateDate),
		Attachments:         f.Attachments.Data(),
		Status:              string(f.Status),
		CreatedAt:           f.CreatedAt,
		UpdatedAt:           f.UpdatedAt,
	}
}

func toAuditDTO(e auditlog.AuditLog) AuditLogDTO {
	return AuditLogDTO{
		ID:          e.ID,
		FacilityID:  e.FacilityID,
		Action:      e.Action,
		PerformedBy: e.PerformedBy,
		Note:        e.Note,
		PerformedAt: e.PerformedAt,
	}
}
