package facility

import (
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrNotFound               = errors.New("facility not found")
	ErrInvalidStatus          = errors.New("invalid facility status")
	ErrDuplicateCode          = errors.New("facility code already exists")
	ErrInvalidCertificateDate = errors.New("certificate_date must be an ISO-8601 date")
)

type Status string

const (
	StatusNew      Status = "new"
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Statuses lists every value the status column may hold.
var Statuses = []Status{StatusNew, StatusPending, StatusApproved, StatusRejected}

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// CanTransition reports whether a record may move from one status to another.
// Operators may override any status, so every pair of valid statuses is allowed.
func CanTransition(from, to Status) bool {
	return from.Valid() && to.Valid()
}

// Table: facilities
type Facility struct {
	ID                  uint64                                `gorm:"column:id;primaryKey;autoIncrement"`
	FacilityCode        string                                `gorm:"column:facility_code;size:32;not null;uniqueIndex:ux_facilities_code"`
	Name                string                                `gorm:"column:name;size:255;not null"`
	TaxCode             *string                               `gorm:"column:tax_code;size:64"`
	Type                string                                `gorm:"column:type;size:64;not null"`
	Address             string                                `gorm:"column:address;type:text;not null"`
	LegalRepresentative string                                `gorm:"column:legal_representative;size:255;not null"`
	DeviceCount         int                                   `gorm:"column:device_count;not null;default:1"`
	DeviceTypes         datatypes.JSONSlice[string]           `gorm:"column:device_types"`
	Purpose             *string                               `gorm:"column:purpose;type:text"`
	RadiationOfficer    string                                `gorm:"column:radiation_officer;size:255;not null"`
	LicenseNumber       *string                               `gorm:"column:license_number;size:64"`
	CertificateNumber   *string                               `gorm:"column:certificate_number;size:64"`
	CertificateDate     *time.Time                            `gorm:"column:certificate_date;type:date"`
	Attachments         datatypes.JSONType[map[string]string] `gorm:"column:attachments"`
	Status              Status                                `gorm:"column:status;size:16;not null;default:'pending';index:idx_facilities_status_updated,priority:1"`
	CreatedAt           time.Time                             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time                             `gorm:"column:updated_at;autoUpdateTime;index:idx_facilities_status_updated,priority:2"`
}

func (Facility) TableName() string { return "facilities" }

// BeforeSave keeps unknown statuses out of the table on both insert and update.
func (f *Facility) BeforeSave(*gorm.DB) error {
	if !f.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}
