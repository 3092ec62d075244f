package facility

import (
	"context"
	"errors"
	"time"

	"radsafe-backend/internal/auth"
	"radsafe-backend/internal/domain/auditlog"
	"radsafe-backend/internal/domain/facility"
	"radsafe-backend/internal/domain/uow"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

var errNoUnitOfWork = errors.New("facility usecase: unit of work not configured")

// MutationObserver is told about every committed facility mutation.
type MutationObserver interface {
	ObserveMutation(action string)
}

type Usecase struct {
	facilities facility.Repository
	audits     auditlog.Repository
	uow        uow.UnitOfWork

	now      func() time.Time
	log      *zap.Logger
	observer MutationObserver
}

type Option func(*Usecase)

// WithClock overrides the time source used for facility codes.
func WithClock(now func() time.Time) Option { return func(u *Usecase) { u.now = now } }

func WithLogger(l *zap.Logger) Option { return func(u *Usecase) { u.log = l } }

func WithObserver(o MutationObserver) Option { return func(u *Usecase) { u.observer = o } }

// NewUsecase: reads go through the repos, every write goes through the UoW so
// the facility row and its audit entry commit together.
func NewUsecase(facilities facility.Repository, audits auditlog.Repository, tx uow.UnitOfWork, opts ...Option) *Usecase {
	u := &Usecase{
		facilities: facilities,
		audits:     audits,
		uow:        tx,
		now:        time.Now,
		log:        zap.NewNop(),
	}
	for _, o := range opts {
		o(u)
	}
	return u
}

func (u *Usecase) Create(ctx context.Context, in CreateFacilityInput) (*FacilityDTO, error) {
	if u.uow == nil {
		return nil, errNoUnitOfWork
	}
	status := facility.StatusPending
	if in.Status != nil {
		s, err := facility.ParseStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		status = s
	}
	var cert *time.Time
	if in.CertificateDate != nil {
		d, err := facility.ParseCertificateDate(*in.CertificateDate)
		if err != nil {
			return nil, err
		}
		cert = d
	}

	f := &facility.Facility{
		FacilityCode:        facility.NewCode(u.now()),
		Name:                in.Name,
		TaxCode:             in.TaxCode,
		Type:                in.Type,
		Address:             in.Address,
		LegalRepresentative: in.LegalRepresentative,
		DeviceCount:         in.DeviceCount,
		DeviceTypes:         in.DeviceTypes,
		Purpose:             in.Purpose,
		RadiationOfficer:    in.RadiationOfficer,
		LicenseNumber:       in.LicenseNumber,
		CertificateNumber:   in.CertificateNumber,
		CertificateDate:     cert,
		Attachments:         datatypes.NewJSONType(in.Attachments),
		Status:              status,
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Facilities.Create(ctx, f); err != nil {
			return err
		}
		return r.AuditLogs.Create(ctx, u.auditEntry(ctx, f.ID, auditlog.ActionCreate, NoteCreated))
	})
	if err != nil {
		u.log.Warn("facility create failed", zap.String("facility_code", f.FacilityCode), zap.Error(err))
		return nil, err
	}
	u.committed(auditlog.ActionCreate, f)
	return toDTO(f), nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*FacilityDTO, error) {
	f, err := u.facilities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(f), nil
}

// List returns facilities most recently touched first, optionally restricted
// to one status. An empty status means no filter.
func (u *Usecase) List(ctx context.Context, status string) ([]FacilityDTO, error) {
	var filter facility.ListFilter
	if status != "" {
		s, err := facility.ParseStatus(status)
		if err != nil {
			return nil, err
		}
		filter.Status = &s
	}
	rows, err := u.facilities.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]FacilityDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

func (u *Usecase) Update(ctx context.Context, id uint64, in UpdateFacilityInput) (*FacilityDTO, error) {
	if u.uow == nil {
		return nil, errNoUnitOfWork
	}
	var out *facility.Facility
	err := u.uow.WithinFacilityTx(ctx, id, func(r uow.Repos, f *facility.Facility) error {
		prev := f.Status
		if err := applyPatch(f, in); err != nil {
			return err
		}
		if err := r.Facilities.Save(ctx, f); err != nil {
			return err
		}
		out = f
		return r.AuditLogs.Create(ctx, u.auditEntry(ctx, f.ID, auditlog.ActionUpdate, updateNote(in, prev, f.Status)))
	})
	if err != nil {
		return nil, err
	}
	u.committed(auditlog.ActionUpdate, out)
	return toDTO(out), nil
}

// Approve sets status to approved from any prior status, including approved.
func (u *Usecase) Approve(ctx context.Context, id uint64) (*FacilityDTO, error) {
	if u.uow == nil {
		return nil, errNoUnitOfWork
	}
	var out *facility.Facility
	err := u.uow.WithinFacilityTx(ctx, id, func(r uow.Repos, f *facility.Facility) error {
		if !facility.CanTransition(f.Status, facility.StatusApproved) {
			return facility.ErrInvalidStatus
		}
		f.Status = facility.StatusApproved
		if err := r.Facilities.Save(ctx, f); err != nil {
			return err
		}
		out = f
		return r.AuditLogs.Create(ctx, u.auditEntry(ctx, f.ID, auditlog.ActionApprove, NoteApproved))
	})
	if err != nil {
		return nil, err
	}
	u.committed(auditlog.ActionApprove, out)
	return toDTO(out), nil
}

// AuditTrail lists a facility's audit entries, newest first.
func (u *Usecase) AuditTrail(ctx context.Context, id uint64) ([]AuditLogDTO, error) {
	if _, err := u.facilities.GetByID(ctx, id); err != nil {
		return nil, err
	}
	rows, err := u.audits.ListByFacilityID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := make([]AuditLogDTO, 0, len(rows))
	for _, e := range rows {
		out = append(out, toAuditDTO(e))
	}
	return out, nil
}

func (u *Usecase) auditEntry(ctx context.Context, facilityID uint64, action, note string) *auditlog.AuditLog {
	return &auditlog.AuditLog{
		FacilityID:  facilityID,
		Action:      action,
		PerformedBy: auth.ActorFromContext(ctx),
		Note:        &note,
	}
}

func (u *Usecase) committed(action string, f *facility.Facility) {
	u.log.Info("facility mutated",
		zap.String("action", action),
		zap.Uint64("facility_id", f.ID),
		zap.String("facility_code", f.FacilityCode),
		zap.String("status", string(f.Status)),
	)
	if u.observer != nil {
		u.observer.ObserveMutation(action)
	}
}

func applyPatch(f *facility.Facility, in UpdateFacilityInput) error {
	if in.Status != nil {
		s, err := facility.ParseStatus(*in.Status)
		if err != nil {
			return err
		}
		if !facility.CanTransition(f.Status, s) {
			return facility.ErrInvalidStatus
		}
		f.Status = s
	}
	if in.CertificateDate.Set {
		var raw string
		if in.CertificateDate.Value != nil {
			raw = *in.CertificateDate.Value
		}
		d, err := facility.ParseCertificateDate(raw)
		if err != nil {
			return err
		}
		f.CertificateDate = d
	}
	setString(&f.Name, in.Name)
	setString(&f.Type, in.Type)
	setString(&f.Address, in.Address)
	setString(&f.LegalRepresentative, in.LegalRepresentative)
	setString(&f.RadiationOfficer, in.RadiationOfficer)
	setNullable(&f.TaxCode, in.TaxCode)
	setNullable(&f.Purpose, in.Purpose)
	setNullable(&f.LicenseNumber, in.LicenseNumber)
	setNullable(&f.CertificateNumber, in.CertificateNumber)
	if in.DeviceCount != nil {
		f.DeviceCount = *in.DeviceCount
	}
	if in.DeviceTypes.Set {
		f.DeviceTypes = nil
		if in.DeviceTypes.Value != nil {
			f.DeviceTypes = *in.DeviceTypes.Value
		}
	}
	if in.Attachments.Set {
		var m map[string]string
		if in.Attachments.Value != nil {
			m = *in.Attachments.Value
		}
		f.Attachments = datatypes.NewJSONType(m)
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setNullable(dst **string, v Nullable[string]) {
	if !v.Set {
		return
	}
	if v.Value == nil {
		*dst = nil
		return
	}
	s := *v.Value
	*dst = &s
}

// updateNote: an explicit note wins, then a real status change, then the
// generic text.
func updateNote(in UpdateFacilityInput, before, after facility.Status) string {
	switch {
	case in.Note != nil && *in.Note != "":
		return *in.Note
	case before != after:
		return NoteStatusChangedPrefix + string(after)
	}
	return NoteUpdated
}
