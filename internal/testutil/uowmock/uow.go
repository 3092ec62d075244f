package uowmock

import (
	"context"
	"errors"

	"radsafe-backend/internal/domain/facility"
	"radsafe-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn         func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinFacilityTxFn func(ctx context.Context, facilityID uint64, fn func(r uow.Repos, f *facility.Facility) error) error
}

// Passthrough runs callbacks directly against repos, looking the facility up
// with GetByIDForUpdate the way the gorm implementation does.
func Passthrough(repos uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(repos)
		},
		WithinFacilityTxFn: func(ctx context.Context, id uint64, fn func(r uow.Repos, f *facility.Facility) error) error {
			f, err := repos.Facilities.GetByIDForUpdate(ctx, id)
			if err != nil {
				return err
			}
			return fn(repos, f)
		},
	}
}

// Convenience fluent setters
func New() *UoW { return &UoW{} }
func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}
func (m *UoW) WithWithinFacilityTx(fn func(context.Context, uint64, func(uow.Repos, *facility.Facility) error) error) *UoW {
	m.WithinFacilityTxFn = fn
	return m
}
func (m *UoW) Reset() { *m = UoW{} }

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinFacilityTx(ctx context.Context, facilityID uint64, fn func(r uow.Repos, f *facility.Facility) error) error {
	if m.WithinFacilityTxFn != nil {
		return m.WithinFacilityTxFn(ctx, facilityID, fn)
	}
	return errUnimplemented
}
