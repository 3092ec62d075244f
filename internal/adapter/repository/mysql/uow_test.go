package mysql

import (
	"context"
	"errors"
	"testing"

	"radsafe-backend/internal/domain/auditlog"
	"radsafe-backend/internal/domain/facility"
	"radsafe-backend/internal/domain/uow"
)

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	facilities := NewFacilityRepository(db)
	audits := NewAuditLogRepository(db)

	var created *facility.Facility
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		f := makeFacility("CS_20250925_010")
		if err := r.Facilities.Create(ctx, f); err != nil {
			return err
		}
		if f.ID == 0 {
			t.Fatalf("facility auto ID not set")
		}
		created = f
		return r.AuditLogs.Create(ctx, &auditlog.AuditLog{FacilityID: f.ID, Action: auditlog.ActionCreate})
	})
	if err != nil {
		t.Fatalf("WithinTx commit err: %v", err)
	}

	if _, err := facilities.GetByID(ctx, created.ID); err != nil {
		t.Fatalf("facility not visible after commit: %v", err)
	}
	logs, err := audits.ListByFacilityID(ctx, created.ID)
	if err != nil || len(logs) != 1 {
		t.Fatalf("audit not visible after commit: %v (n=%d)", err, len(logs))
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	sentinel := errors.New("boom")

	var createdID uint64
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		f := makeFacility("CS_20250925_020")
		if err := r.Facilities.Create(ctx, f); err != nil {
			return err
		}
		createdID = f.ID
		if err := r.AuditLogs.Create(ctx, &auditlog.AuditLog{FacilityID: f.ID, Action: auditlog.ActionCreate}); err != nil {
			return err
		}
		return sentinel // force rollback
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("want sentinel, got %v", err)
	}

	if _, err := NewFacilityRepository(db).GetByID(ctx, createdID); !errors.Is(err, facility.ErrNotFound) {
		t.Fatalf("expected facility not found after rollback, got %v", err)
	}
	var n int64
	db.Model(&auditlog.AuditLog{}).Count(&n)
	if n != 0 {
		t.Fatalf("expected no audit rows after rollback, got %d", n)
	}
}

func TestGormUoW_WithinFacilityTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	facilities := NewFacilityRepository(db)

	seed := makeFacility("CS_20250925_030")
	if err := facilities.Create(ctx, seed); err != nil {
		t.Fatalf("seed facility: %v", err)
	}

	err := guow.WithinFacilityTx(ctx, seed.ID, func(r uow.Repos, f *facility.Facility) error {
		if f == nil || f.ID != seed.ID || f.Status != facility.StatusPending {
			t.Fatalf("unexpected facility passed to fn: %+v", f)
		}
		f.Status = facility.StatusApproved
		if err := r.Facilities.Save(ctx, f); err != nil {
			return err
		}
		return r.AuditLogs.Create(ctx, &auditlog.AuditLog{FacilityID: f.ID, Action: auditlog.ActionApprove})
	})
	if err != nil {
		t.Fatalf("WithinFacilityTx commit err: %v", err)
	}

	got, err := facilities.GetByID(ctx, seed.ID)
	if err != nil {
		t.Fatalf("GetByID post-commit: %v", err)
	}
	if got.Status != facility.StatusApproved {
		t.Fatalf("status not updated, got=%s", got.Status)
	}
	logs, _ := NewAuditLogRepository(db).ListByFacilityID(ctx, seed.ID)
	if len(logs) != 1 || logs[0].Action != auditlog.ActionApprove {
		t.Fatalf("approve audit missing: %+v", logs)
	}
}

func TestGormUoW_WithinFacilityTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	facilities := NewFacilityRepository(db)

	seed := makeFacility("CS_20250925_040")
	if err := facilities.Create(ctx, seed); err != nil {
		t.Fatalf("seed facility: %v", err)
	}

	sentinel := errors.New("stop")
	_ = guow.WithinFacilityTx(ctx, seed.ID, func(r uow.Repos, f *facility.Facility) error {
		f.Status = facility.StatusRejected
		if err := r.Facilities.Save(ctx, f); err != nil {
			return err
		}
		return sentinel // audit write "failed"
	})

	got, err := facilities.GetByID(ctx, seed.ID)
	if err != nil {
		t.Fatalf("post-rollback GetByID: %v", err)
	}
	if got.Status != facility.StatusPending {
		t.Fatalf("expected pending after rollback, got %s", got.Status)
	}
}

func TestGormUoW_WithinFacilityTx_NotFound(t *testing.T) {
	db := openTestDB(t)
	guow := NewGormUoW(db)

	err := guow.WithinFacilityTx(context.Background(), 999, func(r uow.Repos, f *facility.Facility) error {
		t.Fatalf("callback should not be called when facility missing")
		return nil
	})
	if !errors.Is(err, facility.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
