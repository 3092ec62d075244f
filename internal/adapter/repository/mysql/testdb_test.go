package mysql

import (
	"fmt"
	"testing"
	"time"

	"radsafe-backend/internal/domain/auditlog"
	"radsafe-backend/internal/domain/facility"
	"radsafe-backend/internal/domain/form"
	"radsafe-backend/internal/domain/submission"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates a private in-memory sqlite DB with the full schema.
// Each test gets its own named shared-cache DB so the tx connection sees
// the same tables as the outer handle.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&facility.Facility{}, &auditlog.AuditLog{}, &form.Template{}, &submission.Submission{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func strPtr(s string) *string { return &s }

func makeFacility(code string) *facility.Facility {
	return &facility.Facility{
		FacilityCode:        code,
		Name:                "Bệnh viện A",
		Type:                "Y tế",
		Address:             "1 Trần Hưng Đạo, Hà Nội",
		LegalRepresentative: "Nguyễn Văn A",
		DeviceCount:         2,
		RadiationOfficer:    "Trần Thị B",
		Status:              facility.StatusPending,
	}
}

// touch pins updated_at so ordering assertions do not depend on clock resolution.
func touch(t *testing.T, db *gorm.DB, id uint64, at time.Time) {
	t.Helper()
	err := db.Model(&facility.Facility{}).Where("id = ?", id).UpdateColumn("updated_at", at).Error
	if err != nil {
		t.Fatalf("touch: %v", err)
	}
}
