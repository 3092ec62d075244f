package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"radsafe-backend/internal/domain/auditlog"
	"radsafe-backend/internal/domain/facility"
	"radsafe-backend/internal/domain/form"
	"radsafe-backend/internal/domain/submission"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	// Debug logs every statement; otherwise only warnings and slow queries.
	Debug bool
	Log   *zap.Logger
}

func OpenGorm(dsn string, o Options) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn), o)
}

// OpenSQLite opens a file-backed DB for local runs. sqlite allows one
// writer, so the pool is pinned to a single connection.
func OpenSQLite(path string, o Options) (*gorm.DB, error) {
	db, err := OpenGormWithDialector(sqlite.Open(path+"?_foreign_keys=on"), o)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

func OpenGormWithDialector(dial gorm.Dialector, o Options) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger:               newGormLogger(o),
		TranslateError:       true,
		// pinged below, after the pool is sized
		DisableAutomaticPing: true,
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, fmt.Errorf("gorm open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("gorm ping: %w", err)
	}
	if o.Log != nil {
		o.Log.Info("gorm: connected", zap.String("dialect", dial.Name()))
	}
	return db, nil
}

// newGormLogger routes gorm through zap when a logger is given. A missing
// row is an ordinary 404, so it is not logged as an error.
func newGormLogger(o Options) logger.Interface {
	level := logger.Warn
	if o.Debug {
		level = logger.Info
	}
	var w logger.Writer = log.New(os.Stdout, "\r\n", log.LstdFlags)
	if o.Log != nil {
		w = zap.NewStdLog(o.Log.Named("gorm"))
	}
	return logger.New(w, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&facility.Facility{},
		&auditlog.AuditLog{},
		&form.Template{},
		&submission.Submission{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
