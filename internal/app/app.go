package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	httpadp "radsafe-backend/internal/adapter/http"
	"radsafe-backend/internal/adapter/middleware"
	"radsafe-backend/internal/adapter/repository/mysql"
	"radsafe-backend/internal/auth"
	"radsafe-backend/internal/config"
	"radsafe-backend/internal/infrastructure/cache"
	"radsafe-backend/internal/infrastructure/db"
	"radsafe-backend/internal/infrastructure/storage"
	"radsafe-backend/internal/logger"
	"radsafe-backend/internal/metrics"
	ucFacility "radsafe-backend/internal/usecase/facility"
	ucForm "radsafe-backend/internal/usecase/form"
	ucSubmission "radsafe-backend/internal/usecase/submission"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const poolSampleInterval = 15 * time.Second

// App owns the process-wide resources and the HTTP server lifecycle.
type App struct {
	cfg     *config.Config
	log     *zap.Logger
	db      *gorm.DB
	redis   *redis.Client
	metrics *metrics.Metrics
	echo    *echo.Echo
}

func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	gdb, err := openDatabase(cfg, log)
	if err != nil {
		return nil, err
	}
	if cfg.DB.AutoMigrate {
		if err := db.Migrate(gdb); err != nil {
			return nil, err
		}
		log.Info("schema migrated")
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		if rdb, err = cache.OpenRedis(ctx, cfg.Redis.Addr, cfg.Redis.DB); err != nil {
			return nil, err
		}
		log.Info("redis: connected", zap.String("addr", cfg.Redis.Addr))
	}

	// keep the interface nil when uploads are off, the handler checks for it
	var uploader httpadp.Uploader
	if cfg.UploadEnabled() {
		s3u, err := storage.NewS3Uploader(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		uploader = s3u
	}

	m := metrics.New()
	e, err := newEcho(deps{cfg: cfg, log: log, db: gdb, redis: rdb, uploader: uploader, metrics: m})
	if err != nil {
		return nil, err
	}
	return &App{cfg: cfg, log: log, db: gdb, redis: rdb, metrics: m, echo: e}, nil
}

func openDatabase(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	opts := db.Options{Debug: logger.IsDevelopment(cfg.App.Env), Log: log}
	if cfg.DB.Driver == config.DriverSQLite {
		return db.OpenSQLite(cfg.DB.SQLitePath, opts)
	}
	return db.OpenGorm(cfg.MySQLDSN(), opts)
}

type deps struct {
	cfg      *config.Config
	log      *zap.Logger
	db       *gorm.DB
	redis    *redis.Client
	uploader httpadp.Uploader
	metrics  *metrics.Metrics
}

// newEcho builds repositories, usecases and handlers over already-open
// connections and mounts them on a fresh echo instance.
func newEcho(d deps) (*echo.Echo, error) {
	facilities := mysql.NewFacilityRepository(d.db)
	audits := mysql.NewAuditLogRepository(d.db)
	forms := mysql.NewFormRepository(d.db)
	submissions := mysql.NewSubmissionRepository(d.db)

	facilityUC := ucFacility.NewUsecase(facilities, audits, mysql.NewGormUoW(d.db),
		ucFacility.WithLogger(d.log),
		ucFacility.WithObserver(d.metrics),
	)
	formUC := ucForm.NewUsecase(forms)
	submissionUC := ucSubmission.NewUsecase(submissions, forms, facilities)

	sqlDB, err := d.db.DB()
	if err != nil {
		return nil, err
	}

	routes := httpadp.Routes{
		Health:      httpadp.NewHandler(sqlDB),
		Facilities:  httpadp.NewFacilityHandler(facilityUC, d.log),
		Forms:       httpadp.NewFormHandler(formUC, d.log),
		Submissions: httpadp.NewSubmissionHandler(submissionUC, d.log),
		Auth:        httpadp.NewAuthHandler(nil, nil),
		Upload:      httpadp.NewUploadHandler(d.uploader, d.log),
		Metrics:     d.metrics.Handler(),
	}

	if d.cfg.Auth.Enabled {
		tokens, err := auth.NewTokenService(d.cfg.Auth.JWTSecret, d.cfg.Auth.Issuer, d.cfg.Auth.TokenTTL)
		if err != nil {
			return nil, err
		}
		routes.Auth = httpadp.NewAuthHandler(tokens, auth.NewOperator(d.cfg.Auth.Username, d.cfg.Auth.PasswordHash))
		routes.RequireAuth = middleware.RequireAuth(tokens)
		routes.Authenticate = middleware.Authenticate(tokens)
	}
	if d.redis != nil {
		routes.Idempotency = middleware.IdempotencyMiddleware(d.redis, d.cfg.IdempotencyTTL(), d.log)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = httpadp.NewValidator()
	e.Use(
		echomw.Recover(),
		echomw.RequestID(),
		d.metrics.Middleware(),
		middleware.RequestLogger(d.log),
	)
	if d.cfg.HTTP.BodyLimit != "" {
		// oversized bodies get 413 before any handler reads them
		e.Use(echomw.BodyLimit(d.cfg.HTTP.BodyLimit))
	}
	routes.Register(e)
	return e, nil
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (a *App) Run(ctx context.Context) error {
	a.echo.Server.ReadTimeout = a.cfg.HTTP.ReadTimeout
	a.echo.Server.WriteTimeout = a.cfg.HTTP.WriteTimeout

	go a.samplePool(ctx)

	addr := ":" + a.cfg.App.Port
	errCh := make(chan error, 1)
	go func() {
		a.log.Info("listening", zap.String("addr", addr))
		if err := a.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
	defer cancel()
	return a.echo.Shutdown(shutdownCtx)
}

func (a *App) samplePool(ctx context.Context) {
	t := time.NewTicker(poolSampleInterval)
	defer t.Stop()
	for {
		if err := a.metrics.UpdateDatabaseConnections(a.db); err != nil {
			a.log.Warn("db pool sample failed", zap.Error(err))
		}
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
	}
}

func (a *App) Close() error {
	var errs []error
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
	}
	if sqlDB, err := a.db.DB(); err == nil {
		errs = append(errs, sqlDB.Close())
	}
	return errors.Join(errs...)
}
