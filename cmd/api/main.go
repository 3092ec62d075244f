package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"radsafe-backend/internal/app"
	"radsafe-backend/internal/config"
	"radsafe-backend/internal/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	lg, err := logger.New(cfg.App.Env)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, lg)
	if err != nil {
		lg.Fatal("startup failed", zap.Error(err))
	}
	defer func() {
		if err := a.Close(); err != nil {
			lg.Warn("close", zap.Error(err))
		}
	}()

	if err := a.Run(ctx); err != nil {
		lg.Error("server stopped", zap.Error(err))
	}
}
