package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-tripcore/internal/pkg/config"
	"github.com/FACorreiaa/go-tripcore/internal/pkg/logger"
	"github.com/FACorreiaa/go-tripcore/internal/server"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(logger.ParseLevel(cfg.LogLevel), zap.String("service", cfg.ServiceName)); err != nil {
		return err
	}
	l := logger.Log
	defer func() { _ = l.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otelShutdown, err := server.InitObservability(cfg, l)
	if err != nil {
		return err
	}
	defer func() {
		if err := otelShutdown(context.Background()); err != nil {
			l.Error("Failed to shutdown OpenTelemetry", zap.Error(err))
		}
	}()

	srv, err := server.New(ctx, cfg, l)
	if err != nil {
		return err
	}
	defer srv.Close()

	router := server.SetupRouter(cfg.ServiceName, srv.PlannerDependencies(), l)
	srv.SetRouter(router)

	server.StartPprofServer(cfg.PprofAddr, l)

	if err := server.Serve(ctx, srv.HTTPServer(), l); err != nil {
		l.Error("Server error", zap.Error(err))
		return err
	}
	l.Info("Graceful shutdown complete")
	return nil
}
