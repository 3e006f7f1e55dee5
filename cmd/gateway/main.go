package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/your-org/ai-gateway/internal/app"
	"github.com/your-org/ai-gateway/internal/config"
	"github.com/your-org/ai-gateway/internal/metrics"
	"github.com/your-org/ai-gateway/internal/selector"
	"github.com/your-org/ai-gateway/internal/version"
	"github.com/your-org/ai-gateway/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "gateway failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.App.LogLevel, cfg.App.Env); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	log := logger.Get()
	defer func() { _ = log.Sync() }()

	log.Infow("starting ai-gateway", "version", version.String(), "env", cfg.App.Env)

	if cfg.ErrorTracking.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.ErrorTracking.SentryDSN,
			Environment: cfg.ErrorTracking.Environment,
			Release:     version.Version,
		}); err != nil {
			log.Warnw("sentry init failed, error tracking disabled", "error", err)
			cfg.ErrorTracking.SentryDSN = ""
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	registry := prometheus.NewRegistry()
	recorder, err := metrics.NewPrometheusRecorder(registry)
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}

	sel := selector.Choose(cfg, log, recorder)

	gateway := app.New(app.Options{
		Config:         cfg,
		Selection:      sel,
		Log:            log,
		Metrics:        recorder,
		MetricsHandler: metrics.Handler(registry),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := gateway.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Info("shutdown complete")
	return nil
}
