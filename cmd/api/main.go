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

	"property_brochure_backend/internal/agents"
	"property_brochure_backend/internal/brochure"
	"property_brochure_backend/internal/email"
	"property_brochure_backend/internal/enhance"
	"property_brochure_backend/internal/epc"
	apphttp "property_brochure_backend/internal/http"
	"property_brochure_backend/internal/http/router"
	"property_brochure_backend/internal/inquiry"
	"property_brochure_backend/internal/maps"
	"property_brochure_backend/internal/uploads"
	"property_brochure_backend/platform/config"
	"property_brochure_backend/platform/logger"
	"property_brochure_backend/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Gateway Modules
	// ========================================================================

	enhanceModule := enhance.NewModule(cfg, val, log)
	epcModule := epc.NewModule(cfg, val, log)
	mapsModule := maps.NewModule(cfg, val, log)

	agentsModule, err := agents.NewModule(cfg, log)
	if err != nil {
		log.Error("failed to load agent directory", "error", err)
		panic("failed to load agent directory: " + err.Error())
	}

	uploadsModule, err := uploads.NewModule(cfg, val, log)
	if err != nil {
		log.Error("failed to initialize storage service", "error", err)
		panic("failed to initialize storage service: " + err.Error())
	}
	if err := withRetry(ctx, log, "ensure property-photos bucket", 5, 2*time.Second, func() error {
		return uploadsModule.EnsureBucket(ctx)
	}); err != nil {
		log.Error("failed to ensure storage bucket exists", "error", err, "bucket", cfg.GetMinioBucketPropertyPhotos())
		panic("failed to ensure storage bucket exists: " + err.Error())
	}

	// ========================================================================
	// Brochure Assembler (Composition Root)
	// ========================================================================

	brochureModule := brochure.NewModule(cfg, brochure.Deps{
		Agents:   agentsModule.Directory(),
		EPC:      epcModule.Service(),
		Locator:  mapsModule.Service(),
		Enhancer: enhanceModule.Service(),
	}, val, log)

	inquiryModule := inquiry.NewModule(cfg, email.NewSender(cfg), val, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Modules: []apphttp.Module{
			enhanceModule,
			epcModule,
			mapsModule,
			agentsModule,
			uploadsModule,
			brochureModule,
			inquiryModule,
		},
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router.New(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
