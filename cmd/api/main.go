// Copyright (c) 2026 Vatra. All rights reserved.
// Author: d.cebotari.dev@gmail.com

// Command api is the entry point for the Vatra site backend.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire the object-store client and domain handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dcebotari/vatra/internal/api"
	"github.com/dcebotari/vatra/internal/auth"
	"github.com/dcebotari/vatra/internal/category"
	"github.com/dcebotari/vatra/internal/gallery"
	"github.com/dcebotari/vatra/internal/images"
	"github.com/dcebotari/vatra/internal/menuimg"
	"github.com/dcebotari/vatra/internal/platform/config"
	"github.com/dcebotari/vatra/internal/platform/constants"
	"github.com/dcebotari/vatra/internal/platform/migration"
	"github.com/dcebotari/vatra/internal/platform/objstore"
	pgstore "github.com/dcebotari/vatra/internal/platform/postgres"
	redisstore "github.com/dcebotari/vatra/internal/platform/redis"
	"github.com/dcebotari/vatra/internal/platform/sec"
	"github.com/dcebotari/vatra/internal/promo"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Object Store & Security ────────────────────────────────────────
	store := objstore.New(cfg.StorageURL, cfg.StorageServiceKey, nil)
	resolver := images.NewResolver(cfg.StorageURL)
	uploadTokens := sec.NewUploadTokenService(cfg.SessionSecret, constants.AppName)

	// ── 7. Health handlers (wired with real dependency checkers) ─────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	sessionRepository := auth.NewRedisSessionRepository(rdb)
	authService := auth.NewService(sessionRepository, cfg.AdminUsername, cfg.AdminPasswordHash, log)
	authHandler := auth.NewHandler(authService, cfg.IsProduction())

	categoryRepository := category.NewPostgresRepository(pool)
	categoryService := category.NewService(categoryRepository, log)
	categoryHandler := category.NewHandler(categoryService)

	menuImageRepository := menuimg.NewPostgresRepository(pool)
	menuImageService := menuimg.NewService(menuImageRepository, categoryService, store, cfg.MenuBucket, log)
	menuImageHandler := menuimg.NewHandler(menuImageService, resolver)

	galleryRepository := gallery.NewPostgresRepository(pool)
	galleryService := gallery.NewService(galleryRepository, store, cfg.GalleryBucket, log)
	galleryHandler := gallery.NewHandler(galleryService, resolver)

	promoRepository := promo.NewPostgresRepository(pool)
	promoService := promo.NewService(promoRepository, store, cfg.GalleryBucket, uploadTokens, log)
	promoHandler := promo.NewHandler(promoService, resolver)

	imageHandler := images.NewHandler(cfg.PublicDir, store)
	pageHandler := api.NewPageHandler(cfg.PublicDir)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      authHandler,
		Category:  categoryHandler,
		MenuImage: menuImageHandler,
		Gallery:   galleryHandler,
		Promo:     promoHandler,
		Images:    imageHandler,
		Pages:     pageHandler,
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, authService, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
