// Copyright (c) 2026 Vatra. All rights reserved.
// Author: d.cebotari.dev@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dcebotari/vatra/internal/auth"
	"github.com/dcebotari/vatra/internal/category"
	"github.com/dcebotari/vatra/internal/gallery"
	"github.com/dcebotari/vatra/internal/images"
	"github.com/dcebotari/vatra/internal/menuimg"
	"github.com/dcebotari/vatra/internal/platform/config"
	"github.com/dcebotari/vatra/internal/platform/constants"
	"github.com/dcebotari/vatra/internal/platform/middleware"
	"github.com/dcebotari/vatra/internal/promo"
	"github.com/dcebotari/vatra/internal/routing"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles the admin login and logout routes.
	Auth *auth.Handler

	// Category handles menu sections.
	Category *category.Handler

	// MenuImage handles dish photos and the storage synchronization.
	MenuImage *menuimg.Handler

	// Gallery handles the photo gallery.
	Gallery *gallery.Handler

	// Promo handles promotional items and the signed-upload flow.
	Promo *promo.Handler

	// Images serves /images/{bucket}/{key} local-first with remote fallback.
	Images *images.Handler

	// Pages serves the prebuilt localized frontend for everything else.
	Pages *PageHandler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
//
// The edge interceptor runs after Authenticate so page gating can see the
// session, and never touches /api or /images traffic.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, validator middleware.SessionValidator, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(validator))
	r.Use(middleware.CORS(cfg))
	r.Use(routing.Interceptor())

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get(constants.PathHealth, h.Liveness)
	r.Get(constants.PathReady, h.Readiness)

	// # Image Delivery
	r.Route(constants.PathPrefixImages, h.Images.RegisterRoutes)

	// # Application API
	r.Route(constants.PathPrefixAPI, func(api chi.Router) {
		h.Auth.RegisterRoutes(api)
		api.Route("/uploads", h.Promo.RegisterUploadRoutes)
		api.Route("/categories", h.Category.RegisterPublicRoutes)
		api.Route("/menu-images", h.MenuImage.RegisterPublicRoutes)
		api.Route("/gallery-images", h.Gallery.RegisterPublicRoutes)
		api.Route("/promo-items", h.Promo.RegisterPublicRoutes)

		api.Route("/admin", func(admin chi.Router) {
			admin.Use(middleware.RequireSession)
			admin.Route("/categories", h.Category.RegisterAdminRoutes)
			admin.Route("/menu-images", h.MenuImage.RegisterAdminRoutes)
			admin.Route("/gallery-images", h.Gallery.RegisterAdminRoutes)
			admin.Route("/promo-items", h.Promo.RegisterAdminRoutes)
		})
	})

	// # Pages
	// Everything else is the prebuilt frontend, already locale-prefixed by
	// the interceptor above.
	r.NotFound(h.Pages.ServePage)

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
