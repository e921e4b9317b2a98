package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pcimon/internal/api/handlers"
	apimiddleware "pcimon/internal/api/middleware"
	"pcimon/internal/config"
	"pcimon/pkg/logger"
)

// Router holds dependencies for the API router
type Router struct {
	config   *config.Config
	handlers *handlers.Handlers
	logger   *logger.Logger
}

// NewRouter creates a new Router instance
func NewRouter(cfg *config.Config, h *handlers.Handlers, log *logger.Logger) *Router {
	return &Router{
		config:   cfg,
		handlers: h,
		logger:   log.WithComponent("router"),
	}
}

// Setup sets up the Chi router with all routes and middleware
func (r *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Core middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(apimiddleware.Logger(r.logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(30 * time.Second))

	// CORS
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   r.config.CORS.AllowedOrigins,
		AllowedMethods:   r.config.CORS.AllowedMethods,
		AllowedHeaders:   r.config.CORS.AllowedHeaders,
		AllowCredentials: r.config.CORS.AllowCredentials,
		MaxAge:           r.config.CORS.MaxAge,
	}))

	if r.config.Metrics.Enabled {
		router.Use(apimiddleware.Metrics())
	}

	// Health and metrics
	router.Get("/health", r.handlers.Health.Check)
	router.Get("/ready", r.handlers.Health.Ready)
	if r.config.Metrics.Enabled {
		router.Handle("/metrics", promhttp.Handler())
	}

	// Dashboard API
	router.Route("/api/v1", func(api chi.Router) {
		api.Get("/summary", r.handlers.Summary.Get)
		api.Get("/requirements", r.handlers.Requirements.List)
		api.Get("/requirements/{id}", r.handlers.Requirements.Get)
		api.Get("/findings", r.handlers.Findings.List)
		api.Get("/findings/export", r.handlers.Findings.Export)
		api.Get("/trend", r.handlers.Trend.Get)
	})

	return router
}
