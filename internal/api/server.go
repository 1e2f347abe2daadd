// Package api provides the HTTP facade for the registry console. Handlers
// are thin transport glue over the service layer; no business logic lives
// here.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	v1 "github.com/toolforge/registry-console/internal/api/v1"
	"github.com/toolforge/registry-console/internal/service"
)

// ServerOption configures the facade.
type ServerOption func(*serverConfig)

type serverConfig struct {
	middlewares []func(http.Handler) http.Handler
	metrics     http.Handler
}

// WithMiddlewares adds middleware to the server.
func WithMiddlewares(mw ...func(http.Handler) http.Handler) ServerOption {
	return func(cfg *serverConfig) {
		cfg.middlewares = append(cfg.middlewares, mw...)
	}
}

// WithMetricsHandler exposes a metrics endpoint at /metrics.
func WithMetricsHandler(h http.Handler) ServerOption {
	return func(cfg *serverConfig) {
		cfg.metrics = h
	}
}

// NewServer creates and configures the HTTP router over the given service.
func NewServer(svc service.RegistryService, opts ...ServerOption) *chi.Mux {
	cfg := &serverConfig{
		metrics: promhttp.Handler(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	for _, mw := range cfg.middlewares {
		r.Use(mw)
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	if cfg.metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.metrics)
	}
	r.Mount("/api/v1", v1.NewRoutes(svc).Router())

	return r
}
