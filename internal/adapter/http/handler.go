package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"log/slog"

	"github.com/franznanni77/mkt-1/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds an Allocator to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router for
// convenient method handling.
type Handler struct {
	svc    port.Allocator
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. It accepts an
// Allocator implementation and a logger. The returned Handler registers
// handlers for each endpoint on a new chi.Router, plus the health and
// metrics endpoints outside the API group.
func NewHandler(svc port.Allocator, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/allocations/optimize", h.handleOptimize)
		r.Post("/allocations/compare", h.handleCompare)
	})
	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
