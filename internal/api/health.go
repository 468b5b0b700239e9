package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// HealthHandler reports process health. There is no database or broker
// behind this service, so the check is the process itself plus session
// bookkeeping.
type HealthHandler struct {
	*Handler
	startedAt time.Time
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(base *Handler) *HealthHandler {
	return &HealthHandler{Handler: base, startedAt: time.Now()}
}

// RegisterHealth registers the health check route.
func (h *HealthHandler) RegisterHealth(r chi.Router) {
	r.Get("/health", h.Health)
}

// Health returns the health status of the API.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]interface{}{
		"status":         "healthy",
		"uptime_seconds": int64(time.Since(h.startedAt).Seconds()),
		"sessions":       h.registry.Len(),
	})
}
