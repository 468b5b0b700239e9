// Package api provides HTTP handlers for the SHERPA dashboard API.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/sherpa-ai/sherpa-server/internal/assistant"
	"github.com/sherpa-ai/sherpa-server/internal/config"
	"github.com/sherpa-ai/sherpa-server/internal/identity"
	"github.com/sherpa-ai/sherpa-server/internal/state"
)

// Handler provides common handler dependencies and utilities.
type Handler struct {
	registry  *state.Registry
	cfg       *config.Config
	assistant assistant.Provider
}

// NewHandler creates a new Handler with common dependencies.
func NewHandler(registry *state.Registry, cfg *config.Config, provider assistant.Provider) *Handler {
	return &Handler{
		registry:  registry,
		cfg:       cfg,
		assistant: provider,
	}
}

// session returns the state container bound to the request's anonymous
// identity.
func (h *Handler) session(r *http.Request) *state.Container {
	return h.registry.Get(identity.UserIDFromContext(r.Context()))
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// NotImplemented writes the placeholder response used by feature stubs. The
// stubs are deliberate: they answer with a notice and change no state.
func NotImplemented(w http.ResponseWriter, feature string) {
	JSON(w, http.StatusNotImplemented, map[string]string{
		"error":   "not_implemented",
		"message": "🚧 " + feature + " isn't implemented yet.",
	})
}
