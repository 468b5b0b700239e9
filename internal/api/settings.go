package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sherpa-ai/sherpa-server/internal/domain"
)

// SettingsHandler serves the settings view: four independently merged
// settings groups plus the account-tab stubs.
type SettingsHandler struct {
	*Handler
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(base *Handler) *SettingsHandler {
	return &SettingsHandler{Handler: base}
}

// RegisterRoutes registers settings routes.
func (h *SettingsHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/settings", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Patch("/notifications", h.PatchNotifications)
		r.Patch("/security", h.PatchSecurity)
		r.Patch("/preferences", h.PatchPreferences)
		r.Patch("/integrations", h.PatchIntegrations)
		r.Post("/export", h.ExportData)
		r.Post("/reset", h.Reset)
	})
	r.Post("/api/profile", h.SaveProfile)
}

// Get returns the full settings bundle.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, h.session(r).Settings.Snapshot())
}

// PatchNotifications merges a partial update into the notifications group.
func (h *SettingsHandler) PatchNotifications(w http.ResponseWriter, r *http.Request) {
	var patch domain.NotificationPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	JSON(w, http.StatusOK, h.session(r).Settings.UpdateNotifications(patch))
}

// PatchSecurity merges a partial update into the security group. Values are
// stored as sent; there is no bounds checking on timeouts or expiry.
func (h *SettingsHandler) PatchSecurity(w http.ResponseWriter, r *http.Request) {
	var patch domain.SecurityPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	JSON(w, http.StatusOK, h.session(r).Settings.UpdateSecurity(patch))
}

// PatchPreferences merges a partial update into the preferences group.
func (h *SettingsHandler) PatchPreferences(w http.ResponseWriter, r *http.Request) {
	var patch domain.PreferencePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	JSON(w, http.StatusOK, h.session(r).Settings.UpdatePreferences(patch))
}

// PatchIntegrations merges a partial update into the integrations group.
func (h *SettingsHandler) PatchIntegrations(w http.ResponseWriter, r *http.Request) {
	var patch domain.IntegrationPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	JSON(w, http.StatusOK, h.session(r).Settings.UpdateIntegrations(patch))
}

// SaveProfile is a deliberate placeholder.
func (h *SettingsHandler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	NotImplemented(w, "Profile save")
}

// ExportData is a deliberate placeholder.
func (h *SettingsHandler) ExportData(w http.ResponseWriter, r *http.Request) {
	NotImplemented(w, "Data export")
}

// Reset is a deliberate placeholder; settings keep their current values.
func (h *SettingsHandler) Reset(w http.ResponseWriter, r *http.Request) {
	NotImplemented(w, "Settings reset")
}
