package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sherpa-ai/sherpa-server/internal/domain"
	"github.com/sherpa-ai/sherpa-server/internal/research"
	"github.com/sherpa-ai/sherpa-server/internal/view"
)

// VulnerabilityHandler serves the security dashboard: the vulnerability feed,
// its derived counters and the recent-activity list.
type VulnerabilityHandler struct {
	*Handler
}

// NewVulnerabilityHandler creates a new vulnerability handler.
func NewVulnerabilityHandler(base *Handler) *VulnerabilityHandler {
	return &VulnerabilityHandler{Handler: base}
}

// RegisterRoutes registers vulnerability routes.
func (h *VulnerabilityHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/vulnerabilities", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/stats", h.Stats)
		r.Get("/activity", h.Activity)
	})
}

// List returns vulnerabilities filtered by the q and severity query
// parameters. Filtering happens per request; nothing is cached.
func (h *VulnerabilityHandler) List(w http.ResponseWriter, r *http.Request) {
	items := h.session(r).Vulnerabilities.List()
	query := r.URL.Query().Get("q")
	severity := r.URL.Query().Get("severity")
	JSON(w, http.StatusOK, view.FilterVulnerabilities(items, query, severity))
}

type createVulnerabilityRequest struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Severity    domain.Severity   `json:"severity"`
	Status      domain.VulnStatus `json:"status"`
	Assignee    string            `json:"assignee"`
	DateFound   string            `json:"dateFound"`
}

// Create appends a new vulnerability record. Records are never edited after
// creation.
func (h *VulnerabilityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createVulnerabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		Error(w, http.StatusBadRequest, "name is required")
		return
	}
	if !req.Severity.Valid() {
		Error(w, http.StatusBadRequest, "unknown severity")
		return
	}
	if req.Status == "" {
		req.Status = domain.VulnStatusOpen
	}
	if !req.Status.Valid() {
		Error(w, http.StatusBadRequest, "unknown status")
		return
	}
	if req.DateFound == "" {
		req.DateFound = time.Now().UTC().Format("2006-01-02")
	}

	created := h.session(r).Vulnerabilities.Add(domain.Vulnerability{
		Name:        req.Name,
		Description: req.Description,
		Severity:    req.Severity,
		Status:      req.Status,
		Assignee:    req.Assignee,
		DateFound:   req.DateFound,
	})
	JSON(w, http.StatusCreated, created)
}

// Stats returns the derived severity and status counters.
func (h *VulnerabilityHandler) Stats(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, h.session(r).Vulnerabilities.Stats())
}

// Activity returns the recent-activity feed shown under the dashboard.
func (h *VulnerabilityHandler) Activity(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, research.RecentActivity())
}
