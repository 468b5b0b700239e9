package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sherpa-ai/sherpa-server/internal/domain"
	"github.com/sherpa-ai/sherpa-server/internal/research"
	"github.com/sherpa-ai/sherpa-server/internal/state"
)

// ProjectHandler serves the AI project-management view.
type ProjectHandler struct {
	*Handler
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(base *Handler) *ProjectHandler {
	return &ProjectHandler{Handler: base}
}

// RegisterRoutes registers project routes.
func (h *ProjectHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/projects", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Patch("/{id}", h.Update)
		r.Get("/recommendations", h.Recommendations)
	})
}

// List returns all projects, newest first.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, h.session(r).Projects.List())
}

type createProjectRequest struct {
	Name      string          `json:"name"`
	DueDate   string          `json:"dueDate"`
	Priority  domain.Priority `json:"priority"`
	Assignees string          `json:"assignees"`
}

// parseAssignees turns the form's comma-separated names into a trimmed,
// non-empty ordered list. This is the only place the ad hoc split happens.
func parseAssignees(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// Create starts a new project in the Planning state. New projects land at
// the head of the list.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		Error(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Priority == "" {
		req.Priority = domain.PriorityMedium
	}
	if !req.Priority.Valid() {
		Error(w, http.StatusBadRequest, "unknown priority")
		return
	}

	created := h.session(r).Projects.Add(domain.Project{
		Name:            req.Name,
		Status:          domain.ProjectStatusPlanning,
		Priority:        req.Priority,
		Progress:        0,
		DueDate:         req.DueDate,
		Assignees:       parseAssignees(req.Assignees),
		Vulnerabilities: 0,
		AIInsights:      "Awaiting initial scan and analysis.",
	})

	slog.Info("Project created", "project_id", created.ID, "name", created.Name)
	JSON(w, http.StatusCreated, created)
}

// Update merges a partial patch into the identified project. Unknown ids are
// a 404, not a silent no-op.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid project id")
		return
	}

	var patch domain.ProjectPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if patch.Status != nil && !patch.Status.Valid() {
		Error(w, http.StatusBadRequest, "unknown status")
		return
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		Error(w, http.StatusBadRequest, "unknown priority")
		return
	}

	updated, err := h.session(r).Projects.Update(id, patch)
	if errors.Is(err, state.ErrNotFound) {
		Error(w, http.StatusNotFound, "project not found")
		return
	}
	if err != nil {
		Error(w, http.StatusInternalServerError, "failed to update project")
		return
	}
	JSON(w, http.StatusOK, updated)
}

// Recommendations returns the AI project suggestions feed.
func (h *ProjectHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, research.Recommendations())
}
