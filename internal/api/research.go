package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sherpa-ai/sherpa-server/internal/research"
	"github.com/sherpa-ai/sherpa-server/internal/view"
)

// ResearchHandler serves the intelligent-research browser: the curated
// research database, threat intelligence and the AI analysis tab. All data
// is static; only the filtering varies per request.
type ResearchHandler struct {
	*Handler
}

// NewResearchHandler creates a new research handler.
func NewResearchHandler(base *Handler) *ResearchHandler {
	return &ResearchHandler{Handler: base}
}

// RegisterRoutes registers research routes.
func (h *ResearchHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/research", func(r chi.Router) {
		r.Get("/", h.Search)
		r.Get("/threats", h.Threats)
		r.Get("/analysis", h.Analysis)
	})
}

// Search filters the research database by the q and category query
// parameters.
func (h *ResearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")
	results := view.FilterResearch(research.Items(), query, category)
	JSON(w, http.StatusOK, map[string]interface{}{
		"results": results,
		"count":   len(results),
	})
}

// Threats returns the current threat-intelligence entries.
func (h *ResearchHandler) Threats(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, research.Threats())
}

// Analysis returns the trend stats and AI-generated insights.
func (h *ResearchHandler) Analysis(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]interface{}{
		"trends":   research.Trends(),
		"insights": research.Insights(),
	})
}
