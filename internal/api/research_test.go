package api

import (
	"net/http"
	"testing"

	"github.com/sherpa-ai/sherpa-server/internal/assistant"
	"github.com/sherpa-ai/sherpa-server/internal/domain"
)

func TestResearchSearch(t *testing.T) {
	router, _ := newTestRouter(assistant.Echo{})

	w := doRequest(t, router, http.MethodGet, "/api/research/", "anon_u1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var got struct {
		Results []domain.ResearchItem `json:"results"`
		Count   int                   `json:"count"`
	}
	decodeBody(t, w, &got)
	if got.Count != 4 || len(got.Results) != 4 {
		t.Fatalf("Expected the full catalog of 4 entries, got count=%d len=%d", got.Count, len(got.Results))
	}
}

func TestResearchSearchFilters(t *testing.T) {
	router, _ := newTestRouter(assistant.Echo{})

	w := doRequest(t, router, http.MethodGet, "/api/research/?q=sql", "anon_u1", nil)
	var got struct {
		Results []domain.ResearchItem `json:"results"`
		Count   int                   `json:"count"`
	}
	decodeBody(t, w, &got)
	if got.Count != 1 {
		t.Fatalf("Expected 1 match for q=sql, got %d", got.Count)
	}

	w = doRequest(t, router, http.MethodGet, "/api/research/?category=Threat+Intelligence", "anon_u1", nil)
	got.Results = nil
	decodeBody(t, w, &got)
	if got.Count != 2 {
		t.Fatalf("Expected 2 threat-intelligence entries, got %d", got.Count)
	}
	for _, item := range got.Results {
		if item.Category != "Threat Intelligence" {
			t.Errorf("Expected only Threat Intelligence entries, got %q", item.Category)
		}
	}
}

func TestResearchThreats(t *testing.T) {
	router, _ := newTestRouter(assistant.Echo{})

	w := doRequest(t, router, http.MethodGet, "/api/research/threats", "anon_u1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var got []domain.ThreatIndicator
	decodeBody(t, w, &got)
	if len(got) != 3 {
		t.Errorf("Expected 3 threat entries, got %d", len(got))
	}
}

func TestResearchAnalysis(t *testing.T) {
	router, _ := newTestRouter(assistant.Echo{})

	w := doRequest(t, router, http.MethodGet, "/api/research/analysis", "anon_u1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var got struct {
		Trends   []domain.TrendStat `json:"trends"`
		Insights []string           `json:"insights"`
	}
	decodeBody(t, w, &got)
	if len(got.Trends) == 0 {
		t.Error("Expected trend stats in the analysis")
	}
	if len(got.Insights) == 0 {
		t.Error("Expected AI insights in the analysis")
	}
}
