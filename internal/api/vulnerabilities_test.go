package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/sherpa-ai/sherpa-server/internal/assistant"
	"github.com/sherpa-ai/sherpa-server/internal/domain"
)

func TestVulnerabilityListSeeds(t *testing.T) {
	router, _ := newTestRouter(assistant.Echo{})

	w := doRequest(t, router, http.MethodGet, "/api/vulnerabilities/", "anon_u1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var got []domain.Vulnerability
	decodeBody(t, w, &got)
	if len(got) != 4 {
		t.Fatalf("Expected 4 seeded vulnerabilities, got %d", len(got))
	}
	if got[0].Name != "SQL Injection in Login Form" {
		t.Errorf("Unexpected first seed: %q", got[0].Name)
	}
}

func TestVulnerabilityListFilters(t *testing.T) {
	router, _ := newTestRouter(assistant.Echo{})

	w := doRequest(t, router, http.MethodGet, "/api/vulnerabilities/?q=sql", "anon_u1", nil)
	var got []domain.Vulnerability
	decodeBody(t, w, &got)
	if len(got) != 1 {
		t.Fatalf("Expected 1 match for q=sql, got %d", len(got))
	}

	w = doRequest(t, router, http.MethodGet, "/api/vulnerabilities/?severity=Critical", "anon_u1", nil)
	got = nil
	decodeBody(t, w, &got)
	for _, v := range got {
		if v.Severity != domain.SeverityCritical {
			t.Errorf("Expected only Critical entries, got %q", v.Severity)
		}
	}
}

func TestVulnerabilityCreateDefaults(t *testing.T) {
	router, _ := newTestRouter(assistant.Echo{})

	w := doRequest(t, router, http.MethodPost, "/api/vulnerabilities/", "anon_u1",
		map[string]string{"name": "Open Redirect", "severity": "Low"})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var created domain.Vulnerability
	decodeBody(t, w, &created)
	if created.ID <= 4 {
		t.Errorf("Expected an id above the seeds, got %d", created.ID)
	}
	if created.Status != domain.VulnStatusOpen {
		t.Errorf("Expected default Open status, got %q", created.Status)
	}
	if created.DateFound != time.Now().UTC().Format("2006-01-02") {
		t.Errorf("Expected today's date, got %q", created.DateFound)
	}

	// The new record lands at the end of the feed.
	w = doRequest(t, router, http.MethodGet, "/api/vulnerabilities/", "anon_u1", nil)
	var all []domain.Vulnerability
	decodeBody(t, w, &all)
	if all[len(all)-1].ID != created.ID {
		t.Error("Expected the new vulnerability at the end of the list")
	}
}

func TestVulnerabilityCreateRejectsBadInput(t *testing.T) {
	router, _ := newTestRouter(assistant.Echo{})

	w := doRequest(t, router, http.MethodPost, "/api/vulnerabilities/", "anon_u1",
		map[string]string{"severity": "Low"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for missing name, got %d", w.Code)
	}

	w = doRequest(t, router, http.MethodPost, "/api/vulnerabilities/", "anon_u1",
		map[string]string{"name": "X", "severity": "Catastrophic"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for unknown severity, got %d", w.Code)
	}
}

func TestVulnerabilityStats(t *testing.T) {
	router, _ := newTestRouter(assistant.Echo{})

	w := doRequest(t, router, http.MethodGet, "/api/vulnerabilities/stats", "anon_u1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var got struct {
		Total      int            `json:"total"`
		BySeverity map[string]int `json:"bySeverity"`
		ByStatus   map[string]int `json:"byStatus"`
	}
	decodeBody(t, w, &got)
	if got.Total != 4 {
		t.Errorf("Expected total 4, got %d", got.Total)
	}
	if got.BySeverity["Critical"] != 1 {
		t.Errorf("Expected 1 Critical seed, got %d", got.BySeverity["Critical"])
	}
}

func TestVulnerabilityActivityFeed(t *testing.T) {
	router, _ := newTestRouter(assistant.Echo{})

	w := doRequest(t, router, http.MethodGet, "/api/vulnerabilities/activity", "anon_u1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var got []domain.ActivityEntry
	decodeBody(t, w, &got)
	if len(got) == 0 {
		t.Error("Expected a non-empty activity feed")
	}
}
