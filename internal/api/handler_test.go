package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sherpa-ai/sherpa-server/internal/assistant"
	"github.com/sherpa-ai/sherpa-server/internal/config"
	"github.com/sherpa-ai/sherpa-server/internal/identity"
	"github.com/sherpa-ai/sherpa-server/internal/state"
)

// newTestRouter wires every handler against a fresh registry, the way the
// server's composition root does.
func newTestRouter(provider assistant.Provider) (chi.Router, *state.Registry) {
	cfg := &config.Config{
		Port:         "8080",
		DemoUsername: "admin",
		DemoPassword: "password123",
		SessionTTL:   time.Hour,
		Gemini:       config.GeminiConfig{Timeout: 30 * time.Second},
	}
	registry := state.NewRegistry(cfg.SessionTTL)
	base := NewHandler(registry, cfg, provider)

	r := chi.NewRouter()
	NewAuthHandler(base).RegisterRoutes(r)
	NewVulnerabilityHandler(base).RegisterRoutes(r)
	NewProjectHandler(base).RegisterRoutes(r)
	NewConversationHandler(base).RegisterRoutes(r)
	NewResearchHandler(base).RegisterRoutes(r)
	NewSettingsHandler(base).RegisterRoutes(r)
	NewHealthHandler(base).RegisterHealth(r)
	return r, registry
}

// doRequest performs a request as the given anonymous browser identity and
// returns the recorded response.
func doRequest(t *testing.T, router chi.Router, method, target, userID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(identity.ContextWithUserID(req.Context(), userID))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
}

func TestJSON(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"foo": "bar"}

	JSON(w, http.StatusOK, data)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected application/json, got %q", ct)
	}

	var got map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if got["foo"] != "bar" {
		t.Errorf("Expected foo=bar, got %v", got["foo"])
	}
}

func TestNotImplementedShape(t *testing.T) {
	w := httptest.NewRecorder()
	NotImplemented(w, "Export")

	if w.Code != http.StatusNotImplemented {
		t.Errorf("Expected status 501, got %d", w.Code)
	}
	var got map[string]string
	decodeBody(t, w, &got)
	if got["error"] != "not_implemented" {
		t.Errorf("Expected not_implemented, got %q", got["error"])
	}
	if got["message"] != "🚧 Export isn't implemented yet." {
		t.Errorf("Unexpected stub message: %q", got["message"])
	}
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(assistant.Echo{})

	w := doRequest(t, router, http.MethodGet, "/health", "anon_health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var got map[string]interface{}
	decodeBody(t, w, &got)
	if got["status"] != "healthy" {
		t.Errorf("Expected healthy, got %v", got["status"])
	}
	if _, ok := got["uptime_seconds"]; !ok {
		t.Error("Expected uptime_seconds in health response")
	}
}
