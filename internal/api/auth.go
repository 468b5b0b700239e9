package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sherpa-ai/sherpa-server/internal/domain"
	"github.com/sherpa-ai/sherpa-server/internal/identity"
)

// AuthHandler handles the mock login flow. The credential check is a plain
// string comparison against the configured demo account; it is not a
// security boundary and gated views are not server-enforced.
type AuthHandler struct {
	*Handler
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(base *Handler) *AuthHandler {
	return &AuthHandler{Handler: base}
}

// RegisterRoutes registers auth routes.
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Get("/me", h.Me)
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login checks the submitted credentials against the demo account and, on a
// match, records the authenticated session. There is no lockout or rate
// limiting.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Username != h.cfg.DemoUsername || req.Password != h.cfg.DemoPassword {
		slog.Info("Login rejected", "username", req.Username, "ip", identity.IPFromRequest(r))
		Error(w, http.StatusUnauthorized, "Invalid credentials. Use "+h.cfg.DemoUsername+"/"+h.cfg.DemoPassword)
		return
	}

	profile := domain.UserProfile{
		ID:       1,
		Username: h.cfg.DemoUsername,
		Email:    "admin@sherpa.ai",
		Role:     "Administrator",
	}
	h.session(r).Auth.Login(profile)

	slog.Info("Login successful", "username", req.Username)
	JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful! Welcome back to SHERPA.",
		"user":    profile,
	})
}

// Logout resets the session to its anonymous state.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.session(r).Auth.Logout()
	JSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}

// Me returns the current authentication state.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, h.session(r).Auth.Session())
}
