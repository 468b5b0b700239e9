// SHERPA - AI vulnerability management dashboard server
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/sherpa-ai/sherpa-server/internal/api"
	"github.com/sherpa-ai/sherpa-server/internal/assistant"
	"github.com/sherpa-ai/sherpa-server/internal/config"
	"github.com/sherpa-ai/sherpa-server/internal/identity"
	"github.com/sherpa-ai/sherpa-server/internal/middleware"
	"github.com/sherpa-ai/sherpa-server/internal/state"
	"github.com/sherpa-ai/sherpa-server/web"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting server", "port", cfg.Port, "dev", cfg.IsDevelopment())

	// Per-browser state containers with idle eviction.
	registry := state.NewRegistry(cfg.SessionTTL)

	// Chat provider: Gemini when a key is configured, local echo otherwise.
	var provider assistant.Provider
	if cfg.Gemini.APIKey != "" {
		provider = assistant.NewGemini(cfg.Gemini.Endpoint, cfg.Gemini.APIKey, cfg.Gemini.Timeout)
		slog.Info("Assistant provider: gemini", "endpoint", cfg.Gemini.Endpoint)
	} else {
		provider = assistant.Echo{}
		slog.Info("Assistant provider: echo (GEMINI_API_KEY not set)")
	}

	// Initialize handlers.
	base := api.NewHandler(registry, cfg, provider)
	authHandler := api.NewAuthHandler(base)
	vulnHandler := api.NewVulnerabilityHandler(base)
	projectHandler := api.NewProjectHandler(base)
	convHandler := api.NewConversationHandler(base)
	researchHandler := api.NewResearchHandler(base)
	settingsHandler := api.NewSettingsHandler(base)
	healthHandler := api.NewHealthHandler(base)
	chatSocket := api.NewChatSocketHandler(base, cfg.FrontendURL, cfg.IsDevelopment())

	// Setup router.
	r := chi.NewRouter()

	// Global middleware.
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/ping"))
	r.Use(middleware.CORS([]string{"*"}))
	r.Use(identity.Middleware(cfg.IsDevelopment()))

	// Public routes.
	healthHandler.RegisterHealth(r)

	// Dashboard API. Identity middleware binds each request to its own
	// state container; auth gating stays advisory (spec'd mock login).
	authHandler.RegisterRoutes(r)
	vulnHandler.RegisterRoutes(r)
	projectHandler.RegisterRoutes(r)
	convHandler.RegisterRoutes(r)
	researchHandler.RegisterRoutes(r)
	settingsHandler.RegisterRoutes(r)

	// WebSocket chat endpoint.
	r.Get("/ws/chat", chatSocket.ServeHTTP)

	// Serve embedded frontend (SPA catch-all).
	r.Handle("/*", web.SPAHandler())

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0, // WebSocket chat connections stay open
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start idle-session sweeper.
	registry.StartSweeper(ctx)
	slog.Info("Session sweeper started", "session_ttl", cfg.SessionTTL)

	// Start server.
	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal.
	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped successfully")
}
