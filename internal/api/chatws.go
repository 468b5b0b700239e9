package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"

	"github.com/sherpa-ai/sherpa-server/internal/assistant"
	"github.com/sherpa-ai/sherpa-server/internal/domain"
	"github.com/sherpa-ai/sherpa-server/internal/identity"
	"github.com/sherpa-ai/sherpa-server/internal/state"
)

// ChatSocketHandler handles the WebSocket chat channel. It mirrors the POST
// /api/chat round trip but frames the typing indicator and the assistant
// reply separately, so the page can animate between them.
type ChatSocketHandler struct {
	*Handler
	allowedOrigin string
	isDev         bool
}

// NewChatSocketHandler creates a new WebSocket chat handler.
func NewChatSocketHandler(base *Handler, allowedOrigin string, isDev bool) *ChatSocketHandler {
	return &ChatSocketHandler{
		Handler:       base,
		allowedOrigin: allowedOrigin,
		isDev:         isDev,
	}
}

// chatInbound is a client frame.
type chatInbound struct {
	Type    string `json:"type"`
	Content string `json:"content,omitempty"`
}

// chatOutbound is a server frame. Type is one of "user", "typing", "ai" or
// "error".
type chatOutbound struct {
	Type    string          `json:"type"`
	Message *domain.Message `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// ServeHTTP implements http.Handler for WebSocket upgrade.
func (h *ChatSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	slog.Info("Chat socket connection request", "user_id", userID, "ip", identity.IPFromRequest(r))

	if !h.checkOrigin(r) {
		http.Error(w, "origin not allowed", http.StatusForbidden)
		return
	}

	ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		slog.Error("Failed to accept WebSocket", "error", err, "user_id", userID)
		return
	}
	defer func() {
		if closeErr := ws.Close(websocket.StatusNormalClosure, "chat ended"); closeErr != nil {
			slog.Debug("Failed to close websocket", "error", closeErr, "user_id", userID)
		}
	}()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	store := h.session(r).Conversations
	for {
		_, data, err := ws.Read(ctx)
		if err != nil {
			slog.Debug("Chat socket closed", "user_id", userID, "error", err)
			return
		}

		var in chatInbound
		if err := json.Unmarshal(data, &in); err != nil {
			h.writeFrame(ctx, ws, chatOutbound{Type: "error", Error: "invalid_frame"})
			continue
		}
		if in.Type != "message" {
			h.writeFrame(ctx, ws, chatOutbound{Type: "error", Error: "unknown_type"})
			continue
		}
		if in.Content == "" {
			h.writeFrame(ctx, ws, chatOutbound{Type: "error", Error: "empty_message"})
			continue
		}

		h.exchange(ctx, ws, store, in.Content)
	}
}

// exchange runs one user/assistant round trip over the socket.
func (h *ChatSocketHandler) exchange(ctx context.Context, ws *websocket.Conn, store *state.ConversationStore, content string) {
	userMsg, err := store.Append(domain.Message{Content: content, Sender: domain.SenderUser})
	if err != nil {
		h.writeFrame(ctx, ws, chatOutbound{Type: "error", Error: "no_active_conversation"})
		return
	}
	h.writeFrame(ctx, ws, chatOutbound{Type: "user", Message: &userMsg})
	h.writeFrame(ctx, ws, chatOutbound{Type: "typing"})

	reply, err := h.assistant.Reply(ctx, content)
	if err != nil {
		slog.Warn("Assistant call failed", "error", err)
		reply = assistant.FallbackError
	}

	aiMsg, err := store.Append(domain.Message{Content: reply, Sender: domain.SenderAI})
	if err != nil {
		h.writeFrame(ctx, ws, chatOutbound{Type: "error", Error: "no_active_conversation"})
		return
	}
	h.writeFrame(ctx, ws, chatOutbound{Type: "ai", Message: &aiMsg})
}

func (h *ChatSocketHandler) writeFrame(ctx context.Context, ws *websocket.Conn, frame chatOutbound) {
	data, err := json.Marshal(frame)
	if err != nil {
		slog.Debug("Failed to encode chat frame", "error", err)
		return
	}
	if err := ws.Write(ctx, websocket.MessageText, data); err != nil {
		slog.Debug("Chat socket write failed", "error", err)
	}
}

func (h *ChatSocketHandler) checkOrigin(r *http.Request) bool {
	if h.isDev {
		return true
	}
	origin := r.Header.Get("Origin")
	return origin == "" || origin == h.allowedOrigin
}
