package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sherpa-ai/sherpa-server/internal/assistant"
	"github.com/sherpa-ai/sherpa-server/internal/domain"
	"github.com/sherpa-ai/sherpa-server/internal/state"
)

// maxAttachmentBytes caps the decoded attachment text forwarded to the
// assistant. The file-picker hint on the page is advisory only, so the cap
// lives here.
const maxAttachmentBytes = 1 << 20

// ConversationHandler serves the conversational AI view: conversation
// management plus the chat round trip.
type ConversationHandler struct {
	*Handler
}

// NewConversationHandler creates a new conversation handler.
func NewConversationHandler(base *Handler) *ConversationHandler {
	return &ConversationHandler{Handler: base}
}

// RegisterRoutes registers conversation and chat routes.
func (h *ConversationHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/conversations", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.StartNew)
		r.Post("/current", h.Select)
		r.Post("/export", h.Export)
		r.Delete("/{id}", h.Delete)
	})
	r.Post("/api/chat", h.Chat)
}

// List returns every conversation plus the current selection.
func (h *ConversationHandler) List(w http.ResponseWriter, r *http.Request) {
	store := h.session(r).Conversations
	resp := map[string]interface{}{
		"conversations": store.List(),
	}
	if current, ok := store.Current(); ok {
		resp["currentId"] = current.ID
	}
	JSON(w, http.StatusOK, resp)
}

type startConversationRequest struct {
	Title string `json:"title"`
}

// StartNew creates a conversation and makes it current. An empty title gets
// a numbered default, matching the page's "Chat N" naming.
func (h *ConversationHandler) StartNew(w http.ResponseWriter, r *http.Request) {
	var req startConversationRequest
	if r.Body != nil {
		// An empty body is fine; the title is optional.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	store := h.session(r).Conversations
	if req.Title == "" && store.Len() > 0 {
		req.Title = fmt.Sprintf("Chat %d", store.Len()+1)
	}
	conv := store.StartNew(req.Title)
	JSON(w, http.StatusCreated, conv)
}

type selectConversationRequest struct {
	ID string `json:"id"`
}

// Select switches the current conversation. Unknown ids leave the selection
// untouched and report 404.
func (h *ConversationHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req selectConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.session(r).Conversations.Select(req.ID)
	if errors.Is(err, state.ErrNotFound) {
		Error(w, http.StatusNotFound, "conversation not found")
		return
	}
	if err != nil {
		Error(w, http.StatusInternalServerError, "failed to select conversation")
		return
	}
	JSON(w, http.StatusOK, map[string]string{"currentId": req.ID})
}

type chatAttachment struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type chatRequest struct {
	Message    string          `json:"message"`
	Attachment *chatAttachment `json:"attachment,omitempty"`
}

type chatResponse struct {
	ConversationID string         `json:"conversationId"`
	UserMessage    domain.Message `json:"userMessage"`
	AIMessage      domain.Message `json:"aiMessage"`
}

// Chat runs one round trip: the user message is appended synchronously, then
// the assistant reply (echo or Gemini) is appended when it resolves. With an
// attachment, its decoded text becomes the assistant input and its name the
// displayed user message. Requires a current conversation.
func (h *ConversationHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	display := req.Message
	input := req.Message
	if req.Attachment != nil {
		if len(req.Attachment.Content) > maxAttachmentBytes {
			Error(w, http.StatusRequestEntityTooLarge, "attachment too large")
			return
		}
		input = req.Attachment.Content
		if display == "" {
			display = req.Attachment.Name
		}
	}
	if display == "" {
		Error(w, http.StatusBadRequest, "message or attachment is required")
		return
	}

	store := h.session(r).Conversations
	userMsg, err := store.Append(domain.Message{Content: display, Sender: domain.SenderUser})
	if errors.Is(err, state.ErrNoCurrentConversation) {
		Error(w, http.StatusConflict, "no active conversation")
		return
	}
	if err != nil {
		Error(w, http.StatusInternalServerError, "failed to append message")
		return
	}

	reply, err := h.assistant.Reply(r.Context(), input)
	if err != nil {
		slog.Warn("Assistant call failed", "error", err)
		reply = assistant.FallbackError
	}

	aiMsg, err := store.Append(domain.Message{Content: reply, Sender: domain.SenderAI})
	if err != nil {
		// The conversation cannot disappear mid-exchange; selection only
		// changes through explicit requests on this same session.
		Error(w, http.StatusConflict, "no active conversation")
		return
	}

	current, _ := store.Current()
	JSON(w, http.StatusOK, chatResponse{
		ConversationID: current.ID,
		UserMessage:    userMsg,
		AIMessage:      aiMsg,
	})
}

// Export is a deliberate placeholder.
func (h *ConversationHandler) Export(w http.ResponseWriter, r *http.Request) {
	NotImplemented(w, "Export")
}

// Delete is a deliberate placeholder; conversations are never removed.
func (h *ConversationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	NotImplemented(w, "Delete")
}
