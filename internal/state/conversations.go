package state

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sherpa-ai/sherpa-server/internal/domain"
)

// ConversationStore holds every conversation started in the session plus the
// id of the one currently receiving messages. Conversations are never
// archived or removed; the list only grows.
type ConversationStore struct {
	mu        sync.Mutex
	items     []*domain.Conversation
	currentID string
}

func newConversationStore() *ConversationStore {
	return &ConversationStore{}
}

// StartNew creates a conversation with an empty message list, appends it to
// the conversation list and makes it current. An empty title defaults to
// "New Conversation".
func (s *ConversationStore) StartNew(title string) domain.Conversation {
	if title == "" {
		title = "New Conversation"
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	conv := &domain.Conversation{
		ID:        uuid.NewString(),
		Title:     title,
		Messages:  []domain.Message{},
		CreatedAt: time.Now().UTC(),
	}
	s.items = append(s.items, conv)
	s.currentID = conv.ID
	return cloneConversation(conv)
}

// Append adds a message to the current conversation, filling in its id and
// timestamp. Without a current conversation it returns
// ErrNoCurrentConversation and stores nothing.
func (s *ConversationStore) Append(msg domain.Message) (domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv := s.findLocked(s.currentID)
	if conv == nil {
		return domain.Message{}, ErrNoCurrentConversation
	}
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now().UTC()
	}
	conv.Messages = append(conv.Messages, msg)
	return msg, nil
}

// Select makes the conversation with the given id current. An unknown id
// returns ErrNotFound and leaves the current selection untouched.
func (s *ConversationStore) Select(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findLocked(id) == nil {
		return ErrNotFound
	}
	s.currentID = id
	return nil
}

// Current returns a copy of the current conversation, if any.
func (s *ConversationStore) Current() (domain.Conversation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv := s.findLocked(s.currentID)
	if conv == nil {
		return domain.Conversation{}, false
	}
	return cloneConversation(conv), true
}

// List returns copies of all conversations in creation order.
func (s *ConversationStore) List() []domain.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Conversation, 0, len(s.items))
	for _, conv := range s.items {
		out = append(out, cloneConversation(conv))
	}
	return out
}

// Len returns the number of conversations.
func (s *ConversationStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *ConversationStore) findLocked(id string) *domain.Conversation {
	if id == "" {
		return nil
	}
	for _, conv := range s.items {
		if conv.ID == id {
			return conv
		}
	}
	return nil
}

func cloneConversation(conv *domain.Conversation) domain.Conversation {
	out := *conv
	out.Messages = make([]domain.Message, len(conv.Messages))
	copy(out.Messages, conv.Messages)
	return out
}
