package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sherpa-ai/sherpa-server/internal/domain"
)

func TestStartNewBecomesCurrentWithEmptyMessages(t *testing.T) {
	s := newConversationStore()

	conv := s.StartNew("Security Analysis Chat")

	require.NotEmpty(t, conv.ID)
	assert.Equal(t, "Security Analysis Chat", conv.Title)
	assert.Empty(t, conv.Messages)
	assert.False(t, conv.CreatedAt.IsZero())

	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, conv.ID, current.ID)

	// The conversation appears in the list exactly once.
	seen := 0
	for _, c := range s.List() {
		if c.ID == conv.ID {
			seen++
		}
	}
	assert.Equal(t, 1, seen)
}

func TestStartNewDefaultsTitle(t *testing.T) {
	s := newConversationStore()
	conv := s.StartNew("")
	assert.Equal(t, "New Conversation", conv.Title)
}

func TestAppendWithoutCurrentLeavesStoreUnchanged(t *testing.T) {
	s := newConversationStore()

	_, err := s.Append(domain.Message{Content: "hi", Sender: domain.SenderUser})
	require.ErrorIs(t, err, ErrNoCurrentConversation)

	assert.Zero(t, s.Len())
	assert.Empty(t, s.List())
}

func TestStartNewThenAppend(t *testing.T) {
	s := newConversationStore()

	s.StartNew("T")
	msg, err := s.Append(domain.Message{Content: "hi", Sender: domain.SenderUser})
	require.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
	assert.False(t, msg.Timestamp.IsZero())

	list := s.List()
	require.Len(t, list, 1)
	require.Len(t, list[0].Messages, 1)
	assert.Equal(t, "hi", list[0].Messages[0].Content)
}

func TestSelectSwitchesCurrent(t *testing.T) {
	s := newConversationStore()
	first := s.StartNew("first")
	s.StartNew("second")

	require.NoError(t, s.Select(first.ID))

	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, first.ID, current.ID)

	// Appends now land on the re-selected conversation.
	_, err := s.Append(domain.Message{Content: "back here", Sender: domain.SenderUser})
	require.NoError(t, err)
	list := s.List()
	require.Len(t, list, 2)
	assert.Len(t, list[0].Messages, 1)
	assert.Empty(t, list[1].Messages)
}

func TestSelectUnknownIDKeepsCurrent(t *testing.T) {
	s := newConversationStore()
	conv := s.StartNew("only")

	err := s.Select("missing")
	require.ErrorIs(t, err, ErrNotFound)

	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, conv.ID, current.ID)
}

func TestListReturnsDeepCopies(t *testing.T) {
	s := newConversationStore()
	s.StartNew("T")
	_, err := s.Append(domain.Message{Content: "original", Sender: domain.SenderUser})
	require.NoError(t, err)

	list := s.List()
	list[0].Messages[0].Content = "mutated"

	fresh := s.List()
	assert.Equal(t, "original", fresh[0].Messages[0].Content)
}
