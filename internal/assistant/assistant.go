// Package assistant implements the chat reply providers: a local echo bot
// and a client for a Gemini-style text-generation endpoint.
package assistant

import (
	"context"
	"fmt"
)

// Fallback replies used when the remote provider misbehaves. Provider
// failures are user-visible text, never fatal errors.
const (
	FallbackEmpty = "No response from Gemini."
	FallbackError = "Error contacting Gemini API."
)

// Provider produces the assistant's reply to a user message.
type Provider interface {
	// Reply returns the assistant text for the given input. A returned
	// error means the provider could not be reached at all; callers
	// substitute FallbackError rather than surfacing it.
	Reply(ctx context.Context, text string) (string, error)
}

// Echo is the local bot used when no remote provider is configured. It
// repeats the user's input back.
type Echo struct{}

// Reply implements Provider.
func (Echo) Reply(_ context.Context, text string) (string, error) {
	return fmt.Sprintf("🤖 Bot: You said: %q", text), nil
}
