// Package state holds the per-session dashboard state: five independent
// in-memory stores aggregated into one container. Stores never read each
// other's data and there is no cross-store transaction; each store serializes
// its own mutations and the last write wins.
package state

import (
	"errors"
	"sync/atomic"
)

// ErrNotFound is returned when an update or selection targets an id that is
// not present in the store.
var ErrNotFound = errors.New("state: record not found")

// ErrNoCurrentConversation is returned when a message is appended while no
// conversation is selected. Callers must start or select a conversation
// first; the message is never silently dropped.
var ErrNoCurrentConversation = errors.New("state: no current conversation")

// Sequence issues monotonically increasing record ids. Wall-clock derived ids
// can collide under rapid successive creation; a counter cannot.
type Sequence struct {
	last atomic.Int64
}

// NewSequence returns a sequence whose next id is start+1.
func NewSequence(start int64) *Sequence {
	s := &Sequence{}
	s.last.Store(start)
	return s
}

// Next returns the next id.
func (s *Sequence) Next() int64 {
	return s.last.Add(1)
}
