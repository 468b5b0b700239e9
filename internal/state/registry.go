package state

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Registry maps anonymous user ids to their state containers. Containers are
// created on first use and evicted after sitting idle past the TTL, matching
// the reset-on-reload behavior of a memory-only dashboard.
type Registry struct {
	mu         sync.RWMutex
	containers map[string]*Container
	ttl        time.Duration
}

// NewRegistry creates a registry with the given idle TTL.
func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		containers: make(map[string]*Container),
		ttl:        ttl,
	}
}

// Get returns the container for the user, creating and seeding one on first
// use. Every call counts as activity.
func (r *Registry) Get(userID string) *Container {
	r.mu.RLock()
	c, ok := r.containers[userID]
	r.mu.RUnlock()
	if ok {
		c.Touch()
		return c
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.containers[userID]; ok {
		c.Touch()
		return c
	}
	c = NewContainer()
	r.containers[userID] = c
	slog.Info("Session state created", "user_id", userID)
	return c
}

// Len returns the number of live containers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.containers)
}

// sweep evicts containers idle longer than the TTL and returns the count.
func (r *Registry) sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	evicted := 0
	for userID, c := range r.containers {
		if now.Sub(c.LastSeen()) > r.ttl {
			delete(r.containers, userID)
			evicted++
			slog.Info("Session state evicted", "user_id", userID, "idle", now.Sub(c.LastSeen()))
		}
	}
	return evicted
}

// StartSweeper runs TTL eviction in the background until ctx is canceled.
// The check interval is a fraction of the TTL, bounded below at one minute.
func (r *Registry) StartSweeper(ctx context.Context) {
	interval := r.ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				slog.Info("Session sweeper stopped")
				return
			case now := <-ticker.C:
				if n := r.sweep(now); n > 0 {
					slog.Info("Session sweep complete", "evicted", n, "remaining", r.Len())
				}
			}
		}
	}()
}
