package state

import (
	"sync"

	"github.com/sherpa-ai/sherpa-server/internal/domain"
)

// AuthStore records the authentication outcome for the session. The
// credential check itself is performed by the caller; this store only holds
// the resulting state. Anonymous -> authenticated on Login, back on Logout.
type AuthStore struct {
	mu      sync.Mutex
	session domain.AuthSession
}

func newAuthStore() *AuthStore {
	return &AuthStore{}
}

// Login marks the session authenticated with the given profile.
func (s *AuthStore) Login(profile domain.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = domain.AuthSession{IsAuthenticated: true, User: &profile}
}

// Logout resets the session to its initial anonymous state.
func (s *AuthStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = domain.AuthSession{}
}

// Session returns the current authentication state.
func (s *AuthStore) Session() domain.AuthSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session.User == nil {
		return domain.AuthSession{IsAuthenticated: s.session.IsAuthenticated}
	}
	user := *s.session.User
	return domain.AuthSession{IsAuthenticated: s.session.IsAuthenticated, User: &user}
}
