package state

import (
	"sync"

	"github.com/sherpa-ai/sherpa-server/internal/domain"
)

// SettingsStore holds the four independent settings groups. Each update is a
// shallow merge into its own group; groups never affect each other. Values
// are recorded as sent — there is no range validation, so a zero or negative
// session timeout is stored verbatim.
type SettingsStore struct {
	mu     sync.Mutex
	bundle domain.SettingsBundle
}

func newSettingsStore() *SettingsStore {
	return &SettingsStore{bundle: domain.DefaultSettings()}
}

// Snapshot returns the current settings bundle.
func (s *SettingsStore) Snapshot() domain.SettingsBundle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bundle
}

// UpdateNotifications merges the patch into the notifications group.
func (s *SettingsStore) UpdateNotifications(p domain.NotificationPatch) domain.NotificationSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bundle.Notifications.Apply(p)
	return s.bundle.Notifications
}

// UpdateSecurity merges the patch into the security group.
func (s *SettingsStore) UpdateSecurity(p domain.SecurityPatch) domain.SecuritySettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bundle.Security.Apply(p)
	return s.bundle.Security
}

// UpdatePreferences merges the patch into the preferences group.
func (s *SettingsStore) UpdatePreferences(p domain.PreferencePatch) domain.PreferenceSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bundle.Preferences.Apply(p)
	return s.bundle.Preferences
}

// UpdateIntegrations merges the patch into the integrations group.
func (s *SettingsStore) UpdateIntegrations(p domain.IntegrationPatch) domain.IntegrationSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bundle.Integrations.Apply(p)
	return s.bundle.Integrations
}
