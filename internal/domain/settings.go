package domain

// NotificationSettings controls how the user receives alerts.
type NotificationSettings struct {
	Email bool `json:"email"`
	Push  bool `json:"push"`
	SMS   bool `json:"sms"`
}

// SecuritySettings holds account security options. Timeout and expiry values
// are recorded as sent; no range validation is applied.
type SecuritySettings struct {
	TwoFactorAuth   bool `json:"twoFactorAuth"`
	SessionTimeout  int  `json:"sessionTimeout"`
	PasswordExpiry  int  `json:"passwordExpiry"`
}

// PreferenceSettings holds display and locale preferences.
type PreferenceSettings struct {
	Language   string `json:"language"`
	Timezone   string `json:"timezone"`
	DateFormat string `json:"dateFormat"`
}

// IntegrationSettings toggles third-party integrations.
type IntegrationSettings struct {
	Slack  bool `json:"slack"`
	Jira   bool `json:"jira"`
	GitHub bool `json:"github"`
}

// SettingsBundle groups the four independent settings sections.
type SettingsBundle struct {
	Notifications NotificationSettings `json:"notifications"`
	Security      SecuritySettings     `json:"security"`
	Preferences   PreferenceSettings   `json:"preferences"`
	Integrations  IntegrationSettings  `json:"integrations"`
}

// DefaultSettings returns the bundle every new session starts with.
func DefaultSettings() SettingsBundle {
	return SettingsBundle{
		Notifications: NotificationSettings{Email: true, Push: true, SMS: false},
		Security:      SecuritySettings{TwoFactorAuth: false, SessionTimeout: 30, PasswordExpiry: 90},
		Preferences:   PreferenceSettings{Language: "en", Timezone: "UTC", DateFormat: "MM/DD/YYYY"},
		Integrations:  IntegrationSettings{Slack: false, Jira: false, GitHub: false},
	}
}

// NotificationPatch is a partial notification-settings update.
type NotificationPatch struct {
	Email *bool `json:"email,omitempty"`
	Push  *bool `json:"push,omitempty"`
	SMS   *bool `json:"sms,omitempty"`
}

// Apply merges the present fields of the patch.
func (s *NotificationSettings) Apply(p NotificationPatch) {
	if p.Email != nil {
		s.Email = *p.Email
	}
	if p.Push != nil {
		s.Push = *p.Push
	}
	if p.SMS != nil {
		s.SMS = *p.SMS
	}
}

// SecurityPatch is a partial security-settings update.
type SecurityPatch struct {
	TwoFactorAuth  *bool `json:"twoFactorAuth,omitempty"`
	SessionTimeout *int  `json:"sessionTimeout,omitempty"`
	PasswordExpiry *int  `json:"passwordExpiry,omitempty"`
}

// Apply merges the present fields of the patch.
func (s *SecuritySettings) Apply(p SecurityPatch) {
	if p.TwoFactorAuth != nil {
		s.TwoFactorAuth = *p.TwoFactorAuth
	}
	if p.SessionTimeout != nil {
		s.SessionTimeout = *p.SessionTimeout
	}
	if p.PasswordExpiry != nil {
		s.PasswordExpiry = *p.PasswordExpiry
	}
}

// PreferencePatch is a partial preference-settings update.
type PreferencePatch struct {
	Language   *string `json:"language,omitempty"`
	Timezone   *string `json:"timezone,omitempty"`
	DateFormat *string `json:"dateFormat,omitempty"`
}

// Apply merges the present fields of the patch.
func (s *PreferenceSettings) Apply(p PreferencePatch) {
	if p.Language != nil {
		s.Language = *p.Language
	}
	if p.Timezone != nil {
		s.Timezone = *p.Timezone
	}
	if p.DateFormat != nil {
		s.DateFormat = *p.DateFormat
	}
}

// IntegrationPatch is a partial integration-settings update.
type IntegrationPatch struct {
	Slack  *bool `json:"slack,omitempty"`
	Jira   *bool `json:"jira,omitempty"`
	GitHub *bool `json:"github,omitempty"`
}

// Apply merges the present fields of the patch.
func (s *IntegrationSettings) Apply(p IntegrationPatch) {
	if p.Slack != nil {
		s.Slack = *p.Slack
	}
	if p.Jira != nil {
		s.Jira = *p.Jira
	}
	if p.GitHub != nil {
		s.GitHub = *p.GitHub
	}
}
