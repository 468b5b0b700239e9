// Package domain contains core domain types for the SHERPA application.
package domain

// Severity classifies how dangerous a vulnerability or threat is.
type Severity string

const (
	SeverityCritical Severity = "Critical"
	SeverityHigh     Severity = "High"
	SeverityMedium   Severity = "Medium"
	SeverityLow      Severity = "Low"
)

// Valid reports whether s is one of the known severity levels.
func (s Severity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// VulnStatus tracks the remediation state of a vulnerability record.
type VulnStatus string

const (
	VulnStatusOpen       VulnStatus = "Open"
	VulnStatusInProgress VulnStatus = "In Progress"
	VulnStatusResolved   VulnStatus = "Resolved"
)

// Valid reports whether s is one of the known vulnerability statuses.
func (s VulnStatus) Valid() bool {
	switch s {
	case VulnStatusOpen, VulnStatusInProgress, VulnStatusResolved:
		return true
	}
	return false
}

// Vulnerability is a single tracked security finding. Records are created once
// and never edited in-session; there is no update path by design.
type Vulnerability struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Severity    Severity   `json:"severity"`
	Status      VulnStatus `json:"status"`
	Assignee    string     `json:"assignee"`
	DateFound   string     `json:"dateFound"`
}
