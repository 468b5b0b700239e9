package state

import (
	"sync"
	"time"

	"github.com/sherpa-ai/sherpa-server/internal/domain"
)

// seedSequenceStart leaves room above the highest seeded record id.
const seedSequenceStart = 100

// Container aggregates the five session stores. A container belongs to one
// anonymous browser identity; it is built by the composition root and handed
// to views explicitly, never reached through package globals.
type Container struct {
	Auth            *AuthStore
	Vulnerabilities *VulnerabilityStore
	Projects        *ProjectStore
	Conversations   *ConversationStore
	Settings        *SettingsStore

	mu       sync.Mutex
	lastSeen time.Time
}

// NewContainer returns a container seeded with the default mock data.
func NewContainer() *Container {
	seq := NewSequence(seedSequenceStart)
	return &Container{
		Auth:            newAuthStore(),
		Vulnerabilities: newVulnerabilityStore(seq, seedVulnerabilities()),
		Projects:        newProjectStore(seq, seedProjects()),
		Conversations:   newConversationStore(),
		Settings:        newSettingsStore(),
		lastSeen:        time.Now(),
	}
}

// Touch records activity, deferring TTL eviction.
func (c *Container) Touch() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastSeen = time.Now()
}

// LastSeen returns the time of the most recent request bound to this
// container.
func (c *Container) LastSeen() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSeen
}

func seedVulnerabilities() []domain.Vulnerability {
	return []domain.Vulnerability{
		{
			ID:          1,
			Name:        "SQL Injection in Login Form",
			Description: "User input in the login form is concatenated into SQL queries without sanitization.",
			Severity:    domain.SeverityCritical,
			Status:      domain.VulnStatusOpen,
			Assignee:    "John Doe",
			DateFound:   "2024-01-15",
		},
		{
			ID:          2,
			Name:        "Cross-Site Scripting in Comment Section",
			Description: "Stored XSS allows script injection through unescaped comment content.",
			Severity:    domain.SeverityHigh,
			Status:      domain.VulnStatusInProgress,
			Assignee:    "Jane Smith",
			DateFound:   "2024-01-12",
		},
		{
			ID:          3,
			Name:        "Expired SSL Certificate",
			Description: "The SSL certificate for the main domain expired and needs renewal.",
			Severity:    domain.SeverityMedium,
			Status:      domain.VulnStatusResolved,
			Assignee:    "Mike Johnson",
			DateFound:   "2024-01-10",
		},
		{
			ID:          4,
			Name:        "Weak Password Policy",
			Description: "Current password requirements do not enforce sufficient complexity.",
			Severity:    domain.SeverityLow,
			Status:      domain.VulnStatusOpen,
			Assignee:    "Sarah Wilson",
			DateFound:   "2024-01-08",
		},
	}
}

func seedProjects() []domain.Project {
	return []domain.Project{
		{
			ID:              1,
			Name:            "Q1 Security Audit",
			Status:          domain.ProjectStatusInProgress,
			Priority:        domain.PriorityHigh,
			Progress:        65,
			DueDate:         "2024-03-31",
			Assignees:       []string{"John Doe", "Jane Smith"},
			Vulnerabilities: 12,
			AIInsights:      "Critical SQL injection patterns detected. Recommend immediate patching.",
		},
		{
			ID:              2,
			Name:            "Infrastructure Hardening",
			Status:          domain.ProjectStatusPlanning,
			Priority:        domain.PriorityMedium,
			Progress:        25,
			DueDate:         "2024-04-15",
			Assignees:       []string{"Mike Johnson"},
			Vulnerabilities: 8,
			AIInsights:      "Network segmentation gaps identified. AI suggests firewall rule optimization.",
		},
		{
			ID:              3,
			Name:            "Compliance Review",
			Status:          domain.ProjectStatusCompleted,
			Priority:        domain.PriorityLow,
			Progress:        100,
			DueDate:         "2024-02-28",
			Assignees:       []string{"Sarah Wilson", "Tom Brown"},
			Vulnerabilities: 3,
			AIInsights:      "All compliance requirements met. Minimal security gaps detected.",
		},
	}
}
