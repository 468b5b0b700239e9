package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sherpa-ai/sherpa-server/internal/domain"
)

func TestVulnerabilityStoreSeeds(t *testing.T) {
	c := NewContainer()
	items := c.Vulnerabilities.List()

	require.Len(t, items, 4)
	assert.Equal(t, "SQL Injection in Login Form", items[0].Name)
	assert.Equal(t, domain.SeverityCritical, items[0].Severity)
}

func TestVulnerabilityStoreAddAppends(t *testing.T) {
	c := NewContainer()

	created := c.Vulnerabilities.Add(domain.Vulnerability{
		Name:     "Open Redirect",
		Severity: domain.SeverityLow,
		Status:   domain.VulnStatusOpen,
	})

	items := c.Vulnerabilities.List()
	require.Len(t, items, 5)
	// Append order: new records land at the end, unlike projects.
	assert.Equal(t, created.ID, items[4].ID)
	assert.Greater(t, created.ID, int64(4))

	got, ok := c.Vulnerabilities.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Open Redirect", got.Name)
}

func TestVulnerabilityStatsRecomputed(t *testing.T) {
	c := NewContainer()

	stats := c.Vulnerabilities.Stats()
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.BySeverity[domain.SeverityCritical])
	assert.Equal(t, 2, stats.ByStatus[domain.VulnStatusOpen])
	assert.Equal(t, 1, stats.ByStatus[domain.VulnStatusResolved])

	c.Vulnerabilities.Add(domain.Vulnerability{
		Name:     "Another Critical",
		Severity: domain.SeverityCritical,
		Status:   domain.VulnStatusOpen,
	})

	stats = c.Vulnerabilities.Stats()
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 2, stats.BySeverity[domain.SeverityCritical])
	assert.Equal(t, 3, stats.ByStatus[domain.VulnStatusOpen])
}
