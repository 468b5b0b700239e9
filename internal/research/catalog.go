// Package research provides the curated, read-only research and
// threat-intelligence catalogs shown in the research browser. The data is
// static seed content; nothing here is fetched or recomputed.
package research

import (
	"github.com/sherpa-ai/sherpa-server/internal/domain"
)

// Items returns the research database entries.
func Items() []domain.ResearchItem {
	return []domain.ResearchItem{
		{
			ID:             1,
			Title:          "CVE-2024-0001: Critical SQL Injection in Web Applications",
			Category:       "Vulnerability",
			Severity:       domain.SeverityCritical,
			Description:    "A critical SQL injection vulnerability affecting multiple web application frameworks.",
			Source:         "NIST NVD",
			Date:           "2024-01-15",
			Tags:           []string{"SQL Injection", "Web Security", "Critical"},
			PatchRiskNotes: "High impact on database integrity. Immediate patching required.",
			URL:            "https://nvd.nist.gov/vuln/detail/CVE-2024-0001",
		},
		{
			ID:             2,
			Title:          "Zero-Day Exploit in Popular CMS Platform",
			Category:       "Threat Intelligence",
			Severity:       domain.SeverityHigh,
			Description:    "Recently discovered zero-day exploit targeting content management systems.",
			Source:         "Security Research Lab",
			Date:           "2024-01-12",
			Tags:           []string{"Zero-Day", "CMS", "Exploit"},
			PatchRiskNotes: "No official patch available. Implement workarounds immediately.",
			URL:            "https://example.com/research/zero-day-cms",
		},
		{
			ID:             3,
			Title:          "Best Practices for Container Security",
			Category:       "Best Practices",
			Severity:       domain.SeverityMedium,
			Description:    "Comprehensive guide on securing containerized applications and infrastructure.",
			Source:         "Cloud Security Alliance",
			Date:           "2024-01-10",
			Tags:           []string{"Containers", "Docker", "Security"},
			PatchRiskNotes: "Implementation guidelines for enhanced container security posture.",
			URL:            "https://example.com/container-security-guide",
		},
		{
			ID:             4,
			Title:          "Emerging Ransomware Tactics and Mitigation",
			Category:       "Threat Intelligence",
			Severity:       domain.SeverityHigh,
			Description:    "Analysis of new ransomware attack vectors and defensive strategies.",
			Source:         "Cybersecurity Institute",
			Date:           "2024-01-08",
			Tags:           []string{"Ransomware", "Malware", "Defense"},
			PatchRiskNotes: "Update backup strategies and implement advanced threat detection.",
			URL:            "https://example.com/ransomware-analysis",
		},
	}
}

// Threats returns the current threat-intelligence entries.
func Threats() []domain.ThreatIndicator {
	return []domain.ThreatIndicator{
		{
			Threat:      "APT Group Activity",
			Severity:    domain.SeverityHigh,
			Description: "Increased activity from state-sponsored threat actors targeting infrastructure.",
			Indicators:  []string{"Suspicious network traffic", "Unusual login patterns", "File system modifications"},
		},
		{
			Threat:      "Phishing Campaign",
			Severity:    domain.SeverityMedium,
			Description: "Widespread phishing campaign targeting financial institutions.",
			Indicators:  []string{"Spoofed email domains", "Malicious attachments", "Social engineering"},
		},
		{
			Threat:      "Supply Chain Attack",
			Severity:    domain.SeverityCritical,
			Description: "Compromised software supply chain affecting multiple organizations.",
			Indicators:  []string{"Unauthorized code changes", "Suspicious dependencies", "Integrity violations"},
		},
	}
}

// Trends returns month-over-month attack-class movements for the analysis
// tab.
func Trends() []domain.TrendStat {
	return []domain.TrendStat{
		{Name: "SQL Injection Attacks", Direction: "up", Percent: 45},
		{Name: "Ransomware Activity", Direction: "up", Percent: 23},
		{Name: "Phishing Campaigns", Direction: "down", Percent: 12},
	}
}

// Insights returns the AI-generated analysis summaries.
func Insights() []string {
	return []string{
		"Critical vulnerabilities in web applications have increased by 45% this month. Focus on input validation and secure coding practices.",
		"Zero-day exploits targeting container environments are emerging. Implement runtime security monitoring.",
		"Supply chain attacks are becoming more sophisticated. Enhance vendor security assessments.",
		"AI-powered attacks are on the rise. Consider implementing AI-based defense mechanisms.",
	}
}

// Recommendations returns the AI project-management suggestions.
func Recommendations() []domain.Recommendation {
	return []domain.Recommendation{
		{Type: "Priority", Message: "Focus on SQL injection vulnerabilities first - they pose the highest risk", Confidence: 95},
		{Type: "Resource", Message: "Assign additional security engineer to Q1 Security Audit project", Confidence: 87},
		{Type: "Timeline", Message: "Infrastructure Hardening project may need 2 weeks extension", Confidence: 78},
	}
}

// RecentActivity returns the dashboard activity feed.
func RecentActivity() []domain.ActivityEntry {
	return []domain.ActivityEntry{
		{Text: "SQL Injection vulnerability detected in login form", AgoHours: 1},
		{Text: "XSS vulnerability patched in comment section", AgoHours: 2},
		{Text: "SSL certificate renewed for main domain", AgoHours: 3},
		{Text: "Security scan completed for production environment", AgoHours: 4},
	}
}
