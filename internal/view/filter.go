// Package view implements the stateless filter predicates the dashboard
// views recompute on every change. Filters never mutate their input and are
// cheap enough to run per keystroke; list sizes stay small, so no index
// structure is kept.
package view

import (
	"strings"

	"github.com/sherpa-ai/sherpa-server/internal/domain"
)

// All is the sentinel selector that disables category/severity matching.
const All = "All"

// FilterVulnerabilities returns the vulnerabilities whose name or description
// contains query (case-insensitive) and whose severity matches the selector,
// unless the selector is All.
func FilterVulnerabilities(items []domain.Vulnerability, query, severity string) []domain.Vulnerability {
	q := strings.ToLower(query)
	out := make([]domain.Vulnerability, 0, len(items))
	for _, v := range items {
		if !matchesQuery(q, v.Name, v.Description) {
			continue
		}
		if severity != All && severity != "" && string(v.Severity) != severity {
			continue
		}
		out = append(out, v)
	}
	return out
}

// FilterResearch returns the research items whose title, description or any
// tag contains query (case-insensitive) and whose category matches the
// selector, unless the selector is All.
func FilterResearch(items []domain.ResearchItem, query, category string) []domain.ResearchItem {
	q := strings.ToLower(query)
	out := make([]domain.ResearchItem, 0, len(items))
	for _, item := range items {
		if !matchesQuery(q, item.Title, item.Description) && !matchesTags(q, item.Tags) {
			continue
		}
		if category != All && category != "" && item.Category != category {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesQuery(q string, fields ...string) bool {
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func matchesTags(q string, tags []string) bool {
	if q == "" {
		return true
	}
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
