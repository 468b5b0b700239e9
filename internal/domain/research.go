package domain

// ResearchItem is a curated research entry: a CVE write-up, threat report or
// best-practice guide surfaced in the research browser.
type ResearchItem struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Category       string   `json:"category"`
	Severity       Severity `json:"severity"`
	Description    string   `json:"description"`
	Source         string   `json:"source"`
	Date           string   `json:"date"`
	Tags           []string `json:"tags"`
	PatchRiskNotes string   `json:"patchRiskNotes"`
	URL            string   `json:"url"`
}

// ThreatIndicator is a current threat-intelligence entry with its observed
// indicators of compromise.
type ThreatIndicator struct {
	Threat      string   `json:"threat"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
	Indicators  []string `json:"indicators"`
}

// Recommendation is an AI-generated project suggestion with a confidence score.
type Recommendation struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	Confidence int    `json:"confidence"`
}

// TrendStat is a month-over-month movement for one attack class.
type TrendStat struct {
	Name      string `json:"name"`
	Direction string `json:"direction"`
	Percent   int    `json:"percent"`
}

// ActivityEntry is one line of the dashboard recent-activity feed.
type ActivityEntry struct {
	Text     string `json:"text"`
	AgoHours int    `json:"agoHours"`
}
