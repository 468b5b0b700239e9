package domain

// ProjectStatus tracks the lifecycle stage of a remediation project.
type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "Planning"
	ProjectStatusInProgress ProjectStatus = "In Progress"
	ProjectStatusCompleted  ProjectStatus = "Completed"
)

// Valid reports whether s is one of the known project statuses.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusInProgress, ProjectStatusCompleted:
		return true
	}
	return false
}

// Priority ranks how urgently a project needs attention.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Project is a security remediation project with its AI-generated insight.
// Assignees are denormalized display names, not references to user records.
type Project struct {
	ID              int64         `json:"id"`
	Name            string        `json:"name"`
	Status          ProjectStatus `json:"status"`
	Priority        Priority      `json:"priority"`
	Progress        int           `json:"progress"`
	DueDate         string        `json:"dueDate"`
	Assignees       []string      `json:"assignees"`
	Vulnerabilities int           `json:"vulnerabilities"`
	AIInsights      string        `json:"aiInsights"`
}

// ProjectPatch is a partial project update. Nil fields are left untouched.
type ProjectPatch struct {
	Name            *string        `json:"name,omitempty"`
	Status          *ProjectStatus `json:"status,omitempty"`
	Priority        *Priority      `json:"priority,omitempty"`
	Progress        *int           `json:"progress,omitempty"`
	DueDate         *string        `json:"dueDate,omitempty"`
	Assignees       []string       `json:"assignees,omitempty"`
	Vulnerabilities *int           `json:"vulnerabilities,omitempty"`
	AIInsights      *string        `json:"aiInsights,omitempty"`
}

// Apply merges the present fields of patch into the project.
func (p *Project) Apply(patch ProjectPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Priority != nil {
		p.Priority = *patch.Priority
	}
	if patch.Progress != nil {
		p.Progress = *patch.Progress
	}
	if patch.DueDate != nil {
		p.DueDate = *patch.DueDate
	}
	if patch.Assignees != nil {
		p.Assignees = patch.Assignees
	}
	if patch.Vulnerabilities != nil {
		p.Vulnerabilities = *patch.Vulnerabilities
	}
	if patch.AIInsights != nil {
		p.AIInsights = *patch.AIInsights
	}
}
