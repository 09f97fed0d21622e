package domain

import (
	"strings"
	"time"
)

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusOnHold    ProjectStatus = "on-hold"
)

// ValidProjectStatus reports whether s is a known project status.
func ValidProjectStatus(s ProjectStatus) bool {
	switch s {
	case ProjectStatusActive, ProjectStatusCompleted, ProjectStatusOnHold:
		return true
	}
	return false
}

type Milestone struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
	Date      Date   `json:"date"`
}

type Project struct {
	ID          string        `json:"id"`
	ClientID    string        `json:"clientId"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	StartDate   Date          `json:"startDate"`
	EndDate     Date          `json:"endDate"`
	Status      ProjectStatus `json:"status"`
	Progress    int           `json:"progress"`
	Milestones  []Milestone   `json:"milestones,omitempty"`
	CreatedAt   time.Time     `json:"createdAt,omitzero"`
}

// NewProject creates a new active project
func NewProject(clientID, name string) *Project {
	return &Project{
		ClientID: clientID,
		Name:     strings.TrimSpace(name),
		Status:   ProjectStatusActive,
	}
}

// CompletedMilestones returns how many milestones are done.
func (p *Project) CompletedMilestones() int {
	n := 0
	for _, m := range p.Milestones {
		if m.Completed {
			n++
		}
	}
	return n
}

// Validate returns an error if the project is invalid
func (p *Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return NewValidationError("name", "project name is required")
	}
	if p.ClientID == "" {
		return NewValidationError("clientId", "client is required")
	}
	if p.Progress < 0 || p.Progress > 100 {
		return NewValidationError("progress", "progress must be between 0 and 100")
	}
	if !ValidProjectStatus(p.Status) {
		return NewValidationError("status", "unknown project status")
	}
	if !p.StartDate.IsZero() && !p.EndDate.IsZero() && p.EndDate.Before(p.StartDate.Time) {
		return NewValidationError("endDate", "end date cannot be before start date")
	}
	return nil
}

// Clone returns a deep copy of the project.
func (p *Project) Clone() *Project {
	cp := *p
	if p.Milestones != nil {
		cp.Milestones = append([]Milestone(nil), p.Milestones...)
	}
	return &cp
}
