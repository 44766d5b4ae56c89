package models

import (
	"time"

	"github.com/google/uuid"
)

type ProjectStatus string

const (
	ProjectOpen       ProjectStatus = "open"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectCancelled  ProjectStatus = "cancelled"
)

type Project struct {
	ID           uuid.UUID     `json:"id"`
	OwnerID      uuid.UUID     `json:"owner_id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Requirements string        `json:"requirements"`
	Budget       *float64      `json:"budget,omitempty"`
	Deadline     *time.Time    `json:"deadline,omitempty"`
	Status       ProjectStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func (p *Project) Prepare() {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = ProjectOpen
	}
}

// ProjectPatch is a partial update: only non-nil fields are applied.
type ProjectPatch struct {
	Title        *string    `json:"title,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Requirements *string    `json:"requirements,omitempty"`
	Budget       *float64   `json:"budget,omitempty"`
	Deadline     *time.Time `json:"deadline,omitempty"`
}

func (p ProjectPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Requirements == nil &&
		p.Budget == nil && p.Deadline == nil
}

func (p ProjectPatch) Apply(project *Project) {
	if p.Title != nil {
		project.Title = *p.Title
	}
	if p.Description != nil {
		project.Description = *p.Description
	}
	if p.Requirements != nil {
		project.Requirements = *p.Requirements
	}
	if p.Budget != nil {
		project.Budget = p.Budget
	}
	if p.Deadline != nil {
		project.Deadline = p.Deadline
	}
}
