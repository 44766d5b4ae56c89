package models

import (
	"time"

	"github.com/google/uuid"
)

type MatchStatus string

const (
	MatchPending   MatchStatus = "pending"
	MatchAccepted  MatchStatus = "accepted"
	MatchRejected  MatchStatus = "rejected"
	MatchCompleted MatchStatus = "completed"
)

// ProjectMatch joins one project to one consultant with the score computed at
// project creation. MatchScore is never recomputed after insert.
type ProjectMatch struct {
	ID           uuid.UUID   `json:"id"`
	ProjectID    uuid.UUID   `json:"project_id"`
	ConsultantID uuid.UUID   `json:"consultant_id"`
	MatchScore   float64     `json:"match_score"`
	Status       MatchStatus `json:"status"`
	Proposal     *string     `json:"proposal,omitempty"`
	Price        *float64    `json:"price,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func (m *ProjectMatch) Prepare() {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Status == "" {
		m.Status = MatchPending
	}
}

// ConsultantMatch is a match paired with its project, as returned by the
// consultant-facing listing.
type ConsultantMatch struct {
	Match   ProjectMatch `json:"match"`
	Project Project      `json:"project"`
}
