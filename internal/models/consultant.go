package models

import (
	"time"

	"github.com/google/uuid"
)

// ConsultantProfile is the consultant side of the marketplace. Expertise and
// YearsExperience feed the matching engine; the rest is display data.
type ConsultantProfile struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Headline        string    `json:"headline"`
	Bio             *string   `json:"bio,omitempty"`
	Expertise       []string  `json:"expertise"`
	YearsExperience int       `json:"years_experience"`
	HourlyRate      *float64  `json:"hourly_rate,omitempty"`
	Languages       []string  `json:"languages"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (p *ConsultantProfile) Prepare() {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Expertise == nil {
		p.Expertise = []string{}
	}
	if p.Languages == nil {
		p.Languages = []string{}
	}
}
