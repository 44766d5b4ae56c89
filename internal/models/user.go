package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleSME        = "sme"
	RoleConsultant = "consultant"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Password     string    `json:"password,omitempty"` // plain password from request body, never persisted
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"` // 'sme' or 'consultant'
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) Prepare() {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = RoleSME
	}
}
