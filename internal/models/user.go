package models

import (
	"html"
	"strings"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	Password     string     `json:"password,omitempty"` // request body only, never persisted
	PasswordHash string     `json:"-"`
	FullName     string     `json:"full_name"`
	Role         string     `json:"role"` // 'owner' or 'admin'
	CreatedAt    time.Time  `json:"created_at"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

func (u *User) Prepare() {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.Email = html.EscapeString(strings.TrimSpace(strings.ToLower(u.Email)))
	u.FullName = strings.TrimSpace(u.FullName)
	if u.Role == "" {
		u.Role = "owner"
	}
}
