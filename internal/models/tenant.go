package models

import (
	"html"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Tenant struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Tenant) Prepare() {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	t.FullName = strings.TrimSpace(t.FullName)
	t.Email = html.EscapeString(strings.TrimSpace(strings.ToLower(t.Email)))
}
