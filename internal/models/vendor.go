package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Vendor struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"` // e.g. 'plumbing', 'electrical', 'cleaning'
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (v *Vendor) Prepare() {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	v.Name = strings.TrimSpace(v.Name)
	v.Category = strings.ToLower(strings.TrimSpace(v.Category))
}
