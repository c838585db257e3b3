package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type PropertyStatus string

const (
	PropertyStatusActive   PropertyStatus = "active"
	PropertyStatusArchived PropertyStatus = "archived"
)

type Property struct {
	ID           uuid.UUID      `json:"id"`
	OwnerID      uuid.UUID      `json:"owner_id"`
	Name         string         `json:"name"`
	Address      string         `json:"address"`
	City         string         `json:"city"`
	State        string         `json:"state"`
	ZipCode      string         `json:"zip_code"`
	PropertyType string         `json:"property_type"` // 'residential', 'commercial' or 'mixed'
	Notes        *string        `json:"notes,omitempty"`
	Status       PropertyStatus `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (p *Property) Prepare() {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.Name = strings.TrimSpace(p.Name)
	if p.Status == "" {
		p.Status = PropertyStatusActive
	}
}

func (p *Property) IsArchived() bool {
	return p.Status == PropertyStatusArchived
}
