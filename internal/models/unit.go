package models

import (
	"time"

	"github.com/google/uuid"
)

type UnitStatus string

const (
	UnitStatusVacant      UnitStatus = "vacant"
	UnitStatusOccupied    UnitStatus = "occupied"
	UnitStatusMaintenance UnitStatus = "maintenance"
)

type Unit struct {
	ID         uuid.UUID  `json:"id"`
	PropertyID uuid.UUID  `json:"property_id"`
	UnitNumber string     `json:"unit_number"`
	Floor      *int       `json:"floor,omitempty"`
	Bedrooms   *int       `json:"bedrooms,omitempty"`
	Bathrooms  *int       `json:"bathrooms,omitempty"`
	AreaSqft   *float64   `json:"area_sqft,omitempty"`
	MarketRent *int64     `json:"market_rent,omitempty"` // cents
	Status     UnitStatus `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (u *Unit) Prepare() {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Status == "" {
		u.Status = UnitStatusVacant
	}
}
