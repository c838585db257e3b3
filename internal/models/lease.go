package models

import (
	"time"

	"github.com/google/uuid"
)

type LeaseStatus string

const (
	LeaseStatusActive     LeaseStatus = "active"
	LeaseStatusTerminated LeaseStatus = "terminated"
	LeaseStatusExpired    LeaseStatus = "expired"
)

// Frequency is the rent billing cadence of a lease.
type Frequency string

const (
	FrequencyWeekly    Frequency = "weekly"
	FrequencyBiweekly  Frequency = "biweekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

// Valid reports whether f is a known billing cadence.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly, FrequencyQuarterly, FrequencyYearly:
		return true
	}
	return false
}

type Lease struct {
	ID            uuid.UUID   `json:"id"`
	UnitID        uuid.UUID   `json:"unit_id"`
	TenantID      uuid.UUID   `json:"tenant_id"`
	StartDate     time.Time   `json:"start_date"`
	EndDate       *time.Time  `json:"end_date,omitempty"`
	RentAmount    int64       `json:"rent_amount"`    // cents
	DepositAmount int64       `json:"deposit_amount"` // cents
	Frequency     Frequency   `json:"frequency"`
	Status        LeaseStatus `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
}

func (l *Lease) Prepare() {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.Frequency == "" {
		l.Frequency = FrequencyMonthly
	}
	if l.Status == "" {
		l.Status = LeaseStatusActive
	}
}

func (l *Lease) IsActive() bool {
	return l.Status == LeaseStatusActive
}
