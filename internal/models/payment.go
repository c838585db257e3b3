package models

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusOverdue PaymentStatus = "overdue"
)

type Payment struct {
	ID          uuid.UUID     `json:"id"`
	LeaseID     uuid.UUID     `json:"lease_id"`
	PeriodStart time.Time     `json:"period_start"`
	PeriodEnd   time.Time     `json:"period_end"`
	DueDate     time.Time     `json:"due_date"`
	Amount      int64         `json:"amount"` // cents
	Status      PaymentStatus `json:"status"`
	PaidAt      *time.Time    `json:"paid_at,omitempty"`
	Method      *string       `json:"method,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (p *Payment) Prepare() {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = PaymentStatusPending
	}
}
