package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type MaintenanceStatus string

const (
	MaintenanceStatusNew        MaintenanceStatus = "new"
	MaintenanceStatusInProgress MaintenanceStatus = "in_progress"
	MaintenanceStatusCompleted  MaintenanceStatus = "completed"
	MaintenanceStatusCancelled  MaintenanceStatus = "cancelled"
)

// CanTransitionTo reports whether a request may move from s to next.
// Completed and cancelled are terminal.
func (s MaintenanceStatus) CanTransitionTo(next MaintenanceStatus) bool {
	switch s {
	case MaintenanceStatusNew:
		return next == MaintenanceStatusInProgress || next == MaintenanceStatusCancelled
	case MaintenanceStatusInProgress:
		return next == MaintenanceStatusCompleted || next == MaintenanceStatusCancelled
	}
	return false
}

type MaintenancePriority string

const (
	MaintenancePriorityLow    MaintenancePriority = "low"
	MaintenancePriorityNormal MaintenancePriority = "normal"
	MaintenancePriorityHigh   MaintenancePriority = "high"
	MaintenancePriorityUrgent MaintenancePriority = "urgent"
)

func (p MaintenancePriority) Valid() bool {
	switch p {
	case MaintenancePriorityLow, MaintenancePriorityNormal, MaintenancePriorityHigh, MaintenancePriorityUrgent:
		return true
	}
	return false
}

type MaintenanceRequest struct {
	ID          uuid.UUID           `json:"id"`
	PropertyID  uuid.UUID           `json:"property_id"`
	UnitID      *uuid.UUID          `json:"unit_id,omitempty"`
	TenantID    *uuid.UUID          `json:"tenant_id,omitempty"`
	VendorID    *uuid.UUID          `json:"vendor_id,omitempty"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Priority    MaintenancePriority `json:"priority"`
	Status      MaintenanceStatus   `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	CompletedAt *time.Time          `json:"completed_at,omitempty"`
}

func (m *MaintenanceRequest) Prepare() {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.Title = strings.TrimSpace(m.Title)
	if m.Priority == "" {
		m.Priority = MaintenancePriorityNormal
	}
	if m.Status == "" {
		m.Status = MaintenanceStatusNew
	}
}
