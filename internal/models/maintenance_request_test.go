package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaintenanceStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from    MaintenanceStatus
		to      MaintenanceStatus
		allowed bool
	}{
		{MaintenanceStatusNew, MaintenanceStatusInProgress, true},
		{MaintenanceStatusNew, MaintenanceStatusCancelled, true},
		{MaintenanceStatusNew, MaintenanceStatusCompleted, false},
		{MaintenanceStatusInProgress, MaintenanceStatusCompleted, true},
		{MaintenanceStatusInProgress, MaintenanceStatusCancelled, true},
		{MaintenanceStatusInProgress, MaintenanceStatusNew, false},
		{MaintenanceStatusCompleted, MaintenanceStatusInProgress, false},
		{MaintenanceStatusCompleted, MaintenanceStatusCancelled, false},
		{MaintenanceStatusCancelled, MaintenanceStatusNew, false},
		{MaintenanceStatusCancelled, MaintenanceStatusInProgress, false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestFrequency_Valid(t *testing.T) {
	assert.True(t, FrequencyMonthly.Valid())
	assert.True(t, FrequencyWeekly.Valid())
	assert.False(t, Frequency("daily").Valid())
	assert.False(t, Frequency("").Valid())
}

func TestMaintenancePriority_Valid(t *testing.T) {
	assert.True(t, MaintenancePriorityUrgent.Valid())
	assert.False(t, MaintenancePriority("asap").Valid())
}

func TestMaintenanceRequestPrepare_Defaults(t *testing.T) {
	m := &MaintenanceRequest{Title: "  Leaky faucet  "}
	m.Prepare()

	assert.Equal(t, "Leaky faucet", m.Title)
	assert.Equal(t, MaintenancePriorityNormal, m.Priority)
	assert.Equal(t, MaintenanceStatusNew, m.Status)
	assert.NotEmpty(t, m.ID)
}
