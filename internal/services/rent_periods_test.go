package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PrassV/Propo-Staging-sub002/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextPeriodStart(t *testing.T) {
	start := date(2025, time.March, 15)

	tests := []struct {
		freq models.Frequency
		want time.Time
	}{
		{models.FrequencyWeekly, date(2025, time.March, 22)},
		{models.FrequencyBiweekly, date(2025, time.March, 29)},
		{models.FrequencyMonthly, date(2025, time.April, 15)},
		{models.FrequencyQuarterly, date(2025, time.June, 15)},
		{models.FrequencyYearly, date(2026, time.March, 15)},
	}

	for _, tc := range tests {
		t.Run(string(tc.freq), func(t *testing.T) {
			assert.Equal(t, tc.want, NextPeriodStart(start, tc.freq))
		})
	}
}

func TestGeneratePeriods_Monthly(t *testing.T) {
	start := date(2025, time.January, 1)
	until := date(2025, time.April, 15)

	periods := GeneratePeriods(start, until, nil, models.FrequencyMonthly)

	require.Len(t, periods, 4)
	assert.Equal(t, date(2025, time.January, 1), periods[0].Start)
	assert.Equal(t, date(2025, time.February, 1), periods[0].End)
	assert.Equal(t, date(2025, time.April, 1), periods[3].Start)
	assert.Equal(t, date(2025, time.May, 1), periods[3].End)
	for _, p := range periods {
		assert.Equal(t, p.Start, p.DueDate)
		assert.False(t, p.Clipped)
	}
}

func TestGeneratePeriods_ChronologicalAndNonOverlapping(t *testing.T) {
	start := date(2025, time.January, 3)
	until := date(2025, time.March, 1)

	periods := GeneratePeriods(start, until, nil, models.FrequencyWeekly)

	require.NotEmpty(t, periods)
	for i := 1; i < len(periods); i++ {
		assert.Equal(t, periods[i-1].End, periods[i].Start)
		assert.True(t, periods[i-1].Start.Before(periods[i].Start))
	}
}

func TestGeneratePeriods_EndDateClipsFinalPeriod(t *testing.T) {
	start := date(2025, time.January, 1)
	until := date(2025, time.June, 1)
	end := date(2025, time.March, 20)

	periods := GeneratePeriods(start, until, &end, models.FrequencyMonthly)

	require.Len(t, periods, 3)
	last := periods[2]
	assert.Equal(t, date(2025, time.March, 1), last.Start)
	assert.Equal(t, end, last.End)
	assert.True(t, last.Clipped)
}

func TestGeneratePeriods_EndOnBoundaryDoesNotClip(t *testing.T) {
	start := date(2025, time.January, 1)
	until := date(2025, time.June, 1)
	end := date(2025, time.March, 1)

	periods := GeneratePeriods(start, until, &end, models.FrequencyMonthly)

	require.Len(t, periods, 2)
	assert.Equal(t, end, periods[1].End)
	assert.False(t, periods[1].Clipped)
}

func TestGeneratePeriods_StartAfterUntilYieldsNone(t *testing.T) {
	start := date(2025, time.May, 1)
	until := date(2025, time.April, 1)

	assert.Empty(t, GeneratePeriods(start, until, nil, models.FrequencyMonthly))
}

func TestGeneratePeriods_StartEqualsUntilYieldsNone(t *testing.T) {
	day := date(2025, time.May, 1)
	assert.Empty(t, GeneratePeriods(day, day, nil, models.FrequencyMonthly))
}

func TestGeneratePeriods_EndBeforeStartYieldsNone(t *testing.T) {
	start := date(2025, time.May, 1)
	until := date(2025, time.July, 1)
	end := date(2025, time.April, 1)

	assert.Empty(t, GeneratePeriods(start, until, &end, models.FrequencyMonthly))
}

func TestGeneratePeriods_Idempotent(t *testing.T) {
	start := date(2025, time.January, 1)
	until := date(2025, time.March, 10)

	first := GeneratePeriods(start, until, nil, models.FrequencyBiweekly)
	second := GeneratePeriods(start, until, nil, models.FrequencyBiweekly)

	assert.Equal(t, first, second)
}
