package services

import (
	"time"

	"github.com/PrassV/Propo-Staging-sub002/internal/models"
)

// Period is one rent due window of a lease: [Start, End), due at Start.
type Period struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	DueDate time.Time `json:"due_date"`
	Clipped bool      `json:"clipped,omitempty"`
}

// NextPeriodStart returns the start of the period following one that starts
// at t for the given cadence.
func NextPeriodStart(t time.Time, freq models.Frequency) time.Time {
	switch freq {
	case models.FrequencyWeekly:
		return t.AddDate(0, 0, 7)
	case models.FrequencyBiweekly:
		return t.AddDate(0, 0, 14)
	case models.FrequencyQuarterly:
		return t.AddDate(0, 3, 0)
	case models.FrequencyYearly:
		return t.AddDate(1, 0, 0)
	default:
		return t.AddDate(0, 1, 0)
	}
}

// GeneratePeriods walks from start by the cadence and returns every period
// that begins before until. The lease end date, when set, clips the final
// period and stops the walk. Periods come back chronologically ordered and
// non-overlapping; a start on or after until (or end) yields none.
func GeneratePeriods(start, until time.Time, end *time.Time, freq models.Frequency) []Period {
	var periods []Period

	for cur := start; cur.Before(until); {
		if end != nil && !cur.Before(*end) {
			break
		}

		next := NextPeriodStart(cur, freq)
		period := Period{Start: cur, End: next, DueDate: cur}

		if end != nil && next.After(*end) {
			period.End = *end
			period.Clipped = true
		}

		periods = append(periods, period)
		if period.Clipped {
			break
		}
		cur = next
	}

	return periods
}
