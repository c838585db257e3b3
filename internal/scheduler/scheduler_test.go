package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDailyRunTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"02:00", "0 2 * * *"},
		{"23:59", "59 23 * * *"},
		{"00:00", "0 0 * * *"},
		{"7:30", "30 7 * * *"},
		{"25:00", "0 2 * * *"},
		{"12:75", "0 2 * * *"},
		{"garbage", "0 2 * * *"},
		{"", "0 2 * * *"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, parseDailyRunTime(tc.in), "input %q", tc.in)
	}
}
