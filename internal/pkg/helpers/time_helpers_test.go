package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateString(t *testing.T) {
	ts := time.Date(2024, time.June, 10, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2024-06-10", DateString(ts))
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		from, to string
		days     int
	}{
		{"2024-06-10", "2024-06-11", 1},
		{"2024-06-10", "2024-06-10", 0},
		{"2024-06-10", "2024-06-14", 4},
		{"2024-06-11", "2024-06-10", -1},
		{"2024-02-28", "2024-03-01", 2}, // leap year
		{"not-a-date", "2024-06-10", 0},
		{"2024-06-10", "", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.days, DaysBetween(tt.from, tt.to), "%q to %q", tt.from, tt.to)
	}
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 250*time.Millisecond, ParseDuration("250ms", time.Second))
	assert.Equal(t, time.Second, ParseDuration("bogus", time.Second))
}
