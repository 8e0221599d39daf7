package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// DateLayout is the calendar-date format used for lastLoginDate and
// reminder dates. Dates are compared as strings, never as instants.
const DateLayout = "2006-01-02"

// DateString formats t as a calendar date in the local timezone.
func DateString(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysBetween returns the number of calendar days from dateA to dateB
// (positive when dateB is later). Malformed inputs count as zero days and
// are logged, matching the store's fail-soft policy.
func DaysBetween(dateA, dateB string) int {
	a, errA := time.Parse(DateLayout, dateA)
	b, errB := time.Parse(DateLayout, dateB)
	if errA != nil || errB != nil {
		log.Warn().Str("from", dateA).Str("to", dateB).Msg("Unparseable calendar date, treating as same day")
		return 0
	}
	return int(b.Sub(a).Hours() / 24)
}

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}
