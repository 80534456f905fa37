package utils

import (
	"fmt"
	"time"

	"github.com/gcosta/fightlog/internal/constants"
)

// Clock returns the current time. The store takes one so day-rollover
// behavior can be tested with a fixed date instead of the wall clock.
type Clock func() time.Time

// SystemClock is the wall-clock Clock used outside of tests.
func SystemClock() time.Time {
	return time.Now()
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// TodayIn returns now's calendar date string (YYYY-MM-DD) in the given
// timezone. This ensures "today" follows the user's configured timezone, not
// wherever the process happens to run.
func TodayIn(now time.Time, timezone string) (string, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return "", fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return now.In(loc).Format(constants.DateFormat), nil
}

// WeekdayIn returns now's weekday in the given timezone.
func WeekdayIn(now time.Time, timezone string) (time.Weekday, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return 0, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return now.In(loc).Weekday(), nil
}

// ParseDate parses a calendar date string in the standard format (YYYY-MM-DD).
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(constants.DateFormat, dateStr)
}

// ValidateTimeFormat checks if the string matches the standard clock format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := time.Parse(constants.TimeFormat, timeStr)
	return err == nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}
