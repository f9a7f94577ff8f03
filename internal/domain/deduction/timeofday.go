package deduction

import (
	"fmt"
	"time"
)

// TimeSentinel is the stored/displayed placeholder for a time that was
// never recorded (absent half).
const TimeSentinel = "--:-- --"

const clockLayout = "03:04 PM"

// TimeOfDay is a wall-clock time. It carries no date and is only
// meaningful when compared within the same calendar day.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Minutes returns the number of minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// FromMinutes builds a TimeOfDay from minutes since midnight.
func FromMinutes(m int) TimeOfDay {
	return TimeOfDay{Hour: m / 60, Minute: m % 60}
}

// Clock formats the time in the 12-hour form used by records, e.g. "08:15 AM".
func (t TimeOfDay) Clock() string {
	return time.Date(0, 1, 1, t.Hour, t.Minute, 0, 0, time.UTC).Format(clockLayout)
}

// ParseTimeOfDay parses a 12-hour clock string ("HH:MM AM|PM").
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parsed, err := time.Parse(clockLayout, s)
	if err != nil {
		// Accept a non-padded hour as well ("8:15 AM").
		parsed, err = time.Parse("3:04 PM", s)
		if err != nil {
			return TimeOfDay{}, fmt.Errorf("invalid clock time %q: %w", s, err)
		}
	}
	return TimeOfDay{Hour: parsed.Hour(), Minute: parsed.Minute()}, nil
}

func clampMinutes(m, lo, hi int) int {
	if m < lo {
		return lo
	}
	if m > hi {
		return hi
	}
	return m
}
