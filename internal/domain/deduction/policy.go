package deduction

import "time"

// Flexi schedule bounds, in minutes since midnight.
const (
	flexiArrivalEarliest = 7*60 + 30 // 07:30
	flexiArrivalLatest   = 8*60 + 30 // 08:30
	flexiWorkSpan        = 9 * 60    // guaranteed span between arrival and departure

	departureEarliest     = 16*60 + 30 // 16:30
	departureLatestMonday = 17 * 60    // 17:00
	departureLatest       = 17*60 + 30 // 17:30
)

// PolicyEntry holds the reference times for one working weekday.
type PolicyEntry struct {
	SupposedTimeIn TimeOfDay

	// HalfDayOnlySupposedTimeOut applies when only the afternoon half is
	// worked; full days derive their supposed-out from the flexi rule.
	HalfDayOnlySupposedTimeOut TimeOfDay
}

// Policy is the immutable per-weekday attendance policy. Saturday and
// Sunday carry no entry and are non-working days.
type Policy struct {
	entries map[time.Weekday]PolicyEntry
}

// DefaultPolicy returns the standard Monday–Friday policy: Monday starts
// at 08:00 and closes half days at 17:00, the remaining weekdays start at
// 08:30 and close half days at 17:30.
func DefaultPolicy() *Policy {
	entries := map[time.Weekday]PolicyEntry{
		time.Monday: {
			SupposedTimeIn:             TimeOfDay{Hour: 8, Minute: 0},
			HalfDayOnlySupposedTimeOut: TimeOfDay{Hour: 17, Minute: 0},
		},
	}
	for _, day := range []time.Weekday{time.Tuesday, time.Wednesday, time.Thursday, time.Friday} {
		entries[day] = PolicyEntry{
			SupposedTimeIn:             TimeOfDay{Hour: 8, Minute: 30},
			HalfDayOnlySupposedTimeOut: TimeOfDay{Hour: 17, Minute: 30},
		}
	}
	return &Policy{entries: entries}
}

// SupposedTimeIn returns the fixed supposed time in for the weekday.
// ok is false on non-working days.
func (p *Policy) SupposedTimeIn(day time.Weekday) (TimeOfDay, bool) {
	entry, ok := p.entries[day]
	return entry.SupposedTimeIn, ok
}

// SupposedTimeOut resolves the supposed time out for the weekday given
// which halves are worked.
//
//   - Neither half worked: no supposed-out.
//   - Afternoon only: the fixed half-day-only supposed-out.
//   - Both halves: flexi rule. The actual morning arrival is clamped to
//     the [07:30, 08:30] window, the 9-hour span is added, and the result
//     is clamped to [16:30, 17:00] on Monday or [16:30, 17:30] otherwise.
//   - Morning only: no supposed-out; there is no afternoon segment to
//     measure undertime against.
func (p *Policy) SupposedTimeOut(day time.Weekday, morningPresent, afternoonPresent bool, morningIn TimeOfDay) (TimeOfDay, bool) {
	entry, ok := p.entries[day]
	if !ok || !afternoonPresent {
		return TimeOfDay{}, false
	}

	if !morningPresent {
		return entry.HalfDayOnlySupposedTimeOut, true
	}

	arrival := clampMinutes(morningIn.Minutes(), flexiArrivalEarliest, flexiArrivalLatest)
	departure := arrival + flexiWorkSpan

	latest := departureLatest
	if day == time.Monday {
		latest = departureLatestMonday
	}
	return FromMinutes(clampMinutes(departure, departureEarliest, latest)), true
}
