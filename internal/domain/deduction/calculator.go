package deduction

import "time"

// halfDayPenalty is the deduction for one half day not worked at all.
const halfDayPenalty = 0.5

// Input is one day's recorded attendance. A half marked present must
// carry its recorded time; an absent half carries none.
type Input struct {
	Date time.Time

	MorningPresent bool
	MorningTimeIn  *TimeOfDay

	AfternoonPresent bool
	AfternoonTimeOut *TimeOfDay
}

// Breakdown is the computed deduction for one day. Minute counts are
// never negative; being early or on time contributes zero, never a
// credit. TotalDeduction is rounded to 3 decimals.
type Breakdown struct {
	NonWorkingDay bool

	SupposedTimeIn  *TimeOfDay
	SupposedTimeOut *TimeOfDay

	LateMinutes   int
	LateDeduction float64

	UndertimeMinutes   int
	UndertimeDeduction float64

	HalfDayDeduction float64
	TotalDeduction   float64
}

// Calculator turns a day's attendance input into a deduction breakdown.
// It is stateless apart from the immutable policy; every call is an
// independent pure computation.
type Calculator struct {
	policy *Policy
}

func NewCalculator(policy *Policy) *Calculator {
	return &Calculator{policy: policy}
}

// Compute applies the policy to one day's input.
//
// Weekends short-circuit to an all-zero breakdown: an unscheduled day
// accrues no deduction, not even the half-day penalty. On working days
// each absent half adds 0.5, independent of the lateness/undertime
// conversions, so a day with both halves absent totals exactly 1.000.
func (c *Calculator) Compute(in Input) (Breakdown, error) {
	day := in.Date.Weekday()
	supposedIn, working := c.policy.SupposedTimeIn(day)
	if !working {
		return Breakdown{NonWorkingDay: true}, nil
	}

	var b Breakdown

	if in.MorningPresent {
		if in.MorningTimeIn == nil {
			return Breakdown{}, &InvalidInputError{
				Field:  "morning_time_in",
				Reason: "required when morning is marked present",
			}
		}

		reference := supposedIn
		if in.AfternoonPresent {
			// Arrival anywhere inside the flexi window is on time when
			// the full day is worked; the fixed supposed-in only binds
			// on morning-only days.
			if reference.Minutes() < flexiArrivalLatest {
				reference = FromMinutes(flexiArrivalLatest)
			}
		}
		b.SupposedTimeIn = &reference

		if late := in.MorningTimeIn.Minutes() - reference.Minutes(); late > 0 {
			b.LateMinutes = late
		}
		b.LateDeduction = FractionFromMinutes(b.LateMinutes)
	}

	var morningIn TimeOfDay
	if in.MorningTimeIn != nil {
		morningIn = *in.MorningTimeIn
	}
	if out, ok := c.policy.SupposedTimeOut(day, in.MorningPresent, in.AfternoonPresent, morningIn); ok {
		b.SupposedTimeOut = &out
	}

	if in.AfternoonPresent {
		if in.AfternoonTimeOut == nil {
			return Breakdown{}, &InvalidInputError{
				Field:  "afternoon_time_out",
				Reason: "required when afternoon is marked present",
			}
		}

		if b.SupposedTimeOut != nil {
			if under := b.SupposedTimeOut.Minutes() - in.AfternoonTimeOut.Minutes(); under > 0 {
				b.UndertimeMinutes = under
			}
		}
		b.UndertimeDeduction = FractionFromMinutes(b.UndertimeMinutes)
	}

	if !in.MorningPresent {
		b.HalfDayDeduction += halfDayPenalty
	}
	if !in.AfternoonPresent {
		b.HalfDayDeduction += halfDayPenalty
	}

	b.TotalDeduction = round3(b.LateDeduction + b.UndertimeDeduction + b.HalfDayDeduction)
	return b, nil
}
