package record

import (
	"time"

	"github.com/dtr-tools/dtr-backend-go/internal/domain/deduction"
	"github.com/dtr-tools/dtr-backend-go/internal/pkg/validator"
)

// ========================================
// RECORD DTOs
// ========================================

type CalculateRequest struct {
	Date             string `json:"date"` // YYYY-MM-DD
	MorningPresent   bool   `json:"morning_present"`
	MorningTimeIn    string `json:"morning_time_in,omitempty"` // "HH:MM AM|PM"
	AfternoonPresent bool   `json:"afternoon_present"`
	AfternoonTimeOut string `json:"afternoon_time_out,omitempty"`
}

func (r *CalculateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.MorningPresent {
		if validator.IsClockAbsent(r.MorningTimeIn) {
			errs = append(errs, validator.ValidationError{
				Field:   "morning_time_in",
				Message: "morning_time_in is required when morning is present",
			})
		} else if _, err := deduction.ParseTimeOfDay(r.MorningTimeIn); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "morning_time_in",
				Message: "morning_time_in must be in HH:MM AM|PM format",
			})
		}
	}

	if r.AfternoonPresent {
		if validator.IsClockAbsent(r.AfternoonTimeOut) {
			errs = append(errs, validator.ValidationError{
				Field:   "afternoon_time_out",
				Message: "afternoon_time_out is required when afternoon is present",
			})
		} else if _, err := deduction.ParseTimeOfDay(r.AfternoonTimeOut); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "afternoon_time_out",
				Message: "afternoon_time_out must be in HH:MM AM|PM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToInput converts a validated request into the engine's input. Call
// Validate first; parse failures here only occur on unvalidated input.
func (r *CalculateRequest) ToInput() (deduction.Input, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return deduction.Input{}, err
	}

	in := deduction.Input{
		Date:             date,
		MorningPresent:   r.MorningPresent,
		AfternoonPresent: r.AfternoonPresent,
	}

	if r.MorningPresent {
		t, err := deduction.ParseTimeOfDay(r.MorningTimeIn)
		if err != nil {
			return deduction.Input{}, err
		}
		in.MorningTimeIn = &t
	}
	if r.AfternoonPresent {
		t, err := deduction.ParseTimeOfDay(r.AfternoonTimeOut)
		if err != nil {
			return deduction.Input{}, err
		}
		in.AfternoonTimeOut = &t
	}

	return in, nil
}

type SaveRequest struct {
	CalculateRequest

	// AllowDuplicate confirms saving another record for a date that
	// already has one.
	AllowDuplicate bool `json:"allow_duplicate"`
}

type UpdateRequest struct {
	ID              string  `json:"-"`
	DeductionPoints float64 `json:"deduction_points"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.DeductionPoints < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "deduction_points",
			Message: "deduction_points must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListFilter struct {
	From *string `json:"from,omitempty"` // YYYY-MM-DD, inclusive
	To   *string `json:"to,omitempty"`   // YYYY-MM-DD, inclusive
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	var from, to time.Time
	if f.From != nil {
		var ok bool
		if from, ok = validator.IsValidDate(*f.From); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "from",
				Message: "from must be in YYYY-MM-DD format",
			})
		}
	}
	if f.To != nil {
		var ok bool
		if to, ok = validator.IsValidDate(*f.To); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: "to must be in YYYY-MM-DD format",
			})
		}
	}
	if f.From != nil && f.To != nil && len(errs) == 0 && from.After(to) {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from date cannot be after to date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BreakdownResponse struct {
	Date               string  `json:"date"`
	Weekday            string  `json:"weekday"`
	NonWorkingDay      bool    `json:"non_working_day"`
	MorningTimeIn      string  `json:"morning_time_in"`
	SupposedTimeIn     string  `json:"supposed_time_in"`
	LateMinutes        int     `json:"late_minutes"`
	LateDeduction      float64 `json:"late_deduction"`
	AfternoonTimeOut   string  `json:"afternoon_time_out"`
	SupposedTimeOut    string  `json:"supposed_time_out"`
	UndertimeMinutes   int     `json:"undertime_minutes"`
	UndertimeDeduction float64 `json:"undertime_deduction"`
	HalfDayDeduction   float64 `json:"half_day_deduction"`
	TotalDeduction     float64 `json:"total_deduction"`
}

type RecordResponse struct {
	ID               string  `json:"id"`
	Date             string  `json:"date"`
	MorningTimeIn    string  `json:"morning_time_in"`
	SupposedTimeIn   string  `json:"supposed_time_in"`
	LateMinutes      int     `json:"late_minutes"`
	AfternoonTimeOut string  `json:"afternoon_time_out"`
	SupposedTimeOut  string  `json:"supposed_time_out"`
	UndertimeMinutes int     `json:"undertime_minutes"`
	DeductionPoints  float64 `json:"deduction_points"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

type ListRecordsResponse struct {
	Records []RecordResponse `json:"records"`
	Total   int              `json:"total"`
}
