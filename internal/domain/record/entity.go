package record

import (
	"time"
)

// Record is one saved day of deduction history. Clock fields hold the
// formatted 12-hour time or the "--:-- --" sentinel when the half was
// absent; only the minute counts and points are kept as numbers.
type Record struct {
	ID               string
	Date             time.Time
	MorningTimeIn    string
	SupposedTimeIn   string
	LateMinutes      int
	AfternoonTimeOut string
	SupposedTimeOut  string
	UndertimeMinutes int
	DeductionPoints  float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
