package record

import (
	"context"
	"time"
)

// RecordRepository defines data access for saved deduction records.
type RecordRepository interface {
	// Create persists a new record.
	Create(ctx context.Context, rec Record) (Record, error)

	// GetByID retrieves a record by id.
	GetByID(ctx context.Context, id string) (Record, error)

	// List retrieves records ordered by date ascending, optionally
	// bounded by an inclusive date range.
	List(ctx context.Context, from, to *time.Time) ([]Record, error)

	// ExistsForDate reports whether any record is stored for the date.
	// Used to gate duplicate-date saves behind confirmation.
	ExistsForDate(ctx context.Context, date time.Time) (bool, error)

	// LockDate serializes saves for one date. The lock lasts until the
	// surrounding transaction ends.
	LockDate(ctx context.Context, date time.Time) error

	// UpdatePoints overwrites a record's deduction points.
	UpdatePoints(ctx context.Context, id string, points float64) (Record, error)

	// Delete removes a record.
	Delete(ctx context.Context, id string) error
}
