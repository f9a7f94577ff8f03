package record

import (
	"context"
)

// RecordService defines business logic for deduction records
type RecordService interface {
	// Calculate computes a deduction breakdown without persisting anything
	Calculate(ctx context.Context, req CalculateRequest) (BreakdownResponse, error)

	// Save computes the breakdown and persists it as a record; saving a
	// second record for the same date requires AllowDuplicate
	Save(ctx context.Context, req SaveRequest) (RecordResponse, error)

	// Get retrieves one stored record by id
	Get(ctx context.Context, id string) (RecordResponse, error)

	// List retrieves saved records sorted by date, optionally filtered
	// by an inclusive date range
	List(ctx context.Context, filter ListFilter) (ListRecordsResponse, error)

	// UpdatePoints edits a stored record's deduction points
	UpdatePoints(ctx context.Context, req UpdateRequest) (RecordResponse, error)

	// Delete removes a stored record
	Delete(ctx context.Context, id string) error
}
