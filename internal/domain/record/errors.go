package record

import "errors"

// Record domain errors
var (
	ErrRecordNotFound = errors.New("record not found")

	// ErrDuplicateDate is returned when saving a date that already has a
	// record and the caller did not confirm adding another one.
	ErrDuplicateDate = errors.New("a record for this date already exists")
)
