package report

import (
	"context"

	"github.com/dtr-tools/dtr-backend-go/internal/domain/record"
)

// Export formats supported by the history export.
var Formats = []string{"csv", "xlsx"}

// ReportService serializes the saved deduction history for download.
// Exports are a field-for-field rendering of the stored records, sorted
// by date.
type ReportService interface {
	// ExportCSV renders the history as CSV
	ExportCSV(ctx context.Context, filter record.ListFilter) ([]byte, error)

	// ExportXLSX renders the history as a spreadsheet
	ExportXLSX(ctx context.Context, filter record.ListFilter) ([]byte, error)
}
