package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/dtr-tools/dtr-backend-go/internal/domain/report"
	"github.com/dtr-tools/dtr-backend-go/internal/handler/http/response"
	"github.com/dtr-tools/dtr-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	Export(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Export implements ReportHandler.
func (h *reportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if !validator.IsInSlice(format, report.Formats) {
		response.BadRequest(w, "Unsupported export format: must be one of "+strings.Join(report.Formats, ", "), nil)
		return
	}

	filter := listFilterFromQuery(r)

	var (
		data []byte
		err  error
	)
	switch format {
	case "csv":
		data, err = h.reportService.ExportCSV(r.Context(), filter)
	case "xlsx":
		data, err = h.reportService.ExportXLSX(r.Context(), filter)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, exportFilename(format), exportContentType(format), data)
}

func exportFilename(ext string) string {
	return "dtr-history-" + time.Now().Format("2006-01-02") + "." + ext
}

func exportContentType(format string) string {
	if format == "xlsx" {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}
