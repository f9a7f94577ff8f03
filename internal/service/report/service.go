package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/dtr-tools/dtr-backend-go/internal/domain/record"
	"github.com/dtr-tools/dtr-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

var exportHeader = []string{
	"Date",
	"Morning Time In",
	"Supposed Time In",
	"Late Minutes",
	"Afternoon Time Out",
	"Supposed Time Out",
	"Undertime Minutes",
	"Deduction Points",
}

type ReportServiceImpl struct {
	recordRepo record.RecordRepository
}

func NewReportService(recordRepo record.RecordRepository) report.ReportService {
	return &ReportServiceImpl{
		recordRepo: recordRepo,
	}
}

func (s *ReportServiceImpl) fetch(ctx context.Context, filter record.ListFilter) ([]record.Record, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var from, to *time.Time
	if filter.From != nil {
		t, err := time.Parse("2006-01-02", *filter.From)
		if err != nil {
			return nil, fmt.Errorf("failed to parse from date: %w", err)
		}
		from = &t
	}
	if filter.To != nil {
		t, err := time.Parse("2006-01-02", *filter.To)
		if err != nil {
			return nil, fmt.Errorf("failed to parse to date: %w", err)
		}
		to = &t
	}

	records, err := s.recordRepo.List(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load records for export: %w", err)
	}
	return records, nil
}

// ExportCSV implements report.ReportService.
func (s *ReportServiceImpl) ExportCSV(ctx context.Context, filter record.ListFilter) ([]byte, error) {
	records, err := s.fetch(ctx, filter)
	if err != nil {
		return nil, err
	}
	return writeCSV(records)
}

// ExportXLSX implements report.ReportService.
func (s *ReportServiceImpl) ExportXLSX(ctx context.Context, filter record.ListFilter) ([]byte, error) {
	records, err := s.fetch(ctx, filter)
	if err != nil {
		return nil, err
	}
	return writeXLSX(records)
}

func exportRow(rec record.Record) []string {
	return []string{
		rec.Date.Format("2006-01-02"),
		rec.MorningTimeIn,
		rec.SupposedTimeIn,
		strconv.Itoa(rec.LateMinutes),
		rec.AfternoonTimeOut,
		rec.SupposedTimeOut,
		strconv.Itoa(rec.UndertimeMinutes),
		strconv.FormatFloat(rec.DeductionPoints, 'f', 3, 64),
	}
}

func writeCSV(records []record.Record) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(exportRow(rec)); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func writeXLSX(records []record.Record) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Deduction History"
	f.SetSheetName("Sheet1", sheet)

	for i, header := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header cell: %w", err)
		}
	}

	for rowIdx, rec := range records {
		row := exportRow(rec)
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
