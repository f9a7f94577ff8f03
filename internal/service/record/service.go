package record

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/dtr-tools/dtr-backend-go/internal/domain/deduction"
	"github.com/dtr-tools/dtr-backend-go/internal/domain/record"
	"github.com/dtr-tools/dtr-backend-go/internal/pkg/database"
	"github.com/dtr-tools/dtr-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type RecordServiceImpl struct {
	db         *database.DB
	recordRepo record.RecordRepository
	calculator *deduction.Calculator
}

func NewRecordService(db *database.DB, recordRepo record.RecordRepository, calculator *deduction.Calculator) record.RecordService {
	return &RecordServiceImpl{
		db:         db,
		recordRepo: recordRepo,
		calculator: calculator,
	}
}

// clockOrSentinel formats an optional time, falling back to the absence
// sentinel.
func clockOrSentinel(t *deduction.TimeOfDay) string {
	if t == nil {
		return deduction.TimeSentinel
	}
	return t.Clock()
}

// Calculate implements record.RecordService.
func (s *RecordServiceImpl) Calculate(ctx context.Context, req record.CalculateRequest) (record.BreakdownResponse, error) {
	if err := req.Validate(); err != nil {
		return record.BreakdownResponse{}, err
	}

	input, err := req.ToInput()
	if err != nil {
		return record.BreakdownResponse{}, fmt.Errorf("failed to build calculation input: %w", err)
	}

	breakdown, err := s.calculator.Compute(input)
	if err != nil {
		return record.BreakdownResponse{}, err
	}

	return breakdownToResponse(input, breakdown), nil
}

// Save implements record.RecordService.
func (s *RecordServiceImpl) Save(ctx context.Context, req record.SaveRequest) (record.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return record.RecordResponse{}, err
	}

	input, err := req.ToInput()
	if err != nil {
		return record.RecordResponse{}, fmt.Errorf("failed to build calculation input: %w", err)
	}

	breakdown, err := s.calculator.Compute(input)
	if err != nil {
		return record.RecordResponse{}, err
	}

	rec := record.Record{
		Date:             input.Date,
		MorningTimeIn:    clockOrSentinel(input.MorningTimeIn),
		SupposedTimeIn:   clockOrSentinel(breakdown.SupposedTimeIn),
		LateMinutes:      breakdown.LateMinutes,
		AfternoonTimeOut: clockOrSentinel(input.AfternoonTimeOut),
		SupposedTimeOut:  clockOrSentinel(breakdown.SupposedTimeOut),
		UndertimeMinutes: breakdown.UndertimeMinutes,
		DeductionPoints:  breakdown.TotalDeduction,
	}

	// The duplicate gate and the insert run in one transaction; the date
	// lock keeps two concurrent saves from both passing the gate.
	var created record.Record
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if !req.AllowDuplicate {
			if err := s.recordRepo.LockDate(txCtx, input.Date); err != nil {
				return err
			}
			exists, err := s.recordRepo.ExistsForDate(txCtx, input.Date)
			if err != nil {
				return fmt.Errorf("failed to check existing records: %w", err)
			}
			if exists {
				return record.ErrDuplicateDate
			}
		}

		created, err = s.recordRepo.Create(txCtx, rec)
		if err != nil {
			return fmt.Errorf("failed to save record: %w", err)
		}
		return nil
	})
	if err != nil {
		return record.RecordResponse{}, err
	}

	return recordToResponse(created), nil
}

// Get implements record.RecordService.
func (s *RecordServiceImpl) Get(ctx context.Context, id string) (record.RecordResponse, error) {
	rec, err := s.recordRepo.GetByID(ctx, id)
	if err != nil {
		return record.RecordResponse{}, err
	}
	return recordToResponse(rec), nil
}

// List implements record.RecordService.
func (s *RecordServiceImpl) List(ctx context.Context, filter record.ListFilter) (record.ListRecordsResponse, error) {
	if err := filter.Validate(); err != nil {
		return record.ListRecordsResponse{}, err
	}

	var from, to *time.Time
	if filter.From != nil {
		t, err := time.Parse("2006-01-02", *filter.From)
		if err != nil {
			return record.ListRecordsResponse{}, fmt.Errorf("failed to parse from date: %w", err)
		}
		from = &t
	}
	if filter.To != nil {
		t, err := time.Parse("2006-01-02", *filter.To)
		if err != nil {
			return record.ListRecordsResponse{}, fmt.Errorf("failed to parse to date: %w", err)
		}
		to = &t
	}

	records, err := s.recordRepo.List(ctx, from, to)
	if err != nil {
		return record.ListRecordsResponse{}, fmt.Errorf("failed to list records: %w", err)
	}

	responses := make([]record.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, recordToResponse(rec))
	}

	return record.ListRecordsResponse{
		Records: responses,
		Total:   len(responses),
	}, nil
}

// UpdatePoints implements record.RecordService.
func (s *RecordServiceImpl) UpdatePoints(ctx context.Context, req record.UpdateRequest) (record.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return record.RecordResponse{}, err
	}

	points := math.Round(req.DeductionPoints*1000) / 1000

	updated, err := s.recordRepo.UpdatePoints(ctx, req.ID, points)
	if err != nil {
		return record.RecordResponse{}, err
	}

	return recordToResponse(updated), nil
}

// Delete implements record.RecordService.
func (s *RecordServiceImpl) Delete(ctx context.Context, id string) error {
	return s.recordRepo.Delete(ctx, id)
}

func breakdownToResponse(input deduction.Input, b deduction.Breakdown) record.BreakdownResponse {
	return record.BreakdownResponse{
		Date:               input.Date.Format("2006-01-02"),
		Weekday:            input.Date.Weekday().String(),
		NonWorkingDay:      b.NonWorkingDay,
		MorningTimeIn:      clockOrSentinel(input.MorningTimeIn),
		SupposedTimeIn:     clockOrSentinel(b.SupposedTimeIn),
		LateMinutes:        b.LateMinutes,
		LateDeduction:      b.LateDeduction,
		AfternoonTimeOut:   clockOrSentinel(input.AfternoonTimeOut),
		SupposedTimeOut:    clockOrSentinel(b.SupposedTimeOut),
		UndertimeMinutes:   b.UndertimeMinutes,
		UndertimeDeduction: b.UndertimeDeduction,
		HalfDayDeduction:   b.HalfDayDeduction,
		TotalDeduction:     b.TotalDeduction,
	}
}

func recordToResponse(rec record.Record) record.RecordResponse {
	return record.RecordResponse{
		ID:               rec.ID,
		Date:             rec.Date.Format("2006-01-02"),
		MorningTimeIn:    rec.MorningTimeIn,
		SupposedTimeIn:   rec.SupposedTimeIn,
		LateMinutes:      rec.LateMinutes,
		AfternoonTimeOut: rec.AfternoonTimeOut,
		SupposedTimeOut:  rec.SupposedTimeOut,
		UndertimeMinutes: rec.UndertimeMinutes,
		DeductionPoints:  rec.DeductionPoints,
		CreatedAt:        rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        rec.UpdatedAt.Format(time.RFC3339),
	}
}
