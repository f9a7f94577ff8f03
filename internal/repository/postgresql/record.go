package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dtr-tools/dtr-backend-go/internal/domain/record"
	"github.com/dtr-tools/dtr-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type recordRepository struct {
	db *database.DB
}

func NewRecordRepository(db *database.DB) record.RecordRepository {
	return &recordRepository{db: db}
}

// Create implements record.RecordRepository.
func (r *recordRepository) Create(ctx context.Context, rec record.Record) (record.Record, error) {
	q := GetQuerier(ctx, r.db)

	rec.ID = uuid.NewString()

	query := `
		INSERT INTO dtr_records (
			id, date, morning_time_in, supposed_time_in, late_minutes,
			afternoon_time_out, supposed_time_out, undertime_minutes,
			deduction_points
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID,
		rec.Date,
		rec.MorningTimeIn,
		rec.SupposedTimeIn,
		rec.LateMinutes,
		rec.AfternoonTimeOut,
		rec.SupposedTimeOut,
		rec.UndertimeMinutes,
		rec.DeductionPoints,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		return record.Record{}, fmt.Errorf("failed to create record: %w", err)
	}

	return rec, nil
}

// GetByID implements record.RecordRepository.
func (r *recordRepository) GetByID(ctx context.Context, id string) (record.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, morning_time_in, supposed_time_in, late_minutes,
			   afternoon_time_out, supposed_time_out, undertime_minutes,
			   deduction_points, created_at, updated_at
		FROM dtr_records
		WHERE id = $1
	`

	var rec record.Record
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.Date, &rec.MorningTimeIn, &rec.SupposedTimeIn, &rec.LateMinutes,
		&rec.AfternoonTimeOut, &rec.SupposedTimeOut, &rec.UndertimeMinutes,
		&rec.DeductionPoints, &rec.CreatedAt, &rec.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return record.Record{}, record.ErrRecordNotFound
		}
		return record.Record{}, fmt.Errorf("failed to get record by id: %w", err)
	}

	return rec, nil
}

// List implements record.RecordRepository.
func (r *recordRepository) List(ctx context.Context, from, to *time.Time) ([]record.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, morning_time_in, supposed_time_in, late_minutes,
			   afternoon_time_out, supposed_time_out, undertime_minutes,
			   deduction_points, created_at, updated_at
		FROM dtr_records
		WHERE 1=1
	`
	args := []interface{}{}
	argPos := 1

	if from != nil {
		query += fmt.Sprintf(" AND date >= $%d", argPos)
		args = append(args, *from)
		argPos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND date <= $%d", argPos)
		args = append(args, *to)
		argPos++
	}

	query += " ORDER BY date ASC, created_at ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	var records []record.Record
	for rows.Next() {
		var rec record.Record
		err := rows.Scan(
			&rec.ID, &rec.Date, &rec.MorningTimeIn, &rec.SupposedTimeIn, &rec.LateMinutes,
			&rec.AfternoonTimeOut, &rec.SupposedTimeOut, &rec.UndertimeMinutes,
			&rec.DeductionPoints, &rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}

	return records, nil
}

// ExistsForDate implements record.RecordRepository.
func (r *recordRepository) ExistsForDate(ctx context.Context, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS (SELECT 1 FROM dtr_records WHERE date = $1)`

	var exists bool
	if err := q.QueryRow(ctx, query, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check records for date: %w", err)
	}

	return exists, nil
}

// LockDate implements record.RecordRepository. The advisory lock is
// transaction scoped, so callers must hold an open transaction.
func (r *recordRepository) LockDate(ctx context.Context, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, date.Format("2006-01-02"))
	if err != nil {
		return fmt.Errorf("failed to lock date: %w", err)
	}
	return nil
}

// UpdatePoints implements record.RecordRepository.
func (r *recordRepository) UpdatePoints(ctx context.Context, id string, points float64) (record.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE dtr_records
		SET deduction_points = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, date, morning_time_in, supposed_time_in, late_minutes,
				  afternoon_time_out, supposed_time_out, undertime_minutes,
				  deduction_points, created_at, updated_at
	`

	var rec record.Record
	err := q.QueryRow(ctx, query, id, points).Scan(
		&rec.ID, &rec.Date, &rec.MorningTimeIn, &rec.SupposedTimeIn, &rec.LateMinutes,
		&rec.AfternoonTimeOut, &rec.SupposedTimeOut, &rec.UndertimeMinutes,
		&rec.DeductionPoints, &rec.CreatedAt, &rec.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return record.Record{}, record.ErrRecordNotFound
		}
		return record.Record{}, fmt.Errorf("failed to update record points: %w", err)
	}

	return rec, nil
}

// Delete implements record.RecordRepository.
func (r *recordRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM dtr_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return record.ErrRecordNotFound
	}

	return nil
}
