package postgresql_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/dtr-tools/dtr-backend-go/internal/domain/record"
	"github.com/dtr-tools/dtr-backend-go/internal/pkg/database"
	"github.com/dtr-tools/dtr-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

const createRecordsTable = `
	CREATE TABLE IF NOT EXISTS dtr_records (
		id UUID PRIMARY KEY,
		date DATE NOT NULL,
		morning_time_in TEXT NOT NULL,
		supposed_time_in TEXT NOT NULL,
		late_minutes INT NOT NULL,
		afternoon_time_out TEXT NOT NULL,
		supposed_time_out TEXT NOT NULL,
		undertime_minutes INT NOT NULL,
		deduction_points DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

func testInit(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping repository tests")
	}
	if testDB != nil {
		return
	}

	var err error
	testDB, err = database.NewPostgreSQLDB(dsn)
	require.NoError(t, err, "failed to connect to test database")

	_, err = testDB.Exec(context.Background(), createRecordsTable)
	require.NoError(t, err)
}

func cleanupRecords(t *testing.T) {
	_, err := testDB.Exec(context.Background(), "TRUNCATE TABLE dtr_records")
	require.NoError(t, err)
}

func sampleRecord(date string) record.Record {
	day, _ := time.Parse("2006-01-02", date)
	return record.Record{
		Date:             day,
		MorningTimeIn:    "08:45 AM",
		SupposedTimeIn:   "08:30 AM",
		LateMinutes:      15,
		AfternoonTimeOut: "05:00 PM",
		SupposedTimeOut:  "05:30 PM",
		UndertimeMinutes: 30,
		DeductionPoints:  0.084,
	}
}

// ===== RECORD REPOSITORY TESTS =====

func TestRecordRepository_Create_Success(t *testing.T) {
	testInit(t)
	defer cleanupRecords(t)

	ctx := context.Background()
	repo := postgresql.NewRecordRepository(testDB)

	created, err := repo.Create(ctx, sampleRecord("2025-01-07"))
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 15, created.LateMinutes)
	assert.Equal(t, 0.084, created.DeductionPoints)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())
}

func TestRecordRepository_GetByID(t *testing.T) {
	testInit(t)
	defer cleanupRecords(t)

	ctx := context.Background()
	repo := postgresql.NewRecordRepository(testDB)

	created, err := repo.Create(ctx, sampleRecord("2025-01-07"))
	require.NoError(t, err)

	found, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "08:45 AM", found.MorningTimeIn)
	assert.Equal(t, "05:30 PM", found.SupposedTimeOut)

	_, err = repo.GetByID(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, record.ErrRecordNotFound)
}

func TestRecordRepository_List_DateRange(t *testing.T) {
	testInit(t)
	defer cleanupRecords(t)

	ctx := context.Background()
	repo := postgresql.NewRecordRepository(testDB)

	for _, date := range []string{"2025-01-10", "2025-01-06", "2025-01-08"} {
		_, err := repo.Create(ctx, sampleRecord(date))
		require.NoError(t, err)
	}

	all, err := repo.List(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Ordered by date ascending
	assert.Equal(t, "2025-01-06", all[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2025-01-10", all[2].Date.Format("2006-01-02"))

	from, _ := time.Parse("2006-01-02", "2025-01-07")
	to, _ := time.Parse("2006-01-02", "2025-01-09")
	ranged, err := repo.List(ctx, &from, &to)
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	assert.Equal(t, "2025-01-08", ranged[0].Date.Format("2006-01-02"))
}

func TestRecordRepository_ExistsForDate(t *testing.T) {
	testInit(t)
	defer cleanupRecords(t)

	ctx := context.Background()
	repo := postgresql.NewRecordRepository(testDB)

	day, _ := time.Parse("2006-01-02", "2025-01-07")

	exists, err := repo.ExistsForDate(ctx, day)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.Create(ctx, sampleRecord("2025-01-07"))
	require.NoError(t, err)

	exists, err = repo.ExistsForDate(ctx, day)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRecordRepository_UpdatePoints(t *testing.T) {
	testInit(t)
	defer cleanupRecords(t)

	ctx := context.Background()
	repo := postgresql.NewRecordRepository(testDB)

	created, err := repo.Create(ctx, sampleRecord("2025-01-07"))
	require.NoError(t, err)

	updated, err := repo.UpdatePoints(ctx, created.ID, 0.25)
	require.NoError(t, err)
	assert.Equal(t, 0.25, updated.DeductionPoints)
	assert.Equal(t, created.ID, updated.ID)

	_, err = repo.UpdatePoints(ctx, "00000000-0000-0000-0000-000000000000", 0.25)
	assert.ErrorIs(t, err, record.ErrRecordNotFound)
}

func TestRecordRepository_Delete(t *testing.T) {
	testInit(t)
	defer cleanupRecords(t)

	ctx := context.Background()
	repo := postgresql.NewRecordRepository(testDB)

	created, err := repo.Create(ctx, sampleRecord("2025-01-07"))
	require.NoError(t, err)

	err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, record.ErrRecordNotFound)

	err = repo.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, record.ErrRecordNotFound)
}

func TestRecordRepository_WithTransaction_Rollback(t *testing.T) {
	testInit(t)
	defer cleanupRecords(t)

	ctx := context.Background()
	repo := postgresql.NewRecordRepository(testDB)

	boom := errors.New("boom")
	err := postgresql.WithTransaction(ctx, testDB, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if _, err := repo.Create(txCtx, sampleRecord("2025-01-07")); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	all, err := repo.List(ctx, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRecordRepository_WithTransaction_Commit(t *testing.T) {
	testInit(t)
	defer cleanupRecords(t)

	ctx := context.Background()
	repo := postgresql.NewRecordRepository(testDB)

	err := postgresql.WithTransaction(ctx, testDB, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		_, err := repo.Create(txCtx, sampleRecord("2025-01-07"))
		return err
	})
	require.NoError(t, err)

	all, err := repo.List(ctx, nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
