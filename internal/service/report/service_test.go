package report

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/dtr-tools/dtr-backend-go/internal/domain/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleRecords() []record.Record {
	return []record.Record{
		{
			ID:               "a",
			Date:             time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC),
			MorningTimeIn:    "08:45 AM",
			SupposedTimeIn:   "08:30 AM",
			LateMinutes:      15,
			AfternoonTimeOut: "--:-- --",
			SupposedTimeOut:  "--:-- --",
			UndertimeMinutes: 0,
			DeductionPoints:  0.528,
		},
		{
			ID:               "b",
			Date:             time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC),
			MorningTimeIn:    "08:00 AM",
			SupposedTimeIn:   "08:30 AM",
			LateMinutes:      0,
			AfternoonTimeOut: "05:00 PM",
			SupposedTimeOut:  "05:00 PM",
			UndertimeMinutes: 0,
			DeductionPoints:  0,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	data, err := writeCSV(sampleRecords())
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, exportHeader, rows[0])
	assert.Equal(t, []string{
		"2025-01-07", "08:45 AM", "08:30 AM", "15",
		"--:-- --", "--:-- --", "0", "0.528",
	}, rows[1])
	assert.Equal(t, "0.000", rows[2][7])
}

func TestWriteCSVEmpty(t *testing.T) {
	data, err := writeCSV(nil)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}

func TestWriteXLSX(t *testing.T) {
	data, err := writeXLSX(sampleRecords())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Deduction History")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, exportHeader, rows[0])
	assert.Equal(t, "2025-01-07", rows[1][0])
	assert.Equal(t, "0.528", rows[1][7])
}
