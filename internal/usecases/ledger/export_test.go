package ledger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

func TestExportWorkbook(t *testing.T) {
	history := []domain.HistoryEntry{
		{Date: day, Price: 200, Occupancy: 70, ADR: 200, RevPAR: 140, Revenue: 14000, Confidence: 75, Origin: domain.OriginReal, Reasoning: "Positioned competitively"},
		{Date: day.AddDate(0, 0, 1), Price: 180, Occupancy: 65, ADR: 180, RevPAR: 117, Revenue: 11700, Confidence: 60, Origin: domain.OriginSynthetic},
	}
	perf := &domain.HistoricalPerformance{
		HotelID:  "htl_1",
		Location: "boston,usa",
		Days:     2,
		History:  history,
		Metrics:  Metrics(history),
	}

	data, err := ExportWorkbook(perf)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{historySheet, summarySheet}, f.GetSheetList())

	rows, err := f.GetRows(historySheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, historyHeader, rows[0])
	assert.Equal(t, "2025-05-14", rows[1][0])
	assert.Equal(t, "200", rows[1][1])
	assert.Equal(t, "real", rows[1][7])
	assert.Equal(t, "Positioned competitively", rows[1][8])
	assert.Equal(t, "synthetic", rows[2][7])

	location, err := f.GetCellValue(summarySheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "boston,usa", location)

	revenue, err := f.GetCellValue(summarySheet, "B4")
	require.NoError(t, err)
	assert.Equal(t, "25700", revenue)

	synthetic, err := f.GetCellValue(summarySheet, "B11")
	require.NoError(t, err)
	assert.Equal(t, "1", synthetic)
}

func TestExportWorkbook_EmptyWindow(t *testing.T) {
	data, err := ExportWorkbook(&domain.HistoricalPerformance{Location: "boston,usa", Metrics: Metrics(nil)})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(historySheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
