package ledger

import (
	"bytes"
	"fmt"
	"time"

	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	historySheet = "History"
	summarySheet = "Summary"
)

var historyHeader = []string{"Date", "Price", "Occupancy (%)", "ADR", "RevPAR", "Revenue", "Confidence", "Origin", "Reasoning"}

var historyColumnWidths = []float64{12, 10, 14, 10, 10, 12, 12, 12, 60}

// ExportWorkbook gera a planilha XLSX da janela de histórico: uma aba com os dias e outra com as métricas
func ExportWorkbook(perf *domain.HistoricalPerformance) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(historySheet)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar aba de histórico: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, fmt.Errorf("erro ao criar aba de resumo: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("erro ao remover aba padrão: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar estilo do cabeçalho: %w", err)
	}

	for col, header := range historyHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(historySheet, cell, header); err != nil {
			return nil, err
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(historySheet, name, name, historyColumnWidths[col]); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(historySheet, "A1", "I1", headerStyle); err != nil {
		return nil, err
	}

	for i, entry := range perf.History {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			entry.Date.Format(time.DateOnly),
			entry.Price,
			entry.Occupancy,
			entry.ADR,
			entry.RevPAR,
			entry.Revenue,
			entry.Confidence,
			string(entry.Origin),
			entry.Reasoning,
		}
		if err := f.SetSheetRow(historySheet, cell, &row); err != nil {
			return nil, fmt.Errorf("erro ao escrever linha %d: %w", i+2, err)
		}
	}

	summary := [][]interface{}{
		{"Location", perf.Location},
		{"Hotel", perf.HotelID},
		{"Days", perf.Days},
		{"Total revenue", perf.Metrics.TotalRevenue},
		{"Average occupancy (%)", perf.Metrics.AverageOccupancy},
		{"Average ADR", perf.Metrics.AverageADR},
		{"Average RevPAR", perf.Metrics.AverageRevPAR},
		{"Data points", perf.Metrics.DataPoints},
		{"Real", perf.Metrics.ByOrigin[domain.OriginReal]},
		{"Backfilled", perf.Metrics.ByOrigin[domain.OriginBackfilled]},
		{"Synthetic", perf.Metrics.ByOrigin[domain.OriginSynthetic]},
	}
	for i, row := range summary {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return nil, fmt.Errorf("erro ao escrever resumo: %w", err)
		}
	}
	if err := f.SetColWidth(summarySheet, "A", "A", 24); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("erro ao gerar planilha: %w", err)
	}

	return buf.Bytes(), nil
}
