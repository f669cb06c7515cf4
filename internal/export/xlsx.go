package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"labelcheck/internal/domain"
)

// WriteXLSX writes a batch of verification results as an XLSX workbook to w.
// Layout matches the CSV export: one row per compared field.
func WriteXLSX(w io.Writer, results []domain.VerificationResult) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	rowNum := 2
	for i := range results {
		for _, row := range resultToRows(i+1, &results[i]) {
			for colIdx, val := range row {
				if val == "" {
					continue
				}
				cell, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
				if err != nil {
					return fmt.Errorf("cell name: %w", err)
				}
				if err := f.SetCellValue(sheet, cell, cellValue(colIdx, val)); err != nil {
					return fmt.Errorf("write cell: %w", err)
				}
			}
			rowNum++
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// cellValue converts numeric columns to native types so Excel treats them as
// numbers rather than text.
func cellValue(colIdx int, val string) interface{} {
	switch columns[colIdx] {
	case "Verification #", "Processing Time (ms)":
		if n, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64); err == nil {
			return n
		}
	case "Confidence":
		if fl, err := strconv.ParseFloat(strings.TrimSpace(val), 64); err == nil {
			return fl
		}
	}
	return val
}
