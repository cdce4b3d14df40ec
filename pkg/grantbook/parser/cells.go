// Package parser provides readers for grantbook workbooks.
package parser

import (
	"strconv"

	"github.com/ukaji3/grantbook-go/pkg/grantbook/models"
	"github.com/xuri/excelize/v2"
)

// ReadRows returns the raw (unformatted) cell values of a sheet.
func ReadRows(f *excelize.File, sheetName string) ([][]string, error) {
	return f.GetRows(sheetName, excelize.Options{RawCellValue: true})
}

// ExtractCells extracts cell data from a sheet.
// It returns a slice of CellRow containing non-empty rows. With includeFormulas,
// formula cells are reported even when they carry no cached value.
func ExtractCells(f *excelize.File, sheetName string, includeFormulas bool) ([]models.CellRow, error) {
	rows, err := ReadRows(f, sheetName)
	if err != nil {
		return nil, err
	}

	maxCol := 0
	for _, row := range rows {
		if len(row) > maxCol {
			maxCol = len(row)
		}
	}

	var result []models.CellRow
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		cellMap := make(map[string]interface{})
		formulaMap := make(map[string]string)

		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			cellMap[strconv.Itoa(colIdx+1)] = parseValue(cellValue)
		}

		if includeFormulas {
			for col := 1; col <= maxCol; col++ {
				cellName, _ := excelize.CoordinatesToCellName(col, rowNum)
				formula, err := f.GetCellFormula(sheetName, cellName)
				if err == nil && formula != "" {
					formulaMap[strconv.Itoa(col)] = formula
				}
			}
		}

		if len(cellMap) == 0 && len(formulaMap) == 0 {
			continue
		}
		cellRow := models.CellRow{
			R: rowNum,
			C: cellMap,
		}
		if len(formulaMap) > 0 {
			cellRow.F = formulaMap
		}
		result = append(result, cellRow)
	}

	return result, nil
}

// ExtractMerged returns the merged ranges of a sheet, e.g. "B2:G2".
func ExtractMerged(f *excelize.File, sheetName string) ([]string, error) {
	cells, err := f.GetMergeCells(sheetName)
	if err != nil {
		return nil, err
	}
	var result []string
	for _, mc := range cells {
		result = append(result, mc.GetStartAxis()+":"+mc.GetEndAxis())
	}
	return result, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
