package parser

import (
	"strings"

	"github.com/ukaji3/grantbook-go/pkg/grantbook/models"
)

// RegionParams holds parameters for data region detection.
type RegionParams struct {
	// Headers are the expected header labels, left to right.
	Headers []string
	// DefaultHeaderRow is used when no row matches Headers (1-based).
	DefaultHeaderRow int
	// DefaultFirstCol is used when no row matches Headers (1-based).
	DefaultFirstCol int
	// KeyOffset is the column, relative to the first header column, that must
	// be non-empty for a row to count as a record.
	KeyOffset int
	// MaxRow is the last row that may hold a record (1-based). Zero means no limit.
	MaxRow int
}

// DetectRegion locates the header row and the contiguous record rows below it.
// Records end at the first row whose key column is empty, or at MaxRow.
func DetectRegion(rows [][]string, params RegionParams) models.Region {
	headerRow, firstCol, ok := findHeaderRow(rows, params.Headers)
	if !ok {
		headerRow, firstCol = params.DefaultHeaderRow, params.DefaultFirstCol
	}

	region := models.Region{
		HeaderRow: headerRow,
		FirstRow:  headerRow + 1,
		LastRow:   headerRow,
		FirstCol:  firstCol,
		LastCol:   firstCol + len(params.Headers) - 1,
	}
	if region.LastCol < firstCol {
		region.LastCol = firstCol
	}

	last := len(rows)
	if params.MaxRow > 0 && params.MaxRow < last {
		last = params.MaxRow
	}
	for r := region.FirstRow; r <= last; r++ {
		if strings.TrimSpace(Cell(rows, r, firstCol+params.KeyOffset)) == "" {
			break
		}
		region.LastRow = r
	}
	return region
}

// findHeaderRow finds the first row containing headers as a contiguous run.
// Returns 1-based row and column.
func findHeaderRow(rows [][]string, headers []string) (int, int, bool) {
	if len(headers) == 0 {
		return 0, 0, false
	}
	for rowIdx, row := range rows {
		for colIdx := 0; colIdx+len(headers) <= len(row); colIdx++ {
			if matchesAt(row, colIdx, headers) {
				return rowIdx + 1, colIdx + 1, true
			}
		}
	}
	return 0, 0, false
}

func matchesAt(row []string, colIdx int, headers []string) bool {
	for i, h := range headers {
		if strings.TrimSpace(row[colIdx+i]) != h {
			return false
		}
	}
	return true
}

// Cell returns the value at a 1-based row and column, or "" when out of range.
func Cell(rows [][]string, row, col int) string {
	if row < 1 || row > len(rows) {
		return ""
	}
	r := rows[row-1]
	if col < 1 || col > len(r) {
		return ""
	}
	return r[col-1]
}
