package models

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Region represents the data block of a sheet: a header row followed by records.
type Region struct {
	// HeaderRow is the header row (1-based).
	HeaderRow int `json:"header_row" yaml:"header_row"`
	// FirstRow is the first record row (1-based).
	FirstRow int `json:"first_row" yaml:"first_row"`
	// LastRow is the last record row (1-based, inclusive). Less than FirstRow when empty.
	LastRow int `json:"last_row" yaml:"last_row"`
	// FirstCol is the first header column (1-based).
	FirstCol int `json:"first_col" yaml:"first_col"`
	// LastCol is the last header column (1-based, inclusive).
	LastCol int `json:"last_col" yaml:"last_col"`
}

// Len returns the number of record rows in the region.
func (r Region) Len() int {
	if r.LastRow < r.FirstRow {
		return 0
	}
	return r.LastRow - r.FirstRow + 1
}

// Range returns the A1 range covering the header and all record rows.
func (r Region) Range() string {
	last := r.LastRow
	if last < r.HeaderRow {
		last = r.HeaderRow
	}
	return fmt.Sprintf("%s%d:%s%d", columnName(r.FirstCol), r.HeaderRow, columnName(r.LastCol), last)
}

func columnName(col int) string {
	name, _ := excelize.ColumnNumberToName(col)
	return name
}
