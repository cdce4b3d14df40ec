// Package models defines data structures read back from a grantbook workbook.
package models

// CellRow represents a single row of cells with optional formulas.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r" yaml:"r"`
	// C maps column index (string) to cell value.
	C map[string]interface{} `json:"c" yaml:"c"`
	// F maps column index to formula text without the leading "=" (optional).
	F map[string]string `json:"f,omitempty" yaml:"f,omitempty"`
}
