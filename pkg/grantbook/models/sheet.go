package models

// SheetData represents structured data for a single sheet.
type SheetData struct {
	// Name is the sheet name.
	Name string `json:"name" yaml:"name"`
	// Rows contains extracted rows with cell values and formulas.
	Rows []CellRow `json:"rows,omitempty" yaml:"rows,omitempty"`
	// Merged contains merged cell ranges, e.g. B2:G2.
	Merged []string `json:"merged,omitempty" yaml:"merged,omitempty"`
	// Validations contains the sheet's data validation rules.
	Validations []Validation `json:"validations,omitempty" yaml:"validations,omitempty"`
	// Region is the detected header and record block.
	Region *Region `json:"region,omitempty" yaml:"region,omitempty"`
}

// Row returns the row with index r, if present.
func (s SheetData) Row(r int) (CellRow, bool) {
	for _, row := range s.Rows {
		if row.R == r {
			return row, true
		}
	}
	return CellRow{}, false
}
