package models

// WorkbookData represents workbook-level container with per-sheet data and parsed records.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name" yaml:"book_name"`
	// Sheets contains sheet data in workbook order.
	Sheets []SheetData `json:"sheets" yaml:"sheets"`
	// NamedRanges contains the workbook's defined names.
	NamedRanges []NamedRange `json:"named_ranges,omitempty" yaml:"named_ranges,omitempty"`
	// KeyItems are the rows of the project data sheet.
	KeyItems []KeyItem `json:"key_items,omitempty" yaml:"key_items,omitempty"`
	// MonthlyEntries are the rows of the monthly report sheet.
	MonthlyEntries []MonthlyEntry `json:"monthly_entries,omitempty" yaml:"monthly_entries,omitempty"`
	// Expenditures are the rows of the expenditure sheet.
	Expenditures []Expenditure `json:"expenditures,omitempty" yaml:"expenditures,omitempty"`
	// Issues lists cross-sheet references that do not resolve (informational).
	Issues []ReferenceIssue `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// Sheet returns the sheet with the given name, if present.
func (w *WorkbookData) Sheet(name string) (*SheetData, bool) {
	for i := range w.Sheets {
		if w.Sheets[i].Name == name {
			return &w.Sheets[i], true
		}
	}
	return nil, false
}

// SheetNames returns sheet names in workbook order.
func (w *WorkbookData) SheetNames() []string {
	names := make([]string, len(w.Sheets))
	for i, s := range w.Sheets {
		names[i] = s.Name
	}
	return names
}
