package models

// KeyItem is one key item of the project data sheet.
type KeyItem struct {
	ID      string  `json:"id" yaml:"id"`
	Name    string  `json:"name" yaml:"name"`
	Subject string  `json:"subject" yaml:"subject"`
	Amount  float64 `json:"amount" yaml:"amount"`
	Target  float64 `json:"target" yaml:"target"`
	DueDate string  `json:"due_date" yaml:"due_date"`
}

// MonthlyEntry is one row of the monthly report sheet.
// Looked-up columns (name, target, rate) are formulas and are not read.
type MonthlyEntry struct {
	// Row is the sheet row the entry was read from.
	Row       int     `json:"row" yaml:"row"`
	Month     string  `json:"month" yaml:"month"`
	KeyItemID string  `json:"key_item_id" yaml:"key_item_id"`
	Achieved  float64 `json:"achieved" yaml:"achieved"`
	Content   string  `json:"content" yaml:"content"`
}

// Expenditure is one row of the expenditure sheet.
type Expenditure struct {
	// Row is the sheet row the expenditure was read from.
	Row     int     `json:"row" yaml:"row"`
	Date    string  `json:"date" yaml:"date"`
	Subject string  `json:"subject" yaml:"subject"`
	Source  string  `json:"source" yaml:"source"`
	Amount  float64 `json:"amount" yaml:"amount"`
}

// ReferenceIssue reports a value that does not match any entry of the project data sheet.
type ReferenceIssue struct {
	Sheet string `json:"sheet" yaml:"sheet"`
	Cell  string `json:"cell" yaml:"cell"`
	Value string `json:"value" yaml:"value"`
	// Source names the lookup list the value was expected in.
	Source string `json:"source" yaml:"source"`
}
