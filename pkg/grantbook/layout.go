package grantbook

// Fixed coordinates shared by every sheet.
const (
	FirstCol       = 2 // B
	TitleRow       = 2
	DescriptionRow = 3
	HeaderRow      = 5
	FirstDataRow   = 6
	LegendRow      = 12
	ReminderRow    = 17

	TitleHeight  = 35
	HeaderHeight = 30
	GutterWidth  = 3 // column A
)

// Column describes one column of a sheet's data block.
type Column struct {
	Header string
	Width  float64
	Align  string
	NumFmt string
	// Formula returns the formula for a data row, without the leading "=".
	// Nil for literal columns.
	Formula func(row int) string
}

// Name is a workbook-scoped defined name pointing into the sheet.
type Name struct {
	Name  string
	Range string // absolute, e.g. $B$6:$B$20
}

// DropList is a list validation. Source names a defined name; List is an inline list.
type DropList struct {
	Sqref       string
	Source      string
	List        []string
	ErrorTitle  string
	Error       string
	PromptTitle string
	Prompt      string
}

// LegendLine is one label/formula pair of the legend block.
type LegendLine struct {
	Label string
	Text  string
}

// SheetLayout declares everything written to one sheet.
type SheetLayout struct {
	Name        string
	Title       string
	Description string
	Columns     []Column
	// Rows holds one value per column; formula columns hold nil.
	Rows        [][]interface{}
	Names       []Name
	DropLists   []DropList
	LegendTitle string
	Legend      []LegendLine
	NoticeTitle string
	Notices     []string
}

// Headers returns the header labels in column order.
func (l SheetLayout) Headers() []string {
	headers := make([]string, len(l.Columns))
	for i, c := range l.Columns {
		headers[i] = c.Header
	}
	return headers
}

// LastDataRow returns the last row users may fill before the legend or
// notice block. Zero means the data block is unbounded.
func (l SheetLayout) LastDataRow() int {
	switch {
	case len(l.Legend) > 0:
		return LegendRow - 1
	case len(l.Notices) > 0:
		return ReminderRow - 1
	}
	return 0
}

// LastCol returns the 1-based index of the last data column.
func (l SheetLayout) LastCol() int {
	return FirstCol + len(l.Columns) - 1
}

// Layouts returns the three sheet layouts in workbook order.
func Layouts() []SheetLayout {
	return []SheetLayout{
		ProjectLayout(),
		MonthlyLayout(),
		ExpenditureLayout(),
	}
}
