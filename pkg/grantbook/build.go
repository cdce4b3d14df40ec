package grantbook

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// Build constructs the template workbook in memory.
// The caller owns the returned file and must Close it.
func Build(opts Options) (*excelize.File, error) {
	log := opts.logger()
	layouts := Layouts()

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", layouts[0].Name); err != nil {
		f.Close()
		return nil, NewBuildError(layouts[0].Name, "sheet", err)
	}
	for _, l := range layouts[1:] {
		if _, err := f.NewSheet(l.Name); err != nil {
			f.Close()
			return nil, NewBuildError(l.Name, "sheet", err)
		}
	}
	f.SetActiveSheet(0)

	b := &builder{file: f, styles: newStyleSheet(f)}
	for _, l := range layouts {
		if err := b.writeSheet(l); err != nil {
			f.Close()
			return nil, err
		}
		log.WithFields(logrus.Fields{
			"sheet":   l.Name,
			"columns": len(l.Columns),
			"rows":    len(l.Rows),
		}).Debug("sheet populated")
	}
	return f, nil
}

// Generate builds the template and writes it to opts.OutputPath.
// It returns the path written.
func Generate(opts Options) (string, error) {
	f, err := Build(opts)
	if err != nil {
		return "", err
	}
	defer f.Close()

	path := opts.outputPath()
	if err := save(f, path); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}
	opts.logger().WithField("path", path).Info("template written")
	return path, nil
}

// save writes through os.OpenFile instead of SaveAs so the caller sees the
// underlying *fs.PathError and long paths are not rejected.
func save(f *excelize.File, path string) error {
	file, err := os.OpenFile(filepath.Clean(path), os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	if err := f.Write(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

type builder struct {
	file   *excelize.File
	styles *styleSheet
}

func (b *builder) writeSheet(l SheetLayout) error {
	steps := []struct {
		component string
		fn        func(SheetLayout) error
	}{
		{"sheet", b.writeView},
		{"title", b.writeTitle},
		{"header", b.writeHeader},
		{"rows", b.writeRows},
		{"widths", b.writeWidths},
		{"names", b.writeNames},
		{"validations", b.writeDropLists},
		{"legend", b.writeLegend},
		{"notices", b.writeNotices},
	}
	for _, s := range steps {
		if err := s.fn(l); err != nil {
			return NewBuildError(l.Name, s.component, err)
		}
	}
	return nil
}

func (b *builder) writeView(l SheetLayout) error {
	showGridLines := false
	return b.file.SetSheetView(l.Name, 0, &excelize.ViewOptions{ShowGridLines: &showGridLines})
}

func (b *builder) writeTitle(l SheetLayout) error {
	if err := b.mergedText(l, TitleRow, l.Title, cellStyle{font: titleFont, align: AlignLeft}); err != nil {
		return err
	}
	if err := b.file.SetRowHeight(l.Name, TitleRow, TitleHeight); err != nil {
		return err
	}
	return b.mergedText(l, DescriptionRow, l.Description, cellStyle{font: descriptionFont})
}

func (b *builder) writeHeader(l SheetLayout) error {
	style := cellStyle{font: headerFont, fill: ColorPrimary, align: AlignCenter, border: true}
	for i, c := range l.Columns {
		cell := cellName(FirstCol+i, HeaderRow)
		if err := b.file.SetCellValue(l.Name, cell, c.Header); err != nil {
			return err
		}
		if err := b.styles.apply(l.Name, cell, style); err != nil {
			return err
		}
	}
	return b.file.SetRowHeight(l.Name, HeaderRow, HeaderHeight)
}

func (b *builder) writeRows(l SheetLayout) error {
	for i, values := range l.Rows {
		row := FirstDataRow + i
		if len(values) != len(l.Columns) {
			return fmt.Errorf("row %d has %d values, want %d", row, len(values), len(l.Columns))
		}
		for j, c := range l.Columns {
			cell := cellName(FirstCol+j, row)
			switch {
			case c.Formula != nil:
				if err := b.file.SetCellFormula(l.Name, cell, c.Formula(row)); err != nil {
					return err
				}
			case values[j] != nil:
				if err := b.file.SetCellValue(l.Name, cell, values[j]); err != nil {
					return err
				}
			}
			style := cellStyle{font: normalFont, align: c.Align, numFmt: c.NumFmt, border: true}
			if row%2 == 0 {
				style.fill = ColorLight
			}
			if err := b.styles.apply(l.Name, cell, style); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *builder) writeWidths(l SheetLayout) error {
	if err := b.file.SetColWidth(l.Name, "A", "A", GutterWidth); err != nil {
		return err
	}
	for i, c := range l.Columns {
		col := columnName(FirstCol + i)
		if err := b.file.SetColWidth(l.Name, col, col, c.Width); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) writeNames(l SheetLayout) error {
	for _, n := range l.Names {
		if err := b.file.SetDefinedName(&excelize.DefinedName{
			Name:     n.Name,
			RefersTo: l.Name + "!" + n.Range,
			Scope:    "Workbook",
		}); err != nil {
			return fmt.Errorf("failed to define %s: %w", n.Name, err)
		}
	}
	return nil
}

func (b *builder) writeDropLists(l SheetLayout) error {
	for _, d := range l.DropLists {
		dv := excelize.NewDataValidation(true)
		dv.Sqref = d.Sqref
		if d.Source != "" {
			dv.SetSqrefDropList(d.Source)
		} else if err := dv.SetDropList(d.List); err != nil {
			return fmt.Errorf("invalid drop list for %s: %w", d.Sqref, err)
		}
		dv.SetError(excelize.DataValidationErrorStyleStop, d.ErrorTitle, d.Error)
		if d.Prompt != "" {
			dv.SetInput(d.PromptTitle, d.Prompt)
		}
		if err := b.file.AddDataValidation(l.Name, dv); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) writeLegend(l SheetLayout) error {
	if len(l.Legend) == 0 {
		return nil
	}
	if err := b.mergedText(l, LegendRow, l.LegendTitle, cellStyle{font: sectionFont}); err != nil {
		return err
	}
	for i, line := range l.Legend {
		row := LegendRow + 1 + i
		if err := b.text(l.Name, cellName(FirstCol, row), line.Label, cellStyle{font: labelFont}); err != nil {
			return err
		}
		// Legend formulas are documentation, stored as text.
		if err := b.text(l.Name, cellName(FirstCol+1, row), line.Text, cellStyle{font: codeFont}); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) writeNotices(l SheetLayout) error {
	if len(l.Notices) == 0 {
		return nil
	}
	if err := b.mergedText(l, ReminderRow, l.NoticeTitle, cellStyle{font: warningFont}); err != nil {
		return err
	}
	for i, notice := range l.Notices {
		if err := b.mergedText(l, ReminderRow+1+i, notice, cellStyle{font: noteFont}); err != nil {
			return err
		}
	}
	return nil
}

// mergedText merges the data-column span of a row and writes styled text into its first cell.
func (b *builder) mergedText(l SheetLayout, row int, text string, cs cellStyle) error {
	if err := b.file.MergeCell(l.Name, cellName(FirstCol, row), cellName(l.LastCol(), row)); err != nil {
		return err
	}
	return b.text(l.Name, cellName(FirstCol, row), text, cs)
}

func (b *builder) text(sheet, cell, text string, cs cellStyle) error {
	if err := b.file.SetCellStr(sheet, cell, text); err != nil {
		return err
	}
	return b.styles.apply(sheet, cell, cs)
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func columnName(col int) string {
	name, _ := excelize.ColumnNumberToName(col)
	return name
}
