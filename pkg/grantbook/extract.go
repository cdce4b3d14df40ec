package grantbook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/grantbook-go/pkg/grantbook/models"
	"github.com/ukaji3/grantbook-go/pkg/grantbook/parser"
	"github.com/xuri/excelize/v2"
)

// Extract reads a grantbook workbook back into structured data.
// Formula cells are reported as text; they are never evaluated.
func Extract(path string, opts Options) (*models.WorkbookData, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	wb := ExtractFile(f, opts)
	wb.BookName = filepath.Base(path)
	return wb, nil
}

// ExtractFile reads an open workbook. Components that fail to parse are
// logged and left empty.
func ExtractFile(f *excelize.File, opts Options) *models.WorkbookData {
	log := opts.logger()
	wb := &models.WorkbookData{NamedRanges: parser.ExtractNamedRanges(f)}
	if f.Path != "" {
		wb.BookName = filepath.Base(f.Path)
	}
	layouts := make(map[string]SheetLayout)
	for _, l := range Layouts() {
		layouts[l.Name] = l
	}

	for _, sheetName := range f.GetSheetList() {
		sheetLog := log.WithField("sheet", sheetName)
		sheet := models.SheetData{Name: sheetName}

		rows, err := parser.ReadRows(f, sheetName)
		if err != nil {
			sheetLog.WithError(err).Warn("failed to read rows")
			wb.Sheets = append(wb.Sheets, sheet)
			continue
		}

		var region models.Region
		l, known := layouts[sheetName]
		if known {
			region = parser.DetectRegion(rows, parser.RegionParams{
				Headers:          l.Headers(),
				DefaultHeaderRow: HeaderRow,
				DefaultFirstCol:  FirstCol,
				MaxRow:           l.LastDataRow(),
			})
			if err := readRecords(wb, sheetName, rows, region); err != nil {
				sheetLog.WithError(err).Warn("failed to parse records")
			}
		}

		if opts.Mode != ModeLight {
			cells, err := parser.ExtractCells(f, sheetName, opts.ShouldIncludeFormulas())
			if err != nil {
				sheetLog.WithError(err).Warn("failed to extract cells")
			}
			sheet.Rows = cells

			if sheet.Merged, err = parser.ExtractMerged(f, sheetName); err != nil {
				sheetLog.WithError(err).Warn("failed to extract merged cells")
			}
			if sheet.Validations, err = parser.ExtractValidations(f, sheetName); err != nil {
				sheetLog.WithError(err).Warn("failed to extract validations")
			}
			if known {
				sheet.Region = &region
			}
		}

		sheetLog.WithFields(logrus.Fields{
			"rows":        len(sheet.Rows),
			"validations": len(sheet.Validations),
		}).Debug("sheet extracted")
		wb.Sheets = append(wb.Sheets, sheet)
	}

	if opts.ShouldCheckReferences() {
		wb.Issues = CheckReferences(wb)
		for _, issue := range wb.Issues {
			log.WithFields(logrus.Fields{
				"sheet": issue.Sheet,
				"cell":  issue.Cell,
				"value": issue.Value,
			}).Warnf("value not found in %s", issue.Source)
		}
	}
	return wb
}

func readRecords(wb *models.WorkbookData, sheetName string, rows [][]string, region models.Region) error {
	var err error
	switch sheetName {
	case SheetProject:
		wb.KeyItems, err = parser.ParseKeyItems(rows, region)
	case SheetMonthly:
		wb.MonthlyEntries, err = parser.ParseMonthlyEntries(rows, region)
	case SheetExpenditure:
		wb.Expenditures, err = parser.ParseExpenditures(rows, region)
	}
	return err
}

// CheckReferences reports monthly entries whose key item ID, and expenditures
// whose budget subject, do not appear in the project data sheet.
// Empty values are not reported.
func CheckReferences(wb *models.WorkbookData) []models.ReferenceIssue {
	ids := make(map[string]bool)
	subjects := make(map[string]bool)
	for _, item := range wb.KeyItems {
		ids[item.ID] = true
		subjects[item.Subject] = true
	}

	var issues []models.ReferenceIssue
	for _, e := range wb.MonthlyEntries {
		if e.KeyItemID != "" && !ids[e.KeyItemID] {
			issues = append(issues, models.ReferenceIssue{
				Sheet:  SheetMonthly,
				Cell:   cellName(FirstCol+1, e.Row),
				Value:  e.KeyItemID,
				Source: NameKeyItemID,
			})
		}
	}
	for _, e := range wb.Expenditures {
		if e.Subject != "" && !subjects[e.Subject] {
			issues = append(issues, models.ReferenceIssue{
				Sheet:  SheetExpenditure,
				Cell:   cellName(FirstCol+1, e.Row),
				Value:  e.Subject,
				Source: NameSubject,
			})
		}
	}
	return issues
}
