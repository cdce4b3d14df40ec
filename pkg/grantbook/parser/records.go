package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/grantbook-go/pkg/grantbook/models"
	"github.com/xuri/excelize/v2"
)

// Column offsets relative to the region's first column.
const (
	keyItemID = iota
	keyItemName
	keyItemSubject
	keyItemAmount
	keyItemTarget
	keyItemDue
)

const (
	monthlyMonth    = 0
	monthlyID       = 1
	monthlyAchieved = 4
	monthlyContent  = 6
)

const (
	expenditureDate    = 0
	expenditureSubject = 1
	expenditureSource  = 4
	expenditureAmount  = 5
)

// ParseKeyItems reads the key items of the project data sheet.
func ParseKeyItems(rows [][]string, region models.Region) ([]models.KeyItem, error) {
	var items []models.KeyItem
	for r := region.FirstRow; r <= region.LastRow; r++ {
		get := columnReader(rows, r, region.FirstCol)
		amount, err := parseNumber(get(keyItemAmount))
		if err != nil {
			return nil, cellError(r, region.FirstCol+keyItemAmount, err)
		}
		target, err := parseNumber(get(keyItemTarget))
		if err != nil {
			return nil, cellError(r, region.FirstCol+keyItemTarget, err)
		}
		items = append(items, models.KeyItem{
			ID:      get(keyItemID),
			Name:    get(keyItemName),
			Subject: get(keyItemSubject),
			Amount:  amount,
			Target:  target,
			DueDate: get(keyItemDue),
		})
	}
	return items, nil
}

// ParseMonthlyEntries reads the input columns of the monthly report sheet.
func ParseMonthlyEntries(rows [][]string, region models.Region) ([]models.MonthlyEntry, error) {
	var entries []models.MonthlyEntry
	for r := region.FirstRow; r <= region.LastRow; r++ {
		get := columnReader(rows, r, region.FirstCol)
		achieved, err := parseNumber(get(monthlyAchieved))
		if err != nil {
			return nil, cellError(r, region.FirstCol+monthlyAchieved, err)
		}
		entries = append(entries, models.MonthlyEntry{
			Row:       r,
			Month:     get(monthlyMonth),
			KeyItemID: get(monthlyID),
			Achieved:  achieved,
			Content:   get(monthlyContent),
		})
	}
	return entries, nil
}

// ParseExpenditures reads the input columns of the expenditure sheet.
func ParseExpenditures(rows [][]string, region models.Region) ([]models.Expenditure, error) {
	var result []models.Expenditure
	for r := region.FirstRow; r <= region.LastRow; r++ {
		get := columnReader(rows, r, region.FirstCol)
		amount, err := parseNumber(get(expenditureAmount))
		if err != nil {
			return nil, cellError(r, region.FirstCol+expenditureAmount, err)
		}
		result = append(result, models.Expenditure{
			Row:     r,
			Date:    get(expenditureDate),
			Subject: get(expenditureSubject),
			Source:  get(expenditureSource),
			Amount:  amount,
		})
	}
	return result, nil
}

func columnReader(rows [][]string, row, firstCol int) func(offset int) string {
	return func(offset int) string {
		return strings.TrimSpace(Cell(rows, row, firstCol+offset))
	}
}

// parseNumber accepts plain numbers and thousands separators. Empty is zero.
func parseNumber(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func cellError(row, col int, err error) error {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	return fmt.Errorf("cell %s: %w", cell, err)
}
