package parser

import (
	"strings"

	"github.com/ukaji3/grantbook-go/pkg/grantbook/models"
	"github.com/xuri/excelize/v2"
)

// ExtractNamedRanges returns the user defined names of a workbook.
// Built-in names such as _xlnm.Print_Area are skipped.
func ExtractNamedRanges(f *excelize.File) []models.NamedRange {
	var result []models.NamedRange
	for _, dn := range f.GetDefinedName() {
		if strings.HasPrefix(strings.ToLower(dn.Name), "_xlnm.") {
			continue
		}
		sheet, rng := SplitReference(dn.RefersTo)
		result = append(result, models.NamedRange{
			Name:  dn.Name,
			Sheet: sheet,
			Range: rng,
			Scope: dn.Scope,
		})
	}
	return result
}

// SplitReference splits a reference into sheet name and range.
// Format: ='Sheet Name'!$A$1:$D$10, Sheet!$A$1:$D$10 or $A$1:$D$10
func SplitReference(ref string) (string, string) {
	ref = strings.TrimPrefix(strings.TrimSpace(ref), "=")
	idx := strings.LastIndex(ref, "!")
	if idx < 0 {
		return "", ref
	}
	sheet := strings.Trim(ref[:idx], "'")
	sheet = strings.ReplaceAll(sheet, "''", "'")
	return sheet, ref[idx+1:]
}
