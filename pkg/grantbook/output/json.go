// Package output serializes extracted workbook data.
package output

import (
	"encoding/json"

	"github.com/ukaji3/grantbook-go/pkg/grantbook/models"
)

// ToJSON serializes workbook data to JSON.
func ToJSON(wb *models.WorkbookData, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

// SheetToJSON serializes a single sheet to JSON.
func SheetToJSON(sheet *models.SheetData, pretty bool) ([]byte, error) {
	return marshal(sheet, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
