package output

import (
	"bytes"

	"github.com/ukaji3/grantbook-go/pkg/grantbook/models"
	"gopkg.in/yaml.v3"
)

// ToYAML serializes workbook data to YAML with two-space indentation.
func ToYAML(wb *models.WorkbookData) ([]byte, error) {
	return encodeYAML(wb)
}

// SheetToYAML serializes a single sheet to YAML.
func SheetToYAML(sheet *models.SheetData) ([]byte, error) {
	return encodeYAML(sheet)
}

func encodeYAML(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
