package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/grantbook-go/pkg/grantbook/models"
	"gopkg.in/yaml.v3"
)

func sampleWorkbook() *models.WorkbookData {
	return &models.WorkbookData{
		BookName: "template.xlsx",
		Sheets: []models.SheetData{{
			Name: "月報表",
			Rows: []models.CellRow{{
				R: 6,
				C: map[string]interface{}{"2": "2026年01月", "6": int64(1)},
				F: map[string]string{"7": `IFERROR(F6/E6,"")`},
			}},
		}},
		NamedRanges: []models.NamedRange{{Name: "關鍵項目ID", Sheet: "計畫資料", Range: "$B$6:$B$20", Scope: "Workbook"}},
		KeyItems:    []models.KeyItem{{ID: "KR-001", Amount: 50000}},
	}
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(sampleWorkbook(), false)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "\n")

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "template.xlsx", decoded["book_name"])
	assert.NotContains(t, decoded, "issues")

	pretty, err := ToJSON(sampleWorkbook(), true)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(pretty), "\n  \"book_name\""))
}

func TestSheetToJSON(t *testing.T) {
	wb := sampleWorkbook()
	data, err := SheetToJSON(&wb.Sheets[0], false)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"f":{"7":"IFERROR(F6/E6,\"\")"}`)
}

func TestToYAML(t *testing.T) {
	data, err := ToYAML(sampleWorkbook())
	require.NoError(t, err)

	var decoded struct {
		BookName    string              `yaml:"book_name"`
		NamedRanges []models.NamedRange `yaml:"named_ranges"`
		KeyItems    []models.KeyItem    `yaml:"key_items"`
	}
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "template.xlsx", decoded.BookName)
	assert.Equal(t, sampleWorkbook().NamedRanges, decoded.NamedRanges)
	assert.Equal(t, "KR-001", decoded.KeyItems[0].ID)
	assert.True(t, strings.HasPrefix(string(data), "book_name: template.xlsx\n"))
}

func TestSheetToYAML(t *testing.T) {
	wb := sampleWorkbook()
	data, err := SheetToYAML(&wb.Sheets[0])
	require.NoError(t, err)

	var decoded models.SheetData
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "月報表", decoded.Name)
	require.Len(t, decoded.Rows, 1)
	assert.Equal(t, `IFERROR(F6/E6,"")`, decoded.Rows[0].F["7"])
}
