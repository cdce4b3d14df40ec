package parser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExtractCells(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellValue(sheetName, "C1", "Total")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	f.SetCellFormula(sheetName, "C2", "A2+B2")
	f.SetCellValue(sheetName, "A3", "Text")

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	rows, err := ExtractCells(f2, sheetName, false)
	if err != nil {
		t.Fatalf("ExtractCells failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[0].R != 1 {
		t.Errorf("Expected row 1, got %d", rows[0].R)
	}
	if rows[0].C["1"] != "Header1" {
		t.Errorf("Expected 'Header1', got %v", rows[0].C["1"])
	}
	if rows[1].C["1"] != int64(100) {
		t.Errorf("Expected int64(100), got %v (type: %T)", rows[1].C["1"], rows[1].C["1"])
	}
	if rows[1].C["2"] != 200.5 {
		t.Errorf("Expected 200.5, got %v", rows[1].C["2"])
	}
	if rows[1].F != nil {
		t.Errorf("Expected no formulas without includeFormulas, got %v", rows[1].F)
	}

	rows, err = ExtractCells(f2, sheetName, true)
	if err != nil {
		t.Fatalf("ExtractCells failed: %v", err)
	}
	if got := rows[1].F["3"]; got != "A2+B2" {
		t.Errorf("Expected formula 'A2+B2', got %q", got)
	}
	if _, ok := rows[1].C["3"]; ok {
		t.Errorf("Formula cell without cached value should have no value, got %v", rows[1].C["3"])
	}
}

func TestExtractCellsRawNumbers(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	numFmt := "#,##0"
	style, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	f.SetCellValue("Sheet1", "A1", 150000)
	f.SetCellStyle("Sheet1", "A1", "A1", style)

	rows, err := ExtractCells(f, "Sheet1", false)
	if err != nil {
		t.Fatalf("ExtractCells failed: %v", err)
	}
	if rows[0].C["1"] != int64(150000) {
		t.Errorf("Expected int64(150000), got %v (type: %T)", rows[0].C["1"], rows[0].C["1"])
	}
}

func TestExtractMerged(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.MergeCell("Sheet1", "B2", "G2"); err != nil {
		t.Fatalf("MergeCell failed: %v", err)
	}
	merged, err := ExtractMerged(f, "Sheet1")
	if err != nil {
		t.Fatalf("ExtractMerged failed: %v", err)
	}
	if len(merged) != 1 || merged[0] != "B2:G2" {
		t.Errorf("Expected [B2:G2], got %v", merged)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"KR-001", "KR-001"},
		{"2026/03/31", "2026/03/31"},
		{"", ""},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}
