package parser

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ukaji3/grantbook-go/pkg/grantbook/models"
)

func TestParseKeyItems(t *testing.T) {
	rows := [][]string{
		{"", "KR-001", "說明會", "01-人事費", "50000", "1", "2026/03/31"},
		{"", " KR-002 ", "訪談", "02-業務費", "80,000", "", "2026/06/30"},
	}
	items, err := ParseKeyItems(rows, models.Region{FirstRow: 1, LastRow: 2, FirstCol: 2, LastCol: 7})
	if err != nil {
		t.Fatalf("ParseKeyItems failed: %v", err)
	}
	want := []models.KeyItem{
		{ID: "KR-001", Name: "說明會", Subject: "01-人事費", Amount: 50000, Target: 1, DueDate: "2026/03/31"},
		{ID: "KR-002", Name: "訪談", Subject: "02-業務費", Amount: 80000, Target: 0, DueDate: "2026/06/30"},
	}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("ParseKeyItems = %+v, expected %+v", items, want)
	}
}

func TestParseKeyItemsInvalidNumber(t *testing.T) {
	rows := [][]string{
		{"", "KR-001", "說明會", "01-人事費", "many", "1", "2026/03/31"},
	}
	_, err := ParseKeyItems(rows, models.Region{FirstRow: 1, LastRow: 1, FirstCol: 2})
	if err == nil || !strings.Contains(err.Error(), "cell E1") {
		t.Errorf("Expected error at cell E1, got %v", err)
	}
}

func TestParseMonthlyEntries(t *testing.T) {
	rows := [][]string{
		{},
		{"", "2026年01月", "KR-001", "", "", "1", "", "籌備"},
	}
	entries, err := ParseMonthlyEntries(rows, models.Region{FirstRow: 2, LastRow: 2, FirstCol: 2})
	if err != nil {
		t.Fatalf("ParseMonthlyEntries failed: %v", err)
	}
	want := []models.MonthlyEntry{{Row: 2, Month: "2026年01月", KeyItemID: "KR-001", Achieved: 1, Content: "籌備"}}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("ParseMonthlyEntries = %+v, expected %+v", entries, want)
	}
}

func TestParseExpenditures(t *testing.T) {
	rows := [][]string{
		{"", "2026/01/15", "01-人事費", "", "", "補助款", "15000"},
	}
	result, err := ParseExpenditures(rows, models.Region{FirstRow: 1, LastRow: 1, FirstCol: 2})
	if err != nil {
		t.Fatalf("ParseExpenditures failed: %v", err)
	}
	want := []models.Expenditure{{Row: 1, Date: "2026/01/15", Subject: "01-人事費", Source: "補助款", Amount: 15000}}
	if !reflect.DeepEqual(result, want) {
		t.Errorf("ParseExpenditures = %+v, expected %+v", result, want)
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"", 0, true},
		{"42", 42, true},
		{" 1,234.5 ", 1234.5, true},
		{"0.25", 0.25, true},
		{"n/a", 0, false},
	}
	for _, tt := range tests {
		got, err := parseNumber(tt.input)
		if (err == nil) != tt.ok || (tt.ok && got != tt.expected) {
			t.Errorf("parseNumber(%q) = %v, %v; expected %v, ok=%v", tt.input, got, err, tt.expected, tt.ok)
		}
	}
}
