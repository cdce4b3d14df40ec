package grantbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Palette colours, RGB hex without "#".
const (
	ColorPrimary = "2D3E50"
	ColorAccent  = "E67E22"
	ColorLight   = "ECF0F1"
	ColorSuccess = "27AE60"
	ColorWarning = "F39C12"
	ColorDanger  = "E74C3C"
	ColorText    = "2C3E50"
	ColorBorder  = "BDC3C7"
	ColorMuted   = "7F8C8D"
	ColorWhite   = "FFFFFF"
)

const (
	FontFamily     = "Microsoft JhengHei"
	CodeFontFamily = "Consolas"
)

// Number formats.
const (
	FormatAmount  = "#,##0"
	FormatPercent = "0.0%"
)

// Horizontal alignments.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

type font struct {
	family string
	size   float64
	bold   bool
	color  string
}

var (
	titleFont       = font{family: FontFamily, size: 16, bold: true, color: ColorPrimary}
	descriptionFont = font{family: FontFamily, size: 9, color: ColorMuted}
	headerFont      = font{family: FontFamily, size: 11, bold: true, color: ColorWhite}
	normalFont      = font{family: FontFamily, size: 10, color: ColorText}
	sectionFont     = font{family: FontFamily, size: 11, bold: true, color: ColorAccent}
	warningFont     = font{family: FontFamily, size: 11, bold: true, color: ColorDanger}
	labelFont       = font{family: FontFamily, size: 9, bold: true}
	codeFont        = font{family: CodeFontFamily, size: 9, color: ColorMuted}
	noteFont        = font{family: FontFamily, size: 9, color: ColorText}
)

// cellStyle is the cache key of a registered style.
type cellStyle struct {
	font   font
	fill   string
	align  string
	numFmt string
	border bool
}

// styleSheet registers each distinct cellStyle once per workbook.
type styleSheet struct {
	file  *excelize.File
	cache map[cellStyle]int
}

func newStyleSheet(f *excelize.File) *styleSheet {
	return &styleSheet{file: f, cache: make(map[cellStyle]int)}
}

func (s *styleSheet) id(cs cellStyle) (int, error) {
	if id, ok := s.cache[cs]; ok {
		return id, nil
	}
	id, err := s.file.NewStyle(cs.excelize())
	if err != nil {
		return 0, fmt.Errorf("failed to create style: %w", err)
	}
	s.cache[cs] = id
	return id, nil
}

// apply sets the style on a single cell.
func (s *styleSheet) apply(sheet, cell string, cs cellStyle) error {
	id, err := s.id(cs)
	if err != nil {
		return err
	}
	return s.file.SetCellStyle(sheet, cell, cell, id)
}

func (cs cellStyle) excelize() *excelize.Style {
	style := &excelize.Style{
		Font: &excelize.Font{
			Family: cs.font.family,
			Size:   cs.font.size,
			Bold:   cs.font.bold,
			Color:  cs.font.color,
		},
	}
	if cs.fill != "" {
		style.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{cs.fill}}
	}
	if cs.border {
		style.Border = []excelize.Border{
			{Type: "left", Color: ColorBorder, Style: 1},
			{Type: "right", Color: ColorBorder, Style: 1},
			{Type: "top", Color: ColorBorder, Style: 1},
			{Type: "bottom", Color: ColorBorder, Style: 1},
		}
	}
	if cs.align != "" {
		style.Alignment = &excelize.Alignment{Horizontal: cs.align, Vertical: "center"}
	}
	if cs.numFmt != "" {
		numFmt := cs.numFmt
		style.CustomNumFmt = &numFmt
	}
	return style
}
