package grantbook

import "fmt"

// Sheet names. Formulas reference them verbatim.
const (
	SheetProject     = "計畫資料"
	SheetMonthly     = "月報表"
	SheetExpenditure = "經費支出"
)

// Defined names used as dropdown sources.
const (
	NameKeyItemID = "關鍵項目ID"
	NameSubject   = "預算科目"
)

const (
	keyItemTable  = SheetProject + "!$B$6:$G$20"
	subjectTable  = SheetProject + "!$D$6:$E$20"
	subjectColumn = SheetProject + "!$D$6:$D$20"
	amountColumn  = SheetProject + "!$E$6:$E$20"
)

// Budget subjects and funding sources offered by the expenditure dropdowns.
var (
	Subjects       = []string{"01-人事費", "02-業務費", "03-雜支"}
	FundingSources = []string{"補助款", "自籌款"}
)

const legendTitle = "【VLOOKUP 公式說明】"

// ProjectLayout is the master sheet: key items and budget subjects.
func ProjectLayout() SheetLayout {
	return SheetLayout{
		Name:        SheetProject,
		Title:       "計畫資料（主表）",
		Description: "此表定義計畫的關鍵項目與預算科目，供月報表與經費支出連動使用",
		Columns: []Column{
			{Header: "關鍵項目 ID", Width: 15, Align: AlignCenter},
			{Header: "工作項目名稱", Width: 25, Align: AlignLeft},
			{Header: "預算科目", Width: 15, Align: AlignCenter},
			{Header: "核定金額", Width: 14, Align: AlignRight, NumFmt: FormatAmount},
			{Header: "預定目標值", Width: 14, Align: AlignCenter},
			{Header: "預計完成日", Width: 14, Align: AlignCenter},
		},
		Rows: [][]interface{}{
			{"KR-001", "辦理計畫說明會", "01-人事費", 50000, 1, "2026/03/31"},
			{"KR-002", "耆老訪談紀錄", "02-業務費", 80000, 10, "2026/06/30"},
			{"KR-003", "文化體驗活動", "02-業務費", 150000, 3, "2026/09/30"},
			{"KR-004", "成果發表會", "02-業務費", 100000, 1, "2026/12/15"},
			{"KR-005", "行政雜支", "03-雜支", 20000, 0, "2026/12/31"},
		},
		Names: []Name{
			{Name: NameKeyItemID, Range: "$B$6:$B$20"},
			{Name: NameSubject, Range: "$D$6:$D$20"},
		},
	}
}

// MonthlyLayout is the monthly progress report. Name and target are looked up by key item ID.
func MonthlyLayout() SheetLayout {
	return SheetLayout{
		Name:        SheetMonthly,
		Title:       "月報表（填報）",
		Description: "工作事項透過下拉選單連動「計畫資料」的關鍵項目 ID，選擇後自動帶出項目名稱與預定目標值",
		Columns: []Column{
			{Header: "填報月份", Width: 14, Align: AlignCenter},
			{Header: "對應項目 ID", Width: 15, Align: AlignCenter},
			{Header: "工作項目名稱", Width: 20, Align: AlignLeft, Formula: func(r int) string {
				return fmt.Sprintf(`IFERROR(VLOOKUP(C%d,%s,2,FALSE),"")`, r, keyItemTable)
			}},
			{Header: "預定目標值", Width: 14, Align: AlignCenter, Formula: func(r int) string {
				return fmt.Sprintf(`IFERROR(VLOOKUP(C%d,%s,5,FALSE),"")`, r, keyItemTable)
			}},
			{Header: "本月達成數", Width: 14, Align: AlignCenter},
			{Header: "達成率(%)", Width: 12, Align: AlignCenter, NumFmt: FormatPercent, Formula: func(r int) string {
				return fmt.Sprintf(`IFERROR(F%d/E%d,"")`, r, r)
			}},
			{Header: "本月執行內容", Width: 35, Align: AlignLeft},
		},
		Rows: [][]interface{}{
			{"2026年01月", "KR-001", nil, nil, 1, nil, "完成計畫說明會籌備工作"},
			{"2026年01月", "KR-002", nil, nil, 3, nil, "訪談 3 位部落耆老"},
			{"2026年02月", "KR-002", nil, nil, 4, nil, "訪談 4 位部落耆老"},
			{"2026年02月", "KR-003", nil, nil, 0, nil, "活動場地勘查"},
		},
		DropLists: []DropList{
			{
				Sqref:       "C6:C100",
				Source:      NameKeyItemID,
				ErrorTitle:  "輸入錯誤",
				Error:       "請從下拉選單選擇有效的關鍵項目 ID",
				PromptTitle: "選擇項目",
				Prompt:      "請選擇對應的關鍵項目 ID",
			},
		},
		LegendTitle: legendTitle,
		Legend: []LegendLine{
			{Label: "工作項目名稱公式：", Text: "=VLOOKUP(C6," + keyItemTable + ",2,FALSE)"},
			{Label: "預定目標值公式：", Text: "=VLOOKUP(C6," + keyItemTable + ",5,FALSE)"},
			{Label: "達成率公式：", Text: "=F6/E6 (本月達成數 ÷ 預定目標值)"},
		},
	}
}

// ExpenditureLayout is the expenditure ledger. Approved amount and balance follow the budget subject.
func ExpenditureLayout() SheetLayout {
	return SheetLayout{
		Name:        SheetExpenditure,
		Title:       "經費支出（核銷）",
		Description: "支出項目透過下拉選單連動「計畫資料」的預算科目，選擇後自動帶出核定金額與剩餘餘額",
		Columns: []Column{
			{Header: "日期", Width: 12, Align: AlignCenter},
			{Header: "對應科目", Width: 14, Align: AlignCenter},
			{Header: "科目名稱", Width: 25, Align: AlignLeft, Formula: func(r int) string {
				return fmt.Sprintf(`IFERROR(VLOOKUP(C%d,%s,1,FALSE)&" - "&VLOOKUP(C%d,%s,2,FALSE),"")`, r, subjectTable, r, subjectTable)
			}},
			{Header: "核定金額", Width: 14, Align: AlignRight, NumFmt: FormatAmount, Formula: func(r int) string {
				return fmt.Sprintf(`IFERROR(SUMIF(%s,C%d,%s),"")`, subjectColumn, r, amountColumn)
			}},
			{Header: "經費來源", Width: 12, Align: AlignCenter},
			{Header: "本月報支金額", Width: 14, Align: AlignRight, NumFmt: FormatAmount},
			{Header: "累計支出", Width: 12, Align: AlignRight, NumFmt: FormatAmount, Formula: func(r int) string {
				return fmt.Sprintf(`SUMIF($C$6:$C$100,C%d,$G$6:$G$100)`, r)
			}},
			{Header: "剩餘餘額", Width: 12, Align: AlignRight, NumFmt: FormatAmount, Formula: func(r int) string {
				return fmt.Sprintf(`IFERROR(E%d-H%d,"")`, r, r)
			}},
		},
		Rows: [][]interface{}{
			{"2026/01/15", "01-人事費", nil, nil, "補助款", 15000, nil, nil},
			{"2026/01/20", "02-業務費", nil, nil, "補助款", 25000, nil, nil},
			{"2026/02/10", "02-業務費", nil, nil, "自籌款", 18000, nil, nil},
			{"2026/02/28", "03-雜支", nil, nil, "補助款", 5000, nil, nil},
		},
		DropLists: []DropList{
			{
				Sqref:      "C6:C100",
				List:       Subjects,
				ErrorTitle: "輸入錯誤",
				Error:      "請從下拉選單選擇有效的預算科目",
			},
			{
				Sqref:      "F6:F100",
				List:       FundingSources,
				ErrorTitle: "輸入錯誤",
				Error:      "請選擇補助款或自籌款",
			},
		},
		LegendTitle: legendTitle,
		Legend: []LegendLine{
			{Label: "核定金額公式：", Text: "=SUMIF(" + subjectColumn + ",C6," + amountColumn + ")"},
			{Label: "累計支出公式：", Text: "=SUMIF($C$6:$C$100,C6,$G$6:$G$100)"},
			{Label: "剩餘餘額公式：", Text: "=E6-H6 (核定金額 - 累計支出)"},
		},
		NoticeTitle: "【重要提醒】",
		Notices: []string{
			"• 「經費來源」欄位區分補助款與自籌款，系統可據此自動產出「經費撥付申請表」",
			"• 人事費支出請注意文化部獎補助資訊網規範的上限（通常為核定金額的 30%）",
		},
	}
}
