package report

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ogurasousui/irs-timesheet/internal/core/timesheet"
)

// CSVHeader はエクスポートの固定ヘッダ行です。
const CSVHeader = "Employee,Week End,Week Start,Day,Hours,Status"

// 表計算ソフト互換のための UTF-8 BOM。
const utf8BOM = "\ufeff"

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9_.-]`)

// BuildCSV は (週, 日) ごとに1行の CSV を組み立てます。
// 文字列フィールドは引用符で囲み、Hours は引用符なしの小数2桁で出力します。
// encoding/csv は条件付きでしか引用しないため、行は手で組み立てます。
func BuildCSV(weeks []*timesheet.Week) string {
	rows := make([]string, 0, len(weeks)+1)
	rows = append(rows, CSVHeader)

	for _, week := range weeks {
		for _, d := range week.Days {
			rows = append(rows, strings.Join([]string{
				quote(week.EmployeeName),
				quote(week.Label),
				quote(week.WeekStart),
				quote(d.Label),
				fmt.Sprintf("%.2f", d.Hours),
				string(week.Status),
			}, ","))
		}
	}

	return strings.Join(rows, "\n")
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Export はエクスポート成果物です。Content は BOM 付きの CSV 本文です。
type Export struct {
	Filename string
	Content  []byte
}

// NewExport は CSV 本文に BOM を付与し、ファイル名をサニタイズして
// .csv 拡張子を強制したエクスポート成果物を返します。
func NewExport(csvText, filename string) Export {
	safe := unsafeFilenameChars.ReplaceAllString(filename, "_")
	if !strings.HasSuffix(safe, ".csv") {
		safe += ".csv"
	}
	return Export{
		Filename: safe,
		Content:  []byte(utf8BOM + csvText),
	}
}

// ExportFilename は従業員名と週数からエクスポートの既定ファイル名を導出します。
func ExportFilename(employeeName string, weekCount int) string {
	name := strings.TrimSpace(employeeName)
	if name == "" {
		name = "employee"
	}
	name = strings.Join(strings.Fields(name), "_")
	return fmt.Sprintf("timesheet_%s_%dweeks", name, weekCount)
}
