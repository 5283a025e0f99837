// Package report はタイムシート集合に対する読み取り専用の集計を提供します。
// 役割によるフィルタリングは呼び出し側で済んでいる前提で、この層は一切変更を行いません。
package report

import (
	"github.com/ogurasousui/irs-timesheet/internal/core/timesheet"
)

// CountByStatus は状態ごとの週の件数を返します。
func CountByStatus(weeks []*timesheet.Week) map[timesheet.Status]int {
	counts := make(map[timesheet.Status]int)
	for _, week := range weeks {
		counts[week.Status]++
	}
	return counts
}

// EmployeeHours は従業員ごとの合計時間です。
type EmployeeHours struct {
	EmployeeID   string
	EmployeeName string
	TotalHours   float64
}

// TotalHoursByEmployee は従業員ごとの全週の合計時間を返します。
// 返却順は weeks 内での初出順です。
func TotalHoursByEmployee(weeks []*timesheet.Week) []EmployeeHours {
	index := make(map[string]int)
	var totals []EmployeeHours

	for _, week := range weeks {
		i, ok := index[week.EmployeeID]
		if !ok {
			i = len(totals)
			index[week.EmployeeID] = i
			totals = append(totals, EmployeeHours{
				EmployeeID:   week.EmployeeID,
				EmployeeName: week.EmployeeName,
			})
		}
		totals[i].TotalHours += week.TotalHours()
		if totals[i].EmployeeName == "" && week.EmployeeName != "" {
			totals[i].EmployeeName = week.EmployeeName
		}
	}

	return totals
}

// OpenCount は未決(Draft と Submitted)の週の件数を返します。
func OpenCount(weeks []*timesheet.Week) int {
	counts := CountByStatus(weeks)
	return counts[timesheet.StatusDraft] + counts[timesheet.StatusSubmitted]
}
