package timesheet

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Status は週次タイムシートのライフサイクル状態を表します。
type Status string

const (
	StatusDraft     Status = "Draft"
	StatusSubmitted Status = "Submitted"
	StatusApproved  Status = "Approved"
	StatusRejected  Status = "Rejected"
)

// DaySlot は週内の固定7スロットの識別子です。
type DaySlot string

const (
	SlotMonday    DaySlot = "mon"
	SlotTuesday   DaySlot = "tue"
	SlotWednesday DaySlot = "wed"
	SlotThursday  DaySlot = "thu"
	SlotFriday    DaySlot = "fri"
	SlotSaturday  DaySlot = "sat"
	SlotSunday    DaySlot = "sun"
)

var slotOrder = map[DaySlot]int{
	SlotMonday:    0,
	SlotTuesday:   1,
	SlotWednesday: 2,
	SlotThursday:  3,
	SlotFriday:    4,
	SlotSaturday:  5,
	SlotSunday:    6,
}

// DayEntry は1日分の勤務記録です。保存のたびにスロット単位で丸ごと置き換えられます。
// JSON タグは格納ドキュメントのフィールド名です。
type DayEntry struct {
	ID          DaySlot `json:"id"`
	Label       string  `json:"label"`
	Hours       float64 `json:"hours"`
	JobNo       string  `json:"jobNo,omitempty"`
	Location    string  `json:"location,omitempty"`
	ShiftType   string  `json:"shiftType,omitempty"`
	LunchTaken  string  `json:"lunchTaken,omitempty"`
	LivingAway  string  `json:"livingAway,omitempty"`
	StartTime   string  `json:"startTime,omitempty"`
	FinishTime  string  `json:"finishTime,omitempty"`
	Description string  `json:"description,omitempty"`
}

// Week は週次タイムシートの集約です。(従業員, 暦週) ごとに1件のみ存在します。
type Week struct {
	ID               string
	Label            string
	WeekStart        string // DD/MM/YYYY の表示文字列
	Status           Status
	EmployeeID       string
	EmployeeName     string
	Days             []DayEntry
	RejectionComment string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	SubmittedAt      *time.Time
	ReviewedAt       *time.Time
}

// TotalHours は週内の合計時間を返します。
func (w *Week) TotalHours() float64 {
	var total float64
	for _, d := range w.Days {
		total += d.Hours
	}
	return total
}

// HasWorkedHours はいずれかの日に正の時間が記録されているかを返します。
func (w *Week) HasWorkedHours() bool {
	for _, d := range w.Days {
		if d.Hours > 0 {
			return true
		}
	}
	return false
}

// WeekID は週の終端日(日曜)の ISO 日付と従業員IDから決定的な週IDを導出します。
// 従業員IDを含めることで、同じ暦週を共有する従業員間の衝突を防ぎます。
func WeekID(employeeID string, weekEnd time.Time) string {
	return fmt.Sprintf("%s_%s", employeeID, weekEnd.Format("2006-01-02"))
}

// IsValidSlot は day スロット識別子が mon..sun のいずれかであるかを返します。
func IsValidSlot(slot DaySlot) bool {
	_, ok := slotOrder[slot]
	return ok
}

func isValidStatus(status Status) bool {
	switch status {
	case StatusDraft, StatusSubmitted, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// SortByWeekStartDesc は weekStart (DD/MM/YYYY) の降順で週を並べ替えます。
// ストアがソート済みクエリを返せない場合のフォールバックで、
// DD/MM/YYYY を YYYY-MM-DD に並べ替えてから文字列比較します。
func SortByWeekStartDesc(weeks []*Week) {
	sort.SliceStable(weeks, func(i, j int) bool {
		return weekStartSortKey(weeks[i].WeekStart) > weekStartSortKey(weeks[j].WeekStart)
	})
}

func weekStartSortKey(weekStart string) string {
	parts := strings.Split(weekStart, "/")
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "-")
}

// sortDays は日エントリを mon..sun の順に並べ替えます。
func sortDays(days []DayEntry) {
	sort.SliceStable(days, func(i, j int) bool {
		return slotOrder[days[i].ID] < slotOrder[days[j].ID]
	})
}
