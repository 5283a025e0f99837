package timesheet

import (
	"testing"
	"time"
)

func TestWeekID(t *testing.T) {
	t.Parallel()

	weekEnd := time.Date(2024, 3, 24, 0, 0, 0, 0, time.UTC)
	if got, want := WeekID("emp-1", weekEnd), "emp-1_2024-03-24"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestIsValidSlot(t *testing.T) {
	t.Parallel()

	for _, slot := range []DaySlot{SlotMonday, SlotTuesday, SlotWednesday, SlotThursday, SlotFriday, SlotSaturday, SlotSunday} {
		if !IsValidSlot(slot) {
			t.Errorf("expected %s to be valid", slot)
		}
	}
	for _, slot := range []DaySlot{"", "monday", "Mon", "xyz"} {
		if IsValidSlot(slot) {
			t.Errorf("expected %q to be invalid", slot)
		}
	}
}

func TestWeekTotalHours(t *testing.T) {
	t.Parallel()

	week := &Week{Days: []DayEntry{
		{ID: SlotMonday, Hours: 7.5},
		{ID: SlotTuesday, Hours: 8},
		{ID: SlotWednesday, Hours: 0},
	}}

	if got := week.TotalHours(); got != 15.5 {
		t.Errorf("expected 15.5, got %v", got)
	}
	if !week.HasWorkedHours() {
		t.Error("expected HasWorkedHours with positive entries")
	}

	empty := &Week{Days: []DayEntry{{ID: SlotMonday, Hours: 0}}}
	if empty.HasWorkedHours() {
		t.Error("zero-hour week must not count as worked")
	}
}

func TestWeekStartSortKey(t *testing.T) {
	t.Parallel()

	// DD/MM/YYYY は素の文字列比較では年をまたぐと壊れるため、
	// YYYY-MM-DD に並べ替えてから比較します。
	if got, want := weekStartSortKey("18/03/2024"), "2024-03-18"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if weekStartSortKey("30/12/2023") >= weekStartSortKey("01/01/2024") {
		t.Error("expected 2023 week to sort before 2024 week")
	}
}
