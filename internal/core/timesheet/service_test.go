package timesheet

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/ogurasousui/irs-timesheet/internal/core/account"
)

type stubClock struct {
	now time.Time
}

func (s stubClock) Now() time.Time {
	return s.now
}

type fakeRepo struct {
	weeks map[string]*Week
	order []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{weeks: make(map[string]*Week)}
}

func (r *fakeRepo) Create(_ context.Context, week *Week) (*Week, error) {
	copy := cloneWeek(week)
	r.weeks[copy.ID] = copy
	r.order = append(r.order, copy.ID)
	return cloneWeek(copy), nil
}

func (r *fakeRepo) Update(_ context.Context, week *Week) (*Week, error) {
	if _, ok := r.weeks[week.ID]; !ok {
		return nil, ErrWeekNotFound
	}
	r.weeks[week.ID] = cloneWeek(week)
	return cloneWeek(week), nil
}

func (r *fakeRepo) FindByID(_ context.Context, id string) (*Week, error) {
	week, ok := r.weeks[id]
	if !ok {
		return nil, ErrWeekNotFound
	}
	return cloneWeek(week), nil
}

func (r *fakeRepo) List(_ context.Context, filter ListFilter) ([]*Week, error) {
	var result []*Week
	for _, id := range r.order {
		week := r.weeks[id]
		if filter.EmployeeID != "" && week.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Status != nil && week.Status != *filter.Status {
			continue
		}
		result = append(result, cloneWeek(week))
	}
	return result, nil
}

func cloneWeek(w *Week) *Week {
	if w == nil {
		return nil
	}
	copy := *w
	copy.Days = append([]DayEntry(nil), w.Days...)
	if w.SubmittedAt != nil {
		t := *w.SubmittedAt
		copy.SubmittedAt = &t
	}
	if w.ReviewedAt != nil {
		t := *w.ReviewedAt
		copy.ReviewedAt = &t
	}
	return &copy
}

type stubDirectory struct {
	names map[string]string
	err   error
}

func (d *stubDirectory) AccountName(_ context.Context, id string) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	return d.names[id], nil
}

var (
	owner    = account.Actor{ID: "emp-1", Role: account.RoleEmployee}
	other    = account.Actor{ID: "emp-2", Role: account.RoleEmployee}
	manager  = account.Actor{ID: "mgr-1", Role: account.RoleManager}
	administ = account.Actor{ID: "adm-1", Role: account.RoleAdmin}
)

func newFixture(t *testing.T) (*Service, *fakeRepo, stubClock) {
	t.Helper()
	repo := newFakeRepo()
	clock := stubClock{now: time.Date(2024, 3, 18, 9, 0, 0, 0, time.UTC)}
	svc := NewService(repo, nil, clock, nil)
	return svc, repo, clock
}

func seedWeek(repo *fakeRepo, id string, employeeID string, status Status, days []DayEntry) *Week {
	week := &Week{
		ID:         id,
		Label:      "Sunday 24/03/2024",
		WeekStart:  "18/03/2024",
		Status:     status,
		EmployeeID: employeeID,
		Days:       days,
	}
	repo.weeks[id] = week
	repo.order = append(repo.order, id)
	return week
}

func mondayEntry(hours float64) DayEntry {
	return DayEntry{ID: SlotMonday, Label: "Monday 18/03/2024", Hours: hours}
}

func TestSaveDayDraft_CreatesDraftWeek(t *testing.T) {
	t.Parallel()

	svc, repo, clock := newFixture(t)

	week, err := svc.SaveDayDraft(context.Background(), SaveDayDraftInput{
		Actor:     owner,
		WeekID:    "emp-1_2024-03-24",
		WeekLabel: "Sunday 24/03/2024",
		WeekStart: "18/03/2024",
		Day:       mondayEntry(8),
	})
	if err != nil {
		t.Fatalf("SaveDayDraft returned error: %v", err)
	}

	if week.Status != StatusDraft {
		t.Errorf("expected Draft, got %s", week.Status)
	}
	if week.EmployeeID != "emp-1" {
		t.Errorf("expected owner emp-1, got %s", week.EmployeeID)
	}
	if !week.CreatedAt.Equal(clock.now) || !week.UpdatedAt.Equal(clock.now) {
		t.Error("expected created/updated stamps from clock")
	}
	if len(repo.weeks) != 1 {
		t.Fatalf("expected 1 stored week, got %d", len(repo.weeks))
	}
}

func TestSaveDayDraft_Idempotent(t *testing.T) {
	t.Parallel()

	svc, _, _ := newFixture(t)
	in := SaveDayDraftInput{
		Actor:     owner,
		WeekID:    "emp-1_2024-03-24",
		WeekLabel: "Sunday 24/03/2024",
		WeekStart: "18/03/2024",
		Day:       mondayEntry(7.5),
	}

	if _, err := svc.SaveDayDraft(context.Background(), in); err != nil {
		t.Fatalf("first save returned error: %v", err)
	}
	week, err := svc.SaveDayDraft(context.Background(), in)
	if err != nil {
		t.Fatalf("second save returned error: %v", err)
	}

	if len(week.Days) != 1 {
		t.Fatalf("expected a single day entry, got %d", len(week.Days))
	}
	if week.TotalHours() != 7.5 {
		t.Errorf("hours must not double-count, got %v", week.TotalHours())
	}
	if !reflect.DeepEqual(week.Days[0], in.Day) {
		t.Errorf("stored day must equal payload, got %+v", week.Days[0])
	}
}

func TestSaveDayDraft_ReplacesSlotWholesale(t *testing.T) {
	t.Parallel()

	svc, _, _ := newFixture(t)
	first := mondayEntry(8)
	first.JobNo = "J-100"
	first.Description = "site prep"

	if _, err := svc.SaveDayDraft(context.Background(), SaveDayDraftInput{
		Actor: owner, WeekID: "w1", WeekLabel: "L", WeekStart: "18/03/2024", Day: first,
	}); err != nil {
		t.Fatalf("save returned error: %v", err)
	}

	second := mondayEntry(6)
	week, err := svc.SaveDayDraft(context.Background(), SaveDayDraftInput{
		Actor: owner, WeekID: "w1", WeekLabel: "L", WeekStart: "18/03/2024", Day: second,
	})
	if err != nil {
		t.Fatalf("save returned error: %v", err)
	}

	if len(week.Days) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(week.Days))
	}
	if week.Days[0].JobNo != "" || week.Days[0].Description != "" {
		t.Error("a save must replace the entire entry, not merge fields")
	}
}

func TestSaveDayDraft_DaysKeptInSlotOrder(t *testing.T) {
	t.Parallel()

	svc, _, _ := newFixture(t)

	for _, slot := range []DaySlot{SlotWednesday, SlotMonday, SlotSunday, SlotTuesday} {
		if _, err := svc.SaveDayDraft(context.Background(), SaveDayDraftInput{
			Actor: owner, WeekID: "w1", WeekLabel: "L", WeekStart: "18/03/2024",
			Day: DayEntry{ID: slot, Label: string(slot), Hours: 1},
		}); err != nil {
			t.Fatalf("save returned error: %v", err)
		}
	}

	week, err := svc.GetWeek(context.Background(), GetWeekInput{Actor: owner, WeekID: "w1"})
	if err != nil {
		t.Fatalf("GetWeek returned error: %v", err)
	}

	got := make([]DaySlot, 0, len(week.Days))
	for _, d := range week.Days {
		got = append(got, d.ID)
	}
	want := []DaySlot{SlotMonday, SlotTuesday, SlotWednesday, SlotSunday}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected slot order %v, got %v", want, got)
	}
}

func TestSaveDayDraft_Validation(t *testing.T) {
	t.Parallel()

	svc, _, _ := newFixture(t)

	if _, err := svc.SaveDayDraft(context.Background(), SaveDayDraftInput{
		Actor: owner, WeekID: "w1", Day: DayEntry{ID: "monday", Hours: 1},
	}); !errors.Is(err, ErrInvalidDaySlot) {
		t.Fatalf("expected ErrInvalidDaySlot, got %v", err)
	}

	if _, err := svc.SaveDayDraft(context.Background(), SaveDayDraftInput{
		Actor: owner, WeekID: "w1", Day: DayEntry{ID: SlotMonday, Hours: -1},
	}); !errors.Is(err, ErrInvalidHours) {
		t.Fatalf("expected ErrInvalidHours, got %v", err)
	}

	if _, err := svc.SaveDayDraft(context.Background(), SaveDayDraftInput{
		Actor: owner, WeekID: "  ", Day: mondayEntry(1),
	}); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestSaveDayDraft_OwnerLockedAfterSubmission(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newFixture(t)
	seedWeek(repo, "w1", owner.ID, StatusSubmitted, []DayEntry{mondayEntry(8)})

	if _, err := svc.SaveDayDraft(context.Background(), SaveDayDraftInput{
		Actor: owner, WeekID: "w1", Day: mondayEntry(9),
	}); !errors.Is(err, ErrStateConflict) {
		t.Fatalf("expected ErrStateConflict, got %v", err)
	}
}

func TestSaveDayDraft_PrivilegedEditKeepsStatus(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newFixture(t)
	seedWeek(repo, "w1", owner.ID, StatusSubmitted, []DayEntry{mondayEntry(8)})

	week, err := svc.SaveDayDraft(context.Background(), SaveDayDraftInput{
		Actor:      manager,
		EmployeeID: owner.ID,
		WeekID:     "w1",
		Day:        mondayEntry(7),
	})
	if err != nil {
		t.Fatalf("privileged edit returned error: %v", err)
	}

	if week.Status != StatusSubmitted {
		t.Errorf("privileged edit must not change status, got %s", week.Status)
	}
	if week.Days[0].Hours != 7 {
		t.Errorf("expected corrected hours 7, got %v", week.Days[0].Hours)
	}
}

func TestSaveDayDraft_StrangerDenied(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newFixture(t)
	seedWeek(repo, "w1", owner.ID, StatusDraft, nil)

	if _, err := svc.SaveDayDraft(context.Background(), SaveDayDraftInput{
		Actor: other, WeekID: "w1", Day: mondayEntry(1),
	}); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}

	if _, err := svc.SaveDayDraft(context.Background(), SaveDayDraftInput{
		Actor: other, EmployeeID: owner.ID, WeekID: "w1", Day: mondayEntry(1),
	}); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied for employee acting on another, got %v", err)
	}
}

func TestSubmit_DraftWithHours(t *testing.T) {
	t.Parallel()

	svc, repo, clock := newFixture(t)
	seedWeek(repo, "w1", owner.ID, StatusDraft, []DayEntry{mondayEntry(8)})

	week, err := svc.Submit(context.Background(), SubmitInput{Actor: owner, WeekID: "w1"})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if week.Status != StatusSubmitted {
		t.Errorf("expected Submitted, got %s", week.Status)
	}
	if week.SubmittedAt == nil || !week.SubmittedAt.Equal(clock.now) {
		t.Error("expected submittedAt stamped from clock")
	}

	// 二重提出は StateConflict です。
	if _, err := svc.Submit(context.Background(), SubmitInput{Actor: owner, WeekID: "w1"}); !errors.Is(err, ErrStateConflict) {
		t.Fatalf("expected ErrStateConflict on resubmission, got %v", err)
	}
}

func TestSubmit_NoHoursEntered(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newFixture(t)
	seedWeek(repo, "w1", owner.ID, StatusDraft, []DayEntry{mondayEntry(0)})

	_, err := svc.Submit(context.Background(), SubmitInput{Actor: owner, WeekID: "w1"})
	if !errors.Is(err, ErrNoHoursEntered) {
		t.Fatalf("expected ErrNoHoursEntered, got %v", err)
	}

	unchanged, _ := repo.FindByID(context.Background(), "w1")
	if unchanged.Status != StatusDraft {
		t.Error("week must be unchanged after a failed submit")
	}
}

func TestSubmit_OnlyOwner(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newFixture(t)
	seedWeek(repo, "w1", owner.ID, StatusDraft, []DayEntry{mondayEntry(8)})

	if _, err := svc.Submit(context.Background(), SubmitInput{Actor: manager, WeekID: "w1"}); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied for non-owner, got %v", err)
	}
}

func TestReview_RejectedRequiresComment(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newFixture(t)
	seedWeek(repo, "w1", owner.ID, StatusSubmitted, []DayEntry{mondayEntry(8)})

	for _, comment := range []string{"", "   ", "\t\n"} {
		if _, err := svc.Review(context.Background(), ReviewInput{
			Actor: manager, WeekID: "w1", Decision: StatusRejected, RejectionComment: comment,
		}); !errors.Is(err, ErrCommentRequired) {
			t.Fatalf("expected ErrCommentRequired for %q, got %v", comment, err)
		}
	}

	unchanged, _ := repo.FindByID(context.Background(), "w1")
	if unchanged.Status != StatusSubmitted {
		t.Error("status must remain Submitted after a failed rejection")
	}
}

func TestReview_RejectedStoresComment(t *testing.T) {
	t.Parallel()

	svc, repo, clock := newFixture(t)
	seedWeek(repo, "w1", owner.ID, StatusSubmitted, []DayEntry{mondayEntry(8)})

	week, err := svc.Review(context.Background(), ReviewInput{
		Actor: manager, WeekID: "w1", Decision: StatusRejected, RejectionComment: "  missing hours breakdown  ",
	})
	if err != nil {
		t.Fatalf("Review returned error: %v", err)
	}

	if week.Status != StatusRejected {
		t.Errorf("expected Rejected, got %s", week.Status)
	}
	if week.RejectionComment != "missing hours breakdown" {
		t.Errorf("expected trimmed comment stored verbatim, got %q", week.RejectionComment)
	}
	if week.ReviewedAt == nil || !week.ReviewedAt.Equal(clock.now) {
		t.Error("expected reviewedAt stamped")
	}
}

func TestReview_ApproveClearsRejectionComment(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newFixture(t)
	week := seedWeek(repo, "w1", owner.ID, StatusSubmitted, []DayEntry{mondayEntry(8)})
	week.RejectionComment = "stale comment"

	approved, err := svc.Review(context.Background(), ReviewInput{
		Actor: administ, WeekID: "w1", Decision: StatusApproved,
	})
	if err != nil {
		t.Fatalf("Review returned error: %v", err)
	}

	if approved.Status != StatusApproved {
		t.Errorf("expected Approved, got %s", approved.Status)
	}
	if approved.RejectionComment != "" {
		t.Errorf("expected rejection comment cleared, got %q", approved.RejectionComment)
	}
}

func TestReview_NotIdempotent(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newFixture(t)
	seedWeek(repo, "w1", owner.ID, StatusSubmitted, []DayEntry{mondayEntry(8)})

	if _, err := svc.Review(context.Background(), ReviewInput{Actor: manager, WeekID: "w1", Decision: StatusApproved}); err != nil {
		t.Fatalf("first review returned error: %v", err)
	}

	if _, err := svc.Review(context.Background(), ReviewInput{Actor: manager, WeekID: "w1", Decision: StatusApproved}); !errors.Is(err, ErrStateConflict) {
		t.Fatalf("expected ErrStateConflict on repeated review, got %v", err)
	}
}

func TestReview_DraftIsStateConflict(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newFixture(t)
	seedWeek(repo, "w1", owner.ID, StatusDraft, []DayEntry{mondayEntry(8)})

	// Draft 週の承認は review ではなく ForceApprove の明示的な遷移で行います。
	if _, err := svc.Review(context.Background(), ReviewInput{Actor: manager, WeekID: "w1", Decision: StatusApproved}); !errors.Is(err, ErrStateConflict) {
		t.Fatalf("expected ErrStateConflict for review from Draft, got %v", err)
	}
}

func TestReview_EmployeeDenied(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newFixture(t)
	seedWeek(repo, "w1", owner.ID, StatusSubmitted, []DayEntry{mondayEntry(8)})

	if _, err := svc.Review(context.Background(), ReviewInput{Actor: owner, WeekID: "w1", Decision: StatusApproved}); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
}

func TestForceApprove(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		status  Status
		wantErr error
	}{
		{"from draft", StatusDraft, nil},
		{"from submitted", StatusSubmitted, nil},
		{"from approved", StatusApproved, ErrStateConflict},
		{"from rejected", StatusRejected, ErrStateConflict},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, repo, _ := newFixture(t)
			seedWeek(repo, "w1", owner.ID, tc.status, []DayEntry{mondayEntry(8)})

			week, err := svc.ForceApprove(context.Background(), ForceApproveInput{Actor: manager, WeekID: "w1"})
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ForceApprove returned error: %v", err)
			}
			if week.Status != StatusApproved {
				t.Errorf("expected Approved, got %s", week.Status)
			}
			if week.ReviewedAt == nil {
				t.Error("expected reviewedAt stamped")
			}
		})
	}
}

func TestForceApprove_EmployeeDenied(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newFixture(t)
	seedWeek(repo, "w1", owner.ID, StatusDraft, []DayEntry{mondayEntry(8)})

	if _, err := svc.ForceApprove(context.Background(), ForceApproveInput{Actor: owner, WeekID: "w1"}); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
}

func TestListWeeks_EmployeeSeesOnlyOwnWeeks(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newFixture(t)
	seedWeek(repo, "w1", owner.ID, StatusDraft, nil)
	seedWeek(repo, "w2", other.ID, StatusDraft, nil)

	weeks, err := svc.ListWeeks(context.Background(), ListWeeksInput{Actor: owner, EmployeeID: other.ID})
	if err != nil {
		t.Fatalf("ListWeeks returned error: %v", err)
	}

	if len(weeks) != 1 || weeks[0].EmployeeID != owner.ID {
		t.Fatalf("employee must only see own weeks, got %+v", weeks)
	}
}

func TestListWeeks_SortedByWeekStartDesc(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := NewService(repo, nil, stubClock{now: time.Now()}, nil)

	// DD/MM/YYYY の単純な文字列比較では壊れる並び(日の数字が大きい古い週)を含めます。
	w1 := seedWeek(repo, "w1", owner.ID, StatusDraft, nil)
	w1.WeekStart = "25/03/2024"
	w2 := seedWeek(repo, "w2", owner.ID, StatusDraft, nil)
	w2.WeekStart = "01/04/2024"
	w3 := seedWeek(repo, "w3", owner.ID, StatusDraft, nil)
	w3.WeekStart = "30/12/2023"

	weeks, err := svc.ListWeeks(context.Background(), ListWeeksInput{Actor: owner})
	if err != nil {
		t.Fatalf("ListWeeks returned error: %v", err)
	}

	got := []string{weeks[0].ID, weeks[1].ID, weeks[2].ID}
	want := []string{"w2", "w1", "w3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected order %v, got %v", want, got)
	}
}

func TestListWeeks_StatusFilter(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newFixture(t)
	seedWeek(repo, "w1", owner.ID, StatusSubmitted, nil)
	seedWeek(repo, "w2", other.ID, StatusSubmitted, nil)
	seedWeek(repo, "w3", owner.ID, StatusDraft, nil)

	submitted := StatusSubmitted
	weeks, err := svc.ListWeeks(context.Background(), ListWeeksInput{Actor: manager, Status: &submitted})
	if err != nil {
		t.Fatalf("ListWeeks returned error: %v", err)
	}

	if len(weeks) != 2 {
		t.Fatalf("expected 2 submitted weeks, got %d", len(weeks))
	}

	bogus := Status("Pending")
	if _, err := svc.ListWeeks(context.Background(), ListWeeksInput{Actor: manager, Status: &bogus}); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestListWeeks_EnrichesEmployeeNames(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	directory := &stubDirectory{names: map[string]string{owner.ID: "Alice Worker"}}
	svc := NewService(repo, directory, stubClock{now: time.Now()}, nil)

	seedWeek(repo, "w1", owner.ID, StatusSubmitted, nil)
	seedWeek(repo, "w2", "ghost-1", StatusSubmitted, nil)

	weeks, err := svc.ListWeeks(context.Background(), ListWeeksInput{Actor: manager})
	if err != nil {
		t.Fatalf("ListWeeks returned error: %v", err)
	}

	byID := map[string]string{}
	for _, w := range weeks {
		byID[w.EmployeeID] = w.EmployeeName
	}
	if byID[owner.ID] != "Alice Worker" {
		t.Errorf("expected enriched name, got %q", byID[owner.ID])
	}
	if byID["ghost-1"] != "Unknown" {
		t.Errorf("expected Unknown for unresolvable employee, got %q", byID["ghost-1"])
	}
}

func TestGetWeek_Authorization(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newFixture(t)
	seedWeek(repo, "w1", owner.ID, StatusDraft, nil)

	if _, err := svc.GetWeek(context.Background(), GetWeekInput{Actor: owner, WeekID: "w1"}); err != nil {
		t.Fatalf("owner read returned error: %v", err)
	}
	if _, err := svc.GetWeek(context.Background(), GetWeekInput{Actor: manager, WeekID: "w1"}); err != nil {
		t.Fatalf("reviewer read returned error: %v", err)
	}
	if _, err := svc.GetWeek(context.Background(), GetWeekInput{Actor: other, WeekID: "w1"}); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
	if _, err := svc.GetWeek(context.Background(), GetWeekInput{Actor: owner, WeekID: "missing"}); !errors.Is(err, ErrWeekNotFound) {
		t.Fatalf("expected ErrWeekNotFound, got %v", err)
	}
}
