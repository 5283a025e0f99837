package handler

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	timesheetpb "github.com/ogurasousui/irs-timesheet/internal/adapters/grpc/gen/timesheet/v1"
	"github.com/ogurasousui/irs-timesheet/internal/adapters/grpc/interceptor"
	"github.com/ogurasousui/irs-timesheet/internal/core/account"
	"github.com/ogurasousui/irs-timesheet/internal/core/timesheet"
)

type stubTimesheetUseCase struct {
	saveInput timesheet.SaveDayDraftInput
	saveErr   error
	saveOut   *timesheet.Week

	submitInput timesheet.SubmitInput
	submitErr   error
	submitOut   *timesheet.Week

	reviewInput timesheet.ReviewInput
	reviewErr   error
	reviewOut   *timesheet.Week

	forceInput timesheet.ForceApproveInput
	forceErr   error
	forceOut   *timesheet.Week

	getOut  *timesheet.Week
	getErr  error
	listOut []*timesheet.Week
	listErr error
}

func (s *stubTimesheetUseCase) SaveDayDraft(ctx context.Context, in timesheet.SaveDayDraftInput) (*timesheet.Week, error) {
	s.saveInput = in
	return s.saveOut, s.saveErr
}

func (s *stubTimesheetUseCase) Submit(ctx context.Context, in timesheet.SubmitInput) (*timesheet.Week, error) {
	s.submitInput = in
	return s.submitOut, s.submitErr
}

func (s *stubTimesheetUseCase) Review(ctx context.Context, in timesheet.ReviewInput) (*timesheet.Week, error) {
	s.reviewInput = in
	return s.reviewOut, s.reviewErr
}

func (s *stubTimesheetUseCase) ForceApprove(ctx context.Context, in timesheet.ForceApproveInput) (*timesheet.Week, error) {
	s.forceInput = in
	return s.forceOut, s.forceErr
}

func (s *stubTimesheetUseCase) GetWeek(ctx context.Context, in timesheet.GetWeekInput) (*timesheet.Week, error) {
	return s.getOut, s.getErr
}

func (s *stubTimesheetUseCase) ListWeeks(ctx context.Context, in timesheet.ListWeeksInput) ([]*timesheet.Week, error) {
	return s.listOut, s.listErr
}

func employeeContext() context.Context {
	return interceptor.ContextWithActor(context.Background(), account.Actor{ID: "emp-1", Role: account.RoleEmployee})
}

func managerContext() context.Context {
	return interceptor.ContextWithActor(context.Background(), account.Actor{ID: "mgr-1", Role: account.RoleManager})
}

func draftWeek(now time.Time) *timesheet.Week {
	return &timesheet.Week{
		ID:         "emp-1_2024-03-24",
		Label:      "Sunday 24/03/2024",
		WeekStart:  "18/03/2024",
		Status:     timesheet.StatusDraft,
		EmployeeID: "emp-1",
		Days: []timesheet.DayEntry{
			{ID: timesheet.SlotMonday, Label: "Monday 18/03/2024", Hours: 7.5, JobNo: "J-100"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestTimesheetGrpcHandler_SaveDayDraft(t *testing.T) {
	t.Parallel()

	now := time.Now()
	stub := &stubTimesheetUseCase{saveOut: draftWeek(now)}
	handler := NewTimesheetGrpcHandler(stub)

	resp, err := handler.SaveDayDraft(employeeContext(), &timesheetpb.SaveDayDraftRequest{
		WeekId:    "emp-1_2024-03-24",
		WeekLabel: "Sunday 24/03/2024",
		WeekStart: "18/03/2024",
		Day: &timesheetpb.DayEntry{
			Id:    "mon",
			Label: "Monday 18/03/2024",
			Hours: 7.5,
			JobNo: "J-100",
		},
	})
	if err != nil {
		t.Fatalf("SaveDayDraft returned error: %v", err)
	}

	if stub.saveInput.Actor.ID != "emp-1" || stub.saveInput.Day.ID != timesheet.SlotMonday {
		t.Errorf("unexpected input %+v", stub.saveInput)
	}

	if resp.GetWeek().GetStatus() != timesheetpb.WeekStatus_WEEK_STATUS_DRAFT {
		t.Errorf("unexpected status %v", resp.GetWeek().GetStatus())
	}

	if resp.GetWeek().GetDays()[0].GetJobNo() != "J-100" {
		t.Errorf("day metadata lost: %+v", resp.GetWeek().GetDays()[0])
	}
}

func TestTimesheetGrpcHandler_SaveDayDraft_MissingDay(t *testing.T) {
	t.Parallel()

	handler := NewTimesheetGrpcHandler(&stubTimesheetUseCase{})

	_, err := handler.SaveDayDraft(employeeContext(), &timesheetpb.SaveDayDraftRequest{WeekId: "w"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", status.Code(err))
	}
}

func TestTimesheetGrpcHandler_SubmitWeek_ErrorMapping(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		err  error
		code codes.Code
	}{
		"already submitted": {err: timesheet.ErrStateConflict, code: codes.FailedPrecondition},
		"no hours":          {err: timesheet.ErrNoHoursEntered, code: codes.FailedPrecondition},
		"not the owner":     {err: timesheet.ErrPermissionDenied, code: codes.PermissionDenied},
		"missing week":      {err: timesheet.ErrWeekNotFound, code: codes.NotFound},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			handler := NewTimesheetGrpcHandler(&stubTimesheetUseCase{submitErr: tc.err})

			_, err := handler.SubmitWeek(employeeContext(), &timesheetpb.SubmitWeekRequest{WeekId: "w"})
			if status.Code(err) != tc.code {
				t.Fatalf("expected %v, got %v", tc.code, status.Code(err))
			}
		})
	}
}

func TestTimesheetGrpcHandler_ReviewWeek_DecisionTranslation(t *testing.T) {
	t.Parallel()

	now := time.Now()
	rejected := draftWeek(now)
	rejected.Status = timesheet.StatusRejected
	rejected.RejectionComment = "missing job numbers"

	stub := &stubTimesheetUseCase{reviewOut: rejected}
	handler := NewTimesheetGrpcHandler(stub)

	resp, err := handler.ReviewWeek(managerContext(), &timesheetpb.ReviewWeekRequest{
		WeekId:           "emp-1_2024-03-24",
		Decision:         timesheetpb.ReviewDecision_REVIEW_DECISION_REJECTED,
		RejectionComment: "missing job numbers",
	})
	if err != nil {
		t.Fatalf("ReviewWeek returned error: %v", err)
	}

	if stub.reviewInput.Decision != timesheet.StatusRejected {
		t.Fatalf("unexpected decision %v", stub.reviewInput.Decision)
	}

	if resp.GetWeek().GetRejectionComment() != "missing job numbers" {
		t.Fatalf("unexpected comment %s", resp.GetWeek().GetRejectionComment())
	}
}

func TestTimesheetGrpcHandler_ReviewWeek_UnspecifiedDecision(t *testing.T) {
	t.Parallel()

	handler := NewTimesheetGrpcHandler(&stubTimesheetUseCase{})

	_, err := handler.ReviewWeek(managerContext(), &timesheetpb.ReviewWeekRequest{WeekId: "w"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", status.Code(err))
	}
}

func TestTimesheetGrpcHandler_ForceApproveWeek(t *testing.T) {
	t.Parallel()

	now := time.Now()
	approved := draftWeek(now)
	approved.Status = timesheet.StatusApproved
	approved.ReviewedAt = &now

	stub := &stubTimesheetUseCase{forceOut: approved}
	handler := NewTimesheetGrpcHandler(stub)

	resp, err := handler.ForceApproveWeek(managerContext(), &timesheetpb.ForceApproveWeekRequest{WeekId: "emp-1_2024-03-24"})
	if err != nil {
		t.Fatalf("ForceApproveWeek returned error: %v", err)
	}

	if stub.forceInput.Actor.Role != account.RoleManager {
		t.Fatalf("unexpected actor %+v", stub.forceInput.Actor)
	}

	if resp.GetWeek().GetStatus() != timesheetpb.WeekStatus_WEEK_STATUS_APPROVED {
		t.Fatalf("unexpected status %v", resp.GetWeek().GetStatus())
	}

	if resp.GetWeek().GetReviewedAt() == nil {
		t.Fatal("expected reviewed_at to be set")
	}
}

func TestTimesheetGrpcHandler_ListWeeks_StatusFilter(t *testing.T) {
	t.Parallel()

	now := time.Now()
	handler := NewTimesheetGrpcHandler(&stubTimesheetUseCase{listOut: []*timesheet.Week{draftWeek(now)}})

	resp, err := handler.ListWeeks(managerContext(), &timesheetpb.ListWeeksRequest{
		EmployeeId: "emp-1",
		Status:     timesheetpb.WeekStatus_WEEK_STATUS_DRAFT,
	})
	if err != nil {
		t.Fatalf("ListWeeks returned error: %v", err)
	}

	if len(resp.GetWeeks()) != 1 {
		t.Fatalf("expected 1 week, got %d", len(resp.GetWeeks()))
	}

	if resp.GetWeeks()[0].GetSubmittedAt() != nil {
		t.Fatal("draft week should not carry submitted_at")
	}
}
