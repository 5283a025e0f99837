package handler

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	timesheetpb "github.com/ogurasousui/irs-timesheet/internal/adapters/grpc/gen/timesheet/v1"
	"github.com/ogurasousui/irs-timesheet/internal/core/timesheet"
)

// TimesheetGrpcHandler は TimesheetService の gRPC 実装です。
type TimesheetGrpcHandler struct {
	svc timesheet.UseCase
	timesheetpb.UnimplementedTimesheetServiceServer
}

// NewTimesheetGrpcHandler は TimesheetGrpcHandler を生成します。
func NewTimesheetGrpcHandler(svc timesheet.UseCase) *TimesheetGrpcHandler {
	return &TimesheetGrpcHandler{svc: svc}
}

// SaveDayDraft は1日分のエントリを保存します。
func (h *TimesheetGrpcHandler) SaveDayDraft(ctx context.Context, req *timesheetpb.SaveDayDraftRequest) (*timesheetpb.SaveDayDraftResponse, error) {
	if req == nil || req.GetDay() == nil {
		return nil, status.Error(codes.InvalidArgument, "request with day entry is required")
	}

	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	saved, err := h.svc.SaveDayDraft(ctx, timesheet.SaveDayDraftInput{
		Actor:      actor,
		EmployeeID: req.GetEmployeeId(),
		WeekID:     req.GetWeekId(),
		WeekLabel:  req.GetWeekLabel(),
		WeekStart:  req.GetWeekStart(),
		Day:        toDomainDay(req.GetDay()),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &timesheetpb.SaveDayDraftResponse{Week: toProtoWeek(saved)}, nil
}

// SubmitWeek は週を提出します。
func (h *TimesheetGrpcHandler) SubmitWeek(ctx context.Context, req *timesheetpb.SubmitWeekRequest) (*timesheetpb.SubmitWeekResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	submitted, err := h.svc.Submit(ctx, timesheet.SubmitInput{Actor: actor, WeekID: req.GetWeekId()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &timesheetpb.SubmitWeekResponse{Week: toProtoWeek(submitted)}, nil
}

// ReviewWeek は提出済みの週を承認または差し戻します。
func (h *TimesheetGrpcHandler) ReviewWeek(ctx context.Context, req *timesheetpb.ReviewWeekRequest) (*timesheetpb.ReviewWeekResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	decision, err := toDomainDecision(req.GetDecision())
	if err != nil {
		return nil, toStatusError(err)
	}

	reviewed, err := h.svc.Review(ctx, timesheet.ReviewInput{
		Actor:            actor,
		WeekID:           req.GetWeekId(),
		Decision:         decision,
		RejectionComment: req.GetRejectionComment(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &timesheetpb.ReviewWeekResponse{Week: toProtoWeek(reviewed)}, nil
}

// ForceApproveWeek は未提出の週を明示的に承認します。
func (h *TimesheetGrpcHandler) ForceApproveWeek(ctx context.Context, req *timesheetpb.ForceApproveWeekRequest) (*timesheetpb.ForceApproveWeekResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	approved, err := h.svc.ForceApprove(ctx, timesheet.ForceApproveInput{Actor: actor, WeekID: req.GetWeekId()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &timesheetpb.ForceApproveWeekResponse{Week: toProtoWeek(approved)}, nil
}

// GetWeek は週を取得します。
func (h *TimesheetGrpcHandler) GetWeek(ctx context.Context, req *timesheetpb.GetWeekRequest) (*timesheetpb.GetWeekResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	week, err := h.svc.GetWeek(ctx, timesheet.GetWeekInput{Actor: actor, WeekID: req.GetWeekId()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &timesheetpb.GetWeekResponse{Week: toProtoWeek(week)}, nil
}

// ListWeeks は週の一覧を取得します。
func (h *TimesheetGrpcHandler) ListWeeks(ctx context.Context, req *timesheetpb.ListWeeksRequest) (*timesheetpb.ListWeeksResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var statusPtr *timesheet.Status
	if req.GetStatus() != timesheetpb.WeekStatus_WEEK_STATUS_UNSPECIFIED {
		domainStatus, err := toDomainWeekStatus(req.GetStatus())
		if err != nil {
			return nil, toStatusError(err)
		}
		statusPtr = &domainStatus
	}

	weeks, err := h.svc.ListWeeks(ctx, timesheet.ListWeeksInput{
		Actor:      actor,
		EmployeeID: req.GetEmployeeId(),
		Status:     statusPtr,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	protoWeeks := make([]*timesheetpb.Week, 0, len(weeks))
	for _, week := range weeks {
		protoWeeks = append(protoWeeks, toProtoWeek(week))
	}

	return &timesheetpb.ListWeeksResponse{Weeks: protoWeeks}, nil
}

func toProtoWeek(w *timesheet.Week) *timesheetpb.Week {
	if w == nil {
		return nil
	}

	days := make([]*timesheetpb.DayEntry, 0, len(w.Days))
	for _, day := range w.Days {
		days = append(days, toProtoDay(day))
	}

	return &timesheetpb.Week{
		Id:               w.ID,
		Label:            w.Label,
		WeekStart:        w.WeekStart,
		Status:           toProtoWeekStatus(w.Status),
		EmployeeId:       w.EmployeeID,
		EmployeeName:     w.EmployeeName,
		Days:             days,
		RejectionComment: w.RejectionComment,
		CreatedAt:        timestamppb.New(w.CreatedAt),
		UpdatedAt:        timestamppb.New(w.UpdatedAt),
		SubmittedAt:      toProtoTimestamp(w.SubmittedAt),
		ReviewedAt:       toProtoTimestamp(w.ReviewedAt),
	}
}

func toProtoTimestamp(value *time.Time) *timestamppb.Timestamp {
	if value == nil {
		return nil
	}
	return timestamppb.New(*value)
}

func toProtoDay(day timesheet.DayEntry) *timesheetpb.DayEntry {
	return &timesheetpb.DayEntry{
		Id:          string(day.ID),
		Label:       day.Label,
		Hours:       day.Hours,
		JobNo:       day.JobNo,
		Location:    day.Location,
		ShiftType:   day.ShiftType,
		LunchTaken:  day.LunchTaken,
		LivingAway:  day.LivingAway,
		StartTime:   day.StartTime,
		FinishTime:  day.FinishTime,
		Description: day.Description,
	}
}

func toDomainDay(day *timesheetpb.DayEntry) timesheet.DayEntry {
	return timesheet.DayEntry{
		ID:          timesheet.DaySlot(day.GetId()),
		Label:       day.GetLabel(),
		Hours:       day.GetHours(),
		JobNo:       day.GetJobNo(),
		Location:    day.GetLocation(),
		ShiftType:   day.GetShiftType(),
		LunchTaken:  day.GetLunchTaken(),
		LivingAway:  day.GetLivingAway(),
		StartTime:   day.GetStartTime(),
		FinishTime:  day.GetFinishTime(),
		Description: day.GetDescription(),
	}
}

func toProtoWeekStatus(status timesheet.Status) timesheetpb.WeekStatus {
	switch status {
	case timesheet.StatusDraft:
		return timesheetpb.WeekStatus_WEEK_STATUS_DRAFT
	case timesheet.StatusSubmitted:
		return timesheetpb.WeekStatus_WEEK_STATUS_SUBMITTED
	case timesheet.StatusApproved:
		return timesheetpb.WeekStatus_WEEK_STATUS_APPROVED
	case timesheet.StatusRejected:
		return timesheetpb.WeekStatus_WEEK_STATUS_REJECTED
	default:
		return timesheetpb.WeekStatus_WEEK_STATUS_UNSPECIFIED
	}
}

func toDomainWeekStatus(status timesheetpb.WeekStatus) (timesheet.Status, error) {
	switch status {
	case timesheetpb.WeekStatus_WEEK_STATUS_DRAFT:
		return timesheet.StatusDraft, nil
	case timesheetpb.WeekStatus_WEEK_STATUS_SUBMITTED:
		return timesheet.StatusSubmitted, nil
	case timesheetpb.WeekStatus_WEEK_STATUS_APPROVED:
		return timesheet.StatusApproved, nil
	case timesheetpb.WeekStatus_WEEK_STATUS_REJECTED:
		return timesheet.StatusRejected, nil
	default:
		return "", timesheet.ErrInvalidStatus
	}
}

func toDomainDecision(decision timesheetpb.ReviewDecision) (timesheet.Status, error) {
	switch decision {
	case timesheetpb.ReviewDecision_REVIEW_DECISION_APPROVED:
		return timesheet.StatusApproved, nil
	case timesheetpb.ReviewDecision_REVIEW_DECISION_REJECTED:
		return timesheet.StatusRejected, nil
	default:
		return "", timesheet.ErrInvalidDecision
	}
}
