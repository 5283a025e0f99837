package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	reportpb "github.com/ogurasousui/irs-timesheet/internal/adapters/grpc/gen/report/v1"
	"github.com/ogurasousui/irs-timesheet/internal/core/report"
)

// ReportGrpcHandler は ReportService の gRPC 実装です。
type ReportGrpcHandler struct {
	svc report.UseCase
	reportpb.UnimplementedReportServiceServer
}

// NewReportGrpcHandler は ReportGrpcHandler を生成します。
func NewReportGrpcHandler(svc report.UseCase) *ReportGrpcHandler {
	return &ReportGrpcHandler{svc: svc}
}

// GetStatusCounts は状態ごとの週の件数を返します。
func (h *ReportGrpcHandler) GetStatusCounts(ctx context.Context, req *reportpb.GetStatusCountsRequest) (*reportpb.GetStatusCountsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := h.svc.StatusCounts(ctx, report.StatusCountsInput{Actor: actor, EmployeeID: req.GetEmployeeId()})
	if err != nil {
		return nil, toStatusError(err)
	}

	protoCounts := make(map[string]int32, len(counts))
	for weekStatus, count := range counts {
		protoCounts[string(weekStatus)] = int32(count)
	}

	return &reportpb.GetStatusCountsResponse{Counts: protoCounts}, nil
}

// GetEmployeeHours は従業員ごとの合計時間を返します。
func (h *ReportGrpcHandler) GetEmployeeHours(ctx context.Context, req *reportpb.GetEmployeeHoursRequest) (*reportpb.GetEmployeeHoursResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	totals, err := h.svc.HoursByEmployee(ctx, report.HoursByEmployeeInput{Actor: actor})
	if err != nil {
		return nil, toStatusError(err)
	}

	protoTotals := make([]*reportpb.EmployeeHours, 0, len(totals))
	for _, total := range totals {
		protoTotals = append(protoTotals, &reportpb.EmployeeHours{
			EmployeeId:   total.EmployeeID,
			EmployeeName: total.EmployeeName,
			TotalHours:   total.TotalHours,
		})
	}

	return &reportpb.GetEmployeeHoursResponse{Totals: protoTotals}, nil
}

// ExportCsv は対象従業員の週を CSV としてエクスポートします。
func (h *ReportGrpcHandler) ExportCsv(ctx context.Context, req *reportpb.ExportCsvRequest) (*reportpb.ExportCsvResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	export, err := h.svc.ExportCSV(ctx, report.ExportCSVInput{
		Actor:      actor,
		EmployeeID: req.GetEmployeeId(),
		WeekIDs:    req.GetWeekIds(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &reportpb.ExportCsvResponse{
		Filename: export.Filename,
		Content:  export.Content,
	}, nil
}
