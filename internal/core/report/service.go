package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/ogurasousui/irs-timesheet/internal/core/account"
	"github.com/ogurasousui/irs-timesheet/internal/core/timesheet"
)

// ErrPermissionDenied は集計への参照権限が無い場合に返却されます。
var ErrPermissionDenied = timesheet.ErrPermissionDenied

// WeekSource は集計対象の週を取得します。timesheet.UseCase がそのまま満たします。
type WeekSource interface {
	ListWeeks(ctx context.Context, in timesheet.ListWeeksInput) ([]*timesheet.Week, error)
}

// Service は週の集合に対する集計ユースケースをまとめます。
// 役割による絞り込みは WeekSource (ListWeeks) に委ねます。
type Service struct {
	weeks WeekSource
}

// UseCase は集計ユースケースの公開インターフェースです。
type UseCase interface {
	StatusCounts(ctx context.Context, in StatusCountsInput) (map[timesheet.Status]int, error)
	HoursByEmployee(ctx context.Context, in HoursByEmployeeInput) ([]EmployeeHours, error)
	ExportCSV(ctx context.Context, in ExportCSVInput) (*Export, error)
}

// NewService は Service を生成します。
func NewService(weeks WeekSource) *Service {
	return &Service{weeks: weeks}
}

// StatusCountsInput は状態別件数の入力です。
type StatusCountsInput struct {
	Actor      account.Actor
	EmployeeID string
}

// HoursByEmployeeInput は従業員別合計時間の入力です。
type HoursByEmployeeInput struct {
	Actor account.Actor
}

// ExportCSVInput は CSV エクスポートの入力です。
// WeekIDs が空の場合は対象従業員の全週をエクスポートします。
type ExportCSVInput struct {
	Actor      account.Actor
	EmployeeID string
	WeekIDs    []string
}

// StatusCounts は状態ごとの週の件数を返します。レビュー権限の無い actor は
// 自分の週のみが対象になります(ListWeeks 側の規則)。
func (s *Service) StatusCounts(ctx context.Context, in StatusCountsInput) (map[timesheet.Status]int, error) {
	weeks, err := s.weeks.ListWeeks(ctx, timesheet.ListWeeksInput{Actor: in.Actor, EmployeeID: in.EmployeeID})
	if err != nil {
		return nil, err
	}
	return CountByStatus(weeks), nil
}

// HoursByEmployee は従業員ごとの合計時間を返します。レビュー担当者のみ実行できます。
func (s *Service) HoursByEmployee(ctx context.Context, in HoursByEmployeeInput) ([]EmployeeHours, error) {
	if !in.Actor.IsReviewer() {
		return nil, ErrPermissionDenied
	}

	weeks, err := s.weeks.ListWeeks(ctx, timesheet.ListWeeksInput{Actor: in.Actor})
	if err != nil {
		return nil, err
	}
	return TotalHoursByEmployee(weeks), nil
}

// ExportCSV は対象従業員の週を CSV として組み立てます。レビュー担当者のみ実行できます。
func (s *Service) ExportCSV(ctx context.Context, in ExportCSVInput) (*Export, error) {
	if !in.Actor.IsReviewer() {
		return nil, ErrPermissionDenied
	}
	if strings.TrimSpace(in.EmployeeID) == "" {
		return nil, fmt.Errorf("employee id: %w", timesheet.ErrInvalidID)
	}

	weeks, err := s.weeks.ListWeeks(ctx, timesheet.ListWeeksInput{Actor: in.Actor, EmployeeID: in.EmployeeID})
	if err != nil {
		return nil, err
	}

	if len(in.WeekIDs) > 0 {
		wanted := make(map[string]struct{}, len(in.WeekIDs))
		for _, id := range in.WeekIDs {
			wanted[id] = struct{}{}
		}
		filtered := make([]*timesheet.Week, 0, len(in.WeekIDs))
		for _, week := range weeks {
			if _, ok := wanted[week.ID]; ok {
				filtered = append(filtered, week)
			}
		}
		weeks = filtered
	}

	employeeName := "Unknown"
	if len(weeks) > 0 && weeks[0].EmployeeName != "" {
		employeeName = weeks[0].EmployeeName
	}

	export := NewExport(BuildCSV(weeks), ExportFilename(employeeName, len(weeks)))
	return &export, nil
}
