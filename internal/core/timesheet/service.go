package timesheet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ogurasousui/irs-timesheet/internal/core/account"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。
// saveDayDraft の read-modify-write を原子的にするために使用します。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Directory は週に表示用の従業員名を付与するための参照です。
type Directory interface {
	AccountName(ctx context.Context, id string) (string, error)
}

// Service は週次タイムシートのライフサイクルをまとめます。
type Service struct {
	repo      Repository
	directory Directory
	clock     Clock
	tx        TransactionManager
}

// UseCase はタイムシートユースケースの公開インターフェースです。
type UseCase interface {
	SaveDayDraft(ctx context.Context, in SaveDayDraftInput) (*Week, error)
	Submit(ctx context.Context, in SubmitInput) (*Week, error)
	Review(ctx context.Context, in ReviewInput) (*Week, error)
	ForceApprove(ctx context.Context, in ForceApproveInput) (*Week, error)
	GetWeek(ctx context.Context, in GetWeekInput) (*Week, error)
	ListWeeks(ctx context.Context, in ListWeeksInput) ([]*Week, error)
}

// NewService は Service を生成します。directory は nil を許容します。
func NewService(repo Repository, directory Directory, clock Clock, tx TransactionManager) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, directory: directory, clock: clock, tx: tx}
}

// SaveDayDraftInput は日次ドラフト保存の入力です。
// EmployeeID が空の場合は actor 自身の週として扱います。
type SaveDayDraftInput struct {
	Actor      account.Actor
	EmployeeID string
	WeekID     string
	WeekLabel  string
	WeekStart  string
	Day        DayEntry
}

// SubmitInput は週の提出入力です。
type SubmitInput struct {
	Actor  account.Actor
	WeekID string
}

// ReviewInput は提出済み週のレビュー入力です。
type ReviewInput struct {
	Actor            account.Actor
	WeekID           string
	Decision         Status // StatusApproved または StatusRejected
	RejectionComment string
}

// ForceApproveInput は未提出週を明示的に承認する入力です。
type ForceApproveInput struct {
	Actor  account.Actor
	WeekID string
}

// GetWeekInput は週取得の入力です。
type GetWeekInput struct {
	Actor  account.Actor
	WeekID string
}

// ListWeeksInput は一覧取得の入力です。
type ListWeeksInput struct {
	Actor      account.Actor
	EmployeeID string
	Status     *Status
}

// SaveDayDraft は1日分のエントリをスロット単位で upsert します。
// 週ドキュメントが無ければ Draft として作成します。同一ペイロードの再実行は
// 同じ結果になります(冪等)。特権編集者による保存は週の状態を変更しません。
func (s *Service) SaveDayDraft(ctx context.Context, in SaveDayDraftInput) (*Week, error) {
	if strings.TrimSpace(in.WeekID) == "" {
		return nil, fmt.Errorf("week id: %w", ErrInvalidID)
	}
	if !IsValidSlot(in.Day.ID) {
		return nil, ErrInvalidDaySlot
	}
	if in.Day.Hours < 0 {
		return nil, ErrInvalidHours
	}

	targetEmployee := in.EmployeeID
	if targetEmployee == "" {
		targetEmployee = in.Actor.ID
	}
	if targetEmployee != in.Actor.ID && !in.Actor.IsReviewer() {
		return nil, ErrPermissionDenied
	}

	var saved *Week
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		now := s.clock.Now()

		existing, err := s.repo.FindByID(txCtx, in.WeekID)
		if err != nil {
			if !errors.Is(err, ErrWeekNotFound) {
				return err
			}

			week := &Week{
				ID:         in.WeekID,
				Label:      in.WeekLabel,
				WeekStart:  in.WeekStart,
				Status:     StatusDraft,
				EmployeeID: targetEmployee,
				Days:       []DayEntry{in.Day},
				CreatedAt:  now,
				UpdatedAt:  now,
			}

			created, err := s.repo.Create(txCtx, week)
			if err != nil {
				return err
			}
			saved = created
			return nil
		}

		if existing.EmployeeID != in.Actor.ID {
			if !in.Actor.IsReviewer() {
				return ErrPermissionDenied
			}
		} else if existing.Status != StatusDraft && !in.Actor.IsReviewer() {
			// 従業員本人は提出後に日エントリを編集できません。
			return ErrStateConflict
		}

		upsertDay(existing, in.Day)
		if in.WeekLabel != "" {
			existing.Label = in.WeekLabel
		}
		if in.WeekStart != "" {
			existing.WeekStart = in.WeekStart
		}
		existing.UpdatedAt = now

		updated, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}
		saved = updated
		return nil
	}); err != nil {
		return nil, err
	}

	return saved, nil
}

// Submit は Draft の週を Submitted に遷移させます。所有者のみ実行できます。
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*Week, error) {
	if strings.TrimSpace(in.WeekID) == "" {
		return nil, fmt.Errorf("week id: %w", ErrInvalidID)
	}

	var submitted *Week
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		week, err := s.repo.FindByID(txCtx, in.WeekID)
		if err != nil {
			return err
		}

		if week.EmployeeID != in.Actor.ID {
			return ErrPermissionDenied
		}
		if week.Status != StatusDraft {
			return ErrStateConflict
		}
		if !week.HasWorkedHours() {
			return ErrNoHoursEntered
		}

		now := s.clock.Now()
		week.Status = StatusSubmitted
		week.SubmittedAt = &now
		week.UpdatedAt = now

		updated, err := s.repo.Update(txCtx, week)
		if err != nil {
			return err
		}
		submitted = updated
		return nil
	}); err != nil {
		return nil, err
	}

	return submitted, nil
}

// Review は Submitted の週を Approved または Rejected に遷移させます。
// Manager/Admin/Super Admin のみ実行できます。Submitted 以外からの遷移は
// ErrStateConflict です(承認済み週への再レビューも同様)。
func (s *Service) Review(ctx context.Context, in ReviewInput) (*Week, error) {
	if strings.TrimSpace(in.WeekID) == "" {
		return nil, fmt.Errorf("week id: %w", ErrInvalidID)
	}
	if in.Decision != StatusApproved && in.Decision != StatusRejected {
		return nil, ErrInvalidDecision
	}
	if !in.Actor.IsReviewer() {
		return nil, ErrPermissionDenied
	}

	comment := strings.TrimSpace(in.RejectionComment)
	if in.Decision == StatusRejected && comment == "" {
		return nil, ErrCommentRequired
	}

	var reviewed *Week
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		week, err := s.repo.FindByID(txCtx, in.WeekID)
		if err != nil {
			return err
		}

		if week.Status != StatusSubmitted {
			return ErrStateConflict
		}

		now := s.clock.Now()
		week.Status = in.Decision
		week.ReviewedAt = &now
		week.UpdatedAt = now
		if in.Decision == StatusRejected {
			week.RejectionComment = comment
		} else {
			week.RejectionComment = ""
		}

		updated, err := s.repo.Update(txCtx, week)
		if err != nil {
			return err
		}
		reviewed = updated
		return nil
	}); err != nil {
		return nil, err
	}

	return reviewed, nil
}

// ForceApprove は未提出(Draft)の週をレビュー担当者が直接承認する明示的な遷移です。
// Submitted からも許可されます。終端状態からは ErrStateConflict です。
func (s *Service) ForceApprove(ctx context.Context, in ForceApproveInput) (*Week, error) {
	if strings.TrimSpace(in.WeekID) == "" {
		return nil, fmt.Errorf("week id: %w", ErrInvalidID)
	}
	if !in.Actor.IsReviewer() {
		return nil, ErrPermissionDenied
	}

	var approved *Week
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		week, err := s.repo.FindByID(txCtx, in.WeekID)
		if err != nil {
			return err
		}

		if week.Status != StatusDraft && week.Status != StatusSubmitted {
			return ErrStateConflict
		}

		now := s.clock.Now()
		week.Status = StatusApproved
		week.RejectionComment = ""
		week.ReviewedAt = &now
		week.UpdatedAt = now

		updated, err := s.repo.Update(txCtx, week)
		if err != nil {
			return err
		}
		approved = updated
		return nil
	}); err != nil {
		return nil, err
	}

	return approved, nil
}

// GetWeek は週を取得します。所有者本人かレビュー担当者のみ参照できます。
func (s *Service) GetWeek(ctx context.Context, in GetWeekInput) (*Week, error) {
	if strings.TrimSpace(in.WeekID) == "" {
		return nil, fmt.Errorf("week id: %w", ErrInvalidID)
	}

	week, err := s.repo.FindByID(ctx, in.WeekID)
	if err != nil {
		return nil, err
	}

	if week.EmployeeID != in.Actor.ID && !in.Actor.IsReviewer() {
		return nil, ErrPermissionDenied
	}

	s.enrichEmployeeNames(ctx, []*Week{week})
	return week, nil
}

// ListWeeks は週の一覧を取得します。レビュー権限の無い actor は自分の週のみ
// 参照できます。結果は weekStart の降順です。
func (s *Service) ListWeeks(ctx context.Context, in ListWeeksInput) ([]*Week, error) {
	if in.Status != nil && !isValidStatus(*in.Status) {
		return nil, ErrInvalidStatus
	}

	employeeID := in.EmployeeID
	if !in.Actor.IsReviewer() {
		employeeID = in.Actor.ID
	}

	var weeks []*Week
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.List(txCtx, ListFilter{EmployeeID: employeeID, Status: in.Status})
		if err != nil {
			return err
		}
		weeks = result
		return nil
	}); err != nil {
		return nil, err
	}

	// ストアのソート済みクエリに依存せず、常にフォールバックの並べ替えを適用します。
	SortByWeekStartDesc(weeks)
	s.enrichEmployeeNames(ctx, weeks)
	return weeks, nil
}

// enrichEmployeeNames は表示用の従業員名キャッシュを補完します。
// 解決に失敗した週は "Unknown" になります。
func (s *Service) enrichEmployeeNames(ctx context.Context, weeks []*Week) {
	if s.directory == nil {
		return
	}
	for _, week := range weeks {
		if week.EmployeeName != "" {
			continue
		}
		name, err := s.directory.AccountName(ctx, week.EmployeeID)
		if err != nil || name == "" {
			week.EmployeeName = "Unknown"
			continue
		}
		week.EmployeeName = name
	}
}

// upsertDay は day をスロット単位で置き換えます。既存スロットが無ければ追加します。
func upsertDay(week *Week, day DayEntry) {
	for i, existing := range week.Days {
		if existing.ID == day.ID {
			week.Days[i] = day
			return
		}
	}
	week.Days = append(week.Days, day)
	sortDays(week.Days)
}
