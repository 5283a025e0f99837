package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/irs-timesheet/internal/core/timesheet"
	pgdb "github.com/ogurasousui/irs-timesheet/internal/platform/db/postgres"
)

// TimesheetRepository は PostgreSQL を利用した週次タイムシートの実装です。
// 日エントリは JSONB カラムに格納します。
type TimesheetRepository struct {
	pool pgdb.Queryer
}

// NewTimesheetRepository は TimesheetRepository を生成します。
func NewTimesheetRepository(pool pgdb.Queryer) *TimesheetRepository {
	return &TimesheetRepository{pool: pool}
}

// Create は週次タイムシートを新規作成します。
func (r *TimesheetRepository) Create(ctx context.Context, w *timesheet.Week) (*timesheet.Week, error) {
	days, err := marshalDays(w.Days)
	if err != nil {
		return nil, err
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO timesheets (id, label, week_start, status, employee_id, days, rejection_comment, created_at, updated_at, submitted_at, reviewed_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id, label, week_start, status, employee_id, days, rejection_comment, created_at, updated_at, submitted_at, reviewed_at
    `,
		w.ID,
		w.Label,
		w.WeekStart,
		string(w.Status),
		w.EmployeeID,
		days,
		w.RejectionComment,
		w.CreatedAt,
		w.UpdatedAt,
		w.SubmittedAt,
		w.ReviewedAt,
	)

	created, err := scanWeek(row)
	if err != nil {
		return nil, translateTimesheetPgError(err)
	}
	return created, nil
}

// Update は週次タイムシートを更新します。
func (r *TimesheetRepository) Update(ctx context.Context, w *timesheet.Week) (*timesheet.Week, error) {
	days, err := marshalDays(w.Days)
	if err != nil {
		return nil, err
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE timesheets
           SET label = $1,
               week_start = $2,
               status = $3,
               days = $4,
               rejection_comment = $5,
               updated_at = $6,
               submitted_at = $7,
               reviewed_at = $8
         WHERE id = $9
        RETURNING id, label, week_start, status, employee_id, days, rejection_comment, created_at, updated_at, submitted_at, reviewed_at
    `,
		w.Label,
		w.WeekStart,
		string(w.Status),
		days,
		w.RejectionComment,
		w.UpdatedAt,
		w.SubmittedAt,
		w.ReviewedAt,
		w.ID,
	)

	updated, err := scanWeek(row)
	if err != nil {
		return nil, translateTimesheetPgError(err)
	}
	return updated, nil
}

// FindByID は ID で週次タイムシートを取得します。
func (r *TimesheetRepository) FindByID(ctx context.Context, id string) (*timesheet.Week, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, label, week_start, status, employee_id, days, rejection_comment, created_at, updated_at, submitted_at, reviewed_at
          FROM timesheets
         WHERE id = $1
         LIMIT 1
    `, id)

	found, err := scanWeek(row)
	if err != nil {
		return nil, translateTimesheetPgError(err)
	}
	return found, nil
}

// List は週次タイムシートの一覧を取得します。
// week_start は表示文字列(DD/MM/YYYY)のため、ここでの ORDER BY は
// 年をまたぐと正しく並ばないことがあります。最終的な並び順はサービス側で整えます。
func (r *TimesheetRepository) List(ctx context.Context, filter timesheet.ListFilter) ([]*timesheet.Week, error) {
	args := make([]any, 0, 2)
	conditions := make([]string, 0, 2)

	if filter.EmployeeID != "" {
		placeholder := "$" + strconv.Itoa(len(args)+1)
		conditions = append(conditions, "employee_id = "+placeholder)
		args = append(args, filter.EmployeeID)
	}

	if filter.Status != nil {
		placeholder := "$" + strconv.Itoa(len(args)+1)
		conditions = append(conditions, "status = "+placeholder)
		args = append(args, string(*filter.Status))
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	query := `
        SELECT id, label, week_start, status, employee_id, days, rejection_comment, created_at, updated_at, submitted_at, reviewed_at
          FROM timesheets` + whereClause + `
         ORDER BY created_at DESC, id DESC
    `

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, translateTimesheetPgError(err)
	}
	defer rows.Close()

	weeks := make([]*timesheet.Week, 0)
	for rows.Next() {
		w, err := scanWeek(rows)
		if err != nil {
			return nil, translateTimesheetPgError(err)
		}
		weeks = append(weeks, w)
	}

	if err := rows.Err(); err != nil {
		return nil, translateTimesheetPgError(err)
	}

	return weeks, nil
}

func scanWeek(row pgx.Row) (*timesheet.Week, error) {
	var (
		id               string
		label            string
		weekStart        string
		status           string
		employeeID       string
		daysRaw          []byte
		rejectionComment string
		createdAt        time.Time
		updatedAt        time.Time
		submittedAt      sql.NullTime
		reviewedAt       sql.NullTime
	)

	if err := row.Scan(
		&id,
		&label,
		&weekStart,
		&status,
		&employeeID,
		&daysRaw,
		&rejectionComment,
		&createdAt,
		&updatedAt,
		&submittedAt,
		&reviewedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, timesheet.ErrWeekNotFound
		}
		return nil, err
	}

	days, err := unmarshalDays(daysRaw)
	if err != nil {
		return nil, err
	}

	return &timesheet.Week{
		ID:               id,
		Label:            label,
		WeekStart:        weekStart,
		Status:           timesheet.Status(status),
		EmployeeID:       employeeID,
		Days:             days,
		RejectionComment: rejectionComment,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
		SubmittedAt:      nullTimePtr(submittedAt),
		ReviewedAt:       nullTimePtr(reviewedAt),
	}, nil
}

func marshalDays(days []timesheet.DayEntry) ([]byte, error) {
	if days == nil {
		days = []timesheet.DayEntry{}
	}
	b, err := json.Marshal(days)
	if err != nil {
		return nil, fmt.Errorf("postgres: marshal days: %w", err)
	}
	return b, nil
}

func unmarshalDays(raw []byte) ([]timesheet.DayEntry, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var days []timesheet.DayEntry
	if err := json.Unmarshal(raw, &days); err != nil {
		return nil, fmt.Errorf("postgres: unmarshal days: %w", err)
	}
	return days, nil
}

func nullTimePtr(value sql.NullTime) *time.Time {
	if !value.Valid {
		return nil
	}
	t := value.Time
	return &t
}

func translateTimesheetPgError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return timesheet.ErrWeekNotFound
	}
	return err
}
