package postgres

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/irs-timesheet/internal/core/account"
	pgdb "github.com/ogurasousui/irs-timesheet/internal/platform/db/postgres"
)

const uniqueViolationCode = "23505"

// AccountRepository は PostgreSQL を利用したアカウント台帳の実装です。
type AccountRepository struct {
	pool pgdb.Queryer
}

// NewAccountRepository は AccountRepository を生成します。
func NewAccountRepository(pool pgdb.Queryer) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// Create はアカウントレコードを新規作成します。
func (r *AccountRepository) Create(ctx context.Context, a *account.Account) (*account.Account, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO accounts (id, name, email, role, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, name, email, role, status, created_at, updated_at
    `, a.ID, a.Name, a.Email, string(a.Role), string(a.Status), a.CreatedAt, a.UpdatedAt)

	created, err := scanAccount(row)
	if err != nil {
		return nil, translatePgError(err)
	}
	return created, nil
}

// Update はアカウントレコードを更新します。
func (r *AccountRepository) Update(ctx context.Context, a *account.Account) (*account.Account, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE accounts
           SET name = $1,
               email = $2,
               role = $3,
               status = $4,
               updated_at = $5
         WHERE id = $6
        RETURNING id, name, email, role, status, created_at, updated_at
    `, a.Name, a.Email, string(a.Role), string(a.Status), a.UpdatedAt, a.ID)

	updated, err := scanAccount(row)
	if err != nil {
		return nil, translatePgError(err)
	}
	return updated, nil
}

// Delete はアカウントレコードを削除します。認証資格情報には触れません。
func (r *AccountRepository) Delete(ctx context.Context, id string) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return translatePgError(err)
	}
	if tag.RowsAffected() == 0 {
		return account.ErrAccountNotFound
	}
	return nil
}

// FindByID は ID でアカウントを取得します。
func (r *AccountRepository) FindByID(ctx context.Context, id string) (*account.Account, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, name, email, role, status, created_at, updated_at
          FROM accounts
         WHERE id = $1
         LIMIT 1
    `, id)

	found, err := scanAccount(row)
	if err != nil {
		return nil, translatePgError(err)
	}
	return found, nil
}

// FindByEmail はメールアドレスでアカウントを取得します。照合は大文字小文字を無視します。
func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*account.Account, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, name, email, role, status, created_at, updated_at
          FROM accounts
         WHERE lower(email) = lower($1)
         LIMIT 1
    `, email)

	found, err := scanAccount(row)
	if err != nil {
		return nil, translatePgError(err)
	}
	return found, nil
}

// List はアカウントの一覧を作成日時の降順で取得します。
func (r *AccountRepository) List(ctx context.Context, filter account.ListFilter) ([]*account.Account, error) {
	args := make([]any, 0, 1)
	whereClause := ""
	if filter.Status != nil {
		whereClause = " WHERE status = $" + strconv.Itoa(len(args)+1)
		args = append(args, string(*filter.Status))
	}

	query := `
        SELECT id, name, email, role, status, created_at, updated_at
          FROM accounts` + whereClause + `
         ORDER BY created_at DESC, id DESC
    `

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, translatePgError(err)
	}
	defer rows.Close()

	accounts := make([]*account.Account, 0)
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, translatePgError(err)
		}
		accounts = append(accounts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, translatePgError(err)
	}

	return accounts, nil
}

func scanAccount(row pgx.Row) (*account.Account, error) {
	var (
		id                   string
		name                 string
		email                string
		role                 string
		status               string
		createdAt, updatedAt time.Time
	)

	if err := row.Scan(&id, &name, &email, &role, &status, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrAccountNotFound
		}
		return nil, err
	}

	return &account.Account{
		ID:        id,
		Name:      name,
		Email:     email,
		Role:      account.Role(role),
		Status:    account.Status(status),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == uniqueViolationCode {
			return account.ErrDuplicateEmail
		}
	}
	return err
}
