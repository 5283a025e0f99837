// Package postgres は credentials テーブルを用いた認証基盤の実装です。
package postgres

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/ogurasousui/irs-timesheet/internal/core/identity"
	pgdb "github.com/ogurasousui/irs-timesheet/internal/platform/db/postgres"
)

const (
	credentialUniqueViolationCode = "23505"
	minSecretLength               = 6
)

// Provider は bcrypt ハッシュを credentials テーブルへ格納する identity.Provider 実装です。
type Provider struct {
	pool pgdb.Queryer
	cost int
}

// NewProvider は Provider を生成します。cost は bcrypt のコストパラメータです。
func NewProvider(pool pgdb.Queryer, cost int) *Provider {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Provider{pool: pool, cost: cost}
}

// CreateIdentity は新しい資格情報を発行し、識別子を返します。
func (p *Provider) CreateIdentity(ctx context.Context, email, secret string) (string, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return "", err
	}
	if len(secret) < minSecretLength {
		return "", identity.ErrWeakSecret
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), p.cost)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	now := time.Now().UTC()

	exec := pgdb.QueryerFromContext(ctx, p.pool)
	_, err = exec.Exec(ctx, `
        INSERT INTO credentials (id, email, secret_hash, disabled, created_at, updated_at)
        VALUES ($1, $2, $3, FALSE, $4, $5)
    `, id, normalized, string(hash), now, now)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == credentialUniqueViolationCode {
			return "", identity.ErrEmailInUse
		}
		return "", err
	}

	return id, nil
}

// VerifyIdentity は資格情報を検証し、一致すれば識別子を返します。
func (p *Provider) VerifyIdentity(ctx context.Context, email, secret string) (string, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return "", err
	}

	exec := pgdb.QueryerFromContext(ctx, p.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, secret_hash, disabled
          FROM credentials
         WHERE email = $1
         LIMIT 1
    `, normalized)

	var (
		id         string
		secretHash string
		disabled   bool
	)
	if err := row.Scan(&id, &secretHash, &disabled); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", identity.ErrIdentityNotFound
		}
		return "", err
	}

	if disabled {
		return "", identity.ErrIdentityDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(secretHash), []byte(secret)); err != nil {
		return "", identity.ErrWrongSecret
	}

	return id, nil
}

// DestroyIdentity は資格情報を破棄します。
func (p *Provider) DestroyIdentity(ctx context.Context, id string) error {
	exec := pgdb.QueryerFromContext(ctx, p.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM credentials WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return identity.ErrIdentityNotFound
	}
	return nil
}

func normalizeEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return "", identity.ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(normalized)
	if err != nil || addr.Address != normalized {
		return "", identity.ErrInvalidEmail
	}
	return normalized, nil
}
