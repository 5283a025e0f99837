package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ogurasousui/irs-timesheet/internal/core/notifier"
	pgdb "github.com/ogurasousui/irs-timesheet/internal/platform/db/postgres"
)

// MailRepository は送信待ちメールを outbound_mail テーブルへ登録します。
// 実際の配送は外部プロセスがテーブルをポーリングして行います。
type MailRepository struct {
	pool pgdb.Queryer
}

// NewMailRepository は MailRepository を生成します。
func NewMailRepository(pool pgdb.Queryer) *MailRepository {
	return &MailRepository{pool: pool}
}

// Enqueue はメールを送信待ちキューへ登録します。
func (r *MailRepository) Enqueue(ctx context.Context, msg notifier.Message) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	_, err := exec.Exec(ctx, `
        INSERT INTO outbound_mail (id, to_address, subject, html_body, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `, uuid.NewString(), msg.To, msg.Subject, msg.HTMLBody, time.Now().UTC())
	return err
}
