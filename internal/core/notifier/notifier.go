// Package notifier は新規アカウントの資格情報通知を組み立て、
// 外部の送信プロセスが消費するメールキューへ登録します。
package notifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/ogurasousui/irs-timesheet/internal/core/account"
)

const credentialsSubject = "Your IRS Timesheet login credentials"

// Message はキューへ登録する1通のメールです。
type Message struct {
	To       string
	Subject  string
	HTMLBody string
}

// Queue は送信待ちメールの登録先です。実際の送信は外部プロセスが行います。
type Queue interface {
	Enqueue(ctx context.Context, msg Message) error
}

// Service は account.CredentialsNotifier の実装です。
type Service struct {
	queue Queue
}

// NewService は Service を生成します。
func NewService(queue Queue) *Service {
	return &Service{queue: queue}
}

// NotifyCredentials は資格情報通知を組み立ててキューへ登録します。
// 失敗してもアカウント作成は取り消されません(呼び出し側がベストエフォートで扱います)。
func (s *Service) NotifyCredentials(ctx context.Context, notice account.CredentialsNotice) error {
	msg := Message{
		To:       strings.ToLower(strings.TrimSpace(notice.Email)),
		Subject:  credentialsSubject,
		HTMLBody: composeCredentialsBody(notice),
	}
	return s.queue.Enqueue(ctx, msg)
}

func composeCredentialsBody(notice account.CredentialsNotice) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<p>Hello %s,</p>\n", notice.Name)
	b.WriteString("<p>Your account has been created for the IRS Timesheet app. Use the credentials below to sign in.</p>\n")
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>\n", notice.Email)
	fmt.Fprintf(&b, "<p><strong>Password:</strong> %s</p>\n", notice.Password)
	fmt.Fprintf(&b, "<p><strong>Role:</strong> %s</p>\n", notice.Role)
	b.WriteString("<p>Open the app, tap Login, and enter these details to access your dashboard.</p>\n")
	b.WriteString("<p>Please change your password after first login if the app supports it.</p>\n")
	return b.String()
}
