package notifier

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ogurasousui/irs-timesheet/internal/core/account"
)

type fakeQueue struct {
	messages []Message
	err      error
}

func (q *fakeQueue) Enqueue(_ context.Context, msg Message) error {
	if q.err != nil {
		return q.err
	}
	q.messages = append(q.messages, msg)
	return nil
}

func TestNotifyCredentials(t *testing.T) {
	t.Parallel()

	queue := &fakeQueue{}
	svc := NewService(queue)

	err := svc.NotifyCredentials(context.Background(), account.CredentialsNotice{
		Name:     "Alice Worker",
		Email:    " Alice@Example.com ",
		Password: "secret123",
		Role:     account.RoleEmployee,
	})
	if err != nil {
		t.Fatalf("NotifyCredentials returned error: %v", err)
	}

	if len(queue.messages) != 1 {
		t.Fatalf("expected 1 queued message, got %d", len(queue.messages))
	}

	msg := queue.messages[0]
	if msg.To != "alice@example.com" {
		t.Errorf("expected normalized recipient, got %q", msg.To)
	}
	if msg.Subject != "Your IRS Timesheet login credentials" {
		t.Errorf("unexpected subject %q", msg.Subject)
	}
	for _, fragment := range []string{"Hello Alice Worker", "secret123", "Employee", "<strong>Email:</strong>"} {
		if !strings.Contains(msg.HTMLBody, fragment) {
			t.Errorf("body missing %q:\n%s", fragment, msg.HTMLBody)
		}
	}
}

func TestNotifyCredentials_QueueFailure(t *testing.T) {
	t.Parallel()

	queue := &fakeQueue{err: errors.New("queue down")}
	svc := NewService(queue)

	if err := svc.NotifyCredentials(context.Background(), account.CredentialsNotice{Email: "a@b.com"}); err == nil {
		t.Fatal("expected error to propagate to the caller")
	}
}
