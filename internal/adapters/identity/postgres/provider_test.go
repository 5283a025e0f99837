package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/ogurasousui/irs-timesheet/internal/core/identity"
)

func newMockProvider(t *testing.T) (*Provider, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	t.Cleanup(mock.Close)

	return NewProvider(mock, bcrypt.MinCost), mock
}

func TestProvider_CreateIdentity_Success(t *testing.T) {
	t.Parallel()

	provider, mock := newMockProvider(t)

	mock.ExpectExec(regexp.QuoteMeta(`
        INSERT INTO credentials (id, email, secret_hash, disabled, created_at, updated_at)
        VALUES ($1, $2, $3, FALSE, $4, $5)
    `)).
		WithArgs(pgxmock.AnyArg(), "new.hire@example.com", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	id, err := provider.CreateIdentity(context.Background(), "  New.Hire@Example.com ", "secret123")
	if err != nil {
		t.Fatalf("CreateIdentity returned error: %v", err)
	}

	if id == "" {
		t.Fatal("expected non-empty identity id")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestProvider_CreateIdentity_Validation(t *testing.T) {
	t.Parallel()

	provider, _ := newMockProvider(t)

	if _, err := provider.CreateIdentity(context.Background(), "not-an-email", "secret123"); !errors.Is(err, identity.ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}

	if _, err := provider.CreateIdentity(context.Background(), "user@example.com", "short"); !errors.Is(err, identity.ErrWeakSecret) {
		t.Fatalf("expected ErrWeakSecret, got %v", err)
	}
}

func TestProvider_CreateIdentity_DuplicateEmail(t *testing.T) {
	t.Parallel()

	provider, mock := newMockProvider(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO credentials`)).
		WithArgs(pgxmock.AnyArg(), "taken@example.com", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: credentialUniqueViolationCode})

	if _, err := provider.CreateIdentity(context.Background(), "taken@example.com", "secret123"); !errors.Is(err, identity.ErrEmailInUse) {
		t.Fatalf("expected ErrEmailInUse, got %v", err)
	}
}

func TestProvider_VerifyIdentity(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash secret: %v", err)
	}

	query := regexp.QuoteMeta(`
        SELECT id, secret_hash, disabled
          FROM credentials
         WHERE email = $1
         LIMIT 1
    `)

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		provider, mock := newMockProvider(t)
		mock.ExpectQuery(query).
			WithArgs("user@example.com").
			WillReturnRows(pgxmock.NewRows([]string{"id", "secret_hash", "disabled"}).
				AddRow("ident-1", string(hash), false))

		id, err := provider.VerifyIdentity(context.Background(), "User@Example.com", "secret123")
		if err != nil {
			t.Fatalf("VerifyIdentity returned error: %v", err)
		}
		if id != "ident-1" {
			t.Fatalf("unexpected id %s", id)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		t.Parallel()

		provider, mock := newMockProvider(t)
		mock.ExpectQuery(query).
			WithArgs("user@example.com").
			WillReturnRows(pgxmock.NewRows([]string{"id", "secret_hash", "disabled"}).
				AddRow("ident-1", string(hash), false))

		if _, err := provider.VerifyIdentity(context.Background(), "user@example.com", "wrong-pass"); !errors.Is(err, identity.ErrWrongSecret) {
			t.Fatalf("expected ErrWrongSecret, got %v", err)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()

		provider, mock := newMockProvider(t)
		mock.ExpectQuery(query).
			WithArgs("user@example.com").
			WillReturnRows(pgxmock.NewRows([]string{"id", "secret_hash", "disabled"}).
				AddRow("ident-1", string(hash), true))

		if _, err := provider.VerifyIdentity(context.Background(), "user@example.com", "secret123"); !errors.Is(err, identity.ErrIdentityDisabled) {
			t.Fatalf("expected ErrIdentityDisabled, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		provider, mock := newMockProvider(t)
		mock.ExpectQuery(query).
			WithArgs("ghost@example.com").
			WillReturnRows(pgxmock.NewRows([]string{"id", "secret_hash", "disabled"}))

		if _, err := provider.VerifyIdentity(context.Background(), "ghost@example.com", "secret123"); !errors.Is(err, identity.ErrIdentityNotFound) {
			t.Fatalf("expected ErrIdentityNotFound, got %v", err)
		}
	})
}

func TestProvider_DestroyIdentity_NotFound(t *testing.T) {
	t.Parallel()

	provider, mock := newMockProvider(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM credentials WHERE id = $1`)).
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	if err := provider.DestroyIdentity(context.Background(), "missing"); !errors.Is(err, identity.ErrIdentityNotFound) {
		t.Fatalf("expected ErrIdentityNotFound, got %v", err)
	}
}

func TestNewProvider_CostOutOfRangeFallsBack(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	provider := NewProvider(mock, 99)
	if provider.cost != bcrypt.DefaultCost {
		t.Fatalf("expected fallback to default cost, got %d", provider.cost)
	}
}
