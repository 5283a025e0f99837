package handler

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	authpb "github.com/ogurasousui/irs-timesheet/internal/adapters/grpc/gen/auth/v1"
	directorypb "github.com/ogurasousui/irs-timesheet/internal/adapters/grpc/gen/directory/v1"
	"github.com/ogurasousui/irs-timesheet/internal/core/account"
	"github.com/ogurasousui/irs-timesheet/internal/core/auth"
)

type stubAuthUseCase struct {
	email   string
	secret  string
	session *auth.Session
	err     error
}

func (s *stubAuthUseCase) Login(ctx context.Context, email, secret string) (*auth.Session, error) {
	s.email = email
	s.secret = secret
	if s.err != nil {
		return nil, s.err
	}
	return s.session, nil
}

func TestAuthGrpcHandler_Login(t *testing.T) {
	t.Parallel()

	now := time.Now()
	expires := now.Add(12 * time.Hour)
	stub := &stubAuthUseCase{
		session: &auth.Session{
			Account: &account.Account{
				ID:        "acct-1",
				Name:      "Alice Worker",
				Email:     "alice@example.com",
				Role:      account.RoleManager,
				Status:    account.StatusActive,
				CreatedAt: now,
				UpdatedAt: now,
			},
			Token:     "session-token",
			ExpiresAt: expires,
		},
	}

	handler := NewAuthGrpcHandler(stub)

	resp, err := handler.Login(context.Background(), &authpb.LoginRequest{Email: "alice@example.com", Secret: "secret123"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if stub.email != "alice@example.com" || stub.secret != "secret123" {
		t.Errorf("credentials not passed through: %s / %s", stub.email, stub.secret)
	}

	if resp.GetToken() != "session-token" {
		t.Errorf("unexpected token %s", resp.GetToken())
	}

	if resp.GetAccount().GetRole() != directorypb.AccountRole_ACCOUNT_ROLE_MANAGER {
		t.Errorf("unexpected role %v", resp.GetAccount().GetRole())
	}

	if !resp.GetExpiresAt().AsTime().Equal(expires.UTC()) {
		t.Errorf("unexpected expiry %v", resp.GetExpiresAt().AsTime())
	}
}

func TestAuthGrpcHandler_Login_ErrorMapping(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		err  error
		code codes.Code
	}{
		"wrong credentials":  {err: auth.ErrInvalidCredentials, code: codes.Unauthenticated},
		"unknown account":    {err: auth.ErrAccountNotFound, code: codes.Unauthenticated},
		"blocked account":    {err: auth.ErrAccountBlocked, code: codes.PermissionDenied},
		"missing directory":  {err: auth.ErrProfileIncomplete, code: codes.FailedPrecondition},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			handler := NewAuthGrpcHandler(&stubAuthUseCase{err: tc.err})

			_, err := handler.Login(context.Background(), &authpb.LoginRequest{Email: "x@example.com", Secret: "pw"})
			if status.Code(err) != tc.code {
				t.Fatalf("expected %v, got %v", tc.code, status.Code(err))
			}
		})
	}
}
