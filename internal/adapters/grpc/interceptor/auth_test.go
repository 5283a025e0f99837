package interceptor

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/ogurasousui/irs-timesheet/internal/core/account"
)

type stubVerifier struct {
	actor account.Actor
	err   error
	token string
}

func (s *stubVerifier) Verify(token string) (account.Actor, error) {
	s.token = token
	if s.err != nil {
		return account.Actor{}, s.err
	}
	return s.actor, nil
}

func callInterceptor(t *testing.T, interceptor grpc.UnaryServerInterceptor, ctx context.Context, method string) (account.Actor, bool, error) {
	t.Helper()

	var actor account.Actor
	var found bool
	_, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: method}, func(ctx context.Context, req any) (any, error) {
		actor, found = ActorFromContext(ctx)
		return nil, nil
	})
	return actor, found, err
}

func TestAuthUnary_InjectsActor(t *testing.T) {
	t.Parallel()

	verifier := &stubVerifier{actor: account.Actor{ID: "acct-1", Role: account.RoleManager}}
	interceptor := NewAuthUnary(verifier)

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer session-token"))

	actor, found, err := callInterceptor(t, interceptor, ctx, "/timesheet.v1.TimesheetService/GetWeek")
	if err != nil {
		t.Fatalf("interceptor returned error: %v", err)
	}

	if !found || actor.ID != "acct-1" || actor.Role != account.RoleManager {
		t.Fatalf("unexpected actor %+v found=%v", actor, found)
	}

	if verifier.token != "session-token" {
		t.Fatalf("unexpected token %q", verifier.token)
	}
}

func TestAuthUnary_SkipsLogin(t *testing.T) {
	t.Parallel()

	verifier := &stubVerifier{err: errors.New("should not be called")}
	interceptor := NewAuthUnary(verifier, "/auth.v1.AuthService/Login")

	_, found, err := callInterceptor(t, interceptor, context.Background(), "/auth.v1.AuthService/Login")
	if err != nil {
		t.Fatalf("interceptor returned error for skipped method: %v", err)
	}

	if found {
		t.Fatal("actor should not be injected for skipped methods")
	}
}

func TestAuthUnary_RejectsMissingOrBadHeader(t *testing.T) {
	t.Parallel()

	verifier := &stubVerifier{actor: account.Actor{ID: "acct-1", Role: account.RoleEmployee}}
	interceptor := NewAuthUnary(verifier)

	cases := map[string]context.Context{
		"no metadata":   context.Background(),
		"no header":     metadata.NewIncomingContext(context.Background(), metadata.MD{}),
		"wrong scheme":  metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Basic abc")),
		"empty token":   metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer ")),
	}

	for name, ctx := range cases {
		_, _, err := callInterceptor(t, interceptor, ctx, "/directory.v1.DirectoryService/ListAccounts")
		if status.Code(err) != codes.Unauthenticated {
			t.Errorf("%s: expected Unauthenticated, got %v", name, err)
		}
	}
}

func TestAuthUnary_RejectsInvalidToken(t *testing.T) {
	t.Parallel()

	verifier := &stubVerifier{err: errors.New("bad token")}
	interceptor := NewAuthUnary(verifier)

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer broken"))

	_, _, err := callInterceptor(t, interceptor, ctx, "/directory.v1.DirectoryService/ListAccounts")
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}
}
