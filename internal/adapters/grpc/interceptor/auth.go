// Package interceptor は gRPC サーバー共通のインターセプターを提供します。
package interceptor

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/ogurasousui/irs-timesheet/internal/core/account"
	"github.com/ogurasousui/irs-timesheet/internal/core/auth"
)

const bearerPrefix = "Bearer "

type actorContextKey struct{}

var actorKey = actorContextKey{}

// NewAuthUnary はセッショントークンを検証し actor をコンテキストへ格納する
// unary インターセプターを返します。skipMethods に含まれるメソッドは検証を行いません。
func NewAuthUnary(verifier auth.TokenVerifier, skipMethods ...string) grpc.UnaryServerInterceptor {
	skip := make(map[string]struct{}, len(skipMethods))
	for _, method := range skipMethods {
		skip[method] = struct{}{}
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if _, ok := skip[info.FullMethod]; ok {
			return handler(ctx, req)
		}

		token, err := bearerToken(ctx)
		if err != nil {
			return nil, err
		}

		actor, err := verifier.Verify(token)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid or expired session token")
		}

		return handler(ContextWithActor(ctx, actor), req)
	}
}

func bearerToken(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "missing request metadata")
	}

	values := md.Get("authorization")
	if len(values) == 0 {
		return "", status.Error(codes.Unauthenticated, "missing authorization header")
	}

	header := values[0]
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", status.Error(codes.Unauthenticated, "authorization header must use Bearer scheme")
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return "", status.Error(codes.Unauthenticated, "empty bearer token")
	}

	return token, nil
}

// ContextWithActor は actor をコンテキストへ格納します。テストでも使用します。
func ContextWithActor(ctx context.Context, actor account.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// ActorFromContext はコンテキストから認証済み actor を取り出します。
func ActorFromContext(ctx context.Context) (account.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(account.Actor)
	return actor, ok
}
