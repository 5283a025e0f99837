package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	authpb "github.com/ogurasousui/irs-timesheet/internal/adapters/grpc/gen/auth/v1"
	"github.com/ogurasousui/irs-timesheet/internal/core/auth"
)

// AuthGrpcHandler は AuthService の gRPC 実装です。
type AuthGrpcHandler struct {
	svc auth.UseCase
	authpb.UnimplementedAuthServiceServer
}

// NewAuthGrpcHandler は AuthGrpcHandler を生成します。
func NewAuthGrpcHandler(svc auth.UseCase) *AuthGrpcHandler {
	return &AuthGrpcHandler{svc: svc}
}

// Login は資格情報を検証しセッショントークンを発行します。
func (h *AuthGrpcHandler) Login(ctx context.Context, req *authpb.LoginRequest) (*authpb.LoginResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	session, err := h.svc.Login(ctx, req.GetEmail(), req.GetSecret())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &authpb.LoginResponse{
		Token:     session.Token,
		ExpiresAt: timestamppb.New(session.ExpiresAt),
		Account:   toProtoAccount(session.Account),
	}, nil
}
