package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"google.golang.org/grpc"

	authpb "github.com/ogurasousui/irs-timesheet/internal/adapters/grpc/gen/auth/v1"
	directorypb "github.com/ogurasousui/irs-timesheet/internal/adapters/grpc/gen/directory/v1"
	reportpb "github.com/ogurasousui/irs-timesheet/internal/adapters/grpc/gen/report/v1"
	timesheetpb "github.com/ogurasousui/irs-timesheet/internal/adapters/grpc/gen/timesheet/v1"
	"github.com/ogurasousui/irs-timesheet/internal/adapters/grpc/handler"
	"github.com/ogurasousui/irs-timesheet/internal/adapters/grpc/interceptor"
	"github.com/ogurasousui/irs-timesheet/internal/core/account"
	"github.com/ogurasousui/irs-timesheet/internal/core/auth"
	"github.com/ogurasousui/irs-timesheet/internal/core/report"
	"github.com/ogurasousui/irs-timesheet/internal/core/timesheet"
)

// loginMethod はトークン検証を行わない唯一のメソッドです。
const loginMethod = "/auth.v1.AuthService/Login"

// Services はサーバーに登録するユースケース群です。
type Services struct {
	Auth      auth.UseCase
	Accounts  account.UseCase
	Weeks     timesheet.UseCase
	Reports   report.UseCase
	TokenAuth auth.TokenVerifier
}

// Server は gRPC サーバーのライフサイクルを管理します。
type Server struct {
	listenAddr string
	grpcServer *grpc.Server
}

// New は指定されたアドレスで待ち受ける gRPC サーバーを構築します。
func New(listenAddr string, services Services, opts ...grpc.ServerOption) *Server {
	opts = append(opts, grpc.ChainUnaryInterceptor(
		interceptor.NewAuthUnary(services.TokenAuth, loginMethod),
	))

	srv := grpc.NewServer(opts...)
	authpb.RegisterAuthServiceServer(srv, handler.NewAuthGrpcHandler(services.Auth))
	directorypb.RegisterDirectoryServiceServer(srv, handler.NewDirectoryGrpcHandler(services.Accounts))
	timesheetpb.RegisterTimesheetServiceServer(srv, handler.NewTimesheetGrpcHandler(services.Weeks))
	reportpb.RegisterReportServiceServer(srv, handler.NewReportGrpcHandler(services.Reports))

	return &Server{
		listenAddr: listenAddr,
		grpcServer: srv,
	}
}

// Run はサーバーを起動し、コンテキストがキャンセルされると GracefulStop します。
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.listenAddr, err)
	}

	go func() {
		<-ctx.Done()
		s.grpcServer.GracefulStop()
	}()

	if err := s.grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	return nil
}

// GracefulStop はサーバーを安全に停止します。
func (s *Server) GracefulStop() {
	s.grpcServer.GracefulStop()
}
