package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	directorypb "github.com/ogurasousui/irs-timesheet/internal/adapters/grpc/gen/directory/v1"
	"github.com/ogurasousui/irs-timesheet/internal/core/account"
)

// DirectoryGrpcHandler は DirectoryService の gRPC 実装です。
type DirectoryGrpcHandler struct {
	svc account.UseCase
	directorypb.UnimplementedDirectoryServiceServer
}

// NewDirectoryGrpcHandler は DirectoryGrpcHandler を生成します。
func NewDirectoryGrpcHandler(svc account.UseCase) *DirectoryGrpcHandler {
	return &DirectoryGrpcHandler{svc: svc}
}

// CreateAccount はアカウントを作成し、資格情報通知をキューへ登録します。
func (h *DirectoryGrpcHandler) CreateAccount(ctx context.Context, req *directorypb.CreateAccountRequest) (*directorypb.CreateAccountResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	role, err := toDomainRole(req.GetRole())
	if err != nil {
		return nil, toStatusError(err)
	}

	result, err := h.svc.CreateAccount(ctx, account.CreateAccountInput{
		Actor:  actor,
		Name:   req.GetName(),
		Email:  req.GetEmail(),
		Secret: req.GetSecret(),
		Role:   role,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &directorypb.CreateAccountResponse{
		Account:  toProtoAccount(result.Account),
		Notified: result.Notified,
	}, nil
}

// UpdateAccount はアカウントを部分更新します。
func (h *DirectoryGrpcHandler) UpdateAccount(ctx context.Context, req *directorypb.UpdateAccountRequest) (*directorypb.UpdateAccountResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var namePtr *string
	if req.Name != nil {
		value := req.Name.GetValue()
		namePtr = &value
	}

	var emailPtr *string
	if req.Email != nil {
		value := req.Email.GetValue()
		emailPtr = &value
	}

	var rolePtr *account.Role
	if req.GetRole() != directorypb.AccountRole_ACCOUNT_ROLE_UNSPECIFIED {
		role, err := toDomainRole(req.GetRole())
		if err != nil {
			return nil, toStatusError(err)
		}
		rolePtr = &role
	}

	var statusPtr *account.Status
	if req.GetStatus() != directorypb.AccountStatus_ACCOUNT_STATUS_UNSPECIFIED {
		domainStatus, err := toDomainAccountStatus(req.GetStatus())
		if err != nil {
			return nil, toStatusError(err)
		}
		statusPtr = &domainStatus
	}

	updated, err := h.svc.UpdateAccount(ctx, account.UpdateAccountInput{
		Actor:  actor,
		ID:     req.GetId(),
		Name:   namePtr,
		Email:  emailPtr,
		Role:   rolePtr,
		Status: statusPtr,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &directorypb.UpdateAccountResponse{Account: toProtoAccount(updated)}, nil
}

// DeleteAccount は台帳レコードを削除します。
func (h *DirectoryGrpcHandler) DeleteAccount(ctx context.Context, req *directorypb.DeleteAccountRequest) (*directorypb.DeleteAccountResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.svc.DeleteAccount(ctx, account.DeleteAccountInput{Actor: actor, ID: req.GetId()}); err != nil {
		return nil, toStatusError(err)
	}

	return &directorypb.DeleteAccountResponse{}, nil
}

// GetAccount はアカウントを取得します。
func (h *DirectoryGrpcHandler) GetAccount(ctx context.Context, req *directorypb.GetAccountRequest) (*directorypb.GetAccountResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	found, err := h.svc.GetAccount(ctx, account.GetAccountInput{Actor: actor, ID: req.GetId()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &directorypb.GetAccountResponse{Account: toProtoAccount(found)}, nil
}

// ListAccounts はアカウントの一覧を取得します。
func (h *DirectoryGrpcHandler) ListAccounts(ctx context.Context, req *directorypb.ListAccountsRequest) (*directorypb.ListAccountsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var statusPtr *account.Status
	if req.GetStatus() != directorypb.AccountStatus_ACCOUNT_STATUS_UNSPECIFIED {
		domainStatus, err := toDomainAccountStatus(req.GetStatus())
		if err != nil {
			return nil, toStatusError(err)
		}
		statusPtr = &domainStatus
	}

	accounts, err := h.svc.ListAccounts(ctx, account.ListAccountsInput{Actor: actor, Status: statusPtr})
	if err != nil {
		return nil, toStatusError(err)
	}

	protoAccounts := make([]*directorypb.Account, 0, len(accounts))
	for _, acc := range accounts {
		protoAccounts = append(protoAccounts, toProtoAccount(acc))
	}

	return &directorypb.ListAccountsResponse{Accounts: protoAccounts}, nil
}

func toProtoAccount(a *account.Account) *directorypb.Account {
	if a == nil {
		return nil
	}

	return &directorypb.Account{
		Id:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Role:      toProtoRole(a.Role),
		Status:    toProtoAccountStatus(a.Status),
		CreatedAt: timestamppb.New(a.CreatedAt),
		UpdatedAt: timestamppb.New(a.UpdatedAt),
	}
}

func toProtoRole(role account.Role) directorypb.AccountRole {
	switch role {
	case account.RoleEmployee:
		return directorypb.AccountRole_ACCOUNT_ROLE_EMPLOYEE
	case account.RoleManager:
		return directorypb.AccountRole_ACCOUNT_ROLE_MANAGER
	case account.RoleAdmin:
		return directorypb.AccountRole_ACCOUNT_ROLE_ADMIN
	case account.RoleSuperAdmin:
		return directorypb.AccountRole_ACCOUNT_ROLE_SUPER_ADMIN
	default:
		return directorypb.AccountRole_ACCOUNT_ROLE_UNSPECIFIED
	}
}

func toDomainRole(role directorypb.AccountRole) (account.Role, error) {
	switch role {
	case directorypb.AccountRole_ACCOUNT_ROLE_EMPLOYEE:
		return account.RoleEmployee, nil
	case directorypb.AccountRole_ACCOUNT_ROLE_MANAGER:
		return account.RoleManager, nil
	case directorypb.AccountRole_ACCOUNT_ROLE_ADMIN:
		return account.RoleAdmin, nil
	case directorypb.AccountRole_ACCOUNT_ROLE_SUPER_ADMIN:
		return account.RoleSuperAdmin, nil
	default:
		return "", account.ErrInvalidRole
	}
}

func toProtoAccountStatus(status account.Status) directorypb.AccountStatus {
	switch status {
	case account.StatusActive:
		return directorypb.AccountStatus_ACCOUNT_STATUS_ACTIVE
	case account.StatusInactive:
		return directorypb.AccountStatus_ACCOUNT_STATUS_INACTIVE
	case account.StatusBlocked:
		return directorypb.AccountStatus_ACCOUNT_STATUS_BLOCKED
	default:
		return directorypb.AccountStatus_ACCOUNT_STATUS_UNSPECIFIED
	}
}

func toDomainAccountStatus(status directorypb.AccountStatus) (account.Status, error) {
	switch status {
	case directorypb.AccountStatus_ACCOUNT_STATUS_ACTIVE:
		return account.StatusActive, nil
	case directorypb.AccountStatus_ACCOUNT_STATUS_INACTIVE:
		return account.StatusInactive, nil
	case directorypb.AccountStatus_ACCOUNT_STATUS_BLOCKED:
		return account.StatusBlocked, nil
	default:
		return "", account.ErrInvalidStatus
	}
}
