package handler

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	directorypb "github.com/ogurasousui/irs-timesheet/internal/adapters/grpc/gen/directory/v1"
	"github.com/ogurasousui/irs-timesheet/internal/adapters/grpc/interceptor"
	"github.com/ogurasousui/irs-timesheet/internal/core/account"
)

type stubAccountUseCase struct {
	createInput account.CreateAccountInput
	createErr   error
	createOut   *account.CreateAccountResult

	updateInput account.UpdateAccountInput
	updateErr   error
	updateOut   *account.Account

	deleteInput account.DeleteAccountInput
	deleteErr   error

	getOut  *account.Account
	getErr  error
	listOut []*account.Account
	listErr error
}

func (s *stubAccountUseCase) CreateAccount(ctx context.Context, in account.CreateAccountInput) (*account.CreateAccountResult, error) {
	s.createInput = in
	return s.createOut, s.createErr
}

func (s *stubAccountUseCase) UpdateAccount(ctx context.Context, in account.UpdateAccountInput) (*account.Account, error) {
	s.updateInput = in
	return s.updateOut, s.updateErr
}

func (s *stubAccountUseCase) DeleteAccount(ctx context.Context, in account.DeleteAccountInput) error {
	s.deleteInput = in
	return s.deleteErr
}

func (s *stubAccountUseCase) GetAccount(ctx context.Context, in account.GetAccountInput) (*account.Account, error) {
	return s.getOut, s.getErr
}

func (s *stubAccountUseCase) ListAccounts(ctx context.Context, in account.ListAccountsInput) ([]*account.Account, error) {
	return s.listOut, s.listErr
}

func adminContext() context.Context {
	return interceptor.ContextWithActor(context.Background(), account.Actor{ID: "adm-1", Role: account.RoleAdmin})
}

func TestDirectoryGrpcHandler_CreateAccount(t *testing.T) {
	t.Parallel()

	now := time.Now()
	stub := &stubAccountUseCase{
		createOut: &account.CreateAccountResult{
			Account: &account.Account{
				ID:        "acct-1",
				Name:      "Alice Worker",
				Email:     "alice@example.com",
				Role:      account.RoleEmployee,
				Status:    account.StatusActive,
				CreatedAt: now,
				UpdatedAt: now,
			},
			Notified: true,
		},
	}

	handler := NewDirectoryGrpcHandler(stub)

	resp, err := handler.CreateAccount(adminContext(), &directorypb.CreateAccountRequest{
		Name:   "Alice Worker",
		Email:  "alice@example.com",
		Secret: "secret123",
		Role:   directorypb.AccountRole_ACCOUNT_ROLE_EMPLOYEE,
	})
	if err != nil {
		t.Fatalf("CreateAccount returned error: %v", err)
	}

	if stub.createInput.Actor.ID != "adm-1" || stub.createInput.Role != account.RoleEmployee {
		t.Errorf("unexpected input %+v", stub.createInput)
	}

	if resp.GetAccount().GetId() != "acct-1" || !resp.GetNotified() {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestDirectoryGrpcHandler_CreateAccount_RequiresActor(t *testing.T) {
	t.Parallel()

	handler := NewDirectoryGrpcHandler(&stubAccountUseCase{})

	_, err := handler.CreateAccount(context.Background(), &directorypb.CreateAccountRequest{})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
}

func TestDirectoryGrpcHandler_CreateAccount_ErrorMapping(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		err  error
		code codes.Code
	}{
		"duplicate email":   {err: account.ErrDuplicateEmail, code: codes.AlreadyExists},
		"permission denied": {err: account.ErrPermissionDenied, code: codes.PermissionDenied},
		"invalid secret":    {err: account.ErrInvalidSecret, code: codes.InvalidArgument},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			handler := NewDirectoryGrpcHandler(&stubAccountUseCase{createErr: tc.err})

			_, err := handler.CreateAccount(adminContext(), &directorypb.CreateAccountRequest{
				Role: directorypb.AccountRole_ACCOUNT_ROLE_EMPLOYEE,
			})
			if status.Code(err) != tc.code {
				t.Fatalf("expected %v, got %v", tc.code, status.Code(err))
			}
		})
	}
}

func TestDirectoryGrpcHandler_UpdateAccount_FieldTranslation(t *testing.T) {
	t.Parallel()

	now := time.Now()
	stub := &stubAccountUseCase{
		updateOut: &account.Account{
			ID:        "acct-1",
			Name:      "Renamed",
			Email:     "renamed@example.com",
			Role:      account.RoleManager,
			Status:    account.StatusBlocked,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	handler := NewDirectoryGrpcHandler(stub)

	resp, err := handler.UpdateAccount(adminContext(), &directorypb.UpdateAccountRequest{
		Id:     "acct-1",
		Name:   wrapperspb.String("Renamed"),
		Email:  wrapperspb.String("renamed@example.com"),
		Role:   directorypb.AccountRole_ACCOUNT_ROLE_MANAGER,
		Status: directorypb.AccountStatus_ACCOUNT_STATUS_BLOCKED,
	})
	if err != nil {
		t.Fatalf("UpdateAccount returned error: %v", err)
	}

	if stub.updateInput.Name == nil || *stub.updateInput.Name != "Renamed" {
		t.Fatalf("expected name patch, got %+v", stub.updateInput)
	}
	if stub.updateInput.Role == nil || *stub.updateInput.Role != account.RoleManager {
		t.Fatalf("expected role patch, got %+v", stub.updateInput)
	}
	if stub.updateInput.Status == nil || *stub.updateInput.Status != account.StatusBlocked {
		t.Fatalf("expected status patch, got %+v", stub.updateInput)
	}

	if resp.GetAccount().GetStatus() != directorypb.AccountStatus_ACCOUNT_STATUS_BLOCKED {
		t.Fatalf("unexpected response status %v", resp.GetAccount().GetStatus())
	}
}

func TestDirectoryGrpcHandler_UpdateAccount_OmittedFieldsStayNil(t *testing.T) {
	t.Parallel()

	stub := &stubAccountUseCase{updateOut: &account.Account{ID: "acct-1"}}
	handler := NewDirectoryGrpcHandler(stub)

	_, err := handler.UpdateAccount(adminContext(), &directorypb.UpdateAccountRequest{Id: "acct-1"})
	if err != nil {
		t.Fatalf("UpdateAccount returned error: %v", err)
	}

	if stub.updateInput.Name != nil || stub.updateInput.Email != nil || stub.updateInput.Role != nil || stub.updateInput.Status != nil {
		t.Fatalf("expected all patch fields nil, got %+v", stub.updateInput)
	}
}

func TestDirectoryGrpcHandler_DeleteAccount(t *testing.T) {
	t.Parallel()

	stub := &stubAccountUseCase{}
	handler := NewDirectoryGrpcHandler(stub)

	if _, err := handler.DeleteAccount(adminContext(), &directorypb.DeleteAccountRequest{Id: "acct-2"}); err != nil {
		t.Fatalf("DeleteAccount returned error: %v", err)
	}

	if stub.deleteInput.ID != "acct-2" || stub.deleteInput.Actor.ID != "adm-1" {
		t.Fatalf("unexpected input %+v", stub.deleteInput)
	}
}

func TestDirectoryGrpcHandler_GetAccount_NotFound(t *testing.T) {
	t.Parallel()

	handler := NewDirectoryGrpcHandler(&stubAccountUseCase{getErr: account.ErrAccountNotFound})

	_, err := handler.GetAccount(adminContext(), &directorypb.GetAccountRequest{Id: "missing"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", status.Code(err))
	}
}

func TestDirectoryGrpcHandler_ListAccounts(t *testing.T) {
	t.Parallel()

	now := time.Now()
	handler := NewDirectoryGrpcHandler(&stubAccountUseCase{
		listOut: []*account.Account{
			{ID: "acct-1", Role: account.RoleEmployee, Status: account.StatusActive, CreatedAt: now, UpdatedAt: now},
			{ID: "acct-2", Role: account.RoleManager, Status: account.StatusActive, CreatedAt: now, UpdatedAt: now},
		},
	})

	resp, err := handler.ListAccounts(adminContext(), &directorypb.ListAccountsRequest{})
	if err != nil {
		t.Fatalf("ListAccounts returned error: %v", err)
	}

	if len(resp.GetAccounts()) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(resp.GetAccounts()))
	}

	if resp.GetAccounts()[1].GetRole() != directorypb.AccountRole_ACCOUNT_ROLE_MANAGER {
		t.Fatalf("unexpected role %v", resp.GetAccounts()[1].GetRole())
	}
}
