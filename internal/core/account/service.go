package account

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/ogurasousui/irs-timesheet/internal/core/identity"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

const minSecretLength = 6

// CredentialsNotice は新規アカウントの資格情報通知の内容です。
type CredentialsNotice struct {
	Name     string
	Email    string
	Password string
	Role     Role
}

// CredentialsNotifier は資格情報通知を送信キューへ登録します。
// 通知の失敗はアカウント作成を取り消しません。
type CredentialsNotifier interface {
	NotifyCredentials(ctx context.Context, notice CredentialsNotice) error
}

// Service はアカウント台帳に関するユースケースをまとめます。
type Service struct {
	repo     Repository
	idp      identity.Provider
	notifier CredentialsNotifier
	clock    Clock
	tx       TransactionManager
}

// UseCase はアカウントユースケースの公開インターフェースです。
type UseCase interface {
	CreateAccount(ctx context.Context, in CreateAccountInput) (*CreateAccountResult, error)
	UpdateAccount(ctx context.Context, in UpdateAccountInput) (*Account, error)
	DeleteAccount(ctx context.Context, in DeleteAccountInput) error
	GetAccount(ctx context.Context, in GetAccountInput) (*Account, error)
	ListAccounts(ctx context.Context, in ListAccountsInput) ([]*Account, error)
}

// NewService は Service を生成します。notifier は nil を許容します。
func NewService(repo Repository, idp identity.Provider, notifier CredentialsNotifier, clock Clock, tx TransactionManager) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, idp: idp, notifier: notifier, clock: clock, tx: tx}
}

// CreateAccountInput はアカウント作成時の入力です。
type CreateAccountInput struct {
	Actor  Actor
	Name   string
	Email  string
	Secret string
	Role   Role
}

// CreateAccountResult はアカウント作成の結果です。
// Notified は資格情報通知がキューへ登録できたかどうかを示します。
type CreateAccountResult struct {
	Account  *Account
	Notified bool
}

// UpdateAccountInput はアカウント更新時の入力です。nil のフィールドは変更されません。
type UpdateAccountInput struct {
	Actor  Actor
	ID     string
	Name   *string
	Email  *string
	Role   *Role
	Status *Status
}

// DeleteAccountInput はアカウント削除時の入力です。
type DeleteAccountInput struct {
	Actor Actor
	ID    string
}

// GetAccountInput はアカウント取得時の入力です。
type GetAccountInput struct {
	Actor Actor
	ID    string
}

// ListAccountsInput は一覧取得時の入力です。
type ListAccountsInput struct {
	Actor  Actor
	Status *Status
}

// CreateAccount は新しいアカウントを作成します。
// 台帳の重複確認 → 資格情報発行 → 台帳書き込み → 通知キュー登録の順で実行し、
// 台帳書き込みに失敗した場合は発行済みの資格情報を破棄して孤児を防ぎます。
func (s *Service) CreateAccount(ctx context.Context, in CreateAccountInput) (*CreateAccountResult, error) {
	if !isValidRole(in.Role) {
		return nil, ErrInvalidRole
	}
	if !canAssignRole(in.Actor.Role, in.Role) {
		return nil, ErrPermissionDenied
	}

	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, ErrInvalidEmail
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrInvalidName
	}

	if len(in.Secret) < minSecretLength {
		return nil, ErrInvalidSecret
	}

	// 重複確認は資格情報発行より前に行います。順序を崩すと台帳レコードの無い
	// 資格情報が残るためです。
	if err := s.ensureEmailNotExists(ctx, email); err != nil {
		return nil, err
	}

	identityID, err := s.idp.CreateIdentity(ctx, email, in.Secret)
	if err != nil {
		return nil, translateIdentityError(err)
	}

	now := s.clock.Now()
	acc := &Account{
		ID:        identityID,
		Name:      name,
		Email:     email,
		Role:      in.Role,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, acc)
	if err != nil {
		// 補償: 台帳書き込みに失敗したら発行済みの資格情報を破棄します。
		// 破棄自体の失敗はベストエフォートで握りつぶします。
		_ = s.idp.DestroyIdentity(ctx, identityID)
		return nil, err
	}

	notified := false
	if s.notifier != nil {
		notice := CredentialsNotice{Name: name, Email: email, Password: in.Secret, Role: in.Role}
		if err := s.notifier.NotifyCredentials(ctx, notice); err == nil {
			notified = true
		}
	}

	return &CreateAccountResult{Account: created, Notified: notified}, nil
}

// UpdateAccount はアカウントを部分更新します。対象の役割に応じた権限規則は
// ブロック/削除と同一です。
func (s *Service) UpdateAccount(ctx context.Context, in UpdateAccountInput) (*Account, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var updated *Account
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}

		if !canManageTarget(in.Actor, existing) {
			return ErrPermissionDenied
		}

		if in.Name != nil {
			name := strings.TrimSpace(*in.Name)
			if name == "" {
				return ErrInvalidName
			}
			existing.Name = name
		}

		if in.Email != nil {
			email, err := normalizeEmail(*in.Email)
			if err != nil {
				return ErrInvalidEmail
			}
			if !strings.EqualFold(email, existing.Email) {
				if err := s.ensureEmailNotExists(txCtx, email); err != nil {
					return err
				}
			}
			existing.Email = email
		}

		if in.Role != nil {
			if !isValidRole(*in.Role) {
				return ErrInvalidRole
			}
			if !canAssignRole(in.Actor.Role, *in.Role) {
				return ErrPermissionDenied
			}
			existing.Role = *in.Role
		}

		if in.Status != nil {
			if !isValidStatus(*in.Status) {
				return ErrInvalidStatus
			}
			existing.Status = *in.Status
		}

		existing.UpdatedAt = s.clock.Now()

		result, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}

		updated = result
		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteAccount は台帳レコードのみを削除します。資格情報は残りますが、
// 台帳レコードが無いためログインは ProfileIncomplete で拒否されます。
func (s *Service) DeleteAccount(ctx context.Context, in DeleteAccountInput) error {
	if strings.TrimSpace(in.ID) == "" {
		return fmt.Errorf("id: %w", ErrInvalidID)
	}

	return s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}

		if !canManageTarget(in.Actor, existing) {
			return ErrPermissionDenied
		}

		return s.repo.Delete(txCtx, in.ID)
	})
}

// GetAccount はアカウントを取得します。自分自身か Admin 以上のみ参照できます。
func (s *Service) GetAccount(ctx context.Context, in GetAccountInput) (*Account, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	if in.Actor.ID != in.ID && !in.Actor.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	found, err := s.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if found.Role == RoleSuperAdmin && in.Actor.Role != RoleSuperAdmin && in.Actor.ID != found.ID {
		return nil, ErrPermissionDenied
	}

	return found, nil
}

// ListAccounts はアカウントの一覧を取得します。Super Admin のレコードは
// Super Admin 以外の一覧から隠されます。
func (s *Service) ListAccounts(ctx context.Context, in ListAccountsInput) ([]*Account, error) {
	if !in.Actor.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	if in.Status != nil && !isValidStatus(*in.Status) {
		return nil, ErrInvalidStatus
	}

	accounts, err := s.repo.List(ctx, ListFilter{Status: in.Status})
	if err != nil {
		return nil, err
	}

	if in.Actor.Role == RoleSuperAdmin {
		return accounts, nil
	}

	visible := make([]*Account, 0, len(accounts))
	for _, acc := range accounts {
		if acc.Role == RoleSuperAdmin {
			continue
		}
		visible = append(visible, acc)
	}
	return visible, nil
}

// canAssignRole は actorRole が role のアカウントを作成・付与できるかを返します。
func canAssignRole(actorRole, role Role) bool {
	switch actorRole {
	case RoleSuperAdmin:
		return true
	case RoleAdmin:
		return role == RoleEmployee || role == RoleManager
	default:
		return false
	}
}

// canManageTarget はブロック・削除・更新の対象にできるかを返します。
// 自分自身は対象にできません。
func canManageTarget(actor Actor, target *Account) bool {
	if target == nil || actor.ID == target.ID {
		return false
	}
	switch actor.Role {
	case RoleSuperAdmin:
		return true
	case RoleAdmin:
		return target.Role != RoleAdmin && target.Role != RoleSuperAdmin
	default:
		return false
	}
}

func (s *Service) ensureEmailNotExists(ctx context.Context, email string) error {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrAccountNotFound) {
		return err
	}
	if existing != nil {
		return ErrDuplicateEmail
	}
	return nil
}

func normalizeEmail(raw string) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return "", ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		return "", ErrInvalidEmail
	}
	return trimmed, nil
}

func translateIdentityError(err error) error {
	switch {
	case errors.Is(err, identity.ErrEmailInUse):
		return ErrDuplicateEmail
	case errors.Is(err, identity.ErrWeakSecret):
		return ErrInvalidSecret
	case errors.Is(err, identity.ErrInvalidEmail):
		return ErrInvalidEmail
	default:
		return err
	}
}
