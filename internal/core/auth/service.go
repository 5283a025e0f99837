package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ogurasousui/irs-timesheet/internal/core/account"
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

// Session はログイン成功時に返却されるセッションです。
type Session struct {
	Account   *account.Account
	Token     string
	ExpiresAt time.Time
}

// Service は認証と役割解決をまとめます。
type Service struct {
	idp      identity.Provider
	accounts account.Repository
	tokens   *TokenIssuer
	clock    Clock
}

// UseCase は認証ユースケースの公開インターフェースです。
type UseCase interface {
	Login(ctx context.Context, email, secret string) (*Session, error)
}

// TokenVerifier はセッショントークンから actor を復元します。
type TokenVerifier interface {
	Verify(token string) (account.Actor, error)
}

// NewService は Service を生成します。
func NewService(idp identity.Provider, accounts account.Repository, tokens *TokenIssuer, clock Clock) *Service {
	if clock == nil {
		clock = realClock{}
	}
	return &Service{idp: idp, accounts: accounts, tokens: tokens, clock: clock}
}

// Login は資格情報を検証し、台帳レコードを解決してセッションを発行します。
// 資格情報が正しくても、台帳レコードが Blocked なら拒否し、
// 台帳レコードが欠落していれば ProfileIncomplete で拒否します。
func (s *Service) Login(ctx context.Context, email, secret string) (*Session, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" || secret == "" {
		return nil, ErrInvalidCredentials
	}

	identityID, err := s.idp.VerifyIdentity(ctx, normalized, secret)
	if err != nil {
		return nil, translateIdentityError(err)
	}

	acc, err := s.accounts.FindByID(ctx, identityID)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			// 資格情報はあるが台帳レコードが無い。削除済みアカウントがここに落ちます。
			return nil, ErrProfileIncomplete
		}
		return nil, err
	}

	if acc.Status == account.StatusBlocked {
		return nil, ErrAccountBlocked
	}

	if acc.Role == "" {
		return nil, ErrProfileIncomplete
	}

	actor := account.Actor{ID: acc.ID, Role: acc.Role}
	token, expiresAt, err := s.tokens.Issue(actor, s.clock.Now())
	if err != nil {
		return nil, err
	}

	return &Session{Account: acc, Token: token, ExpiresAt: expiresAt}, nil
}

func translateIdentityError(err error) error {
	switch {
	case errors.Is(err, identity.ErrIdentityNotFound):
		return ErrAccountNotFound
	case errors.Is(err, identity.ErrWrongSecret):
		return ErrInvalidCredentials
	case errors.Is(err, identity.ErrIdentityDisabled):
		return ErrAccountBlocked
	default:
		return err
	}
}
