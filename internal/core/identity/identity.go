// Package identity は認証基盤コラボレーターの契約を定義します。
// 台帳レコード(Account)とは別に、資格情報そのものを管理する外部境界です。
package identity

import (
	"context"
	"errors"
)

var (
	// ErrEmailInUse は同じメールアドレスの資格情報が既に存在する場合に返却されます。
	ErrEmailInUse = errors.New("identity: email already in use")
	// ErrWeakSecret はシークレットが最低長を満たさない場合に返却されます。
	ErrWeakSecret = errors.New("identity: secret too weak")
	// ErrInvalidEmail はメールアドレスが不正な場合に返却されます。
	ErrInvalidEmail = errors.New("identity: invalid email")
	// ErrIdentityNotFound は資格情報が存在しない場合に返却されます。
	ErrIdentityNotFound = errors.New("identity: not found")
	// ErrWrongSecret はシークレットが一致しない場合に返却されます。
	ErrWrongSecret = errors.New("identity: wrong secret")
	// ErrIdentityDisabled は資格情報が無効化されている場合に返却されます。
	ErrIdentityDisabled = errors.New("identity: disabled")
)

// Provider は資格情報の発行・検証・破棄を行うインターフェースです。
type Provider interface {
	// CreateIdentity は新しい資格情報を発行し、その識別子を返します。
	CreateIdentity(ctx context.Context, email, secret string) (string, error)
	// VerifyIdentity は資格情報を検証し、一致すれば識別子を返します。
	VerifyIdentity(ctx context.Context, email, secret string) (string, error)
	// DestroyIdentity は資格情報を破棄します。台帳書き込み失敗時の補償で使用します。
	DestroyIdentity(ctx context.Context, id string) error
}
