package auth

import "errors"

var (
	// ErrInvalidCredentials はメールアドレスまたはシークレットが一致しない場合に返却されます。
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	// ErrAccountNotFound は資格情報が存在しない場合に返却されます。
	ErrAccountNotFound = errors.New("auth: account not found")
	// ErrAccountBlocked は台帳レコードがブロック済みの場合に返却されます。
	ErrAccountBlocked = errors.New("auth: account blocked")
	// ErrProfileIncomplete は資格情報はあるが台帳レコードが欠落・不完全な場合に返却されます。
	// 台帳レコードの削除はこのエラーによってログインを無効化します。
	ErrProfileIncomplete = errors.New("auth: profile incomplete")
	// ErrInvalidToken はセッショントークンが不正な場合に返却されます。
	ErrInvalidToken = errors.New("auth: invalid token")
	// ErrTokenExpired はセッショントークンが期限切れの場合に返却されます。
	ErrTokenExpired = errors.New("auth: token expired")
)
