package account

import "errors"

var (
	// ErrAccountNotFound はアカウントが存在しない場合に返却されます。
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateEmail はメールアドレス重複時に返却されます(大文字小文字を区別しません)。
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrPermissionDenied は役割ベースの権限規則に違反した場合に返却されます。
	ErrPermissionDenied = errors.New("permission denied")
	// ErrInvalidEmail はメールアドレスが不正な場合に返却されます。
	ErrInvalidEmail = errors.New("invalid email")
	// ErrInvalidName は名前が不正な場合に返却されます。
	ErrInvalidName = errors.New("invalid name")
	// ErrInvalidSecret はパスワードが短すぎる場合に返却されます。
	ErrInvalidSecret = errors.New("secret must be at least 6 characters")
	// ErrInvalidRole は役割が不正な場合に返却されます。
	ErrInvalidRole = errors.New("invalid role")
	// ErrInvalidStatus はステータスが不正な場合に返却されます。
	ErrInvalidStatus = errors.New("invalid status")
	// ErrInvalidID はIDが不正な場合に返却されます。
	ErrInvalidID = errors.New("invalid id")
)
