package account

import "context"

// Repository はアカウント台帳の永続化を行うインターフェースです。
type Repository interface {
	Create(ctx context.Context, account *Account) (*Account, error)
	Update(ctx context.Context, account *Account) (*Account, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Account, error)
	FindByEmail(ctx context.Context, email string) (*Account, error)
	List(ctx context.Context, filter ListFilter) ([]*Account, error)
}

// ListFilter は一覧取得用フィルタです。
type ListFilter struct {
	Status *Status
}
