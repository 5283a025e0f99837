package timesheet

import "context"

// Repository は週次タイムシートの永続化を行うインターフェースです。
type Repository interface {
	Create(ctx context.Context, week *Week) (*Week, error)
	Update(ctx context.Context, week *Week) (*Week, error)
	FindByID(ctx context.Context, id string) (*Week, error)
	// List は weekStart の降順で返すことが望ましいですが、順序は保証されません。
	// 呼び出し側(サービス)がフォールバックとして並べ替えます。
	List(ctx context.Context, filter ListFilter) ([]*Week, error)
}

// ListFilter は一覧取得用フィルタです。ゼロ値は全件を意味します。
type ListFilter struct {
	EmployeeID string
	Status     *Status
}
