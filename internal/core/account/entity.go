package account

import "time"

// Role はアカウントの役割を表します。
type Role string

const (
	RoleEmployee   Role = "Employee"
	RoleManager    Role = "Manager"
	RoleAdmin      Role = "Admin"
	RoleSuperAdmin Role = "Super Admin"
)

// Status はアカウントの状態を表します。
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
	StatusBlocked  Status = "Blocked"
)

// Account は台帳レコード(ディレクトリレコード)です。ID は認証基盤の識別子と一致します。
type Account struct {
	ID        string
	Name      string
	Email     string
	Role      Role
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Actor は操作を行う認証済み主体です。
type Actor struct {
	ID   string
	Role Role
}

// IsReviewer はタイムシートのレビュー権限を持つ役割かどうかを返します。
func (a Actor) IsReviewer() bool {
	switch a.Role {
	case RoleManager, RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// IsAdmin は Admin 以上の役割かどうかを返します。
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin || a.Role == RoleSuperAdmin
}

func isValidRole(role Role) bool {
	switch role {
	case RoleEmployee, RoleManager, RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

func isValidStatus(status Status) bool {
	switch status {
	case StatusActive, StatusInactive, StatusBlocked:
		return true
	default:
		return false
	}
}
