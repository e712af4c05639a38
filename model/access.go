// model/access.go
package model

import "time"

// Role is a named, assignable bundle of menu grants.
type Role struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:128;not null;uniqueIndex" validate:"required,max=128"`
	Code        string    `json:"code" gorm:"size:128;not null;uniqueIndex" validate:"omitempty,max=128"`
	Description string    `json:"description"`
	SortOrder   int       `json:"sort_order" gorm:"not null;default:0"`
	IsSystem    bool      `json:"is_system" gorm:"not null;default:false"`
	IsDisabled  bool      `json:"is_disabled" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Role) TableName() string {
	return "roles"
}

type RoleMenu struct {
	RoleID int64 `json:"role_id" gorm:"primaryKey;autoIncrement:false"`
	MenuID int64 `json:"menu_id" gorm:"primaryKey;autoIncrement:false;index"`
}

func (RoleMenu) TableName() string {
	return "role_menus"
}

// UserRole binds a role to a user globally.
type UserRole struct {
	UserID int64 `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	RoleID int64 `json:"role_id" gorm:"primaryKey;autoIncrement:false;index"`
}

func (UserRole) TableName() string {
	return "user_roles"
}

// UserOrgRole binds a role to a user within one organization.
type UserOrgRole struct {
	UserID int64 `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	OrgID  int64 `json:"org_id" gorm:"primaryKey;autoIncrement:false"`
	RoleID int64 `json:"role_id" gorm:"primaryKey;autoIncrement:false;index"`
}

func (UserOrgRole) TableName() string {
	return "user_org_roles"
}

type OverrideType string

const (
	OverrideGrant OverrideType = "grant"
	OverrideDeny  OverrideType = "deny"
)

func (t OverrideType) Valid() bool {
	return t == OverrideGrant || t == OverrideDeny
}

// UserMenuOverride is an explicit per-user, per-menu grant or deny.
type UserMenuOverride struct {
	UserID    int64        `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	MenuID    int64        `json:"menu_id" gorm:"primaryKey;autoIncrement:false;index"`
	Type      OverrideType `json:"type" gorm:"size:8;not null"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func (UserMenuOverride) TableName() string {
	return "user_menu_overrides"
}
