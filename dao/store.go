// dao/store.go
package dao

import (
	"context"
	"database/sql"

	"github.com/dev-mohitbeniwal/navguard/model"
)

// Code-bearing tables accepted by IsCodeTaken.
const (
	TableRoles         = "roles"
	TableOrganizations = "organizations"
)

// ReadSnapshot is the transaction option used for consistent read-only resolution.
var ReadSnapshot = &sql.TxOptions{ReadOnly: true, Isolation: sql.LevelRepeatableRead}

// Store is the Entity Store the permission core depends on.
//
// Lookups of a missing id return the entity's NotFound sentinel from the errors package;
// uniqueness violations return its Conflict sentinel; anything else is wrapped in
// ErrDatabaseOperation.
type Store interface {
	// Transaction runs fn against a transactional view of the store. Any error returned by fn
	// rolls back every write fn issued.
	Transaction(ctx context.Context, fn func(tx Store) error, opts ...*sql.TxOptions) error

	MenuStore
	RoleStore
	UserStore
	OrganizationStore

	IsCodeTaken(ctx context.Context, table, code string) (bool, error)
}

type MenuStore interface {
	ListMenus(ctx context.Context) ([]*model.Menu, error)
	GetMenu(ctx context.Context, id int64) (*model.Menu, error)
	InsertMenu(ctx context.Context, menu *model.Menu) (int64, error)
	UpdateMenu(ctx context.Context, menu *model.Menu) error
	// DeleteMenu removes the menu together with its role grants and user overrides.
	DeleteMenu(ctx context.Context, id int64) error
	CountMenuChildren(ctx context.Context, id int64) (int64, error)
}

type RoleStore interface {
	ListRoles(ctx context.Context) ([]*model.Role, error)
	GetRole(ctx context.Context, id int64) (*model.Role, error)
	InsertRole(ctx context.Context, role *model.Role) (int64, error)
	UpdateRole(ctx context.Context, role *model.Role) error
	DeleteRole(ctx context.Context, id int64) error

	ListRoleMenuGrants(ctx context.Context, roleID int64) ([]int64, error)
	ReplaceRoleMenuGrants(ctx context.Context, roleID int64, menuIDs []int64) error
	// ListRoleHolders returns every user holding the role, globally or in any organization.
	ListRoleHolders(ctx context.Context, roleID int64) ([]int64, error)
}

type UserStore interface {
	GetUser(ctx context.Context, id int64) (*model.User, error)
	// ListUserRoles returns the global bindings when orgID is nil, else the bindings inside orgID.
	ListUserRoles(ctx context.Context, userID int64, orgID *int64) ([]*model.Role, error)
	ReplaceUserRoles(ctx context.Context, userID int64, roleIDs []int64) error
	ReplaceUserRolesInOrg(ctx context.Context, userID, orgID int64, roleIDs []int64) error

	ListUserMenuOverrides(ctx context.Context, userID int64) ([]*model.UserMenuOverride, error)
	UpsertUserMenuOverride(ctx context.Context, userID, menuID int64, overrideType model.OverrideType) error
	DeleteUserMenuOverride(ctx context.Context, userID, menuID int64) error
}

type OrganizationStore interface {
	ListOrganizations(ctx context.Context) ([]*model.Organization, error)
	GetOrganization(ctx context.Context, id int64) (*model.Organization, error)
	InsertOrganization(ctx context.Context, org *model.Organization) (int64, error)
	UpdateOrganization(ctx context.Context, org *model.Organization) error
}
