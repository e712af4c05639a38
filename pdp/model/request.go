package model

import "github.com/dev-mohitbeniwal/navguard/model"

// SourceKind discriminates GrantSource.
type SourceKind string

const (
	// KindAccountRole is the legacy role string stored on the user record.
	KindAccountRole SourceKind = "account-role"
	// KindRoleBinding is a role bound to the user globally.
	KindRoleBinding SourceKind = "role-binding"
	// KindOrgRoleBinding is a role bound to the user inside one organization.
	KindOrgRoleBinding SourceKind = "org-role-binding"
	// KindOverride is an explicit per-menu grant or deny.
	KindOverride SourceKind = "override"
)

// GrantSource is a tagged union; only the fields belonging to Kind are set.
type GrantSource struct {
	Kind SourceKind

	AccountRole string // KindAccountRole

	Role    *model.Role // KindRoleBinding, KindOrgRoleBinding
	OrgID   int64       // KindOrgRoleBinding
	MenuIDs []int64     // menus granted to Role

	Override *model.UserMenuOverride // KindOverride
}

// AccessRequest carries everything known about one (user, org) pair.
type AccessRequest struct {
	UserID  int64
	OrgID   *int64
	Sources []GrantSource
}

func AccountRoleSource(role string) GrantSource {
	return GrantSource{Kind: KindAccountRole, AccountRole: role}
}

func RoleBindingSource(role *model.Role, menuIDs []int64) GrantSource {
	return GrantSource{Kind: KindRoleBinding, Role: role, MenuIDs: menuIDs}
}

func OrgRoleBindingSource(orgID int64, role *model.Role, menuIDs []int64) GrantSource {
	return GrantSource{Kind: KindOrgRoleBinding, OrgID: orgID, Role: role, MenuIDs: menuIDs}
}

func OverrideSource(o *model.UserMenuOverride) GrantSource {
	return GrantSource{Kind: KindOverride, Override: o}
}
