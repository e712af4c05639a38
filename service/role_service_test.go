package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/navguard/audit"
	navguard_errors "github.com/dev-mohitbeniwal/navguard/errors"
	"github.com/dev-mohitbeniwal/navguard/model"
)

func TestRoleService_CodeGeneration(t *testing.T) {
	f := newFixture(t, PermissionOptions{})

	tests := []struct {
		name     string
		role     model.Role
		wantCode string
	}{
		{"derived from name", model.Role{Name: "Content Editor"}, "content-editor"},
		{"collision gets suffix", model.Role{Name: "Content  Editor!"}, "content-editor-1"},
		{"second collision", model.Role{Name: "content editor"}, "content-editor-2"},
		{"explicit code kept", model.Role{Name: "Root", Code: "super_admin"}, "super_admin"},
		{"explicit code collides", model.Role{Name: "Root 2", Code: "super_admin"}, "super_admin-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := f.svc.Role.CreateRole(f.ctx, tt.role)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, role.Code)
			assert.NotZero(t, role.ID)
		})
	}

	t.Run("name without slug characters", func(t *testing.T) {
		role, err := f.svc.Role.CreateRole(f.ctx, model.Role{Name: "管理员"})
		require.NoError(t, err)
		assert.NotEmpty(t, role.Code)
	})

	t.Run("duplicate name is a conflict", func(t *testing.T) {
		_, err := f.svc.Role.CreateRole(f.ctx, model.Role{Name: "Content Editor"})
		assert.ErrorIs(t, err, navguard_errors.ErrConflict)
	})
}

func TestRoleService_DeleteGuards(t *testing.T) {
	f := newFixture(t, PermissionOptions{})
	org := f.org(t, "Acme", nil)
	held := f.role(t, "Held", "")
	orgHeld := f.role(t, "Org Held", "")
	free := f.role(t, "Free", "")
	system, err := f.svc.Role.CreateRole(f.ctx, model.Role{Name: "System", IsSystem: true})
	require.NoError(t, err)

	u := f.store.PutUser(&model.User{Username: "u"})
	require.NoError(t, f.svc.Permission.ReplaceUserRoles(f.ctx, u, []int64{held}))
	require.NoError(t, f.svc.Permission.ReplaceUserRolesInOrg(f.ctx, u, org, []int64{orgHeld}))

	assert.ErrorIs(t, f.svc.Role.DeleteRole(f.ctx, held), navguard_errors.ErrRoleInUse)
	assert.ErrorIs(t, f.svc.Role.DeleteRole(f.ctx, orgHeld), navguard_errors.ErrRoleInUse)
	assert.ErrorIs(t, f.svc.Role.DeleteRole(f.ctx, system.ID), navguard_errors.ErrSystemProtected)
	assert.ErrorIs(t, f.svc.Role.DeleteRole(f.ctx, 999), navguard_errors.ErrRoleNotFound)
	require.NoError(t, f.svc.Role.DeleteRole(f.ctx, free))

	_, err = f.svc.Role.GetRole(f.ctx, free)
	assert.ErrorIs(t, err, navguard_errors.ErrNotFound)
	assert.Contains(t, f.audit.Actions(), audit.ActionRoleDelete)
}

func TestRoleService_SystemRoleKeepsIdentity(t *testing.T) {
	f := newFixture(t, PermissionOptions{})
	system, err := f.svc.Role.CreateRole(f.ctx, model.Role{Name: "Administrator", Code: "admin", IsSystem: true})
	require.NoError(t, err)

	renamed := *system
	renamed.Name = "Boss"
	_, err = f.svc.Role.UpdateRole(f.ctx, renamed)
	assert.ErrorIs(t, err, navguard_errors.ErrSystemProtected)

	described := *system
	described.Code = ""
	described.Description = "full access"
	updated, err := f.svc.Role.UpdateRole(f.ctx, described)
	require.NoError(t, err)
	assert.Equal(t, "admin", updated.Code)
	assert.Equal(t, "full access", updated.Description)
}

func TestRoleService_ReplaceRoleMenus(t *testing.T) {
	f := newFixture(t, PermissionOptions{})
	m1 := f.menu(t, "m1", nil, 1)
	m2 := f.menu(t, "m2", nil, 2)
	r := f.role(t, "Reader", "", m1)

	err := f.svc.Role.ReplaceRoleMenus(f.ctx, r, []int64{m2, 999})
	assert.ErrorIs(t, err, navguard_errors.ErrMenuNotFound)

	grants, err := f.svc.Role.GetRoleMenus(f.ctx, r)
	require.NoError(t, err)
	assert.Equal(t, []int64{m1}, grants)

	require.NoError(t, f.svc.Role.ReplaceRoleMenus(f.ctx, r, []int64{m2}))
	grants, err = f.svc.Role.GetRoleMenus(f.ctx, r)
	require.NoError(t, err)
	assert.Equal(t, []int64{m2}, grants)

	_, err = f.svc.Role.GetRoleMenus(f.ctx, 999)
	assert.ErrorIs(t, err, navguard_errors.ErrRoleNotFound)
}

func TestRoleService_EnsureSystemRoles(t *testing.T) {
	f := newFixture(t, PermissionOptions{})
	existing := f.role(t, "Administrators", "admin")

	roles, err := f.svc.Role.EnsureSystemRoles(f.ctx, []string{"super_admin", "admin"})
	require.NoError(t, err)
	require.Len(t, roles, 2)
	assert.Equal(t, "super_admin", roles[0].Code)
	assert.True(t, roles[0].IsSystem)
	assert.Equal(t, existing, roles[1].ID)
	assert.False(t, roles[1].IsSystem)

	again, err := f.svc.Role.EnsureSystemRoles(f.ctx, []string{"super_admin"})
	require.NoError(t, err)
	assert.Equal(t, roles[0].ID, again[0].ID)

	all, err := f.svc.Role.ListRoles(f.ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
