package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	navguard_errors "github.com/dev-mohitbeniwal/navguard/errors"
	"github.com/dev-mohitbeniwal/navguard/model"
)

func exampleSeed() []*model.SeedMenu {
	return []*model.SeedMenu{
		{Name: "dashboard", Title: "Dashboard", SortOrder: ptr(1)},
		{Name: "settings", Title: "Settings", SortOrder: ptr(2), Children: []*model.SeedMenu{
			{Name: "settings.users", Title: "Users", SortOrder: ptr(1)},
		}},
	}
}

func TestSyncMenus_BuildsDeclaredTree(t *testing.T) {
	f := newFixture(t, PermissionOptions{})

	result, err := f.svc.Menu.SyncMenus(f.ctx, exampleSeed(), SyncOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, result.SyncedCount)
	assert.Equal(t, 3, result.Created)

	forest, err := f.svc.Menu.GetMenuTree(f.ctx)
	require.NoError(t, err)
	require.Len(t, forest, 2)
	assert.Equal(t, "dashboard", forest[0].Item.Name)
	assert.Equal(t, "settings", forest[1].Item.Name)
	require.Len(t, forest[1].Children, 1)
	assert.Equal(t, "settings.users", forest[1].Children[0].Item.Name)
	assert.Equal(t, 2, forest[1].Children[0].Item.Level)
	assert.Equal(t, forest[1].Item.ID, *forest[1].Children[0].Item.ParentID)
}

func TestSyncMenus_Idempotent(t *testing.T) {
	f := newFixture(t, PermissionOptions{})

	_, err := f.svc.Menu.SyncMenus(f.ctx, exampleSeed(), SyncOptions{})
	require.NoError(t, err)
	first, err := f.svc.Menu.ListMenus(f.ctx)
	require.NoError(t, err)

	result, err := f.svc.Menu.SyncMenus(f.ctx, exampleSeed(), SyncOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, result.SyncedCount)
	assert.Zero(t, result.Created)
	assert.Zero(t, result.Updated)

	second, err := f.svc.Menu.ListMenus(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSyncMenus_UpdatesInPlaceAndMatchesByPath(t *testing.T) {
	f := newFixture(t, PermissionOptions{})

	seed := []*model.SeedMenu{{Name: "reports", Title: "Reports", Path: "/reports", MenuType: "bogus"}}
	_, err := f.svc.Menu.SyncMenus(f.ctx, seed, SyncOptions{})
	require.NoError(t, err)
	before, err := f.svc.Menu.ListMenus(f.ctx)
	require.NoError(t, err)
	require.Len(t, before, 1)
	assert.Equal(t, model.MenuTypeMenu, before[0].MenuType)

	renamed := []*model.SeedMenu{{
		Name:     "analytics",
		Title:    "Analytics",
		Path:     "/reports",
		MenuType: "page",
		Meta:     map[string]any{"keepAlive": true},
	}}
	result, err := f.svc.Menu.SyncMenus(f.ctx, renamed, SyncOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Updated)
	assert.Zero(t, result.Created)

	after, err := f.svc.Menu.ListMenus(f.ctx)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, before[0].ID, after[0].ID)
	assert.Equal(t, "analytics", after[0].Name)
	assert.Equal(t, model.MenuTypePage, after[0].MenuType)
	assert.JSONEq(t, `{"keepAlive":true}`, string(after[0].Meta))
}

func TestSyncMenus_ReparentRelevelsUnseededChildren(t *testing.T) {
	f := newFixture(t, PermissionOptions{})

	_, err := f.svc.Menu.SyncMenus(f.ctx, []*model.SeedMenu{
		{Name: "a", Title: "A"},
		{Name: "b", Title: "B"},
	}, SyncOptions{})
	require.NoError(t, err)
	levels := menuLevels(t, f)
	extra, err := f.svc.Menu.CreateMenu(f.ctx, model.Menu{Name: "b.extra", Title: "Extra", ParentID: ptr(levels["b"].ID)})
	require.NoError(t, err)
	require.Equal(t, 2, extra.Level)

	result, err := f.svc.Menu.SyncMenus(f.ctx, []*model.SeedMenu{
		{Name: "a", Title: "A", Children: []*model.SeedMenu{{Name: "b", Title: "B"}}},
	}, SyncOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Updated)

	levels = menuLevels(t, f)
	assert.Equal(t, 1, levels["a"].Level)
	assert.Equal(t, 2, levels["b"].Level)
	assert.Equal(t, 3, levels["b.extra"].Level)
	assert.Equal(t, levels["b"].ID, *levels["b.extra"].ParentID)

	again, err := f.svc.Menu.SyncMenus(f.ctx, []*model.SeedMenu{
		{Name: "a", Title: "A", Children: []*model.SeedMenu{{Name: "b", Title: "B"}}},
	}, SyncOptions{})
	require.NoError(t, err)
	assert.Zero(t, again.Updated)
}

func menuLevels(t *testing.T, f *fixture) map[string]*model.Menu {
	t.Helper()
	menus, err := f.svc.Menu.ListMenus(f.ctx)
	require.NoError(t, err)
	out := make(map[string]*model.Menu, len(menus))
	for _, m := range menus {
		out[m.Name] = m
	}
	return out
}

func TestSyncMenus_DefaultSortOrderFollowsWalk(t *testing.T) {
	f := newFixture(t, PermissionOptions{})

	seed := []*model.SeedMenu{
		{Name: "b", Title: "B"},
		{Name: "a", Title: "A", SortOrder: ptr(10), Children: []*model.SeedMenu{
			{Name: "a.1", Title: "A1"},
		}},
	}
	_, err := f.svc.Menu.SyncMenus(f.ctx, seed, SyncOptions{})
	require.NoError(t, err)

	menus, err := f.svc.Menu.ListMenus(f.ctx)
	require.NoError(t, err)
	got := map[string]int{}
	for _, m := range menus {
		got[m.Name] = m.SortOrder
	}
	// "a" is declared, so it is walked first; "b" takes counter value 2 and "a.1" value 3.
	assert.Equal(t, map[string]int{"a": 10, "b": 2, "a.1": 3}, got)
}

func TestSyncMenus_RemoveOrphans(t *testing.T) {
	f := newFixture(t, PermissionOptions{})

	_, err := f.svc.Menu.SyncMenus(f.ctx, []*model.SeedMenu{
		{Name: "keep", Title: "Keep"},
		{Name: "old", Title: "Old", Children: []*model.SeedMenu{{Name: "old.child", Title: "Child"}}},
		{Name: "locked", Title: "Locked", System: true},
	}, SyncOptions{})
	require.NoError(t, err)

	result, err := f.svc.Menu.SyncMenus(f.ctx, []*model.SeedMenu{{Name: "keep", Title: "Keep"}}, SyncOptions{})
	require.NoError(t, err)
	assert.Zero(t, result.Removed)
	menus, _ := f.svc.Menu.ListMenus(f.ctx)
	assert.Len(t, menus, 4)

	result, err = f.svc.Menu.SyncMenus(f.ctx, []*model.SeedMenu{{Name: "keep", Title: "Keep"}}, SyncOptions{RemoveOrphans: true})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Removed)

	menus, err = f.svc.Menu.ListMenus(f.ctx)
	require.NoError(t, err)
	var names []string
	for _, m := range menus {
		names = append(names, m.Name)
	}
	assert.ElementsMatch(t, []string{"keep", "locked"}, names)
}

func TestSyncMenus_InvalidSeedWritesNothing(t *testing.T) {
	f := newFixture(t, PermissionOptions{})

	_, err := f.svc.Menu.SyncMenus(f.ctx, []*model.SeedMenu{
		{Name: "dup", Title: "One"},
		{Name: "x", Title: "X", Children: []*model.SeedMenu{{Name: "dup", Title: "Two"}}},
	}, SyncOptions{})
	require.ErrorIs(t, err, navguard_errors.ErrInvalidSeed)

	menus, err := f.svc.Menu.ListMenus(f.ctx)
	require.NoError(t, err)
	assert.Empty(t, menus)
}

func TestMenuService_CreateDerivesLevel(t *testing.T) {
	f := newFixture(t, PermissionOptions{})
	root := f.menu(t, "root", nil, 1)

	child, err := f.svc.Menu.CreateMenu(f.ctx, model.Menu{Name: "child", Title: "Child", ParentID: &root, MenuType: "nonsense"})
	require.NoError(t, err)
	assert.Equal(t, 2, child.Level)
	assert.Equal(t, model.MenuTypeMenu, child.MenuType)

	_, err = f.svc.Menu.CreateMenu(f.ctx, model.Menu{Name: "lost", Title: "Lost", ParentID: ptr(int64(999))})
	assert.ErrorIs(t, err, navguard_errors.ErrInvalidParent)

	_, err = f.svc.Menu.CreateMenu(f.ctx, model.Menu{Title: "No name"})
	assert.ErrorIs(t, err, navguard_errors.ErrInvalidMenuData)
}

func TestMenuService_DeleteGuards(t *testing.T) {
	f := newFixture(t, PermissionOptions{})
	_, err := f.svc.Menu.SyncMenus(f.ctx, []*model.SeedMenu{{Name: "core", Title: "Core", System: true}}, SyncOptions{})
	require.NoError(t, err)
	menus, _ := f.svc.Menu.ListMenus(f.ctx)
	systemID := menus[0].ID

	parent := f.menu(t, "parent", nil, 1)
	child := f.menu(t, "child", &parent, 1)

	assert.ErrorIs(t, f.svc.Menu.DeleteMenu(f.ctx, systemID), navguard_errors.ErrSystemProtected)
	assert.ErrorIs(t, f.svc.Menu.DeleteMenu(f.ctx, parent), navguard_errors.ErrMenuHasChildren)
	assert.ErrorIs(t, f.svc.Menu.DeleteMenu(f.ctx, 4242), navguard_errors.ErrNotFound)

	require.NoError(t, f.svc.Menu.DeleteMenu(f.ctx, child))
	require.NoError(t, f.svc.Menu.DeleteMenu(f.ctx, parent))
}

func TestMenuService_UpdateReparentsSubtree(t *testing.T) {
	f := newFixture(t, PermissionOptions{})
	a := f.menu(t, "a", nil, 1)
	b := f.menu(t, "b", nil, 2)
	b1 := f.menu(t, "b.1", &b, 1)

	moved, err := f.svc.Menu.UpdateMenu(f.ctx, model.Menu{ID: b, Name: "b", Title: "B", ParentID: &a, SortOrder: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, moved.Level)

	grandchild, err := f.svc.Menu.GetMenu(f.ctx, b1)
	require.NoError(t, err)
	assert.Equal(t, 3, grandchild.Level)

	_, err = f.svc.Menu.UpdateMenu(f.ctx, model.Menu{ID: a, Name: "a", Title: "A", ParentID: &b1})
	assert.ErrorIs(t, err, navguard_errors.ErrCycleDetected)
}

func TestMenuService_UpdateSystemMenuCannotBeRenamed(t *testing.T) {
	f := newFixture(t, PermissionOptions{})
	_, err := f.svc.Menu.SyncMenus(f.ctx, []*model.SeedMenu{{Name: "core", Title: "Core", System: true}}, SyncOptions{})
	require.NoError(t, err)
	menus, _ := f.svc.Menu.ListMenus(f.ctx)

	_, err = f.svc.Menu.UpdateMenu(f.ctx, model.Menu{ID: menus[0].ID, Name: "renamed", Title: "Core", IsSystem: true})
	assert.ErrorIs(t, err, navguard_errors.ErrSystemProtected)

	updated, err := f.svc.Menu.UpdateMenu(f.ctx, model.Menu{ID: menus[0].ID, Name: "core", Title: "Core Menu", IsSystem: true})
	require.NoError(t, err)
	assert.Equal(t, "Core Menu", updated.Title)
}

func TestMenuService_ReorderIsAtomic(t *testing.T) {
	f := newFixture(t, PermissionOptions{})
	a := f.menu(t, "a", nil, 1)
	b := f.menu(t, "b", nil, 2)
	c := f.menu(t, "c", &a, 1)

	// Each move alone is fine; together they form a loop.
	err := f.svc.Menu.ReorderMenus(f.ctx, []model.MenuOrder{
		{ID: b, SortOrder: 1, ParentID: &c},
		{ID: a, SortOrder: 1, ParentID: &b},
	})
	require.ErrorIs(t, err, navguard_errors.ErrCycleDetected)

	unchanged, err := f.svc.Menu.GetMenu(f.ctx, b)
	require.NoError(t, err)
	assert.Nil(t, unchanged.ParentID)

	require.NoError(t, f.svc.Menu.ReorderMenus(f.ctx, []model.MenuOrder{
		{ID: b, SortOrder: 0, ParentID: &c},
		{ID: a, SortOrder: 5, ParentID: nil},
	}))

	forest, err := f.svc.Menu.GetMenuTree(f.ctx)
	require.NoError(t, err)
	require.Len(t, forest, 1)
	assert.Equal(t, "a", forest[0].Item.Name)
	assert.Equal(t, "b", forest[0].Children[0].Children[0].Item.Name)
	assert.Equal(t, 3, forest[0].Children[0].Children[0].Item.Level)
}
