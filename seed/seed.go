// seed/seed.go
package seed

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dev-mohitbeniwal/navguard/model"
)

// Permission codes carried by the built-in administration menus. The HTTP layer guards
// its administrative routes with them.
const (
	CodeMenuManage       = "system:menu:manage"
	CodeRoleManage       = "system:role:manage"
	CodeOrgManage        = "system:org:manage"
	CodePermissionManage = "system:permission:manage"
	CodeAuditView        = "system:audit:view"
)

var ErrSeedFileNotFound = errors.New("menu seed file not found")

type seedFile struct {
	Version int               `yaml:"version"`
	Menus   []*model.SeedMenu `yaml:"menus"`
}

func order(n int) *int { return &n }

// Default returns the built-in navigation baseline. Every call builds a fresh tree.
func Default() []*model.SeedMenu {
	return []*model.SeedMenu{
		{
			Name: "dashboard", Title: "Dashboard", Path: "/dashboard", Component: "views/dashboard/index",
			Icon: "dashboard", SortOrder: order(1), MenuType: "page", System: true,
			Meta: map[string]any{"affix": true},
		},
		{
			Name: "system", Title: "System", Path: "/system", Icon: "setting", SortOrder: order(100),
			MenuType: "dir", Redirect: "/system/menus", System: true,
			Children: []*model.SeedMenu{
				{
					Name: "system.menus", Title: "Menus", Path: "/system/menus", Component: "views/system/menus",
					Icon: "menu", SortOrder: order(1), MenuType: "page", PermissionCode: CodeMenuManage, System: true,
				},
				{
					Name: "system.roles", Title: "Roles", Path: "/system/roles", Component: "views/system/roles",
					Icon: "team", SortOrder: order(2), MenuType: "page", PermissionCode: CodeRoleManage, System: true,
				},
				{
					Name: "system.organizations", Title: "Organizations", Path: "/system/organizations",
					Component: "views/system/organizations", Icon: "apartment", SortOrder: order(3), MenuType: "page",
					PermissionCode: CodeOrgManage, System: true,
				},
				{
					Name: "system.permissions", Title: "User Permissions", Path: "/system/permissions",
					Component: "views/system/permissions", Icon: "safety", SortOrder: order(4), MenuType: "page",
					PermissionCode: CodePermissionManage, System: true,
					Children: []*model.SeedMenu{
						{Name: "system.permissions.override", Title: "Edit Overrides", MenuType: "button", PermissionCode: CodePermissionManage, System: true},
					},
				},
				{
					Name: "system.audit", Title: "Audit Log", Path: "/system/audit", Component: "views/system/audit",
					Icon: "file-search", SortOrder: order(5), MenuType: "page", PermissionCode: CodeAuditView, System: true,
					Meta: map[string]any{"keepAlive": false},
				},
			},
		},
		{
			Name: "profile", Title: "Profile", Path: "/profile", Component: "views/profile/index",
			Icon: "user", SortOrder: order(200), MenuType: "page", Hidden: true,
		},
	}
}

// LoadFile reads a YAML seed of the form
//
//	version: 1
//	menus:
//	  - name: dashboard
//	    title: Dashboard
//	    children: [...]
func LoadFile(path string) ([]*model.SeedMenu, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: empty path", ErrSeedFileNotFound)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSeedFileNotFound, path)
		}
		return nil, err
	}

	var file seedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse menu seed %s: %w", path, err)
	}
	if file.Version != 1 {
		return nil, fmt.Errorf("unsupported menu seed version: %d", file.Version)
	}
	return file.Menus, nil
}

// Resolve returns the seed in path, or the built-in one when path is empty.
func Resolve(path string) ([]*model.SeedMenu, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
