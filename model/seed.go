package model

// SeedMenu is one node of a hand-authored menu tree reconciled into storage.
type SeedMenu struct {
	Name           string         `json:"name" yaml:"name" validate:"required,max=128"`
	Title          string         `json:"title" yaml:"title" validate:"required,max=128"`
	Path           string         `json:"path,omitempty" yaml:"path,omitempty" validate:"max=255"`
	Component      string         `json:"component,omitempty" yaml:"component,omitempty"`
	Icon           string         `json:"icon,omitempty" yaml:"icon,omitempty"`
	SortOrder      *int           `json:"sort_order,omitempty" yaml:"sort_order,omitempty"`
	MenuType       string         `json:"menu_type,omitempty" yaml:"menu_type,omitempty"`
	PermissionCode string         `json:"permission_code,omitempty" yaml:"permission_code,omitempty"`
	Redirect       string         `json:"redirect,omitempty" yaml:"redirect,omitempty"`
	Meta           map[string]any `json:"meta,omitempty" yaml:"meta,omitempty"`
	Hidden         bool           `json:"is_hidden,omitempty" yaml:"is_hidden,omitempty"`
	Disabled       bool           `json:"is_disabled,omitempty" yaml:"is_disabled,omitempty"`
	System         bool           `json:"is_system,omitempty" yaml:"is_system,omitempty"`
	Children       []*SeedMenu    `json:"children,omitempty" yaml:"children,omitempty" validate:"dive"`
}

// SyncResult summarises one synchronizer run.
type SyncResult struct {
	SyncedCount int `json:"synced_count"`
	Created     int `json:"created"`
	Updated     int `json:"updated"`
	Removed     int `json:"removed"`
}
