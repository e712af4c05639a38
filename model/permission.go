// model/permission.go
package model

// PermissionSource tags where an effective permission decision came from.
type PermissionSource string

const (
	SourceAdmin     PermissionSource = "admin"
	SourceDeny      PermissionSource = "deny"
	SourceUserGrant PermissionSource = "user-grant"
	SourceRole      PermissionSource = "role"
	SourceNone      PermissionSource = "none"
)

// EffectivePermission is the resolved access decision for one menu.
type EffectivePermission struct {
	Menu          *Menu            `json:"menu"`
	HasPermission bool             `json:"has_permission"`
	Source        PermissionSource `json:"source"`
}
