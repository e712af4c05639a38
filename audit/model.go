// audit/model.go
package audit

import (
	"context"
	"encoding/json"
	"time"
)

// Actions recorded for permission-changing operations.
const (
	ActionMenuSync          = "menu.sync"
	ActionMenuCreate        = "menu.create"
	ActionMenuUpdate        = "menu.update"
	ActionMenuDelete        = "menu.delete"
	ActionMenuReorder       = "menu.reorder"
	ActionRoleCreate        = "role.create"
	ActionRoleUpdate        = "role.update"
	ActionRoleDelete        = "role.delete"
	ActionRoleMenusReplace  = "role.menus.replace"
	ActionUserRolesReplace  = "user.roles.replace"
	ActionOverrideSet       = "override.set"
	ActionOverrideRemove    = "override.remove"
	ActionOrganizationWrite = "organization.write"
	ActionOrganizationMove  = "organization.move"
)

type AuditLog struct {
	Timestamp  time.Time       `json:"timestamp"`
	ActorID    int64           `json:"actor_id"`
	Action     string          `json:"action"`
	EntityType string          `json:"entity_type"`
	EntityID   int64           `json:"entity_id"`
	Details    json.RawMessage `json:"details,omitempty"`
}

// Query filters QueryLogs. Zero fields are ignored.
type Query struct {
	From       time.Time
	To         time.Time
	ActorID    int64
	EntityType string
	EntityID   int64
}

type actorKey struct{}

// WithActor tags ctx with the id of the authenticated user performing the request.
func WithActor(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, actorKey{}, userID)
}

func ActorFrom(ctx context.Context) int64 {
	id, _ := ctx.Value(actorKey{}).(int64)
	return id
}

// NewEntry builds a log line for the actor carried by ctx. details is marshalled as JSON;
// a value that fails to marshal is dropped.
func NewEntry(ctx context.Context, action, entityType string, entityID int64, details interface{}) AuditLog {
	entry := AuditLog{
		Timestamp:  time.Now().UTC(),
		ActorID:    ActorFrom(ctx),
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
	}
	if details != nil {
		if raw, err := json.Marshal(details); err == nil {
			entry.Details = raw
		}
	}
	return entry
}
