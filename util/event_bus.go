// util/event_bus.go

package util

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Event types published after permission-relevant writes commit.
const (
	EventMenuSynced        = "menu.synced"
	EventMenuUpdated       = "menu.updated"
	EventRoleMenusUpdated  = "role.menus.updated"
	EventUserRolesUpdated  = "user.roles.updated"
	EventOverrideChanged   = "override.changed"
	EventOrganizationMoved = "organization.moved"
)

// Event represents an event in the system
type Event struct {
	Type    string
	Payload interface{}
}

// UserScopedPayload names the users whose effective menus may have changed.
type UserScopedPayload struct {
	UserIDs []int64
}

// RolePayload names a role whose grants or status changed; its holders are affected.
type RolePayload struct {
	RoleID int64
}

// EventHandler is a function that handles an event
type EventHandler func(context.Context, Event) error

// EventBus fans events out to subscribers on the publishing goroutine.
type EventBus struct {
	subscribers map[string][]EventHandler
	mu          sync.RWMutex
}

func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[string][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(eventType string, handler EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.subscribers[eventType] = append(eb.subscribers[eventType], handler)
}

// PublishSync runs every subscriber inline and returns their joined errors, so the caller
// observes the handlers' effects, such as cache invalidation after a write. A nil bus drops
// the event.
func (eb *EventBus) PublishSync(ctx context.Context, eventType string, payload interface{}) error {
	if eb == nil {
		return nil
	}
	eb.mu.RLock()
	handlers := append([]EventHandler(nil), eb.subscribers[eventType]...)
	eb.mu.RUnlock()

	event := Event{Type: eventType, Payload: payload}
	var errs []error
	for _, h := range handlers {
		if err := h(ctx, event); err != nil {
			errs = append(errs, fmt.Errorf("event handler error for %s: %w", eventType, err))
		}
	}
	return errors.Join(errs...)
}
