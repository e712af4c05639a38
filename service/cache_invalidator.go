// service/cache_invalidator.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dev-mohitbeniwal/navguard/dao"
	logger "github.com/dev-mohitbeniwal/navguard/logging"
	"github.com/dev-mohitbeniwal/navguard/util"
)

// maxParallelInvalidations caps concurrent Redis round trips when a role's holders are purged.
const maxParallelInvalidations = 8

// MenuCacheInvalidator keeps the per-user menu cache coherent with permission writes.
// It subscribes to the write events the services publish with PublishSync.
type MenuCacheInvalidator struct {
	store dao.Store
	cache *util.CacheService
}

func NewMenuCacheInvalidator(store dao.Store, cache *util.CacheService, eventBus *util.EventBus) *MenuCacheInvalidator {
	inv := &MenuCacheInvalidator{store: store, cache: cache}

	eventBus.Subscribe(util.EventMenuSynced, inv.handleGlobalChange)
	eventBus.Subscribe(util.EventMenuUpdated, inv.handleGlobalChange)
	eventBus.Subscribe(util.EventOrganizationMoved, inv.handleGlobalChange)
	eventBus.Subscribe(util.EventRoleMenusUpdated, inv.handleRoleChange)
	eventBus.Subscribe(util.EventUserRolesUpdated, inv.handleUserChange)
	eventBus.Subscribe(util.EventOverrideChanged, inv.handleUserChange)

	return inv
}

func (inv *MenuCacheInvalidator) handleGlobalChange(ctx context.Context, event util.Event) error {
	logger.Debug("Invalidating every cached menu set", zap.String("event", event.Type))
	return inv.cache.InvalidateAll(ctx)
}

func (inv *MenuCacheInvalidator) handleRoleChange(ctx context.Context, event util.Event) error {
	payload, ok := event.Payload.(util.RolePayload)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", event.Payload, event.Type)
	}
	holders, err := inv.store.ListRoleHolders(ctx, payload.RoleID)
	if err != nil {
		return err
	}
	logger.Debug("Invalidating cached menus of role holders",
		zap.Int64("roleID", payload.RoleID),
		zap.Int("holders", len(holders)))
	return inv.invalidateUsers(ctx, holders)
}

func (inv *MenuCacheInvalidator) handleUserChange(ctx context.Context, event util.Event) error {
	payload, ok := event.Payload.(util.UserScopedPayload)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", event.Payload, event.Type)
	}
	return inv.invalidateUsers(ctx, payload.UserIDs)
}

func (inv *MenuCacheInvalidator) invalidateUsers(ctx context.Context, userIDs []int64) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelInvalidations)
	for _, id := range userIDs {
		id := id
		g.Go(func() error {
			return inv.cache.InvalidateUser(gctx, id)
		})
	}
	return g.Wait()
}
