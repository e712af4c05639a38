// util/cache_service.go

package util

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/navguard/logging"
	"github.com/dev-mohitbeniwal/navguard/model"
)

const (
	menuCachePrefix   = "menus"
	menuEpochKey      = "menus:epoch"
	menuVersionPrefix = "menuver"
)

var errStaleMenuSet = errors.New("menu set resolved under an older cache version")

// CacheService caches each (user, org) pair's visible menu set. Keys embed a global epoch,
// so bumping the epoch drops every entry at once; per-user invalidation deletes that
// user's keys and bumps a per-user counter. A CacheService with a nil client never hits.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

// MenuVersion is the cache generation a menu set was resolved under. Callers read it
// before resolving and hand it back on write; a set from an older generation is dropped.
type MenuVersion struct {
	Epoch int64
	User  int64
}

func NewCacheService(client *redis.Client, ttl time.Duration) *CacheService {
	return &CacheService{client: client, ttl: ttl}
}

func (c *CacheService) enabled() bool {
	return c != nil && c.client != nil
}

func orgSegment(orgID *int64) string {
	if orgID == nil {
		return "global"
	}
	return strconv.FormatInt(*orgID, 10)
}

func menuKey(epoch, userID int64, orgID *int64) string {
	return fmt.Sprintf("%s:%d:%d:%s", menuCachePrefix, epoch, userID, orgSegment(orgID))
}

func userVersionKey(userID int64) string {
	return fmt.Sprintf("%s:%d", menuVersionPrefix, userID)
}

type multiGetter interface {
	MGet(ctx context.Context, keys ...string) *redis.SliceCmd
}

func readVersion(ctx context.Context, r multiGetter, userID int64) (MenuVersion, error) {
	vals, err := r.MGet(ctx, menuEpochKey, userVersionKey(userID)).Result()
	if err != nil {
		return MenuVersion{}, fmt.Errorf("failed to read menu cache version: %w", err)
	}
	var v MenuVersion
	if v.Epoch, err = parseCounter(vals[0]); err != nil {
		return MenuVersion{}, err
	}
	if v.User, err = parseCounter(vals[1]); err != nil {
		return MenuVersion{}, err
	}
	return v, nil
}

// parseCounter reads an INCR counter from an MGET reply; a missing key is zero.
func parseCounter(val interface{}) (int64, error) {
	s, ok := val.(string)
	if !ok {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid menu cache counter %q: %w", s, err)
	}
	return n, nil
}

// Version returns the current cache generation for userID.
func (c *CacheService) Version(ctx context.Context, userID int64) (MenuVersion, error) {
	if !c.enabled() {
		return MenuVersion{}, nil
	}
	return readVersion(ctx, c.client, userID)
}

// GetUserMenus returns the visible menus cached under version; ok is false on a miss.
func (c *CacheService) GetUserMenus(ctx context.Context, userID int64, orgID *int64, version MenuVersion) (menus []*model.Menu, ok bool, err error) {
	if !c.enabled() {
		return nil, false, nil
	}
	key := menuKey(version.Epoch, userID, orgID)
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		logger.Debug("Menu set not found in cache", zap.String("key", key))
		return nil, false, nil
	} else if err != nil {
		return nil, false, fmt.Errorf("failed to get menus from cache: %w", err)
	}
	if err := json.Unmarshal(raw, &menus); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached menus: %w", err)
	}
	return menus, true, nil
}

// SetUserMenus caches menus resolved under version. When an invalidation has moved the
// generation on since then, the set is stale and nothing is written.
func (c *CacheService) SetUserMenus(ctx context.Context, userID int64, orgID *int64, version MenuVersion, menus []*model.Menu) error {
	if !c.enabled() {
		return nil
	}
	raw, err := json.Marshal(menus)
	if err != nil {
		return fmt.Errorf("failed to marshal menus: %w", err)
	}
	key := menuKey(version.Epoch, userID, orgID)

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readVersion(ctx, tx, userID)
		if err != nil {
			return err
		}
		if current != version {
			return errStaleMenuSet
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, raw, c.ttl)
			return nil
		})
		return err
	}, menuEpochKey, userVersionKey(userID))
	if errors.Is(err, errStaleMenuSet) || errors.Is(err, redis.TxFailedErr) {
		logger.Debug("Skipped caching stale menu set", zap.String("key", key))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to cache menus: %w", err)
	}
	logger.Debug("Menu set cached", zap.String("key", key), zap.Int("menus", len(menus)))
	return nil
}

// InvalidateUser drops every cached menu set of userID, across orgs and epochs.
func (c *CacheService) InvalidateUser(ctx context.Context, userID int64) error {
	if !c.enabled() {
		return nil
	}
	if err := c.client.Incr(ctx, userVersionKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to bump menu cache version: %w", err)
	}
	pattern := fmt.Sprintf("%s:*:%d:*", menuCachePrefix, userID)
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan menu cache: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete cached menus: %w", err)
	}
	logger.Debug("Menu cache invalidated for user", zap.Int64("userID", userID), zap.Int("keys", len(keys)))
	return nil
}

// InvalidateAll bumps the epoch; stale entries expire on their own TTL.
func (c *CacheService) InvalidateAll(ctx context.Context) error {
	if !c.enabled() {
		return nil
	}
	epoch, err := c.client.Incr(ctx, menuEpochKey).Result()
	if err != nil {
		return fmt.Errorf("failed to bump menu cache epoch: %w", err)
	}
	logger.Info("Menu cache invalidated", zap.Int64("epoch", epoch))
	return nil
}
