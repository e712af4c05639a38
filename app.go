package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/navguard/audit"
	"github.com/dev-mohitbeniwal/navguard/config"
	"github.com/dev-mohitbeniwal/navguard/dao"
	"github.com/dev-mohitbeniwal/navguard/db"
	logger "github.com/dev-mohitbeniwal/navguard/logging"
	"github.com/dev-mohitbeniwal/navguard/model"
	"github.com/dev-mohitbeniwal/navguard/seed"
	"github.com/dev-mohitbeniwal/navguard/service"
	"github.com/dev-mohitbeniwal/navguard/util"
)

// syncLockTTL bounds how long one replica may hold the seed synchronizer lock.
const syncLockTTL = 2 * time.Minute

const syncLockName = "menu-seed-sync"

// app holds the wired dependencies shared by every command.
type app struct {
	store        dao.Store
	gormStore    *dao.GormStore
	services     *service.Services
	auditService audit.Service
	eventBus     *util.EventBus
	redisEnabled bool
	closers      []func()
}

func newApp() (*app, error) {
	a := &app{}

	if config.GetBool("database.enabled") {
		if err := db.InitPostgres(); err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.ClosePostgres)
		a.gormStore = dao.NewGormStore(db.Postgres)
		a.store = a.gormStore
	} else {
		logger.Warn("Database disabled, using the in-memory store")
		a.store = dao.NewMemoryStore()
	}

	var cacheService *util.CacheService
	if config.GetBool("redis.enabled") {
		if err := db.InitRedis(); err != nil {
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, db.CloseRedis)
		a.redisEnabled = true
		cacheService = util.NewCacheService(db.RedisClient, config.GetDuration("redis.defaultCacheTTL"))
	} else {
		cacheService = util.NewCacheService(nil, 0)
	}

	var auditRepository audit.Repository = audit.NewLogRepository()
	if config.GetBool("elasticsearch.enabled") {
		esRepository, err := audit.NewElasticsearchRepository(config.GetString("elasticsearch.url"), config.GetString("elasticsearch.index"))
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
		}
		auditRepository = esRepository
	}
	a.auditService = audit.NewService(auditRepository)

	a.eventBus = util.NewEventBus()

	services, err := service.InitializeServices(
		a.store,
		service.PermissionOptions{
			BypassRoles:          config.GetStringSlice("permission.bypassRoles"),
			OrgAdminRole:         config.GetString("permission.orgAdminRole"),
			AutoIncludeAncestors: config.GetBool("permission.autoIncludeAncestors"),
		},
		a.auditService,
		util.NewValidationUtil(),
		cacheService,
		a.eventBus,
	)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.services = services
	return a, nil
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// migrate creates the schema when running on Postgres.
func (a *app) migrate() error {
	if a.gormStore == nil {
		return nil
	}
	if err := a.gormStore.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	logger.Info("Schema migrated")
	return nil
}

// syncMenus reconciles the stored menus with the seed in file (the built-in seed when empty).
// With Redis available, replicas serialise on a lock and a replica that loses the race skips.
func (a *app) syncMenus(ctx context.Context, file string, removeOrphans bool) (*syncOutcome, error) {
	seeds, err := seed.Resolve(file)
	if err != nil {
		return nil, err
	}

	if a.redisEnabled {
		token, err := db.LockResource(ctx, syncLockName, syncLockTTL)
		if err != nil {
			return nil, err
		}
		if token == "" {
			logger.Info("Menu sync already running elsewhere, skipping")
			return &syncOutcome{Skipped: true}, nil
		}
		defer func() {
			if err := db.UnlockResource(ctx, syncLockName, token); err != nil {
				logger.Error("Failed to release menu sync lock", zap.Error(err))
			}
		}()
	}

	result, err := a.services.Menu.SyncMenus(ctx, seeds, service.SyncOptions{RemoveOrphans: removeOrphans})
	if err != nil {
		return nil, err
	}
	return &syncOutcome{Result: result}, nil
}

type syncOutcome struct {
	Skipped bool
	Result  *model.SyncResult
}

// grantRole adds the role with code to the user's global roles, or to their roles in orgID.
func (a *app) grantRole(ctx context.Context, userID int64, code string, orgID *int64) error {
	roles, err := a.services.Role.ListRoles(ctx)
	if err != nil {
		return err
	}
	var roleID int64
	for _, r := range roles {
		if r.Code == code {
			roleID = r.ID
			break
		}
	}
	if roleID == 0 {
		return fmt.Errorf("no role with code %q", code)
	}

	held, err := a.services.Permission.ListUserRoles(ctx, userID, orgID)
	if err != nil {
		return err
	}
	ids := []int64{roleID}
	for _, r := range held {
		if r.ID == roleID {
			return nil
		}
		ids = append(ids, r.ID)
	}

	if orgID != nil {
		return a.services.Permission.ReplaceUserRolesInOrg(ctx, userID, *orgID, ids)
	}
	return a.services.Permission.ReplaceUserRoles(ctx, userID, ids)
}

// ensureBypassRoles makes sure the configured bypass roles exist, so an operator can grant one.
func (a *app) ensureBypassRoles(ctx context.Context) error {
	codes := config.GetStringSlice("permission.bypassRoles")
	if len(codes) == 0 {
		return nil
	}
	if _, err := a.services.Role.EnsureSystemRoles(ctx, codes); err != nil {
		return fmt.Errorf("failed to ensure bypass roles: %w", err)
	}
	return nil
}
