// service/services.go
package service

import (
	"github.com/dev-mohitbeniwal/navguard/audit"
	"github.com/dev-mohitbeniwal/navguard/dao"
	"github.com/dev-mohitbeniwal/navguard/util"
)

type Services struct {
	Permission IPermissionService
	Menu       IMenuService
	Role       IRoleService
	Org        IOrganizationService
}

func InitializeServices(
	store dao.Store,
	opts PermissionOptions,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	eventBus *util.EventBus,
) (*Services, error) {
	NewMenuCacheInvalidator(store, cacheService, eventBus)

	services := &Services{
		Permission: NewPermissionService(store, opts, validationUtil, cacheService, eventBus, auditService),
		Menu:       NewMenuService(store, validationUtil, eventBus, auditService),
		Role:       NewRoleService(store, validationUtil, eventBus, auditService),
		Org:        NewOrganizationService(store, validationUtil, eventBus, auditService),
	}

	return services, nil
}
