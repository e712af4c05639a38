// controller/controllers.go
package controller

import (
	"github.com/dev-mohitbeniwal/navguard/audit"
	"github.com/dev-mohitbeniwal/navguard/service"
)

type Controllers struct {
	Permission *PermissionController
	Menu       *MenuController
	Role       *RoleController
	Org        *OrganizationController
	Audit      *AuditController
}

func InitializeControllers(services *service.Services, auditService audit.Service) *Controllers {
	return &Controllers{
		Permission: NewPermissionController(services.Permission),
		Menu:       NewMenuController(services.Menu),
		Role:       NewRoleController(services.Role),
		Org:        NewOrganizationController(services.Org),
		Audit:      NewAuditController(auditService),
	}
}
