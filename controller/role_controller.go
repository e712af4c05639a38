// controller/role_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	navguard_errors "github.com/dev-mohitbeniwal/navguard/errors"
	"github.com/dev-mohitbeniwal/navguard/model"
	"github.com/dev-mohitbeniwal/navguard/service"
	"github.com/dev-mohitbeniwal/navguard/util"
)

type RoleController struct {
	roleService service.IRoleService
}

func NewRoleController(roleService service.IRoleService) *RoleController {
	return &RoleController{
		roleService: roleService,
	}
}

type menuIDsRequest struct {
	MenuIDs []int64 `json:"menu_ids"`
}

// RegisterRoutes registers the API routes for roles
func (rc *RoleController) RegisterRoutes(r *gin.RouterGroup) {
	roles := r.Group("/roles")
	{
		roles.POST("", rc.CreateRole)
		roles.PUT("/:id", rc.UpdateRole)
		roles.DELETE("/:id", rc.DeleteRole)
		roles.GET("/:id", rc.GetRole)
		roles.GET("", rc.ListRoles)
		roles.GET("/:id/menus", rc.GetRoleMenus)
		roles.PUT("/:id/menus", rc.ReplaceRoleMenus)
	}
}

// CreateRole endpoint
func (rc *RoleController) CreateRole(c *gin.Context) {
	var role model.Role
	if err := c.ShouldBindJSON(&role); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid role data", navguard_errors.ErrInvalidRoleData)
		return
	}

	createdRole, err := rc.roleService.CreateRole(c, role)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to create role", err)
		return
	}
	c.JSON(http.StatusCreated, createdRole)
}

// UpdateRole endpoint
func (rc *RoleController) UpdateRole(c *gin.Context) {
	roleID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var role model.Role
	if err := c.ShouldBindJSON(&role); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid role data", navguard_errors.ErrInvalidRoleData)
		return
	}
	role.ID = roleID

	updatedRole, err := rc.roleService.UpdateRole(c, role)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to update role", err)
		return
	}
	c.JSON(http.StatusOK, updatedRole)
}

// DeleteRole endpoint
func (rc *RoleController) DeleteRole(c *gin.Context) {
	roleID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := rc.roleService.DeleteRole(c, roleID); err != nil {
		util.RespondWithDomainError(c, "Failed to delete role", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetRole endpoint
func (rc *RoleController) GetRole(c *gin.Context) {
	roleID, ok := idParam(c, "id")
	if !ok {
		return
	}

	role, err := rc.roleService.GetRole(c, roleID)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to get role", err)
		return
	}
	c.JSON(http.StatusOK, role)
}

// ListRoles endpoint
func (rc *RoleController) ListRoles(c *gin.Context) {
	roles, err := rc.roleService.ListRoles(c)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to list roles", err)
		return
	}
	c.JSON(http.StatusOK, roles)
}

// GetRoleMenus endpoint
func (rc *RoleController) GetRoleMenus(c *gin.Context) {
	roleID, ok := idParam(c, "id")
	if !ok {
		return
	}

	menuIDs, err := rc.roleService.GetRoleMenus(c, roleID)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to get role menus", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu_ids": menuIDs})
}

// ReplaceRoleMenus endpoint
func (rc *RoleController) ReplaceRoleMenus(c *gin.Context) {
	roleID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req menuIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid menu assignment", navguard_errors.ErrInvalidRoleData)
		return
	}

	if err := rc.roleService.ReplaceRoleMenus(c, roleID, req.MenuIDs); err != nil {
		util.RespondWithDomainError(c, "Failed to replace role menus", err)
		return
	}
	c.Status(http.StatusNoContent)
}
