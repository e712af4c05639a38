// controller/permission_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	navguard_errors "github.com/dev-mohitbeniwal/navguard/errors"
	"github.com/dev-mohitbeniwal/navguard/model"
	"github.com/dev-mohitbeniwal/navguard/service"
	"github.com/dev-mohitbeniwal/navguard/util"
	helper_util "github.com/dev-mohitbeniwal/navguard/util/helper"
)

type PermissionController struct {
	permissionService service.IPermissionService
}

func NewPermissionController(permissionService service.IPermissionService) *PermissionController {
	return &PermissionController{
		permissionService: permissionService,
	}
}

type overrideRequest struct {
	Type model.OverrideType `json:"type" binding:"required"`
}

type roleIDsRequest struct {
	RoleIDs []int64 `json:"role_ids"`
}

// RegisterRoutes registers the self-service routes every authenticated user may call
func (pc *PermissionController) RegisterRoutes(r *gin.RouterGroup) {
	me := r.Group("/me")
	{
		me.GET("/menus", pc.GetMyMenuPermissions)
		me.GET("/menus/tree", pc.GetMyMenuTree)
		me.GET("/menus/:menuId/check", pc.CheckMyMenuPermission)
		me.GET("/admin", pc.GetMyAdminStatus)
	}
}

// RegisterAdminRoutes registers the routes that inspect or change another user's grants
func (pc *PermissionController) RegisterAdminRoutes(r *gin.RouterGroup) {
	users := r.Group("/users/:id")
	{
		users.GET("/permissions", pc.GetUserMenuPermissions)
		users.GET("/overrides", pc.ListUserOverrides)
		users.PUT("/overrides/:menuId", pc.SetUserOverride)
		users.DELETE("/overrides/:menuId", pc.RemoveUserOverride)
		users.GET("/roles", pc.ListUserRoles)
		users.PUT("/roles", pc.ReplaceUserRoles)
		users.PUT("/organizations/:orgId/roles", pc.ReplaceUserRolesInOrg)
	}
}

func currentUser(c *gin.Context) (int64, bool) {
	userID, ok := util.GetUserIDFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", navguard_errors.ErrUnauthorized)
	}
	return userID, ok
}

func orgQuery(c *gin.Context) (*int64, bool) {
	orgID, err := helper_util.ParseOptionalIDQuery(c, "org_id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid org_id", err)
		return nil, false
	}
	return orgID, true
}

func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := helper_util.ParseIDParam(c, name)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid "+name, err)
		return 0, false
	}
	return id, true
}

// GetMyMenuPermissions endpoint
func (pc *PermissionController) GetMyMenuPermissions(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	orgID, ok := orgQuery(c)
	if !ok {
		return
	}

	perms, err := pc.permissionService.ResolveUserMenuPermissions(c, userID, orgID)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to resolve menu permissions", err)
		return
	}
	c.JSON(http.StatusOK, perms)
}

// GetMyMenuTree endpoint
func (pc *PermissionController) GetMyMenuTree(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	orgID, ok := orgQuery(c)
	if !ok {
		return
	}

	forest, err := pc.permissionService.GetUserMenuTree(c, userID, orgID)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to build menu tree", err)
		return
	}
	c.JSON(http.StatusOK, forest)
}

// CheckMyMenuPermission endpoint
func (pc *PermissionController) CheckMyMenuPermission(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	menuID, ok := idParam(c, "menuId")
	if !ok {
		return
	}
	orgID, ok := orgQuery(c)
	if !ok {
		return
	}

	perm, err := pc.permissionService.CheckSingleMenuPermission(c, userID, orgID, menuID)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to check menu permission", err)
		return
	}
	c.JSON(http.StatusOK, perm)
}

// GetMyAdminStatus endpoint
func (pc *PermissionController) GetMyAdminStatus(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	orgID, ok := orgQuery(c)
	if !ok {
		return
	}

	admin, err := pc.permissionService.IsEffectiveAdmin(c, userID, orgID)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to check admin status", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_admin": admin})
}

// GetUserMenuPermissions endpoint
func (pc *PermissionController) GetUserMenuPermissions(c *gin.Context) {
	userID, ok := idParam(c, "id")
	if !ok {
		return
	}
	orgID, ok := orgQuery(c)
	if !ok {
		return
	}

	perms, err := pc.permissionService.ResolveUserMenuPermissions(c, userID, orgID)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to resolve menu permissions", err)
		return
	}
	c.JSON(http.StatusOK, perms)
}

// ListUserOverrides endpoint
func (pc *PermissionController) ListUserOverrides(c *gin.Context) {
	userID, ok := idParam(c, "id")
	if !ok {
		return
	}

	overrides, err := pc.permissionService.ListUserOverrides(c, userID)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to list overrides", err)
		return
	}
	c.JSON(http.StatusOK, overrides)
}

// SetUserOverride endpoint
func (pc *PermissionController) SetUserOverride(c *gin.Context) {
	userID, ok := idParam(c, "id")
	if !ok {
		return
	}
	menuID, ok := idParam(c, "menuId")
	if !ok {
		return
	}
	var req overrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid override data", navguard_errors.ErrInvalidOverrideType)
		return
	}

	if err := pc.permissionService.SetUserOverride(c, userID, menuID, req.Type); err != nil {
		util.RespondWithDomainError(c, "Failed to set override", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveUserOverride endpoint
func (pc *PermissionController) RemoveUserOverride(c *gin.Context) {
	userID, ok := idParam(c, "id")
	if !ok {
		return
	}
	menuID, ok := idParam(c, "menuId")
	if !ok {
		return
	}

	if err := pc.permissionService.RemoveUserOverride(c, userID, menuID); err != nil {
		util.RespondWithDomainError(c, "Failed to remove override", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListUserRoles endpoint
func (pc *PermissionController) ListUserRoles(c *gin.Context) {
	userID, ok := idParam(c, "id")
	if !ok {
		return
	}
	orgID, ok := orgQuery(c)
	if !ok {
		return
	}

	roles, err := pc.permissionService.ListUserRoles(c, userID, orgID)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to list user roles", err)
		return
	}
	c.JSON(http.StatusOK, roles)
}

// ReplaceUserRoles endpoint
func (pc *PermissionController) ReplaceUserRoles(c *gin.Context) {
	userID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req roleIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid role assignment", navguard_errors.ErrInvalidRoleData)
		return
	}

	if err := pc.permissionService.ReplaceUserRoles(c, userID, req.RoleIDs); err != nil {
		util.RespondWithDomainError(c, "Failed to replace user roles", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ReplaceUserRolesInOrg endpoint
func (pc *PermissionController) ReplaceUserRolesInOrg(c *gin.Context) {
	userID, ok := idParam(c, "id")
	if !ok {
		return
	}
	orgID, ok := idParam(c, "orgId")
	if !ok {
		return
	}
	var req roleIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid role assignment", navguard_errors.ErrInvalidRoleData)
		return
	}

	if err := pc.permissionService.ReplaceUserRolesInOrg(c, userID, orgID, req.RoleIDs); err != nil {
		util.RespondWithDomainError(c, "Failed to replace user organization roles", err)
		return
	}
	c.Status(http.StatusNoContent)
}
