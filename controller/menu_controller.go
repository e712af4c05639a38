// controller/menu_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	navguard_errors "github.com/dev-mohitbeniwal/navguard/errors"
	"github.com/dev-mohitbeniwal/navguard/model"
	"github.com/dev-mohitbeniwal/navguard/seed"
	"github.com/dev-mohitbeniwal/navguard/service"
	"github.com/dev-mohitbeniwal/navguard/util"
)

type MenuController struct {
	menuService service.IMenuService
}

func NewMenuController(menuService service.IMenuService) *MenuController {
	return &MenuController{
		menuService: menuService,
	}
}

type syncRequest struct {
	// Menus replaces the built-in seed when present.
	Menus         []*model.SeedMenu `json:"menus"`
	RemoveOrphans bool              `json:"remove_orphans"`
}

// RegisterRoutes registers the API routes for menus
func (mc *MenuController) RegisterRoutes(r *gin.RouterGroup) {
	menus := r.Group("/menus")
	{
		menus.POST("", mc.CreateMenu)
		menus.GET("", mc.ListMenus)
		menus.GET("/tree", mc.GetMenuTree)
		menus.PUT("/order", mc.ReorderMenus)
		menus.POST("/sync", mc.SyncMenus)
		menus.GET("/:id", mc.GetMenu)
		menus.PUT("/:id", mc.UpdateMenu)
		menus.DELETE("/:id", mc.DeleteMenu)
	}
}

// CreateMenu endpoint
func (mc *MenuController) CreateMenu(c *gin.Context) {
	var menu model.Menu
	if err := c.ShouldBindJSON(&menu); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid menu data", navguard_errors.ErrInvalidMenuData)
		return
	}

	created, err := mc.menuService.CreateMenu(c, menu)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to create menu", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListMenus endpoint
func (mc *MenuController) ListMenus(c *gin.Context) {
	menus, err := mc.menuService.ListMenus(c)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to list menus", err)
		return
	}
	c.JSON(http.StatusOK, menus)
}

// GetMenuTree endpoint
func (mc *MenuController) GetMenuTree(c *gin.Context) {
	forest, err := mc.menuService.GetMenuTree(c)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to build menu tree", err)
		return
	}
	c.JSON(http.StatusOK, forest)
}

// GetMenu endpoint
func (mc *MenuController) GetMenu(c *gin.Context) {
	menuID, ok := idParam(c, "id")
	if !ok {
		return
	}

	menu, err := mc.menuService.GetMenu(c, menuID)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to get menu", err)
		return
	}
	c.JSON(http.StatusOK, menu)
}

// UpdateMenu endpoint
func (mc *MenuController) UpdateMenu(c *gin.Context) {
	menuID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var menu model.Menu
	if err := c.ShouldBindJSON(&menu); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid menu data", navguard_errors.ErrInvalidMenuData)
		return
	}
	menu.ID = menuID

	updated, err := mc.menuService.UpdateMenu(c, menu)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to update menu", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteMenu endpoint
func (mc *MenuController) DeleteMenu(c *gin.Context) {
	menuID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := mc.menuService.DeleteMenu(c, menuID); err != nil {
		util.RespondWithDomainError(c, "Failed to delete menu", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ReorderMenus endpoint
func (mc *MenuController) ReorderMenus(c *gin.Context) {
	var orders []model.MenuOrder
	if err := c.ShouldBindJSON(&orders); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid menu order", navguard_errors.ErrInvalidMenuData)
		return
	}

	if err := mc.menuService.ReorderMenus(c, orders); err != nil {
		util.RespondWithDomainError(c, "Failed to reorder menus", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SyncMenus endpoint
func (mc *MenuController) SyncMenus(c *gin.Context) {
	var req syncRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid menu seed", navguard_errors.ErrInvalidSeed)
			return
		}
	}
	if len(req.Menus) == 0 {
		req.Menus = seed.Default()
	}

	result, err := mc.menuService.SyncMenus(c, req.Menus, service.SyncOptions{RemoveOrphans: req.RemoveOrphans})
	if err != nil {
		util.RespondWithDomainError(c, "Failed to synchronize menus", err)
		return
	}
	c.JSON(http.StatusOK, result)
}
