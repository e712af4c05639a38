// controller/organization_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	navguard_errors "github.com/dev-mohitbeniwal/navguard/errors"
	"github.com/dev-mohitbeniwal/navguard/model"
	"github.com/dev-mohitbeniwal/navguard/service"
	"github.com/dev-mohitbeniwal/navguard/util"
)

type OrganizationController struct {
	orgService service.IOrganizationService
}

func NewOrganizationController(orgService service.IOrganizationService) *OrganizationController {
	return &OrganizationController{
		orgService: orgService,
	}
}

// RegisterRoutes registers the API routes for organizations
func (oc *OrganizationController) RegisterRoutes(r *gin.RouterGroup) {
	orgs := r.Group("/organizations")
	{
		orgs.POST("", oc.CreateOrganization)
		orgs.GET("", oc.ListOrganizations)
		orgs.GET("/tree", oc.GetOrganizationTree)
		orgs.POST("/move", oc.MoveOrganizations)
		orgs.GET("/:id", oc.GetOrganization)
		orgs.PUT("/:id", oc.UpdateOrganization)
	}
}

// CreateOrganization endpoint
func (oc *OrganizationController) CreateOrganization(c *gin.Context) {
	// Organizations start active unless the body says otherwise.
	org := model.Organization{IsActive: true}
	if err := c.ShouldBindJSON(&org); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid organization data", navguard_errors.ErrInvalidOrganizationData)
		return
	}

	created, err := oc.orgService.CreateOrganization(c, org)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to create organization", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateOrganization endpoint
func (oc *OrganizationController) UpdateOrganization(c *gin.Context) {
	orgID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var org model.Organization
	if err := c.ShouldBindJSON(&org); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid organization data", navguard_errors.ErrInvalidOrganizationData)
		return
	}
	org.ID = orgID

	updated, err := oc.orgService.UpdateOrganization(c, org)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to update organization", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// MoveOrganizations endpoint
func (oc *OrganizationController) MoveOrganizations(c *gin.Context) {
	var moves []model.OrganizationMove
	if err := c.ShouldBindJSON(&moves); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid organization moves", navguard_errors.ErrInvalidOrganizationData)
		return
	}

	if err := oc.orgService.MoveOrganizations(c, moves); err != nil {
		util.RespondWithDomainError(c, "Failed to move organizations", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetOrganization endpoint
func (oc *OrganizationController) GetOrganization(c *gin.Context) {
	orgID, ok := idParam(c, "id")
	if !ok {
		return
	}

	org, err := oc.orgService.GetOrganization(c, orgID)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to get organization", err)
		return
	}
	c.JSON(http.StatusOK, org)
}

// ListOrganizations endpoint
func (oc *OrganizationController) ListOrganizations(c *gin.Context) {
	orgs, err := oc.orgService.ListOrganizations(c)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to list organizations", err)
		return
	}
	c.JSON(http.StatusOK, orgs)
}

// GetOrganizationTree endpoint
func (oc *OrganizationController) GetOrganizationTree(c *gin.Context) {
	forest, err := oc.orgService.GetOrganizationTree(c)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to build organization tree", err)
		return
	}
	c.JSON(http.StatusOK, forest)
}
