// controller/audit_controller.go
package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/navguard/audit"
	navguard_errors "github.com/dev-mohitbeniwal/navguard/errors"
	"github.com/dev-mohitbeniwal/navguard/util"
)

// defaultAuditWindow is the look-back used when the query names no start time.
const defaultAuditWindow = 24 * time.Hour

type AuditController struct {
	auditService audit.Service
}

func NewAuditController(auditService audit.Service) *AuditController {
	return &AuditController{
		auditService: auditService,
	}
}

// RegisterRoutes registers the API routes for the audit trail
func (ac *AuditController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/audit/logs", ac.QueryLogs)
}

// QueryLogs endpoint
func (ac *AuditController) QueryLogs(c *gin.Context) {
	q, err := parseAuditQuery(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid audit query", err)
		return
	}

	logs, err := ac.auditService.QueryLogs(c, q)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to query audit logs", err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func parseAuditQuery(c *gin.Context) (audit.Query, error) {
	now := time.Now().UTC()
	q := audit.Query{From: now.Add(-defaultAuditWindow), To: now, EntityType: c.Query("entity_type")}

	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return q, navguard_errors.ErrInvalidPagination
		}
		q.From = t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return q, navguard_errors.ErrInvalidPagination
		}
		q.To = t
	}
	for name, dst := range map[string]*int64{"actor_id": &q.ActorID, "entity_id": &q.EntityID} {
		raw := c.Query(name)
		if raw == "" {
			continue
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return q, navguard_errors.ErrInvalidID
		}
		*dst = id
	}
	return q, nil
}
