// util/http_util.go
package util

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	navguard_errors "github.com/dev-mohitbeniwal/navguard/errors"
	logger "github.com/dev-mohitbeniwal/navguard/logging"
)

func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, gin.H{"error": message})
}

// RespondWithDomainError picks the status from the error's kind and reports its text.
// Store failures are reported with message only.
func RespondWithDomainError(c *gin.Context, message string, err error) {
	code := StatusForError(err)
	if code == http.StatusInternalServerError {
		RespondWithError(c, code, message, err)
		return
	}
	logger.Warn(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, gin.H{"error": message, "details": err.Error()})
}

// StatusForError maps the four error kinds and request-level sentinels onto HTTP statuses.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, navguard_errors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, navguard_errors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, navguard_errors.ErrInvariantViolation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, navguard_errors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, navguard_errors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, navguard_errors.ErrInvalidMenuData),
		errors.Is(err, navguard_errors.ErrInvalidRoleData),
		errors.Is(err, navguard_errors.ErrInvalidOrganizationData),
		errors.Is(err, navguard_errors.ErrInvalidSeed),
		errors.Is(err, navguard_errors.ErrInvalidOverrideType),
		errors.Is(err, navguard_errors.ErrInvalidID),
		errors.Is(err, navguard_errors.ErrInvalidPagination):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// GetUserIDFromContext returns the authenticated user id set by AuthMiddleware.
func GetUserIDFromContext(c *gin.Context) (int64, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
