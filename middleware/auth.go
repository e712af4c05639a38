// middleware/auth.go
package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/navguard/audit"
	navguard_errors "github.com/dev-mohitbeniwal/navguard/errors"
	logger "github.com/dev-mohitbeniwal/navguard/logging"
	"github.com/dev-mohitbeniwal/navguard/service"
	"github.com/dev-mohitbeniwal/navguard/util"
	helper_util "github.com/dev-mohitbeniwal/navguard/util/helper"
)

// Claims is the bearer token payload. Subject carries the numeric user id.
type Claims struct {
	jwt.StandardClaims
	Username string `json:"username,omitempty"`
}

// AuthMiddleware verifies an HS256 bearer token and stores the caller's user id under
// "userID". The id is also attached to the request context for audit entries.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			logger.Warn("No Authorization token provided", zap.String("path", c.Request.URL.Path))
			util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", navguard_errors.ErrUnauthorized)
			c.Abort()
			return
		}

		claims, err := parseToken(tokenString, secret)
		if err != nil {
			util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
			c.Abort()
			return
		}

		userID, err := strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil || userID <= 0 {
			util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", navguard_errors.ErrUnauthorized)
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Request = c.Request.WithContext(audit.WithActor(c.Request.Context(), userID))
		logger.Debug("Authenticated request", zap.Int64("userID", userID), zap.String("username", claims.Username))

		c.Next()
	}
}

func parseToken(tokenString, secret string) (*Claims, error) {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", navguard_errors.ErrUnauthorized, err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, navguard_errors.ErrUnauthorized
}

// RequirePermission lets the request through only when the caller is granted a menu
// carrying code, in the organization named by the org_id query parameter if any.
func RequirePermission(permissionService service.IPermissionService, code string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := util.GetUserIDFromContext(c)
		if !ok {
			util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", navguard_errors.ErrUnauthorized)
			c.Abort()
			return
		}
		orgID, err := helper_util.ParseOptionalIDQuery(c, "org_id")
		if err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid org_id", err)
			c.Abort()
			return
		}

		allowed, err := permissionService.CheckPermissionCode(c, userID, orgID, code)
		if err != nil {
			util.RespondWithDomainError(c, "Failed to check permission", err)
			c.Abort()
			return
		}
		if !allowed {
			logger.Warn("Permission denied",
				zap.Int64("userID", userID),
				zap.String("code", code))
			util.RespondWithError(c, http.StatusForbidden, "Forbidden", navguard_errors.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}
