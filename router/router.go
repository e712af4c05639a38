// router/router.go

package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/navguard/controller"
	"github.com/dev-mohitbeniwal/navguard/middleware"
	"github.com/dev-mohitbeniwal/navguard/seed"
	"github.com/dev-mohitbeniwal/navguard/service"
)

// Options configures the HTTP surface. A zero RateLimitRequests disables throttling.
type Options struct {
	JWTSecret         string
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

func SetupRouter(
	controllers *controller.Controllers,
	permissionService service.IPermissionService,
	opts Options,
) *gin.Engine {
	router := gin.New()
	// Handlers pass *gin.Context to services; this exposes the request context's values
	// (the audit actor) through it.
	router.ContextWithFallback = true
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.AuthMiddleware(opts.JWTSecret))
	if opts.RateLimitRequests > 0 {
		router.Use(middleware.RateLimiter(opts.RateLimitRequests, opts.RateLimitWindow))
	}

	api := router.Group("/api/v1")

	controllers.Permission.RegisterRoutes(api)

	guarded := func(code string) *gin.RouterGroup {
		return api.Group("", middleware.RequirePermission(permissionService, code))
	}
	controllers.Permission.RegisterAdminRoutes(guarded(seed.CodePermissionManage))
	controllers.Menu.RegisterRoutes(guarded(seed.CodeMenuManage))
	controllers.Role.RegisterRoutes(guarded(seed.CodeRoleManage))
	controllers.Org.RegisterRoutes(guarded(seed.CodeOrgManage))
	controllers.Audit.RegisterRoutes(guarded(seed.CodeAuditView))

	return router
}
