package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	testify_mock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/navguard/audit"
	"github.com/dev-mohitbeniwal/navguard/controller"
	"github.com/dev-mohitbeniwal/navguard/dao"
	"github.com/dev-mohitbeniwal/navguard/middleware"
	"github.com/dev-mohitbeniwal/navguard/model"
	"github.com/dev-mohitbeniwal/navguard/seed"
	"github.com/dev-mohitbeniwal/navguard/service"
	test_mock "github.com/dev-mohitbeniwal/navguard/test/mock"
	"github.com/dev-mohitbeniwal/navguard/util"
)

const testSecret = "router-secret"

type harness struct {
	engine *gin.Engine
	audit  *test_mock.MockAuditService
	admin  int64
	member int64
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	store := dao.NewMemoryStore()
	admin := store.PutUser(&model.User{Username: "root"})
	member := store.PutUser(&model.User{Username: "jane"})

	auditSvc := &test_mock.MockAuditService{}
	auditSvc.On("LogAccess", testify_mock.Anything, testify_mock.Anything).Return(nil)

	services, err := service.InitializeServices(store,
		service.PermissionOptions{BypassRoles: []string{"super_admin"}, OrgAdminRole: "admin"},
		auditSvc, util.NewValidationUtil(), util.NewCacheService(nil, 0), util.NewEventBus())
	require.NoError(t, err)

	_, err = services.Menu.SyncMenus(ctx, seed.Default(), service.SyncOptions{})
	require.NoError(t, err)
	roles, err := services.Role.EnsureSystemRoles(ctx, []string{"super_admin"})
	require.NoError(t, err)
	require.NoError(t, services.Permission.ReplaceUserRoles(ctx, admin, []int64{roles[0].ID}))

	engine := SetupRouter(controller.InitializeControllers(services, auditSvc), services.Permission, Options{JWTSecret: testSecret})
	return &harness{engine: engine, audit: auditSvc, admin: admin, member: member}
}

func (h *harness) do(t *testing.T, userID int64, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, _ := http.NewRequest(method, path, strings.NewReader(body))
	if userID != 0 {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.Claims{
			StandardClaims: jwt.StandardClaims{
				Subject:   strconv.FormatInt(userID, 10),
				ExpiresAt: time.Now().Add(time.Hour).Unix(),
			},
		})
		signed, err := token.SignedString([]byte(testSecret))
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+signed)
	}
	w := httptest.NewRecorder()
	h.engine.ServeHTTP(w, req)
	return w
}

func TestRouter_Authentication(t *testing.T) {
	h := newHarness(t)

	w := h.do(t, 0, "GET", "/api/v1/me/menus", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_AdminSeesEverything(t *testing.T) {
	h := newHarness(t)

	w := h.do(t, h.admin, "GET", "/api/v1/me/menus/tree", "")
	require.Equal(t, http.StatusOK, w.Code)
	var forest []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &forest))
	assert.Len(t, forest, len(seed.Default()))

	w = h.do(t, h.admin, "GET", "/api/v1/me/admin", "")
	assert.JSONEq(t, `{"is_admin":true}`, w.Body.String())

	w = h.do(t, h.admin, "GET", "/api/v1/menus", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_MemberIsGuarded(t *testing.T) {
	h := newHarness(t)

	w := h.do(t, h.member, "GET", "/api/v1/me/menus/tree", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	for _, path := range []string{"/api/v1/menus", "/api/v1/roles", "/api/v1/organizations", "/api/v1/audit/logs", "/api/v1/users/1/overrides"} {
		w = h.do(t, h.member, "GET", path, "")
		assert.Equal(t, http.StatusForbidden, w.Code, path)
	}
}

func TestRouter_OverrideOpensGuardAndIsAttributed(t *testing.T) {
	h := newHarness(t)

	w := h.do(t, h.admin, "GET", "/api/v1/menus", "")
	require.Equal(t, http.StatusOK, w.Code)
	var menus []model.Menu
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &menus))
	var rolesMenu int64
	for _, m := range menus {
		if m.PermissionCode == seed.CodeRoleManage {
			rolesMenu = m.ID
		}
	}
	require.NotZero(t, rolesMenu)

	path := "/api/v1/users/" + strconv.FormatInt(h.member, 10) + "/overrides/" + strconv.FormatInt(rolesMenu, 10)
	w = h.do(t, h.admin, "PUT", path, `{"type":"grant"}`)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = h.do(t, h.member, "GET", "/api/v1/roles", "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = h.do(t, h.member, "GET", "/api/v1/menus", "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	h.audit.AssertCalled(t, "LogAccess", testify_mock.Anything, testify_mock.MatchedBy(func(entry audit.AuditLog) bool {
		return entry.Action == audit.ActionOverrideSet && entry.ActorID == h.admin && entry.EntityID == h.member
	}))
}
