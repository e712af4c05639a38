package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dev-mohitbeniwal/navguard/audit"
	"github.com/dev-mohitbeniwal/navguard/db"
	navguard_errors "github.com/dev-mohitbeniwal/navguard/errors"
	mock_service "github.com/dev-mohitbeniwal/navguard/test/service_mock"
)

const testSecret = "test-secret"

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, subject string, expiresAt int64) string {
	t.Helper()
	token := jwt.NewWithClaims(method, Claims{
		StandardClaims: jwt.StandardClaims{Subject: subject, ExpiresAt: expiresAt},
		Username:       "jane",
	})
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return "Bearer " + signed
}

func newTestEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.ContextWithFallback = true
	r.Use(handlers...)
	r.GET("/probe", func(c *gin.Context) {
		userID, _ := c.Get("userID")
		c.JSON(http.StatusOK, gin.H{"user": userID, "actor": audit.ActorFrom(c)})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	router := newTestEngine(AuthMiddleware(testSecret))
	future := time.Now().Add(time.Hour).Unix()

	t.Run("ValidToken", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/probe", nil)
		req.Header.Set("Authorization", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), "42", future))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user":42,"actor":42}`, w.Body.String())
	})

	cases := map[string]string{
		"MissingHeader":  "",
		"WrongSecret":    signToken(t, jwt.SigningMethodHS256, []byte("other"), "42", future),
		"Expired":        signToken(t, jwt.SigningMethodHS256, []byte(testSecret), "42", time.Now().Add(-time.Hour).Unix()),
		"NonNumericUser": signToken(t, jwt.SigningMethodHS256, []byte(testSecret), "jane", future),
		"Garbage":        "Bearer not-a-token",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/probe", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRequirePermission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPermissionService := mock_service.NewMockIPermissionService(ctrl)
	setUser := func(c *gin.Context) { c.Set("userID", int64(7)); c.Next() }
	router := newTestEngine(setUser, RequirePermission(mockPermissionService, "system:menu:manage"))

	t.Run("Granted", func(t *testing.T) {
		orgID := int64(3)
		mockPermissionService.EXPECT().
			CheckPermissionCode(gomock.Any(), int64(7), &orgID, "system:menu:manage").
			Return(true, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/probe?org_id=3", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Denied", func(t *testing.T) {
		mockPermissionService.EXPECT().
			CheckPermissionCode(gomock.Any(), int64(7), nil, "system:menu:manage").
			Return(false, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/probe", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("StoreFailure", func(t *testing.T) {
		mockPermissionService.EXPECT().
			CheckPermissionCode(gomock.Any(), int64(7), nil, "system:menu:manage").
			Return(false, navguard_errors.ErrDatabaseOperation)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/probe", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("InvalidOrg", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/probe?org_id=x", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Anonymous", func(t *testing.T) {
		anon := newTestEngine(RequirePermission(mockPermissionService, "system:menu:manage"))
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/probe", nil)
		anon.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRateLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	db.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { db.RedisClient = nil }()

	router := newTestEngine(RateLimiter(2, time.Minute))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/probe", nil)
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRequestID(t *testing.T) {
	router := newTestEngine(RequestID())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/probe", nil)
	router.ServeHTTP(w, req)
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/probe", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}
