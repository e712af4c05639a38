package controller_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	testify_mock "github.com/stretchr/testify/mock"

	"github.com/dev-mohitbeniwal/navguard/audit"
	"github.com/dev-mohitbeniwal/navguard/controller"
	test_mock "github.com/dev-mohitbeniwal/navguard/test/mock"
)

func TestAuditController(t *testing.T) {
	t.Run("QueryLogs_Filters", func(t *testing.T) {
		mockAuditService := new(test_mock.MockAuditService)
		router := setupRouter(1)
		controller.NewAuditController(mockAuditService).RegisterRoutes(router.Group("/"))

		from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
		mockAuditService.On("QueryLogs", testify_mock.Anything, audit.Query{
			From: from, To: to, ActorID: 7, EntityType: "menu",
		}).Return([]audit.AuditLog{{ActorID: 7, Action: audit.ActionMenuSync, EntityType: "menu"}}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/audit/logs?from=2026-01-01T00:00:00Z&to=2026-01-02T00:00:00Z&actor_id=7&entity_type=menu", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), audit.ActionMenuSync)
		mockAuditService.AssertExpectations(t)
	})

	t.Run("QueryLogs_DefaultWindow", func(t *testing.T) {
		mockAuditService := new(test_mock.MockAuditService)
		router := setupRouter(1)
		controller.NewAuditController(mockAuditService).RegisterRoutes(router.Group("/"))

		mockAuditService.On("QueryLogs", testify_mock.Anything, testify_mock.MatchedBy(func(q audit.Query) bool {
			return q.To.Sub(q.From) == 24*time.Hour && q.ActorID == 0
		})).Return([]audit.AuditLog{}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/audit/logs", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockAuditService.AssertExpectations(t)
	})

	t.Run("QueryLogs_InvalidParams", func(t *testing.T) {
		mockAuditService := new(test_mock.MockAuditService)
		router := setupRouter(1)
		controller.NewAuditController(mockAuditService).RegisterRoutes(router.Group("/"))

		for _, q := range []string{"from=yesterday", "actor_id=-1", "entity_id=x"} {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/audit/logs?"+q, nil)
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code, q)
		}
		mockAuditService.AssertNotCalled(t, "QueryLogs", testify_mock.Anything, testify_mock.Anything)
	})

	t.Run("QueryLogs_BackendFailure", func(t *testing.T) {
		mockAuditService := new(test_mock.MockAuditService)
		router := setupRouter(1)
		controller.NewAuditController(mockAuditService).RegisterRoutes(router.Group("/"))

		mockAuditService.On("QueryLogs", testify_mock.Anything, testify_mock.Anything).
			Return([]audit.AuditLog(nil), errors.New("cluster unavailable"))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/audit/logs", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
