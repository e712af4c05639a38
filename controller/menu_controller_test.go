package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dev-mohitbeniwal/navguard/controller"
	navguard_errors "github.com/dev-mohitbeniwal/navguard/errors"
	"github.com/dev-mohitbeniwal/navguard/model"
	"github.com/dev-mohitbeniwal/navguard/seed"
	"github.com/dev-mohitbeniwal/navguard/service"
	mock_service "github.com/dev-mohitbeniwal/navguard/test/service_mock"
)

func TestMenuController(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMenuService := mock_service.NewMockIMenuService(ctrl)
	menuController := controller.NewMenuController(mockMenuService)
	router := setupRouter(1)
	menuController.RegisterRoutes(router.Group("/"))

	t.Run("CreateMenu_Success", func(t *testing.T) {
		mockMenuService.EXPECT().
			CreateMenu(gomock.Any(), gomock.Any()).
			Return(&model.Menu{ID: 1, Name: "reports", Title: "Reports", Level: 1}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/menus", strings.NewReader(`{"name":"reports","title":"Reports"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("UpdateMenu_Cycle", func(t *testing.T) {
		mockMenuService.EXPECT().
			UpdateMenu(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m model.Menu) (*model.Menu, error) {
				assert.Equal(t, int64(4), m.ID)
				return nil, navguard_errors.ErrCycleDetected
			})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/menus/4", strings.NewReader(`{"name":"a","title":"A","parent_id":5}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("DeleteMenu_SystemProtected", func(t *testing.T) {
		mockMenuService.EXPECT().
			DeleteMenu(gomock.Any(), int64(2)).
			Return(navguard_errors.ErrSystemProtected)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/menus/2", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("GetMenu_InvalidID", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/menus/abc", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GetMenu_NotFound", func(t *testing.T) {
		mockMenuService.EXPECT().
			GetMenu(gomock.Any(), int64(99)).
			Return(nil, navguard_errors.ErrMenuNotFound)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/menus/99", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("SyncMenus_DefaultSeed", func(t *testing.T) {
		mockMenuService.EXPECT().
			SyncMenus(gomock.Any(), gomock.Any(), service.SyncOptions{RemoveOrphans: false}).
			DoAndReturn(func(_ context.Context, seeds []*model.SeedMenu, _ service.SyncOptions) (*model.SyncResult, error) {
				assert.Len(t, seeds, len(seed.Default()))
				return &model.SyncResult{SyncedCount: 9, Created: 9}, nil
			})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/menus/sync", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"synced_count":9,"created":9,"updated":0,"removed":0}`, w.Body.String())
	})

	t.Run("SyncMenus_CustomSeedWithOrphanRemoval", func(t *testing.T) {
		mockMenuService.EXPECT().
			SyncMenus(gomock.Any(), gomock.Len(1), service.SyncOptions{RemoveOrphans: true}).
			Return(&model.SyncResult{SyncedCount: 1, Removed: 3}, nil)

		w := httptest.NewRecorder()
		body := `{"menus":[{"name":"dashboard","title":"Dashboard"}],"remove_orphans":true}`
		req, _ := http.NewRequest("POST", "/menus/sync", strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ReorderMenus_Success", func(t *testing.T) {
		mockMenuService.EXPECT().
			ReorderMenus(gomock.Any(), []model.MenuOrder{{ID: 1, SortOrder: 2}}).
			Return(nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/menus/order", strings.NewReader(`[{"id":1,"sort_order":2}]`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
