package controller_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dev-mohitbeniwal/navguard/controller"
	navguard_errors "github.com/dev-mohitbeniwal/navguard/errors"
	"github.com/dev-mohitbeniwal/navguard/model"
	mock_service "github.com/dev-mohitbeniwal/navguard/test/service_mock"
	"github.com/dev-mohitbeniwal/navguard/tree"
)

func TestOrganizationController(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrgService := mock_service.NewMockIOrganizationService(ctrl)
	orgController := controller.NewOrganizationController(mockOrgService)
	router := setupRouter(1)
	orgController.RegisterRoutes(router.Group("/"))

	t.Run("MoveOrganizations_Cycle", func(t *testing.T) {
		parent := int64(3)
		mockOrgService.EXPECT().
			MoveOrganizations(gomock.Any(), []model.OrganizationMove{{ID: 1, ParentID: &parent}}).
			Return(navguard_errors.ErrCycleDetected)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/organizations/move", strings.NewReader(`[{"id":1,"parent_id":3}]`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("GetOrganizationTree_Success", func(t *testing.T) {
		parent := int64(1)
		orgs := []*model.Organization{{ID: 1, Name: "A", Code: "a"}, {ID: 2, Name: "B", Code: "b", ParentID: &parent}}
		mockOrgService.EXPECT().
			GetOrganizationTree(gomock.Any()).
			Return(tree.BuildTree(orgs, nil), nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/organizations/tree", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"children"`)
	})

	t.Run("CreateOrganization_DefaultsToActive", func(t *testing.T) {
		mockOrgService.EXPECT().
			CreateOrganization(gomock.Any(), model.Organization{Name: "Acme", IsActive: true}).
			Return(&model.Organization{ID: 5, Name: "Acme", Code: "acme", IsActive: true}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/organizations", strings.NewReader(`{"name":"Acme"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("CreateOrganization_KeepsExplicitInactive", func(t *testing.T) {
		mockOrgService.EXPECT().
			CreateOrganization(gomock.Any(), model.Organization{Name: "Dormant", IsActive: false}).
			Return(&model.Organization{ID: 6, Name: "Dormant", Code: "dormant"}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/organizations", strings.NewReader(`{"name":"Dormant","is_active":false}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"is_active":false`)
	})

	t.Run("CreateOrganization_InvalidBody", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/organizations", strings.NewReader(`{"name":`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("UpdateOrganization_Success", func(t *testing.T) {
		mockOrgService.EXPECT().
			UpdateOrganization(gomock.Any(), model.Organization{ID: 2, Name: "B2"}).
			Return(&model.Organization{ID: 2, Name: "B2", Code: "b"}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/organizations/2", strings.NewReader(`{"name":"B2"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
