package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	testify_mock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/navguard/dao"
	"github.com/dev-mohitbeniwal/navguard/model"
	test_mock "github.com/dev-mohitbeniwal/navguard/test/mock"
	"github.com/dev-mohitbeniwal/navguard/util"
)

type fixture struct {
	ctx   context.Context
	store *dao.MemoryStore
	redis *miniredis.Miniredis
	audit *test_mock.MockAuditService
	svc   *Services
}

func newFixture(t *testing.T, opts PermissionOptions) *fixture {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	auditSvc := &test_mock.MockAuditService{}
	auditSvc.On("LogAccess", testify_mock.Anything, testify_mock.Anything).Return(nil)

	if opts.BypassRoles == nil {
		opts.BypassRoles = []string{"super_admin", "admin"}
	}
	if opts.OrgAdminRole == "" {
		opts.OrgAdminRole = "admin"
	}

	store := dao.NewMemoryStore()
	svc, err := InitializeServices(store, opts, auditSvc, util.NewValidationUtil(),
		util.NewCacheService(client, time.Hour), util.NewEventBus())
	require.NoError(t, err)

	return &fixture{ctx: context.Background(), store: store, redis: mr, audit: auditSvc, svc: svc}
}

func (f *fixture) menu(t *testing.T, name string, parentID *int64, sortOrder int) int64 {
	t.Helper()
	m, err := f.svc.Menu.CreateMenu(f.ctx, model.Menu{Name: name, Title: name, ParentID: parentID, SortOrder: sortOrder})
	require.NoError(t, err)
	return m.ID
}

func (f *fixture) role(t *testing.T, name, code string, menuIDs ...int64) int64 {
	t.Helper()
	r, err := f.svc.Role.CreateRole(f.ctx, model.Role{Name: name, Code: code})
	require.NoError(t, err)
	if len(menuIDs) > 0 {
		require.NoError(t, f.svc.Role.ReplaceRoleMenus(f.ctx, r.ID, menuIDs))
	}
	return r.ID
}

func (f *fixture) org(t *testing.T, name string, parentID *int64) int64 {
	t.Helper()
	o, err := f.svc.Org.CreateOrganization(f.ctx, model.Organization{Name: name, ParentID: parentID, IsActive: true})
	require.NoError(t, err)
	return o.ID
}

func ptr[T any](v T) *T { return &v }

func byName(perms []*model.EffectivePermission) map[string]*model.EffectivePermission {
	out := make(map[string]*model.EffectivePermission, len(perms))
	for _, p := range perms {
		out[p.Menu.Name] = p
	}
	return out
}
