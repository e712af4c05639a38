// service/permission_service.go
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/navguard/audit"
	"github.com/dev-mohitbeniwal/navguard/dao"
	navguard_errors "github.com/dev-mohitbeniwal/navguard/errors"
	logger "github.com/dev-mohitbeniwal/navguard/logging"
	"github.com/dev-mohitbeniwal/navguard/model"
	pdp_dao "github.com/dev-mohitbeniwal/navguard/pdp/dao"
	"github.com/dev-mohitbeniwal/navguard/pdp/engine"
	pdp_model "github.com/dev-mohitbeniwal/navguard/pdp/model"
	"github.com/dev-mohitbeniwal/navguard/tree"
	"github.com/dev-mohitbeniwal/navguard/util"
)

// IPermissionService resolves effective menu permissions and administers per-user grants.
type IPermissionService interface {
	ResolveUserMenuPermissions(ctx context.Context, userID int64, orgID *int64) ([]*model.EffectivePermission, error)
	GetUserMenuTree(ctx context.Context, userID int64, orgID *int64) ([]*tree.Node[*model.Menu], error)
	CheckSingleMenuPermission(ctx context.Context, userID int64, orgID *int64, menuID int64) (*model.EffectivePermission, error)
	CheckPermissionCode(ctx context.Context, userID int64, orgID *int64, code string) (bool, error)
	IsEffectiveAdmin(ctx context.Context, userID int64, orgID *int64) (bool, error)

	ListUserOverrides(ctx context.Context, userID int64) ([]*model.UserMenuOverride, error)
	SetUserOverride(ctx context.Context, userID, menuID int64, overrideType model.OverrideType) error
	RemoveUserOverride(ctx context.Context, userID, menuID int64) error

	ListUserRoles(ctx context.Context, userID int64, orgID *int64) ([]*model.Role, error)
	ReplaceUserRoles(ctx context.Context, userID int64, roleIDs []int64) error
	ReplaceUserRolesInOrg(ctx context.Context, userID, orgID int64, roleIDs []int64) error
}

// PermissionOptions configures resolution.
type PermissionOptions struct {
	BypassRoles  []string
	OrgAdminRole string
	// AutoIncludeAncestors adds the ancestors of every granted menu to the menu tree,
	// so a granted page is always reachable. Off by default.
	AutoIncludeAncestors bool
}

type PermissionService struct {
	store          dao.Store
	requestDAO     *pdp_dao.AccessRequestDAO
	resolver       *engine.Resolver
	validationUtil *util.ValidationUtil
	cacheService   *util.CacheService
	eventBus       *util.EventBus
	auditService   audit.Service
	opts           PermissionOptions
}

var _ IPermissionService = &PermissionService{}

func NewPermissionService(
	store dao.Store,
	opts PermissionOptions,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	eventBus *util.EventBus,
	auditService audit.Service,
) *PermissionService {
	return &PermissionService{
		store:      store,
		requestDAO: pdp_dao.NewAccessRequestDAO(),
		resolver: engine.NewResolver(engine.Options{
			BypassRoles:  opts.BypassRoles,
			OrgAdminRole: opts.OrgAdminRole,
		}),
		validationUtil: validationUtil,
		cacheService:   cacheService,
		eventBus:       eventBus,
		auditService:   auditService,
		opts:           opts,
	}
}

// snapshot loads the user's grant sources and the full menu list from one read-only
// transaction. A nil request means the user does not exist.
func (s *PermissionService) snapshot(ctx context.Context, userID int64, orgID *int64) (*pdp_model.AccessRequest, []*model.Menu, error) {
	var (
		req   *pdp_model.AccessRequest
		menus []*model.Menu
	)
	err := s.store.Transaction(ctx, func(tx dao.Store) error {
		var err error
		req, err = s.requestDAO.BuildAccessRequest(ctx, tx, userID, orgID)
		if errors.Is(err, navguard_errors.ErrUserNotFound) {
			req = nil
			return nil
		}
		if err != nil {
			return err
		}
		menus, err = tx.ListMenus(ctx)
		return err
	}, dao.ReadSnapshot)
	if err != nil {
		return nil, nil, err
	}
	return req, menus, nil
}

func (s *PermissionService) ResolveUserMenuPermissions(ctx context.Context, userID int64, orgID *int64) ([]*model.EffectivePermission, error) {
	req, menus, err := s.snapshot(ctx, userID, orgID)
	if err != nil {
		logger.Error("Failed to load permission snapshot", zap.Error(err), zap.Int64("userID", userID))
		return nil, err
	}
	if req == nil {
		logger.Debug("Unknown user resolves to an empty permission set", zap.Int64("userID", userID))
		return []*model.EffectivePermission{}, nil
	}
	return s.resolver.ResolveAll(req, menus), nil
}

func (s *PermissionService) GetUserMenuTree(ctx context.Context, userID int64, orgID *int64) ([]*tree.Node[*model.Menu], error) {
	// The version is read before resolving so a write committed in between keeps the
	// resolved set out of the cache.
	version, err := s.cacheService.Version(ctx, userID)
	cacheable := err == nil
	if err != nil {
		logger.Warn("Menu cache version unavailable, resolving from store", zap.Error(err), zap.Int64("userID", userID))
	} else {
		cached, hit, err := s.cacheService.GetUserMenus(ctx, userID, orgID, version)
		if err != nil {
			logger.Warn("Menu cache read failed, resolving from store", zap.Error(err), zap.Int64("userID", userID))
		} else if hit {
			return tree.BuildTree(cached, nil), nil
		}
	}

	perms, err := s.ResolveUserMenuPermissions(ctx, userID, orgID)
	if err != nil {
		return nil, err
	}

	enabled := make([]*model.Menu, 0, len(perms))
	visible := make([]*model.Menu, 0, len(perms))
	for _, p := range perms {
		enabled = append(enabled, p.Menu)
		if p.HasPermission {
			visible = append(visible, p.Menu)
		}
	}
	if s.opts.AutoIncludeAncestors {
		visible = tree.WithAncestors(enabled, visible)
	}

	if cacheable {
		if err := s.cacheService.SetUserMenus(ctx, userID, orgID, version, visible); err != nil {
			logger.Warn("Failed to cache menu set", zap.Error(err), zap.Int64("userID", userID))
		}
	}
	return tree.BuildTree(visible, nil), nil
}

func (s *PermissionService) CheckSingleMenuPermission(ctx context.Context, userID int64, orgID *int64, menuID int64) (*model.EffectivePermission, error) {
	denied := &model.EffectivePermission{HasPermission: false, Source: model.SourceNone}

	var (
		req  *pdp_model.AccessRequest
		menu *model.Menu
	)
	err := s.store.Transaction(ctx, func(tx dao.Store) error {
		var err error
		menu, err = tx.GetMenu(ctx, menuID)
		if errors.Is(err, navguard_errors.ErrMenuNotFound) {
			menu = nil
			return nil
		}
		if err != nil {
			return err
		}
		req, err = s.requestDAO.BuildAccessRequest(ctx, tx, userID, orgID)
		if errors.Is(err, navguard_errors.ErrUserNotFound) {
			req = nil
			return nil
		}
		return err
	}, dao.ReadSnapshot)
	if err != nil {
		return nil, err
	}
	if menu == nil || menu.IsDisabled {
		return denied, nil
	}
	denied.Menu = menu
	if req == nil {
		return denied, nil
	}

	d := s.resolver.Prepare(req).Decide(menu.ID)
	return &model.EffectivePermission{Menu: menu, HasPermission: d.Allowed, Source: d.Source}, nil
}

// CheckPermissionCode reports whether any enabled menu carrying code is granted to the user.
func (s *PermissionService) CheckPermissionCode(ctx context.Context, userID int64, orgID *int64, code string) (bool, error) {
	if code == "" {
		return false, nil
	}
	perms, err := s.ResolveUserMenuPermissions(ctx, userID, orgID)
	if err != nil {
		return false, err
	}
	for _, p := range perms {
		if p.HasPermission && p.Menu.PermissionCode == code {
			return true, nil
		}
	}
	return false, nil
}

func (s *PermissionService) IsEffectiveAdmin(ctx context.Context, userID int64, orgID *int64) (bool, error) {
	var req *pdp_model.AccessRequest
	err := s.store.Transaction(ctx, func(tx dao.Store) error {
		var err error
		req, err = s.requestDAO.BuildAccessRequest(ctx, tx, userID, orgID)
		if errors.Is(err, navguard_errors.ErrUserNotFound) {
			req = nil
			return nil
		}
		return err
	}, dao.ReadSnapshot)
	if err != nil || req == nil {
		return false, err
	}
	return s.resolver.IsEffectiveAdmin(req), nil
}

func (s *PermissionService) ListUserOverrides(ctx context.Context, userID int64) ([]*model.UserMenuOverride, error) {
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.store.ListUserMenuOverrides(ctx, userID)
}

func (s *PermissionService) SetUserOverride(ctx context.Context, userID, menuID int64, overrideType model.OverrideType) error {
	if err := s.validationUtil.ValidateOverrideType(overrideType); err != nil {
		return err
	}
	if err := s.store.UpsertUserMenuOverride(ctx, userID, menuID, overrideType); err != nil {
		logger.Error("Failed to set user menu override",
			zap.Error(err),
			zap.Int64("userID", userID),
			zap.Int64("menuID", menuID))
		return err
	}

	logger.Info("User menu override set",
		zap.Int64("userID", userID),
		zap.Int64("menuID", menuID),
		zap.String("type", string(overrideType)))
	s.afterUserChange(ctx, util.EventOverrideChanged, userID)
	audit.Record(ctx, s.auditService, audit.NewEntry(ctx, audit.ActionOverrideSet, "user", userID,
		map[string]interface{}{"menu_id": menuID, "type": overrideType}))
	return nil
}

func (s *PermissionService) RemoveUserOverride(ctx context.Context, userID, menuID int64) error {
	if err := s.store.DeleteUserMenuOverride(ctx, userID, menuID); err != nil {
		return err
	}

	logger.Info("User menu override removed", zap.Int64("userID", userID), zap.Int64("menuID", menuID))
	s.afterUserChange(ctx, util.EventOverrideChanged, userID)
	audit.Record(ctx, s.auditService, audit.NewEntry(ctx, audit.ActionOverrideRemove, "user", userID,
		map[string]interface{}{"menu_id": menuID}))
	return nil
}

func (s *PermissionService) ListUserRoles(ctx context.Context, userID int64, orgID *int64) ([]*model.Role, error) {
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.store.ListUserRoles(ctx, userID, orgID)
}

func (s *PermissionService) ReplaceUserRoles(ctx context.Context, userID int64, roleIDs []int64) error {
	if err := s.store.ReplaceUserRoles(ctx, userID, roleIDs); err != nil {
		logger.Error("Failed to replace user roles", zap.Error(err), zap.Int64("userID", userID))
		return err
	}

	logger.Info("User roles replaced", zap.Int64("userID", userID), zap.Int64s("roleIDs", roleIDs))
	s.afterUserChange(ctx, util.EventUserRolesUpdated, userID)
	audit.Record(ctx, s.auditService, audit.NewEntry(ctx, audit.ActionUserRolesReplace, "user", userID,
		map[string]interface{}{"role_ids": roleIDs}))
	return nil
}

func (s *PermissionService) ReplaceUserRolesInOrg(ctx context.Context, userID, orgID int64, roleIDs []int64) error {
	if err := s.store.ReplaceUserRolesInOrg(ctx, userID, orgID, roleIDs); err != nil {
		logger.Error("Failed to replace user roles in organization",
			zap.Error(err),
			zap.Int64("userID", userID),
			zap.Int64("orgID", orgID))
		return err
	}

	logger.Info("User organization roles replaced",
		zap.Int64("userID", userID),
		zap.Int64("orgID", orgID),
		zap.Int64s("roleIDs", roleIDs))
	s.afterUserChange(ctx, util.EventUserRolesUpdated, userID)
	audit.Record(ctx, s.auditService, audit.NewEntry(ctx, audit.ActionUserRolesReplace, "user", userID,
		map[string]interface{}{"org_id": orgID, "role_ids": roleIDs}))
	return nil
}

func (s *PermissionService) afterUserChange(ctx context.Context, eventType string, userID int64) {
	if err := s.eventBus.PublishSync(ctx, eventType, util.UserScopedPayload{UserIDs: []int64{userID}}); err != nil {
		logger.Error("Failed to propagate user permission change", zap.Error(err), zap.String("event", eventType))
	}
}
