// service/role_service.go
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/navguard/audit"
	"github.com/dev-mohitbeniwal/navguard/dao"
	navguard_errors "github.com/dev-mohitbeniwal/navguard/errors"
	logger "github.com/dev-mohitbeniwal/navguard/logging"
	"github.com/dev-mohitbeniwal/navguard/model"
	"github.com/dev-mohitbeniwal/navguard/util"
)

// IRoleService defines the interface for role operations
type IRoleService interface {
	CreateRole(ctx context.Context, role model.Role) (*model.Role, error)
	UpdateRole(ctx context.Context, role model.Role) (*model.Role, error)
	DeleteRole(ctx context.Context, roleID int64) error
	GetRole(ctx context.Context, roleID int64) (*model.Role, error)
	ListRoles(ctx context.Context) ([]*model.Role, error)
	GetRoleMenus(ctx context.Context, roleID int64) ([]int64, error)
	ReplaceRoleMenus(ctx context.Context, roleID int64, menuIDs []int64) error
	EnsureSystemRoles(ctx context.Context, codes []string) ([]*model.Role, error)
}

// RoleService handles business logic for role operations
type RoleService struct {
	store          dao.Store
	validationUtil *util.ValidationUtil
	eventBus       *util.EventBus
	auditService   audit.Service
}

var _ IRoleService = &RoleService{}

// NewRoleService creates a new instance of RoleService
func NewRoleService(store dao.Store, validationUtil *util.ValidationUtil, eventBus *util.EventBus, auditService audit.Service) *RoleService {
	return &RoleService{
		store:          store,
		validationUtil: validationUtil,
		eventBus:       eventBus,
		auditService:   auditService,
	}
}

// CreateRole stores a role under a unique code. A supplied code is used as the base,
// otherwise the base is derived from the name; collisions get a numeric suffix.
func (s *RoleService) CreateRole(ctx context.Context, role model.Role) (*model.Role, error) {
	if err := s.validationUtil.ValidateRole(&role); err != nil {
		logger.Error("Invalid role data", zap.Error(err))
		return nil, err
	}
	role.ID = 0

	base := strings.TrimSpace(role.Code)
	if base == "" {
		base = util.CodeBase(role.Name)
	}

	// Each attempt is its own statement: a failed insert poisons a Postgres transaction.
	code, err := util.GenerateUniqueCode(ctx, base,
		func(ctx context.Context, code string) (bool, error) {
			return s.store.IsCodeTaken(ctx, dao.TableRoles, code)
		},
		func(ctx context.Context, code string) error {
			candidate := role
			candidate.Code = code
			if _, err := s.store.InsertRole(ctx, &candidate); err != nil {
				return err
			}
			role = candidate
			return nil
		})
	if err != nil {
		logger.Error("Failed to create role", zap.Error(err), zap.String("name", role.Name))
		return nil, err
	}

	logger.Info("Role created", zap.Int64("roleID", role.ID), zap.String("code", code))
	audit.Record(ctx, s.auditService, audit.NewEntry(ctx, audit.ActionRoleCreate, "role", role.ID, role))
	return &role, nil
}

// UpdateRole replaces a role's mutable fields. System roles keep their name and code.
func (s *RoleService) UpdateRole(ctx context.Context, role model.Role) (*model.Role, error) {
	if err := s.validationUtil.ValidateRole(&role); err != nil {
		logger.Error("Invalid role data", zap.Error(err))
		return nil, err
	}

	err := s.store.Transaction(ctx, func(tx dao.Store) error {
		existing, err := tx.GetRole(ctx, role.ID)
		if err != nil {
			return err
		}
		if role.Code == "" {
			role.Code = existing.Code
		}
		if existing.IsSystem && (existing.Name != role.Name || existing.Code != role.Code) {
			return navguard_errors.ErrSystemProtected
		}
		role.CreatedAt = existing.CreatedAt
		return tx.UpdateRole(ctx, &role)
	})
	if err != nil {
		logger.Error("Failed to update role", zap.Error(err), zap.Int64("roleID", role.ID))
		return nil, err
	}

	logger.Info("Role updated", zap.Int64("roleID", role.ID))
	s.afterRoleChange(ctx, role.ID)
	audit.Record(ctx, s.auditService, audit.NewEntry(ctx, audit.ActionRoleUpdate, "role", role.ID, role))
	return &role, nil
}

// DeleteRole removes a role nobody holds, globally or in any organization.
func (s *RoleService) DeleteRole(ctx context.Context, roleID int64) error {
	err := s.store.Transaction(ctx, func(tx dao.Store) error {
		role, err := tx.GetRole(ctx, roleID)
		if err != nil {
			return err
		}
		if role.IsSystem {
			return navguard_errors.ErrSystemProtected
		}
		holders, err := tx.ListRoleHolders(ctx, roleID)
		if err != nil {
			return err
		}
		if len(holders) > 0 {
			return navguard_errors.ErrRoleInUse
		}
		return tx.DeleteRole(ctx, roleID)
	})
	if err != nil {
		logger.Warn("Role deletion rejected", zap.Error(err), zap.Int64("roleID", roleID))
		return err
	}

	logger.Info("Role deleted", zap.Int64("roleID", roleID))
	audit.Record(ctx, s.auditService, audit.NewEntry(ctx, audit.ActionRoleDelete, "role", roleID, nil))
	return nil
}

func (s *RoleService) GetRole(ctx context.Context, roleID int64) (*model.Role, error) {
	return s.store.GetRole(ctx, roleID)
}

func (s *RoleService) ListRoles(ctx context.Context) ([]*model.Role, error) {
	return s.store.ListRoles(ctx)
}

func (s *RoleService) GetRoleMenus(ctx context.Context, roleID int64) ([]int64, error) {
	var menuIDs []int64
	err := s.store.Transaction(ctx, func(tx dao.Store) error {
		if _, err := tx.GetRole(ctx, roleID); err != nil {
			return err
		}
		var err error
		menuIDs, err = tx.ListRoleMenuGrants(ctx, roleID)
		return err
	}, dao.ReadSnapshot)
	return menuIDs, err
}

// ReplaceRoleMenus sets the complete grant list of a role. Unknown menu ids reject the
// whole call.
func (s *RoleService) ReplaceRoleMenus(ctx context.Context, roleID int64, menuIDs []int64) error {
	err := s.store.Transaction(ctx, func(tx dao.Store) error {
		return tx.ReplaceRoleMenuGrants(ctx, roleID, menuIDs)
	})
	if err != nil {
		logger.Error("Failed to replace role menus", zap.Error(err), zap.Int64("roleID", roleID))
		return err
	}

	logger.Info("Role menus replaced", zap.Int64("roleID", roleID), zap.Int("menus", len(menuIDs)))
	s.afterRoleChange(ctx, roleID)
	audit.Record(ctx, s.auditService, audit.NewEntry(ctx, audit.ActionRoleMenusReplace, "role", roleID, menuIDs))
	return nil
}

// EnsureSystemRoles creates a system role for every code no role carries yet, and returns
// the roles for codes in order. Existing roles are left untouched.
func (s *RoleService) EnsureSystemRoles(ctx context.Context, codes []string) ([]*model.Role, error) {
	roles, err := s.store.ListRoles(ctx)
	if err != nil {
		return nil, err
	}
	byCode := make(map[string]*model.Role, len(roles))
	for _, r := range roles {
		byCode[r.Code] = r
	}

	out := make([]*model.Role, 0, len(codes))
	for _, code := range codes {
		if r, ok := byCode[code]; ok {
			out = append(out, r)
			continue
		}
		created, err := s.CreateRole(ctx, model.Role{Name: code, Code: code, IsSystem: true})
		if err != nil {
			return nil, err
		}
		if created.Code != code {
			// Someone else took the code between the listing and the insert.
			logger.Warn("System role code was taken concurrently", zap.String("code", code))
		}
		byCode[code] = created
		out = append(out, created)
	}
	return out, nil
}

func (s *RoleService) afterRoleChange(ctx context.Context, roleID int64) {
	if err := s.eventBus.PublishSync(ctx, util.EventRoleMenusUpdated, util.RolePayload{RoleID: roleID}); err != nil {
		logger.Error("Failed to propagate role change", zap.Error(err), zap.Int64("roleID", roleID))
	}
}
