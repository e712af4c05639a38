// dao/role_dao.go
package dao

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	navguard_errors "github.com/dev-mohitbeniwal/navguard/errors"
	logger "github.com/dev-mohitbeniwal/navguard/logging"
	"github.com/dev-mohitbeniwal/navguard/model"
)

func (s *GormStore) ListRoles(ctx context.Context) ([]*model.Role, error) {
	var roles []*model.Role
	if err := s.conn(ctx).Order("sort_order, id").Find(&roles).Error; err != nil {
		return nil, translate(err, nil, nil)
	}
	return roles, nil
}

func (s *GormStore) GetRole(ctx context.Context, id int64) (*model.Role, error) {
	var role model.Role
	if err := s.conn(ctx).First(&role, id).Error; err != nil {
		return nil, translate(err, navguard_errors.ErrRoleNotFound, nil)
	}
	return &role, nil
}

func (s *GormStore) InsertRole(ctx context.Context, role *model.Role) (int64, error) {
	if err := s.checkWritable(); err != nil {
		return 0, err
	}
	if err := s.conn(ctx).Create(role).Error; err != nil {
		return 0, translate(err, nil, navguard_errors.ErrRoleConflict)
	}
	logger.Debug("Role inserted", zap.Int64("roleID", role.ID), zap.String("code", role.Code))
	return role.ID, nil
}

func (s *GormStore) UpdateRole(ctx context.Context, role *model.Role) error {
	if err := s.checkWritable(); err != nil {
		return err
	}
	result := s.conn(ctx).Model(&model.Role{ID: role.ID}).
		Select("*").Omit("id", "created_at").
		Updates(role)
	if result.Error != nil {
		return translate(result.Error, navguard_errors.ErrRoleNotFound, navguard_errors.ErrRoleConflict)
	}
	if result.RowsAffected == 0 {
		return navguard_errors.ErrRoleNotFound
	}
	return nil
}

func (s *GormStore) DeleteRole(ctx context.Context, id int64) error {
	err := s.atomically(ctx, func(tx *gorm.DB) error {
		for _, binding := range []interface{}{&model.RoleMenu{}, &model.UserRole{}, &model.UserOrgRole{}} {
			if err := tx.Where("role_id = ?", id).Delete(binding).Error; err != nil {
				return err
			}
		}
		result := tx.Delete(&model.Role{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return navguard_errors.ErrRoleNotFound
		}
		return nil
	})
	return translate(err, nil, nil)
}

func (s *GormStore) ListRoleMenuGrants(ctx context.Context, roleID int64) ([]int64, error) {
	var ids []int64
	err := s.conn(ctx).Model(&model.RoleMenu{}).
		Where("role_id = ?", roleID).
		Order("menu_id").
		Pluck("menu_id", &ids).Error
	if err != nil {
		return nil, translate(err, nil, nil)
	}
	return ids, nil
}

func (s *GormStore) ReplaceRoleMenuGrants(ctx context.Context, roleID int64, menuIDs []int64) error {
	menuIDs = uniqueIDs(menuIDs)
	err := s.atomically(ctx, func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&model.Role{}, roleID).Error; err != nil {
			return translate(err, navguard_errors.ErrRoleNotFound, nil)
		}
		n, err := countExisting(tx, &model.Menu{}, menuIDs)
		if err != nil {
			return err
		}
		if n != int64(len(menuIDs)) {
			return navguard_errors.ErrMenuNotFound
		}
		if err := tx.Where("role_id = ?", roleID).Delete(&model.RoleMenu{}).Error; err != nil {
			return err
		}
		if len(menuIDs) == 0 {
			return nil
		}
		rows := make([]*model.RoleMenu, 0, len(menuIDs))
		for _, id := range menuIDs {
			rows = append(rows, &model.RoleMenu{RoleID: roleID, MenuID: id})
		}
		return tx.Create(rows).Error
	})
	return translate(err, nil, nil)
}

func (s *GormStore) ListRoleHolders(ctx context.Context, roleID int64) ([]int64, error) {
	var ids []int64
	err := s.conn(ctx).Raw(
		`SELECT user_id FROM user_roles WHERE role_id = ?
		 UNION
		 SELECT user_id FROM user_org_roles WHERE role_id = ?
		 ORDER BY user_id`, roleID, roleID,
	).Scan(&ids).Error
	if err != nil {
		return nil, translate(err, nil, nil)
	}
	return ids, nil
}
