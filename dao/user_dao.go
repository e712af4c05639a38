// dao/user_dao.go
package dao

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	navguard_errors "github.com/dev-mohitbeniwal/navguard/errors"
	logger "github.com/dev-mohitbeniwal/navguard/logging"
	"github.com/dev-mohitbeniwal/navguard/model"
)

func (s *GormStore) GetUser(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	if err := s.conn(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err, navguard_errors.ErrUserNotFound, nil)
	}
	return &user, nil
}

func (s *GormStore) ListUserRoles(ctx context.Context, userID int64, orgID *int64) ([]*model.Role, error) {
	var roles []*model.Role
	q := s.conn(ctx).Model(&model.Role{})
	if orgID == nil {
		q = q.Joins("JOIN user_roles ur ON ur.role_id = roles.id").
			Where("ur.user_id = ?", userID)
	} else {
		q = q.Joins("JOIN user_org_roles uor ON uor.role_id = roles.id").
			Where("uor.user_id = ? AND uor.org_id = ?", userID, *orgID)
	}
	if err := q.Order("roles.sort_order, roles.id").Find(&roles).Error; err != nil {
		return nil, translate(err, nil, nil)
	}
	return roles, nil
}

func (s *GormStore) ReplaceUserRoles(ctx context.Context, userID int64, roleIDs []int64) error {
	roleIDs = uniqueIDs(roleIDs)
	err := s.atomically(ctx, func(tx *gorm.DB) error {
		if err := checkUserAndRoleRows(tx, userID, roleIDs); err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&model.UserRole{}).Error; err != nil {
			return err
		}
		if len(roleIDs) == 0 {
			return nil
		}
		rows := make([]*model.UserRole, 0, len(roleIDs))
		for _, id := range roleIDs {
			rows = append(rows, &model.UserRole{UserID: userID, RoleID: id})
		}
		return tx.Create(rows).Error
	})
	return translate(err, nil, nil)
}

func (s *GormStore) ReplaceUserRolesInOrg(ctx context.Context, userID, orgID int64, roleIDs []int64) error {
	roleIDs = uniqueIDs(roleIDs)
	err := s.atomically(ctx, func(tx *gorm.DB) error {
		if err := checkUserAndRoleRows(tx, userID, roleIDs); err != nil {
			return err
		}
		if err := tx.Select("id").First(&model.Organization{}, orgID).Error; err != nil {
			return translate(err, navguard_errors.ErrOrganizationNotFound, nil)
		}
		if err := tx.Where("user_id = ? AND org_id = ?", userID, orgID).Delete(&model.UserOrgRole{}).Error; err != nil {
			return err
		}
		if len(roleIDs) == 0 {
			return nil
		}
		rows := make([]*model.UserOrgRole, 0, len(roleIDs))
		for _, id := range roleIDs {
			rows = append(rows, &model.UserOrgRole{UserID: userID, OrgID: orgID, RoleID: id})
		}
		return tx.Create(rows).Error
	})
	return translate(err, nil, nil)
}

func checkUserAndRoleRows(tx *gorm.DB, userID int64, roleIDs []int64) error {
	if err := tx.Select("id").First(&model.User{}, userID).Error; err != nil {
		return translate(err, navguard_errors.ErrUserNotFound, nil)
	}
	n, err := countExisting(tx, &model.Role{}, roleIDs)
	if err != nil {
		return err
	}
	if n != int64(len(roleIDs)) {
		return navguard_errors.ErrRoleNotFound
	}
	return nil
}

func (s *GormStore) ListUserMenuOverrides(ctx context.Context, userID int64) ([]*model.UserMenuOverride, error) {
	var overrides []*model.UserMenuOverride
	err := s.conn(ctx).Where("user_id = ?", userID).Order("menu_id").Find(&overrides).Error
	if err != nil {
		return nil, translate(err, nil, nil)
	}
	return overrides, nil
}

func (s *GormStore) UpsertUserMenuOverride(ctx context.Context, userID, menuID int64, overrideType model.OverrideType) error {
	err := s.atomically(ctx, func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&model.User{}, userID).Error; err != nil {
			return translate(err, navguard_errors.ErrUserNotFound, nil)
		}
		if err := tx.Select("id").First(&model.Menu{}, menuID).Error; err != nil {
			return translate(err, navguard_errors.ErrMenuNotFound, nil)
		}
		now := time.Now()
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "menu_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"type", "updated_at"}),
		}).Create(&model.UserMenuOverride{
			UserID:    userID,
			MenuID:    menuID,
			Type:      overrideType,
			CreatedAt: now,
			UpdatedAt: now,
		}).Error
	})
	if err == nil {
		logger.Debug("User menu override upserted",
			zap.Int64("userID", userID),
			zap.Int64("menuID", menuID),
			zap.String("type", string(overrideType)))
	}
	return translate(err, nil, nil)
}

func (s *GormStore) DeleteUserMenuOverride(ctx context.Context, userID, menuID int64) error {
	if err := s.checkWritable(); err != nil {
		return err
	}
	result := s.conn(ctx).Where("user_id = ? AND menu_id = ?", userID, menuID).Delete(&model.UserMenuOverride{})
	if result.Error != nil {
		return translate(result.Error, nil, nil)
	}
	if result.RowsAffected == 0 {
		return navguard_errors.ErrOverrideNotFound
	}
	return nil
}
