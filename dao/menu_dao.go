// dao/menu_dao.go
package dao

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	navguard_errors "github.com/dev-mohitbeniwal/navguard/errors"
	logger "github.com/dev-mohitbeniwal/navguard/logging"
	"github.com/dev-mohitbeniwal/navguard/model"
)

func (s *GormStore) ListMenus(ctx context.Context) ([]*model.Menu, error) {
	var menus []*model.Menu
	if err := s.conn(ctx).Order("sort_order, id").Find(&menus).Error; err != nil {
		return nil, translate(err, nil, nil)
	}
	return menus, nil
}

func (s *GormStore) GetMenu(ctx context.Context, id int64) (*model.Menu, error) {
	var menu model.Menu
	if err := s.conn(ctx).First(&menu, id).Error; err != nil {
		return nil, translate(err, navguard_errors.ErrMenuNotFound, nil)
	}
	return &menu, nil
}

func (s *GormStore) InsertMenu(ctx context.Context, menu *model.Menu) (int64, error) {
	if err := s.checkWritable(); err != nil {
		return 0, err
	}
	if err := s.conn(ctx).Create(menu).Error; err != nil {
		return 0, translate(err, nil, navguard_errors.ErrMenuConflict)
	}
	logger.Debug("Menu inserted", zap.Int64("menuID", menu.ID), zap.String("name", menu.Name))
	return menu.ID, nil
}

func (s *GormStore) UpdateMenu(ctx context.Context, menu *model.Menu) error {
	if err := s.checkWritable(); err != nil {
		return err
	}
	result := s.conn(ctx).Model(&model.Menu{ID: menu.ID}).
		Select("*").Omit("id", "created_at").
		Updates(menu)
	if result.Error != nil {
		return translate(result.Error, navguard_errors.ErrMenuNotFound, navguard_errors.ErrMenuConflict)
	}
	if result.RowsAffected == 0 {
		return navguard_errors.ErrMenuNotFound
	}
	return nil
}

func (s *GormStore) DeleteMenu(ctx context.Context, id int64) error {
	err := s.atomically(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("menu_id = ?", id).Delete(&model.RoleMenu{}).Error; err != nil {
			return err
		}
		if err := tx.Where("menu_id = ?", id).Delete(&model.UserMenuOverride{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Menu{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return navguard_errors.ErrMenuNotFound
		}
		return nil
	})
	return translate(err, nil, nil)
}

func (s *GormStore) CountMenuChildren(ctx context.Context, id int64) (int64, error) {
	var n int64
	if err := s.conn(ctx).Model(&model.Menu{}).Where("parent_id = ?", id).Count(&n).Error; err != nil {
		return 0, translate(err, nil, nil)
	}
	return n, nil
}
