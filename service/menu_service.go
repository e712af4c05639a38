// service/menu_service.go
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
	"github.com/dev-mohitbeniwal/navguard/tree"
	"github.com/dev-mohitbeniwal/navguard/util"
)

// IMenuService defines the interface for menu administration and seed synchronization
type IMenuService interface {
	ListMenus(ctx context.Context) ([]*model.Menu, error)
	GetMenuTree(ctx context.Context) ([]*tree.Node[*model.Menu], error)
	GetMenu(ctx context.Context, menuID int64) (*model.Menu, error)
	CreateMenu(ctx context.Context, menu model.Menu) (*model.Menu, error)
	UpdateMenu(ctx context.Context, menu model.Menu) (*model.Menu, error)
	DeleteMenu(ctx context.Context, menuID int64) error
	ReorderMenus(ctx context.Context, orders []model.MenuOrder) error
	SyncMenus(ctx context.Context, seeds []*model.SeedMenu, opts SyncOptions) (*model.SyncResult, error)
}

// MenuService handles business logic for menu operations
type MenuService struct {
	store          dao.Store
	validationUtil *util.ValidationUtil
	eventBus       *util.EventBus
	auditService   audit.Service
}

var _ IMenuService = &MenuService{}

func NewMenuService(store dao.Store, validationUtil *util.ValidationUtil, eventBus *util.EventBus, auditService audit.Service) *MenuService {
	return &MenuService{
		store:          store,
		validationUtil: validationUtil,
		eventBus:       eventBus,
		auditService:   auditService,
	}
}

func (s *MenuService) ListMenus(ctx context.Context) ([]*model.Menu, error) {
	return s.store.ListMenus(ctx)
}

// GetMenuTree returns every stored menu, disabled ones included, as a forest.
func (s *MenuService) GetMenuTree(ctx context.Context) ([]*tree.Node[*model.Menu], error) {
	menus, err := s.store.ListMenus(ctx)
	if err != nil {
		return nil, err
	}
	return tree.BuildTree(menus, nil), nil
}

func (s *MenuService) GetMenu(ctx context.Context, menuID int64) (*model.Menu, error) {
	return s.store.GetMenu(ctx, menuID)
}

func (s *MenuService) CreateMenu(ctx context.Context, menu model.Menu) (*model.Menu, error) {
	if err := s.validationUtil.ValidateMenu(&menu); err != nil {
		return nil, err
	}
	menu.ID = 0
	menu.MenuType = model.NormalizeMenuType(string(menu.MenuType))

	err := s.store.Transaction(ctx, func(tx dao.Store) error {
		level, err := levelUnder(ctx, tx, menu.ParentID)
		if err != nil {
			return err
		}
		menu.Level = level
		_, err = tx.InsertMenu(ctx, &menu)
		return err
	})
	if err != nil {
		logger.Error("Failed to create menu", zap.Error(err), zap.String("name", menu.Name))
		return nil, err
	}

	logger.Info("Menu created", zap.Int64("menuID", menu.ID), zap.String("name", menu.Name))
	s.afterMenuChange(ctx, audit.ActionMenuCreate, menu.ID, menu)
	return &menu, nil
}

// UpdateMenu replaces the mutable fields of a menu. Changing the parent re-checks the
// hierarchy for cycles and recomputes the levels of the moved subtree.
func (s *MenuService) UpdateMenu(ctx context.Context, menu model.Menu) (*model.Menu, error) {
	if err := s.validationUtil.ValidateMenu(&menu); err != nil {
		return nil, err
	}
	menu.MenuType = model.NormalizeMenuType(string(menu.MenuType))

	var updated *model.Menu
	err := s.store.Transaction(ctx, func(tx dao.Store) error {
		existing, err := tx.GetMenu(ctx, menu.ID)
		if err != nil {
			return err
		}
		if existing.IsSystem && existing.Name != menu.Name {
			return navguard_errors.ErrSystemProtected
		}

		all, err := tx.ListMenus(ctx)
		if err != nil {
			return err
		}
		if !sameParent(existing.ParentID, menu.ParentID) {
			if menu.ParentID != nil && !containsMenu(all, *menu.ParentID) {
				return navguard_errors.ErrInvalidParent
			}
			if tree.WouldCreateCycle(all, menu.ID, menu.ParentID) {
				return navguard_errors.ErrCycleDetected
			}
		}

		menu.CreatedAt = existing.CreatedAt
		for i, m := range all {
			if m.ID == menu.ID {
				all[i] = &menu
			}
		}
		for _, m := range applyLevels(all) {
			if m.ID == menu.ID {
				continue
			}
			if err := tx.UpdateMenu(ctx, m); err != nil {
				return err
			}
		}
		if err := tx.UpdateMenu(ctx, &menu); err != nil {
			return err
		}
		updated = &menu
		return nil
	})
	if err != nil {
		logger.Error("Failed to update menu", zap.Error(err), zap.Int64("menuID", menu.ID))
		return nil, err
	}

	logger.Info("Menu updated", zap.Int64("menuID", menu.ID))
	s.afterMenuChange(ctx, audit.ActionMenuUpdate, menu.ID, updated)
	return updated, nil
}

func (s *MenuService) DeleteMenu(ctx context.Context, menuID int64) error {
	err := s.store.Transaction(ctx, func(tx dao.Store) error {
		menu, err := tx.GetMenu(ctx, menuID)
		if err != nil {
			return err
		}
		if menu.IsSystem {
			return navguard_errors.ErrSystemProtected
		}
		children, err := tx.CountMenuChildren(ctx, menuID)
		if err != nil {
			return err
		}
		if children > 0 {
			return navguard_errors.ErrMenuHasChildren
		}
		return tx.DeleteMenu(ctx, menuID)
	})
	if err != nil {
		logger.Warn("Menu deletion rejected", zap.Error(err), zap.Int64("menuID", menuID))
		return err
	}

	logger.Info("Menu deleted", zap.Int64("menuID", menuID))
	s.afterMenuChange(ctx, audit.ActionMenuDelete, menuID, nil)
	return nil
}

// ReorderMenus applies a batch of sort-order and parent changes atomically. The whole
// batch is rejected if its final state contains a cycle or an unknown parent.
func (s *MenuService) ReorderMenus(ctx context.Context, orders []model.MenuOrder) error {
	if err := s.validationUtil.ValidateMenuOrders(orders); err != nil {
		return err
	}
	if len(orders) == 0 {
		return nil
	}

	err := s.store.Transaction(ctx, func(tx dao.Store) error {
		all, err := tx.ListMenus(ctx)
		if err != nil {
			return err
		}
		byID := make(map[int64]*model.Menu, len(all))
		for _, m := range all {
			byID[m.ID] = m
		}

		dirty := map[int64]*model.Menu{}
		for _, o := range orders {
			m, ok := byID[o.ID]
			if !ok {
				return navguard_errors.ErrMenuNotFound
			}
			if o.ParentID != nil {
				if _, ok := byID[*o.ParentID]; !ok {
					return navguard_errors.ErrInvalidParent
				}
			}
			m.SortOrder = o.SortOrder
			m.ParentID = o.ParentID
			dirty[m.ID] = m
		}
		for _, o := range orders {
			if tree.WouldCreateCycle(all, o.ID, byID[o.ID].ParentID) {
				return navguard_errors.ErrCycleDetected
			}
		}
		for _, m := range applyLevels(all) {
			dirty[m.ID] = m
		}
		for _, m := range dirty {
			if err := tx.UpdateMenu(ctx, m); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to reorder menus", zap.Error(err), zap.Int("count", len(orders)))
		return err
	}

	logger.Info("Menus reordered", zap.Int("count", len(orders)))
	s.afterMenuChange(ctx, audit.ActionMenuReorder, 0, orders)
	return nil
}

func (s *MenuService) afterMenuChange(ctx context.Context, action string, menuID int64, details interface{}) {
	if err := s.eventBus.PublishSync(ctx, util.EventMenuUpdated, nil); err != nil {
		logger.Error("Failed to propagate menu change", zap.Error(err), zap.Int64("menuID", menuID))
	}
	audit.Record(ctx, s.auditService, audit.NewEntry(ctx, action, "menu", menuID, details))
}

// levelUnder is the level of a child placed under parentID.
func levelUnder(ctx context.Context, tx dao.Store, parentID *int64) (int, error) {
	if parentID == nil {
		return 1, nil
	}
	parent, err := tx.GetMenu(ctx, *parentID)
	if err != nil {
		if errors.Is(err, navguard_errors.ErrMenuNotFound) {
			return 0, navguard_errors.ErrInvalidParent
		}
		return 0, err
	}
	return parent.Level + 1, nil
}

// applyLevels sets every menu's level to its depth in the forest and returns the menus
// whose level changed.
func applyLevels(menus []*model.Menu) []*model.Menu {
	var changed []*model.Menu
	var walk func(nodes []*tree.Node[*model.Menu], depth int)
	walk = func(nodes []*tree.Node[*model.Menu], depth int) {
		for _, n := range nodes {
			if n.Item.Level != depth {
				n.Item.Level = depth
				changed = append(changed, n.Item)
			}
			walk(n.Children, depth+1)
		}
	}
	walk(tree.BuildTree(menus, nil), 1)
	return changed
}

func sameParent(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func containsMenu(menus []*model.Menu, id int64) bool {
	for _, m := range menus {
		if m.ID == id {
			return true
		}
	}
	return false
}
