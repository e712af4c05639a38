// service/menu_sync.go
package service

import (
	"context"
	"encoding/json"
	"reflect"
	"sort"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/dev-mohitbeniwal/navguard/audit"
	"github.com/dev-mohitbeniwal/navguard/dao"
	logger "github.com/dev-mohitbeniwal/navguard/logging"
	"github.com/dev-mohitbeniwal/navguard/model"
	"github.com/dev-mohitbeniwal/navguard/util"
)

// SyncOptions controls a seed synchronization run.
type SyncOptions struct {
	// RemoveOrphans deletes stored menus the seed does not mention. System menus are kept.
	RemoveOrphans bool
}

// SyncMenus reconciles the stored menu set with a seed forest in one transaction.
// Running it twice with the same seed leaves the store unchanged after the first run.
func (s *MenuService) SyncMenus(ctx context.Context, seeds []*model.SeedMenu, opts SyncOptions) (*model.SyncResult, error) {
	if err := s.validationUtil.ValidateSeed(seeds); err != nil {
		return nil, err
	}

	var result *model.SyncResult
	err := s.store.Transaction(ctx, func(tx dao.Store) error {
		existing, err := tx.ListMenus(ctx)
		if err != nil {
			return err
		}
		run := newSyncRun(existing)
		if err := run.walk(ctx, tx, seeds, nil); err != nil {
			return err
		}
		if opts.RemoveOrphans {
			if err := run.removeOrphans(ctx, tx); err != nil {
				return err
			}
		}
		if err := run.relevel(ctx, tx); err != nil {
			return err
		}
		result = &run.result
		return nil
	})
	if err != nil {
		logger.Error("Menu synchronization rolled back", zap.Error(err))
		return nil, err
	}

	logger.Info("Menus synchronized",
		zap.Int("synced", result.SyncedCount),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
		zap.Int("removed", result.Removed))

	if err := s.eventBus.PublishSync(ctx, util.EventMenuSynced, *result); err != nil {
		logger.Error("Failed to propagate menu synchronization", zap.Error(err))
	}
	audit.Record(ctx, s.auditService, audit.NewEntry(ctx, audit.ActionMenuSync, "menu", 0, result))
	return result, nil
}

type syncRun struct {
	byName  map[string]*model.Menu
	byPath  map[string]*model.Menu
	claimed map[int64]bool
	counter int
	result  model.SyncResult
}

func newSyncRun(existing []*model.Menu) *syncRun {
	run := &syncRun{
		byName:  make(map[string]*model.Menu, len(existing)),
		byPath:  make(map[string]*model.Menu, len(existing)),
		claimed: make(map[int64]bool, len(existing)),
	}
	for _, m := range existing {
		run.byName[m.Name] = m
		if m.Path == nil || *m.Path == "" {
			continue
		}
		// Several rows may share a path; the oldest one wins.
		if prev, ok := run.byPath[*m.Path]; !ok || m.ID < prev.ID {
			run.byPath[*m.Path] = m
		}
	}
	return run
}

// walk upserts one sibling group, then descends into each sibling's children so every
// child already knows its parent's id.
func (r *syncRun) walk(ctx context.Context, tx dao.Store, seeds []*model.SeedMenu, parent *model.Menu) error {
	ordered := orderSeeds(seeds)
	rows := make([]*model.Menu, len(ordered))
	for i, seed := range ordered {
		r.counter++
		row, err := r.upsert(ctx, tx, seed, parent)
		if err != nil {
			return err
		}
		rows[i] = row
	}
	for i, seed := range ordered {
		if len(seed.Children) == 0 {
			continue
		}
		if err := r.walk(ctx, tx, seed.Children, rows[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *syncRun) upsert(ctx context.Context, tx dao.Store, seed *model.SeedMenu, parent *model.Menu) (*model.Menu, error) {
	desired, err := r.menuFromSeed(seed, parent)
	if err != nil {
		return nil, err
	}
	r.result.SyncedCount++

	current := r.match(seed)
	if current == nil {
		if _, err := tx.InsertMenu(ctx, desired); err != nil {
			return nil, err
		}
		r.result.Created++
		r.track(desired, "")
		return desired, nil
	}

	desired.ID = current.ID
	desired.Description = current.Description
	desired.CreatedAt = current.CreatedAt
	if seedFieldsEqual(current, desired) {
		r.claimed[current.ID] = true
		return current, nil
	}
	if err := tx.UpdateMenu(ctx, desired); err != nil {
		return nil, err
	}
	r.result.Updated++
	r.track(desired, current.Name)
	return desired, nil
}

// match finds the stored row for a seed node: by name first, then by path. A row is
// matched at most once per run.
func (r *syncRun) match(seed *model.SeedMenu) *model.Menu {
	if m, ok := r.byName[seed.Name]; ok && !r.claimed[m.ID] {
		return m
	}
	if seed.Path == "" {
		return nil
	}
	if m, ok := r.byPath[seed.Path]; ok && !r.claimed[m.ID] {
		return m
	}
	return nil
}

func (r *syncRun) track(m *model.Menu, previousName string) {
	if previousName != "" && previousName != m.Name {
		delete(r.byName, previousName)
	}
	r.byName[m.Name] = m
	r.claimed[m.ID] = true
}

func (r *syncRun) menuFromSeed(seed *model.SeedMenu, parent *model.Menu) (*model.Menu, error) {
	m := &model.Menu{
		Name:           seed.Name,
		Title:          seed.Title,
		Icon:           seed.Icon,
		SortOrder:      r.counter,
		Level:          1,
		IsHidden:       seed.Hidden,
		IsDisabled:     seed.Disabled,
		IsSystem:       seed.System,
		MenuType:       model.NormalizeMenuType(seed.MenuType),
		PermissionCode: seed.PermissionCode,
		Redirect:       seed.Redirect,
	}
	if seed.SortOrder != nil {
		m.SortOrder = *seed.SortOrder
	}
	if seed.Path != "" {
		path := seed.Path
		m.Path = &path
	}
	if seed.Component != "" {
		component := seed.Component
		m.Component = &component
	}
	if parent != nil {
		parentID := parent.ID
		m.ParentID = &parentID
		m.Level = parent.Level + 1
	}
	if seed.Meta != nil {
		raw, err := json.Marshal(seed.Meta)
		if err != nil {
			return nil, err
		}
		m.Meta = datatypes.JSON(raw)
	}
	return m, nil
}

// removeOrphans deletes unclaimed rows deepest first. Rows that still have children
// after their subtree was processed, such as ancestors of a kept system menu, stay.
func (r *syncRun) removeOrphans(ctx context.Context, tx dao.Store) error {
	all, err := tx.ListMenus(ctx)
	if err != nil {
		return err
	}
	depth := depthIndex(all)

	var orphans []*model.Menu
	for _, m := range all {
		if !r.claimed[m.ID] {
			orphans = append(orphans, m)
		}
	}
	sort.SliceStable(orphans, func(i, j int) bool {
		return depth[orphans[i].ID] > depth[orphans[j].ID]
	})

	for _, m := range orphans {
		if m.IsSystem {
			logger.Warn("Keeping system menu missing from seed", zap.String("name", m.Name))
			continue
		}
		children, err := tx.CountMenuChildren(ctx, m.ID)
		if err != nil {
			return err
		}
		if children > 0 {
			logger.Warn("Keeping orphan menu that still has children", zap.String("name", m.Name))
			continue
		}
		if err := tx.DeleteMenu(ctx, m.ID); err != nil {
			return err
		}
		r.result.Removed++
	}
	return nil
}

// depthIndex maps each menu id to its distance from a root, following parent links.
func depthIndex(menus []*model.Menu) map[int64]int {
	parents := make(map[int64]*int64, len(menus))
	for _, m := range menus {
		parents[m.ID] = m.ParentID
	}
	depth := make(map[int64]int, len(menus))
	for _, m := range menus {
		d := 0
		seen := map[int64]bool{m.ID: true}
		for p := m.ParentID; p != nil && !seen[*p]; p = parents[*p] {
			if _, ok := parents[*p]; !ok {
				break
			}
			seen[*p] = true
			d++
		}
		depth[m.ID] = d
	}
	return depth
}

// orderSeeds sorts siblings by declared sort_order; siblings without one keep their
// declared position after all ordered ones.
func orderSeeds(seeds []*model.SeedMenu) []*model.SeedMenu {
	ordered := append([]*model.SeedMenu(nil), seeds...)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i].SortOrder, ordered[j].SortOrder
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
	return ordered
}

func seedFieldsEqual(a, b *model.Menu) bool {
	return a.Name == b.Name &&
		a.Title == b.Title &&
		optionalEqual(a.Path, b.Path) &&
		optionalEqual(a.Component, b.Component) &&
		a.Icon == b.Icon &&
		sameParent(a.ParentID, b.ParentID) &&
		a.SortOrder == b.SortOrder &&
		a.Level == b.Level &&
		a.IsHidden == b.IsHidden &&
		a.IsDisabled == b.IsDisabled &&
		a.IsSystem == b.IsSystem &&
		a.MenuType == b.MenuType &&
		a.PermissionCode == b.PermissionCode &&
		a.Redirect == b.Redirect &&
		jsonEqual(a.Meta, b.Meta)
}

func optionalEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// jsonEqual compares documents semantically; Postgres jsonb does not keep the original
// formatting.
func jsonEqual(a, b datatypes.JSON) bool {
	if len(a) == 0 || len(b) == 0 {
		return len(a) == len(b)
	}
	var va, vb interface{}
	if json.Unmarshal(a, &va) != nil || json.Unmarshal(b, &vb) != nil {
		return string(a) == string(b)
	}
	return reflect.DeepEqual(va, vb)
}

// relevel fixes the levels of stored menus the seed does not mention but whose
// ancestors it moved.
func (r *syncRun) relevel(ctx context.Context, tx dao.Store) error {
	all, err := tx.ListMenus(ctx)
	if err != nil {
		return err
	}
	for _, m := range applyLevels(all) {
		if err := tx.UpdateMenu(ctx, m); err != nil {
			return err
		}
		if !r.claimed[m.ID] {
			r.result.Updated++
		}
	}
	return nil
}
