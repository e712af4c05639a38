// dao/memory_store.go
package dao

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"
	"time"

	navguard_errors "github.com/dev-mohitbeniwal/navguard/errors"
	"github.com/dev-mohitbeniwal/navguard/model"
)

type idSet map[int64]struct{}

func (s idSet) sorted() []int64 {
	out := make([]int64, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func newIDSet(ids []int64) idSet {
	s := make(idSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

type memState struct {
	menuSeq, roleSeq, orgSeq, userSeq int64

	menus map[int64]*model.Menu
	roles map[int64]*model.Role
	users map[int64]*model.User
	orgs  map[int64]*model.Organization

	roleMenus    map[int64]idSet           // role -> menus
	userRoles    map[int64]idSet           // user -> roles
	userOrgRoles map[int64]map[int64]idSet // user -> org -> roles
	overrides    map[int64]map[int64]*model.UserMenuOverride
}

func newMemState() *memState {
	return &memState{
		menus:        map[int64]*model.Menu{},
		roles:        map[int64]*model.Role{},
		users:        map[int64]*model.User{},
		orgs:         map[int64]*model.Organization{},
		roleMenus:    map[int64]idSet{},
		userRoles:    map[int64]idSet{},
		userOrgRoles: map[int64]map[int64]idSet{},
		overrides:    map[int64]map[int64]*model.UserMenuOverride{},
	}
}

func (st *memState) clone() *memState {
	c := newMemState()
	c.menuSeq, c.roleSeq, c.orgSeq, c.userSeq = st.menuSeq, st.roleSeq, st.orgSeq, st.userSeq
	for id, m := range st.menus {
		c.menus[id] = m.Clone()
	}
	for id, r := range st.roles {
		cp := *r
		c.roles[id] = &cp
	}
	for id, u := range st.users {
		cp := *u
		c.users[id] = &cp
	}
	for id, o := range st.orgs {
		c.orgs[id] = cloneOrg(o)
	}
	for id, set := range st.roleMenus {
		c.roleMenus[id] = newIDSet(set.sorted())
	}
	for id, set := range st.userRoles {
		c.userRoles[id] = newIDSet(set.sorted())
	}
	for uid, byOrg := range st.userOrgRoles {
		c.userOrgRoles[uid] = map[int64]idSet{}
		for oid, set := range byOrg {
			c.userOrgRoles[uid][oid] = newIDSet(set.sorted())
		}
	}
	for uid, byMenu := range st.overrides {
		c.overrides[uid] = map[int64]*model.UserMenuOverride{}
		for mid, o := range byMenu {
			cp := *o
			c.overrides[uid][mid] = &cp
		}
	}
	return c
}

func cloneOrg(o *model.Organization) *model.Organization {
	c := *o
	if o.ParentID != nil {
		pid := *o.ParentID
		c.ParentID = &pid
	}
	return &c
}

var _ Store = (*MemoryStore)(nil)

// MemoryStore is an in-process Store used by tests and by the server when no database is configured.
// Transactions work on a copy of the state that is swapped in on success.
type MemoryStore struct {
	mu       *sync.RWMutex
	state    *memState
	inTx     bool
	readOnly bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{mu: &sync.RWMutex{}, state: newMemState()}
}

func (s *MemoryStore) Transaction(ctx context.Context, fn func(tx Store) error, opts ...*sql.TxOptions) error {
	readOnly := len(opts) > 0 && opts[0] != nil && opts[0].ReadOnly

	if s.inTx {
		if readOnly || s.readOnly {
			return fn(&MemoryStore{mu: s.mu, state: s.state, inTx: true, readOnly: true})
		}
		child := &MemoryStore{mu: s.mu, state: s.state.clone(), inTx: true}
		if err := fn(child); err != nil {
			return err
		}
		*s.state = *child.state
		return nil
	}

	if readOnly {
		s.mu.RLock()
		defer s.mu.RUnlock()
		return fn(&MemoryStore{mu: s.mu, state: s.state, inTx: true, readOnly: true})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	child := &MemoryStore{mu: s.mu, state: s.state.clone(), inTx: true}
	if err := fn(child); err != nil {
		return err
	}
	s.state = child.state
	return nil
}

func (s *MemoryStore) read(fn func(st *memState)) {
	if !s.inTx {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	fn(s.state)
}

func (s *MemoryStore) write(fn func(st *memState) error) error {
	if s.readOnly {
		return navguard_errors.ErrReadOnlySnapshot
	}
	if !s.inTx {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	return fn(s.state)
}

// PutUser inserts or replaces a user record. Users are owned by the identity system,
// so the Store interface exposes no writer for them.
func (s *MemoryStore) PutUser(u *model.User) int64 {
	var id int64
	_ = s.write(func(st *memState) error {
		cp := *u
		if cp.ID == 0 {
			st.userSeq++
			cp.ID = st.userSeq
		} else if cp.ID > st.userSeq {
			st.userSeq = cp.ID
		}
		now := time.Now()
		if cp.CreatedAt.IsZero() {
			cp.CreatedAt = now
		}
		cp.UpdatedAt = now
		st.users[cp.ID] = &cp
		id = cp.ID
		return nil
	})
	return id
}

// Menus

func (s *MemoryStore) ListMenus(ctx context.Context) ([]*model.Menu, error) {
	var out []*model.Menu
	s.read(func(st *memState) {
		out = make([]*model.Menu, 0, len(st.menus))
		for _, m := range st.menus {
			out = append(out, m.Clone())
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *MemoryStore) GetMenu(ctx context.Context, id int64) (*model.Menu, error) {
	var out *model.Menu
	s.read(func(st *memState) {
		if m, ok := st.menus[id]; ok {
			out = m.Clone()
		}
	})
	if out == nil {
		return nil, navguard_errors.ErrMenuNotFound
	}
	return out, nil
}

func (s *MemoryStore) InsertMenu(ctx context.Context, menu *model.Menu) (int64, error) {
	err := s.write(func(st *memState) error {
		if menuNameTaken(st, menu.Name, 0) {
			return navguard_errors.ErrMenuConflict
		}
		st.menuSeq++
		menu.ID = st.menuSeq
		now := time.Now()
		menu.CreatedAt, menu.UpdatedAt = now, now
		st.menus[menu.ID] = menu.Clone()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return menu.ID, nil
}

func (s *MemoryStore) UpdateMenu(ctx context.Context, menu *model.Menu) error {
	return s.write(func(st *memState) error {
		existing, ok := st.menus[menu.ID]
		if !ok {
			return navguard_errors.ErrMenuNotFound
		}
		if menuNameTaken(st, menu.Name, menu.ID) {
			return navguard_errors.ErrMenuConflict
		}
		menu.CreatedAt = existing.CreatedAt
		menu.UpdatedAt = time.Now()
		st.menus[menu.ID] = menu.Clone()
		return nil
	})
}

func (s *MemoryStore) DeleteMenu(ctx context.Context, id int64) error {
	return s.write(func(st *memState) error {
		if _, ok := st.menus[id]; !ok {
			return navguard_errors.ErrMenuNotFound
		}
		delete(st.menus, id)
		for _, set := range st.roleMenus {
			delete(set, id)
		}
		for _, byMenu := range st.overrides {
			delete(byMenu, id)
		}
		return nil
	})
}

func (s *MemoryStore) CountMenuChildren(ctx context.Context, id int64) (int64, error) {
	var n int64
	s.read(func(st *memState) {
		for _, m := range st.menus {
			if m.ParentID != nil && *m.ParentID == id {
				n++
			}
		}
	})
	return n, nil
}

func menuNameTaken(st *memState, name string, exceptID int64) bool {
	for _, m := range st.menus {
		if m.ID != exceptID && m.Name == name {
			return true
		}
	}
	return false
}

// Roles

func (s *MemoryStore) ListRoles(ctx context.Context) ([]*model.Role, error) {
	var out []*model.Role
	s.read(func(st *memState) {
		out = make([]*model.Role, 0, len(st.roles))
		for _, r := range st.roles {
			cp := *r
			out = append(out, &cp)
		}
	})
	sortRoles(out)
	return out, nil
}

func (s *MemoryStore) GetRole(ctx context.Context, id int64) (*model.Role, error) {
	var out *model.Role
	s.read(func(st *memState) {
		if r, ok := st.roles[id]; ok {
			cp := *r
			out = &cp
		}
	})
	if out == nil {
		return nil, navguard_errors.ErrRoleNotFound
	}
	return out, nil
}

func (s *MemoryStore) InsertRole(ctx context.Context, role *model.Role) (int64, error) {
	err := s.write(func(st *memState) error {
		if roleTaken(st, role, 0) {
			return navguard_errors.ErrRoleConflict
		}
		st.roleSeq++
		role.ID = st.roleSeq
		now := time.Now()
		role.CreatedAt, role.UpdatedAt = now, now
		cp := *role
		st.roles[role.ID] = &cp
		return nil
	})
	if err != nil {
		return 0, err
	}
	return role.ID, nil
}

func (s *MemoryStore) UpdateRole(ctx context.Context, role *model.Role) error {
	return s.write(func(st *memState) error {
		existing, ok := st.roles[role.ID]
		if !ok {
			return navguard_errors.ErrRoleNotFound
		}
		if roleTaken(st, role, role.ID) {
			return navguard_errors.ErrRoleConflict
		}
		role.CreatedAt = existing.CreatedAt
		role.UpdatedAt = time.Now()
		cp := *role
		st.roles[role.ID] = &cp
		return nil
	})
}

func (s *MemoryStore) DeleteRole(ctx context.Context, id int64) error {
	return s.write(func(st *memState) error {
		if _, ok := st.roles[id]; !ok {
			return navguard_errors.ErrRoleNotFound
		}
		delete(st.roles, id)
		delete(st.roleMenus, id)
		for _, set := range st.userRoles {
			delete(set, id)
		}
		for _, byOrg := range st.userOrgRoles {
			for _, set := range byOrg {
				delete(set, id)
			}
		}
		return nil
	})
}

func (s *MemoryStore) ListRoleMenuGrants(ctx context.Context, roleID int64) ([]int64, error) {
	var out []int64
	s.read(func(st *memState) {
		out = st.roleMenus[roleID].sorted()
	})
	return out, nil
}

func (s *MemoryStore) ReplaceRoleMenuGrants(ctx context.Context, roleID int64, menuIDs []int64) error {
	return s.write(func(st *memState) error {
		if _, ok := st.roles[roleID]; !ok {
			return navguard_errors.ErrRoleNotFound
		}
		for _, id := range menuIDs {
			if _, ok := st.menus[id]; !ok {
				return fmt.Errorf("%w: %d", navguard_errors.ErrMenuNotFound, id)
			}
		}
		st.roleMenus[roleID] = newIDSet(menuIDs)
		return nil
	})
}

func (s *MemoryStore) ListRoleHolders(ctx context.Context, roleID int64) ([]int64, error) {
	holders := idSet{}
	s.read(func(st *memState) {
		for uid, set := range st.userRoles {
			if _, ok := set[roleID]; ok {
				holders[uid] = struct{}{}
			}
		}
		for uid, byOrg := range st.userOrgRoles {
			for _, set := range byOrg {
				if _, ok := set[roleID]; ok {
					holders[uid] = struct{}{}
				}
			}
		}
	})
	return holders.sorted(), nil
}

func roleTaken(st *memState, role *model.Role, exceptID int64) bool {
	for _, r := range st.roles {
		if r.ID != exceptID && (r.Name == role.Name || r.Code == role.Code) {
			return true
		}
	}
	return false
}

func sortRoles(roles []*model.Role) {
	sort.Slice(roles, func(i, j int) bool {
		if roles[i].SortOrder != roles[j].SortOrder {
			return roles[i].SortOrder < roles[j].SortOrder
		}
		return roles[i].ID < roles[j].ID
	})
}

// Users

func (s *MemoryStore) GetUser(ctx context.Context, id int64) (*model.User, error) {
	var out *model.User
	s.read(func(st *memState) {
		if u, ok := st.users[id]; ok {
			cp := *u
			out = &cp
		}
	})
	if out == nil {
		return nil, navguard_errors.ErrUserNotFound
	}
	return out, nil
}

func (s *MemoryStore) ListUserRoles(ctx context.Context, userID int64, orgID *int64) ([]*model.Role, error) {
	var out []*model.Role
	s.read(func(st *memState) {
		set := st.userRoles[userID]
		if orgID != nil {
			set = st.userOrgRoles[userID][*orgID]
		}
		for id := range set {
			if r, ok := st.roles[id]; ok {
				cp := *r
				out = append(out, &cp)
			}
		}
	})
	sortRoles(out)
	return out, nil
}

func (s *MemoryStore) ReplaceUserRoles(ctx context.Context, userID int64, roleIDs []int64) error {
	return s.write(func(st *memState) error {
		if err := checkUserAndRoles(st, userID, roleIDs); err != nil {
			return err
		}
		st.userRoles[userID] = newIDSet(roleIDs)
		return nil
	})
}

func (s *MemoryStore) ReplaceUserRolesInOrg(ctx context.Context, userID, orgID int64, roleIDs []int64) error {
	return s.write(func(st *memState) error {
		if err := checkUserAndRoles(st, userID, roleIDs); err != nil {
			return err
		}
		if _, ok := st.orgs[orgID]; !ok {
			return navguard_errors.ErrOrganizationNotFound
		}
		if st.userOrgRoles[userID] == nil {
			st.userOrgRoles[userID] = map[int64]idSet{}
		}
		st.userOrgRoles[userID][orgID] = newIDSet(roleIDs)
		return nil
	})
}

func checkUserAndRoles(st *memState, userID int64, roleIDs []int64) error {
	if _, ok := st.users[userID]; !ok {
		return navguard_errors.ErrUserNotFound
	}
	for _, id := range roleIDs {
		if _, ok := st.roles[id]; !ok {
			return fmt.Errorf("%w: %d", navguard_errors.ErrRoleNotFound, id)
		}
	}
	return nil
}

func (s *MemoryStore) ListUserMenuOverrides(ctx context.Context, userID int64) ([]*model.UserMenuOverride, error) {
	var out []*model.UserMenuOverride
	s.read(func(st *memState) {
		for _, o := range st.overrides[userID] {
			cp := *o
			out = append(out, &cp)
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].MenuID < out[j].MenuID })
	return out, nil
}

func (s *MemoryStore) UpsertUserMenuOverride(ctx context.Context, userID, menuID int64, overrideType model.OverrideType) error {
	return s.write(func(st *memState) error {
		if _, ok := st.users[userID]; !ok {
			return navguard_errors.ErrUserNotFound
		}
		if _, ok := st.menus[menuID]; !ok {
			return navguard_errors.ErrMenuNotFound
		}
		if st.overrides[userID] == nil {
			st.overrides[userID] = map[int64]*model.UserMenuOverride{}
		}
		now := time.Now()
		if existing, ok := st.overrides[userID][menuID]; ok {
			existing.Type = overrideType
			existing.UpdatedAt = now
			return nil
		}
		st.overrides[userID][menuID] = &model.UserMenuOverride{
			UserID: userID, MenuID: menuID, Type: overrideType, CreatedAt: now, UpdatedAt: now,
		}
		return nil
	})
}

func (s *MemoryStore) DeleteUserMenuOverride(ctx context.Context, userID, menuID int64) error {
	return s.write(func(st *memState) error {
		if _, ok := st.overrides[userID][menuID]; !ok {
			return navguard_errors.ErrOverrideNotFound
		}
		delete(st.overrides[userID], menuID)
		return nil
	})
}

// Organizations

func (s *MemoryStore) ListOrganizations(ctx context.Context) ([]*model.Organization, error) {
	var out []*model.Organization
	s.read(func(st *memState) {
		out = make([]*model.Organization, 0, len(st.orgs))
		for _, o := range st.orgs {
			out = append(out, cloneOrg(o))
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) GetOrganization(ctx context.Context, id int64) (*model.Organization, error) {
	var out *model.Organization
	s.read(func(st *memState) {
		if o, ok := st.orgs[id]; ok {
			out = cloneOrg(o)
		}
	})
	if out == nil {
		return nil, navguard_errors.ErrOrganizationNotFound
	}
	return out, nil
}

func (s *MemoryStore) InsertOrganization(ctx context.Context, org *model.Organization) (int64, error) {
	err := s.write(func(st *memState) error {
		if orgCodeTaken(st, org.Code, 0) {
			return navguard_errors.ErrOrganizationConflict
		}
		st.orgSeq++
		org.ID = st.orgSeq
		now := time.Now()
		org.CreatedAt, org.UpdatedAt = now, now
		st.orgs[org.ID] = cloneOrg(org)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return org.ID, nil
}

func (s *MemoryStore) UpdateOrganization(ctx context.Context, org *model.Organization) error {
	return s.write(func(st *memState) error {
		existing, ok := st.orgs[org.ID]
		if !ok {
			return navguard_errors.ErrOrganizationNotFound
		}
		if orgCodeTaken(st, org.Code, org.ID) {
			return navguard_errors.ErrOrganizationConflict
		}
		org.CreatedAt = existing.CreatedAt
		org.UpdatedAt = time.Now()
		st.orgs[org.ID] = cloneOrg(org)
		return nil
	})
}

func orgCodeTaken(st *memState, code string, exceptID int64) bool {
	for _, o := range st.orgs {
		if o.ID != exceptID && o.Code == code {
			return true
		}
	}
	return false
}

func (s *MemoryStore) IsCodeTaken(ctx context.Context, table, code string) (bool, error) {
	var taken bool
	switch table {
	case TableRoles:
		s.read(func(st *memState) {
			for _, r := range st.roles {
				if r.Code == code {
					taken = true
					return
				}
			}
		})
	case TableOrganizations:
		s.read(func(st *memState) { taken = orgCodeTaken(st, code, 0) })
	default:
		return false, fmt.Errorf("%w: unknown code table %q", navguard_errors.ErrDatabaseOperation, table)
	}
	return taken, nil
}
