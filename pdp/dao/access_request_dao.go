package dao

import (
	"context"
	"time"

	"go.uber.org/zap"

	entity_dao "github.com/dev-mohitbeniwal/navguard/dao"
	logger "github.com/dev-mohitbeniwal/navguard/logging"
	pdp_model "github.com/dev-mohitbeniwal/navguard/pdp/model"
)

// AccessRequestDAO gathers every grant source of a user from the entity store.
type AccessRequestDAO struct{}

func NewAccessRequestDAO() *AccessRequestDAO {
	return &AccessRequestDAO{}
}

// BuildAccessRequest reads the user's account role, global and org-scoped role bindings
// with their menu grants, and the user's overrides. Pass a snapshot transaction so all
// facts come from the same point in time. A missing user returns the store's NotFound error.
func (d *AccessRequestDAO) BuildAccessRequest(ctx context.Context, store entity_dao.Store, userID int64, orgID *int64) (*pdp_model.AccessRequest, error) {
	start := time.Now()

	user, err := store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	req := &pdp_model.AccessRequest{UserID: userID, OrgID: orgID}
	if user.Role != "" {
		req.Sources = append(req.Sources, pdp_model.AccountRoleSource(user.Role))
	}

	globalRoles, err := store.ListUserRoles(ctx, userID, nil)
	if err != nil {
		return nil, err
	}
	for _, role := range globalRoles {
		menuIDs, err := store.ListRoleMenuGrants(ctx, role.ID)
		if err != nil {
			return nil, err
		}
		req.Sources = append(req.Sources, pdp_model.RoleBindingSource(role, menuIDs))
	}

	if orgID != nil {
		orgRoles, err := store.ListUserRoles(ctx, userID, orgID)
		if err != nil {
			return nil, err
		}
		for _, role := range orgRoles {
			menuIDs, err := store.ListRoleMenuGrants(ctx, role.ID)
			if err != nil {
				return nil, err
			}
			req.Sources = append(req.Sources, pdp_model.OrgRoleBindingSource(*orgID, role, menuIDs))
		}
	}

	overrides, err := store.ListUserMenuOverrides(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, o := range overrides {
		req.Sources = append(req.Sources, pdp_model.OverrideSource(o))
	}

	logger.Debug("Access request assembled",
		zap.Int64("userID", userID),
		zap.Int("sources", len(req.Sources)),
		zap.Duration("duration", time.Since(start)))
	return req, nil
}
