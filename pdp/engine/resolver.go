package engine

import (
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/navguard/logging"
	"github.com/dev-mohitbeniwal/navguard/model"
	pdp_model "github.com/dev-mohitbeniwal/navguard/pdp/model"
)

// Options configures which roles bypass menu checks.
type Options struct {
	// BypassRoles lists account-role values and global role codes that grant everything.
	BypassRoles []string
	// OrgAdminRole is the org-scoped role code that grants everything within that org.
	OrgAdminRole string
}

// Resolver applies the menu permission precedence:
// admin bypass, then deny override, then grant override, then role grant, else none.
type Resolver struct {
	bypass       map[string]struct{}
	orgAdminRole string
}

func NewResolver(opts Options) *Resolver {
	bypass := make(map[string]struct{}, len(opts.BypassRoles))
	for _, r := range opts.BypassRoles {
		if r != "" {
			bypass[r] = struct{}{}
		}
	}
	return &Resolver{bypass: bypass, orgAdminRole: opts.OrgAdminRole}
}

// IsEffectiveAdmin is the single admin predicate every resolution path goes through.
// Disabled roles never count.
func (r *Resolver) IsEffectiveAdmin(req *pdp_model.AccessRequest) bool {
	for _, src := range req.Sources {
		switch src.Kind {
		case pdp_model.KindAccountRole:
			if _, ok := r.bypass[src.AccountRole]; ok {
				return true
			}
		case pdp_model.KindRoleBinding:
			if src.Role == nil || src.Role.IsDisabled {
				continue
			}
			if _, ok := r.bypass[src.Role.Code]; ok {
				return true
			}
		case pdp_model.KindOrgRoleBinding:
			if src.Role == nil || src.Role.IsDisabled || req.OrgID == nil || src.OrgID != *req.OrgID {
				continue
			}
			if r.orgAdminRole != "" && src.Role.Code == r.orgAdminRole {
				return true
			}
		}
	}
	return false
}

// Evaluation is a request indexed for repeated per-menu decisions.
type Evaluation struct {
	admin     bool
	overrides map[int64]model.OverrideType
	roleMenus map[int64]struct{}
}

func (r *Resolver) Prepare(req *pdp_model.AccessRequest) *Evaluation {
	ev := &Evaluation{
		admin:     r.IsEffectiveAdmin(req),
		overrides: make(map[int64]model.OverrideType),
		roleMenus: make(map[int64]struct{}),
	}
	if ev.admin {
		return ev
	}

	for _, src := range req.Sources {
		switch src.Kind {
		case pdp_model.KindOverride:
			if src.Override == nil || !src.Override.Type.Valid() {
				continue
			}
			// deny wins if the same menu somehow carries both
			if ev.overrides[src.Override.MenuID] == model.OverrideDeny {
				continue
			}
			ev.overrides[src.Override.MenuID] = src.Override.Type
		case pdp_model.KindRoleBinding, pdp_model.KindOrgRoleBinding:
			if src.Role == nil || src.Role.IsDisabled {
				continue
			}
			if src.Kind == pdp_model.KindOrgRoleBinding && (req.OrgID == nil || src.OrgID != *req.OrgID) {
				continue
			}
			for _, id := range src.MenuIDs {
				ev.roleMenus[id] = struct{}{}
			}
		}
	}
	return ev
}

// Decide returns the decision for an enabled menu. Callers drop disabled menus beforehand.
func (ev *Evaluation) Decide(menuID int64) pdp_model.AccessDecision {
	if ev.admin {
		return pdp_model.AccessDecision{MenuID: menuID, Allowed: true, Source: model.SourceAdmin, Reason: "Administrator bypass"}
	}
	switch ev.overrides[menuID] {
	case model.OverrideDeny:
		return pdp_model.AccessDecision{MenuID: menuID, Allowed: false, Source: model.SourceDeny, Reason: "Denied by user override"}
	case model.OverrideGrant:
		return pdp_model.AccessDecision{MenuID: menuID, Allowed: true, Source: model.SourceUserGrant, Reason: "Granted by user override"}
	}
	if _, ok := ev.roleMenus[menuID]; ok {
		return pdp_model.AccessDecision{MenuID: menuID, Allowed: true, Source: model.SourceRole, Reason: "Granted by role"}
	}
	return pdp_model.AccessDecision{MenuID: menuID, Allowed: false, Source: model.SourceNone, Reason: "No matching grant"}
}

// ResolveAll decides every enabled menu; disabled menus are left out of the result entirely.
func (r *Resolver) ResolveAll(req *pdp_model.AccessRequest, menus []*model.Menu) []*model.EffectivePermission {
	ev := r.Prepare(req)
	out := make([]*model.EffectivePermission, 0, len(menus))
	granted := 0
	for _, m := range menus {
		if m.IsDisabled {
			continue
		}
		d := ev.Decide(m.ID)
		if d.Allowed {
			granted++
		}
		out = append(out, &model.EffectivePermission{Menu: m, HasPermission: d.Allowed, Source: d.Source})
	}

	logger.Debug("Resolved menu permissions",
		zap.Int64("userID", req.UserID),
		zap.Bool("admin", ev.admin),
		zap.Int("menus", len(out)),
		zap.Int("granted", granted))
	return out
}
