package model

import "github.com/dev-mohitbeniwal/navguard/model"

// AccessDecision is the outcome for a single menu.
type AccessDecision struct {
	MenuID  int64                  `json:"menu_id"`
	Allowed bool                   `json:"allowed"`
	Source  model.PermissionSource `json:"source"`
	Reason  string                 `json:"reason,omitempty"`
}
