// util/validation_util.go

package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	navguard_errors "github.com/dev-mohitbeniwal/navguard/errors"
	"github.com/dev-mohitbeniwal/navguard/model"
)

type ValidationUtil struct {
	validate *validator.Validate
}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *ValidationUtil) ValidateMenu(menu *model.Menu) error {
	return v.check(menu, navguard_errors.ErrInvalidMenuData)
}

func (v *ValidationUtil) ValidateRole(role *model.Role) error {
	return v.check(role, navguard_errors.ErrInvalidRoleData)
}

func (v *ValidationUtil) ValidateOrganization(org *model.Organization) error {
	return v.check(org, navguard_errors.ErrInvalidOrganizationData)
}

func (v *ValidationUtil) ValidateMenuOrders(orders []model.MenuOrder) error {
	for i := range orders {
		if err := v.check(&orders[i], navguard_errors.ErrInvalidMenuData); err != nil {
			return err
		}
	}
	return nil
}

func (v *ValidationUtil) ValidateOrganizationMoves(moves []model.OrganizationMove) error {
	seen := make(map[int64]struct{}, len(moves))
	for i := range moves {
		if err := v.check(&moves[i], navguard_errors.ErrInvalidOrganizationData); err != nil {
			return err
		}
		if _, dup := seen[moves[i].ID]; dup {
			return fmt.Errorf("%w: organization %d appears twice in one batch", navguard_errors.ErrInvalidOrganizationData, moves[i].ID)
		}
		seen[moves[i].ID] = struct{}{}
	}
	return nil
}

func (v *ValidationUtil) ValidateOverrideType(t model.OverrideType) error {
	if !t.Valid() {
		return navguard_errors.ErrInvalidOverrideType
	}
	return nil
}

// ValidateSeed checks every node's fields and that names are unique across the whole tree.
func (v *ValidationUtil) ValidateSeed(seeds []*model.SeedMenu) error {
	names := map[string]struct{}{}
	var walk func(nodes []*model.SeedMenu) error
	walk = func(nodes []*model.SeedMenu) error {
		for _, n := range nodes {
			if n == nil {
				return fmt.Errorf("%w: empty node", navguard_errors.ErrInvalidSeed)
			}
			if err := v.check(n, navguard_errors.ErrInvalidSeed); err != nil {
				return err
			}
			if _, dup := names[n.Name]; dup {
				return fmt.Errorf("%w: duplicate name %q", navguard_errors.ErrInvalidSeed, n.Name)
			}
			names[n.Name] = struct{}{}
			if err := walk(n.Children); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(seeds)
}

func (v *ValidationUtil) check(s interface{}, sentinel error) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", sentinel, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s failed on %s", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", sentinel, strings.Join(fields, "; "))
}
