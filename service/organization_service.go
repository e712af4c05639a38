// service/organization_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/navguard/audit"
	"github.com/dev-mohitbeniwal/navguard/dao"
	navguard_errors "github.com/dev-mohitbeniwal/navguard/errors"
	logger "github.com/dev-mohitbeniwal/navguard/logging"
	"github.com/dev-mohitbeniwal/navguard/model"
	"github.com/dev-mohitbeniwal/navguard/tree"
	"github.com/dev-mohitbeniwal/navguard/util"
)

// IOrganizationService defines the interface for organization operations
type IOrganizationService interface {
	CreateOrganization(ctx context.Context, org model.Organization) (*model.Organization, error)
	UpdateOrganization(ctx context.Context, org model.Organization) (*model.Organization, error)
	MoveOrganizations(ctx context.Context, moves []model.OrganizationMove) error
	GetOrganization(ctx context.Context, orgID int64) (*model.Organization, error)
	GetOrganizationTree(ctx context.Context) ([]*tree.Node[*model.Organization], error)
	ListOrganizations(ctx context.Context) ([]*model.Organization, error)
}

// OrganizationService handles business logic for organization operations
type OrganizationService struct {
	store          dao.Store
	validationUtil *util.ValidationUtil
	eventBus       *util.EventBus
	auditService   audit.Service
}

var _ IOrganizationService = &OrganizationService{}

// NewOrganizationService creates a new instance of OrganizationService
func NewOrganizationService(store dao.Store, validationUtil *util.ValidationUtil, eventBus *util.EventBus, auditService audit.Service) *OrganizationService {
	return &OrganizationService{
		store:          store,
		validationUtil: validationUtil,
		eventBus:       eventBus,
		auditService:   auditService,
	}
}

func (s *OrganizationService) CreateOrganization(ctx context.Context, org model.Organization) (*model.Organization, error) {
	if err := s.validationUtil.ValidateOrganization(&org); err != nil {
		logger.Error("Invalid organization data", zap.Error(err))
		return nil, err
	}
	org.ID = 0

	if org.ParentID != nil {
		if _, err := s.store.GetOrganization(ctx, *org.ParentID); err != nil {
			if errors.Is(err, navguard_errors.ErrOrganizationNotFound) {
				return nil, navguard_errors.ErrInvalidParent
			}
			return nil, err
		}
	}

	base := strings.TrimSpace(org.Code)
	if base == "" {
		base = util.CodeBase(org.Name)
	}
	code, err := util.GenerateUniqueCode(ctx, base,
		func(ctx context.Context, code string) (bool, error) {
			return s.store.IsCodeTaken(ctx, dao.TableOrganizations, code)
		},
		func(ctx context.Context, code string) error {
			candidate := org
			candidate.Code = code
			if _, err := s.store.InsertOrganization(ctx, &candidate); err != nil {
				return err
			}
			org = candidate
			return nil
		})
	if err != nil {
		logger.Error("Failed to create organization", zap.Error(err), zap.String("name", org.Name))
		return nil, err
	}

	logger.Info("Organization created", zap.Int64("orgID", org.ID), zap.String("code", code))
	audit.Record(ctx, s.auditService, audit.NewEntry(ctx, audit.ActionOrganizationWrite, "organization", org.ID, org))
	return &org, nil
}

// UpdateOrganization replaces an organization's fields. A new parent must exist and must
// not be the organization itself or one of its descendants.
func (s *OrganizationService) UpdateOrganization(ctx context.Context, org model.Organization) (*model.Organization, error) {
	if err := s.validationUtil.ValidateOrganization(&org); err != nil {
		logger.Error("Invalid organization data", zap.Error(err))
		return nil, err
	}

	moved := false
	err := s.store.Transaction(ctx, func(tx dao.Store) error {
		existing, err := tx.GetOrganization(ctx, org.ID)
		if err != nil {
			return err
		}
		if org.Code == "" {
			org.Code = existing.Code
		}
		org.CreatedAt = existing.CreatedAt

		if !sameParent(existing.ParentID, org.ParentID) {
			all, err := tx.ListOrganizations(ctx)
			if err != nil {
				return err
			}
			if err := checkOrganizationParent(all, org.ID, org.ParentID); err != nil {
				return err
			}
			moved = true
		}
		return tx.UpdateOrganization(ctx, &org)
	})
	if err != nil {
		logger.Error("Failed to update organization", zap.Error(err), zap.Int64("orgID", org.ID))
		return nil, err
	}

	logger.Info("Organization updated", zap.Int64("orgID", org.ID), zap.Bool("moved", moved))
	if moved {
		s.afterMove(ctx)
	}
	audit.Record(ctx, s.auditService, audit.NewEntry(ctx, audit.ActionOrganizationWrite, "organization", org.ID, org))
	return &org, nil
}

// MoveOrganizations reparents several organizations at once. The batch is checked against
// its own final state and applied all-or-nothing.
func (s *OrganizationService) MoveOrganizations(ctx context.Context, moves []model.OrganizationMove) error {
	if err := s.validationUtil.ValidateOrganizationMoves(moves); err != nil {
		return err
	}
	if len(moves) == 0 {
		return nil
	}

	err := s.store.Transaction(ctx, func(tx dao.Store) error {
		all, err := tx.ListOrganizations(ctx)
		if err != nil {
			return err
		}
		byID := make(map[int64]*model.Organization, len(all))
		for _, o := range all {
			byID[o.ID] = o
		}

		for _, mv := range moves {
			org, ok := byID[mv.ID]
			if !ok {
				return navguard_errors.ErrOrganizationNotFound
			}
			org.ParentID = mv.ParentID
		}
		for _, mv := range moves {
			if err := checkOrganizationParent(all, mv.ID, mv.ParentID); err != nil {
				return err
			}
		}
		for _, mv := range moves {
			if err := tx.UpdateOrganization(ctx, byID[mv.ID]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Warn("Organization move rejected", zap.Error(err), zap.Int("moves", len(moves)))
		return err
	}

	logger.Info("Organizations moved", zap.Int("moves", len(moves)))
	s.afterMove(ctx)
	audit.Record(ctx, s.auditService, audit.NewEntry(ctx, audit.ActionOrganizationMove, "organization", 0, moves))
	return nil
}

func (s *OrganizationService) GetOrganization(ctx context.Context, orgID int64) (*model.Organization, error) {
	return s.store.GetOrganization(ctx, orgID)
}

func (s *OrganizationService) GetOrganizationTree(ctx context.Context) ([]*tree.Node[*model.Organization], error) {
	orgs, err := s.store.ListOrganizations(ctx)
	if err != nil {
		return nil, err
	}
	return tree.BuildTree(orgs, nil), nil
}

// ListOrganizations returns every organization in depth-first tree order.
func (s *OrganizationService) ListOrganizations(ctx context.Context) ([]*model.Organization, error) {
	forest, err := s.GetOrganizationTree(ctx)
	if err != nil {
		return nil, err
	}
	return tree.Flatten(forest), nil
}

func (s *OrganizationService) afterMove(ctx context.Context) {
	if err := s.eventBus.PublishSync(ctx, util.EventOrganizationMoved, nil); err != nil {
		logger.Error("Failed to propagate organization move", zap.Error(err))
	}
}

// checkOrganizationParent validates parentID as the parent of orgID within orgs.
func checkOrganizationParent(orgs []*model.Organization, orgID int64, parentID *int64) error {
	if parentID == nil {
		return nil
	}
	found := false
	for _, o := range orgs {
		if o.ID == *parentID {
			found = true
			break
		}
	}
	if !found {
		return navguard_errors.ErrInvalidParent
	}
	if tree.WouldCreateCycle(orgs, orgID, parentID) {
		return navguard_errors.ErrCycleDetected
	}
	return nil
}
