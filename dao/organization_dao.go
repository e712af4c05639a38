// dao/organization_dao.go
package dao

import (
	"context"

	"go.uber.org/zap"

	navguard_errors "github.com/dev-mohitbeniwal/navguard/errors"
	logger "github.com/dev-mohitbeniwal/navguard/logging"
	"github.com/dev-mohitbeniwal/navguard/model"
)

func (s *GormStore) ListOrganizations(ctx context.Context) ([]*model.Organization, error) {
	var orgs []*model.Organization
	if err := s.conn(ctx).Order("id").Find(&orgs).Error; err != nil {
		return nil, translate(err, nil, nil)
	}
	return orgs, nil
}

func (s *GormStore) GetOrganization(ctx context.Context, id int64) (*model.Organization, error) {
	var org model.Organization
	if err := s.conn(ctx).First(&org, id).Error; err != nil {
		return nil, translate(err, navguard_errors.ErrOrganizationNotFound, nil)
	}
	return &org, nil
}

func (s *GormStore) InsertOrganization(ctx context.Context, org *model.Organization) (int64, error) {
	if err := s.checkWritable(); err != nil {
		return 0, err
	}
	if err := s.conn(ctx).Create(org).Error; err != nil {
		return 0, translate(err, nil, navguard_errors.ErrOrganizationConflict)
	}
	logger.Debug("Organization inserted", zap.Int64("orgID", org.ID), zap.String("code", org.Code))
	return org.ID, nil
}

func (s *GormStore) UpdateOrganization(ctx context.Context, org *model.Organization) error {
	if err := s.checkWritable(); err != nil {
		return err
	}
	result := s.conn(ctx).Model(&model.Organization{ID: org.ID}).
		Select("*").Omit("id", "created_at").
		Updates(org)
	if result.Error != nil {
		return translate(result.Error, navguard_errors.ErrOrganizationNotFound, navguard_errors.ErrOrganizationConflict)
	}
	if result.RowsAffected == 0 {
		return navguard_errors.ErrOrganizationNotFound
	}
	return nil
}
