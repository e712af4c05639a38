// dao/gorm_store.go
package dao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	navguard_errors "github.com/dev-mohitbeniwal/navguard/errors"
	logger "github.com/dev-mohitbeniwal/navguard/logging"
	"github.com/dev-mohitbeniwal/navguard/model"
)

var _ Store = (*GormStore)(nil)

// GormStore is the relational Store. Open the *gorm.DB with TranslateError enabled so
// unique violations surface as gorm.ErrDuplicatedKey.
type GormStore struct {
	db       *gorm.DB
	readOnly bool
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates every table the store reads and writes.
func (s *GormStore) Migrate() error {
	logger.Info("Running schema migration")
	return s.db.AutoMigrate(
		&model.Menu{},
		&model.Role{},
		&model.RoleMenu{},
		&model.User{},
		&model.UserRole{},
		&model.UserOrgRole{},
		&model.UserMenuOverride{},
		&model.Organization{},
	)
}

func (s *GormStore) Transaction(ctx context.Context, fn func(tx Store) error, opts ...*sql.TxOptions) error {
	readOnly := s.readOnly || (len(opts) > 0 && opts[0] != nil && opts[0].ReadOnly)
	if s.readOnly {
		return fn(s)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx, readOnly: readOnly})
	}, opts...)
}

func (s *GormStore) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

func (s *GormStore) checkWritable() error {
	if s.readOnly {
		return navguard_errors.ErrReadOnlySnapshot
	}
	return nil
}

// atomically runs fn in the current transaction, or a new one when called outside of any.
func (s *GormStore) atomically(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if err := s.checkWritable(); err != nil {
		return err
	}
	return s.conn(ctx).Transaction(fn)
}

func (s *GormStore) IsCodeTaken(ctx context.Context, table, code string) (bool, error) {
	if table != TableRoles && table != TableOrganizations {
		return false, fmt.Errorf("%w: unknown code table %q", navguard_errors.ErrDatabaseOperation, table)
	}
	var n int64
	if err := s.conn(ctx).Table(table).Where("code = ?", code).Count(&n).Error; err != nil {
		return false, translate(err, nil, nil)
	}
	return n > 0, nil
}

// translate maps gorm errors onto the entity's sentinels. Errors that already carry one of
// the package error kinds pass through; a nil sentinel falls back to ErrDatabaseOperation.
func translate(err error, notFound, conflict error) error {
	switch {
	case err == nil:
		return nil
	case isClassified(err):
		return err
	case notFound != nil && errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case conflict != nil && errors.Is(err, gorm.ErrDuplicatedKey):
		return conflict
	}
	logger.Error("Database operation failed", zap.Error(err))
	return fmt.Errorf("%w: %v", navguard_errors.ErrDatabaseOperation, err)
}

func isClassified(err error) bool {
	return errors.Is(err, navguard_errors.ErrNotFound) ||
		errors.Is(err, navguard_errors.ErrConflict) ||
		errors.Is(err, navguard_errors.ErrInvariantViolation) ||
		errors.Is(err, navguard_errors.ErrStore)
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// countExisting reports how many of ids exist in the given model's table.
func countExisting(tx *gorm.DB, value interface{}, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var n int64
	err := tx.Model(value).Where("id IN ?", ids).Count(&n).Error
	return n, err
}
