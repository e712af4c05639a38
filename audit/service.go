// audit/service.go
package audit

import (
	"context"

	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/navguard/logging"
)

type Service interface {
	LogAccess(ctx context.Context, log AuditLog) error
	QueryLogs(ctx context.Context, q Query) ([]AuditLog, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) LogAccess(ctx context.Context, log AuditLog) error {
	return s.repo.LogAccess(ctx, log)
}

func (s *service) QueryLogs(ctx context.Context, q Query) ([]AuditLog, error) {
	return s.repo.QueryLogs(ctx, q)
}

// Record writes entry and only logs a failure; auditing never fails the audited operation.
func Record(ctx context.Context, svc Service, entry AuditLog) {
	if svc == nil {
		return
	}
	if err := svc.LogAccess(ctx, entry); err != nil {
		logger.Error("Failed to write audit log",
			zap.Error(err),
			zap.String("action", entry.Action),
			zap.Int64("entityID", entry.EntityID))
	}
}
