// test/mock/audit.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dev-mohitbeniwal/navguard/audit"
)

// MockAuditService is a mock implementation of audit.Service
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) LogAccess(ctx context.Context, log audit.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockAuditService) QueryLogs(ctx context.Context, q audit.Query) ([]audit.AuditLog, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]audit.AuditLog), args.Error(1)
}

// Actions returns the audited actions in call order.
func (m *MockAuditService) Actions() []string {
	var out []string
	for _, call := range m.Calls {
		if call.Method == "LogAccess" {
			out = append(out, call.Arguments.Get(1).(audit.AuditLog).Action)
		}
	}
	return out
}
