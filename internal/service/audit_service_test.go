package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/events"
)

type fakeAuditRepo struct {
	entries []domain.EmployeeAudit
}

func (f *fakeAuditRepo) Create(_ context.Context, entry *domain.EmployeeAudit) error {
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeAuditRepo) ListByEmployee(_ context.Context, employeeID string) ([]domain.EmployeeAudit, error) {
	var result []domain.EmployeeAudit
	for _, e := range f.entries {
		if e.EmployeeID == employeeID {
			result = append(result, e)
		}
	}
	return result, nil
}

func TestAuditTrail_RecordsLifecycle(t *testing.T) {
	t.Parallel()

	dispatcher := events.NewInMemoryDispatcher()
	audits := &fakeAuditRepo{}
	NewAuditService(dispatcher, audits, zap.NewNop()).RegisterHandlers()

	svc := NewEmployeeService(EmployeeDependencies{
		EmployeeRepo: &fakeEmployeeRepo{},
		Dispatcher:   dispatcher,
	})

	created, err := svc.Create(context.Background(), "mgr-a", bobInput())
	require.NoError(t, err)

	salary := float64(70000)
	_, err = svc.Update(context.Background(), "mgr-a", created.ID, EmployeeUpdateInput{Salary: &salary})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "mgr-a", created.ID))

	require.Len(t, audits.entries, 3)
	require.Equal(t, domain.EmployeeChangeCreated, audits.entries[0].ChangeType)
	require.Equal(t, domain.EmployeeChangeUpdated, audits.entries[1].ChangeType)
	require.Equal(t, domain.EmployeeChangeDeleted, audits.entries[2].ChangeType)

	require.Nil(t, audits.entries[0].OldValue)
	require.NotNil(t, audits.entries[0].NewValue)
	require.NotNil(t, audits.entries[1].OldValue)
	require.NotNil(t, audits.entries[1].NewValue)
	require.Nil(t, audits.entries[2].NewValue)

	for _, entry := range audits.entries {
		require.Equal(t, created.ID, entry.EmployeeID)
		require.Equal(t, "mgr-a", entry.ManagerID)
	}
}
