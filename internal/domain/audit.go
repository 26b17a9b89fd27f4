package domain

import "time"

// EmployeeChangeType enumerates audited mutations.
type EmployeeChangeType string

const (
	EmployeeChangeCreated EmployeeChangeType = "CREATED"
	EmployeeChangeUpdated EmployeeChangeType = "UPDATED"
	EmployeeChangeDeleted EmployeeChangeType = "DELETED"
)

// EmployeeAudit is an append-only record of a mutation to an employee.
type EmployeeAudit struct {
	ID         string
	EmployeeID string
	ManagerID  string
	ChangeType EmployeeChangeType
	OldValue   *string
	NewValue   *string
	CreatedAt  time.Time
}
