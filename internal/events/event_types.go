package events

import (
	"time"

	"github.com/spec-kit/employee-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEmployeeCreated EventType = "employee_created"
	EventEmployeeUpdated EventType = "employee_updated"
	EventEmployeeDeleted EventType = "employee_deleted"
)

// Event represents a domain event emitted by services. ManagerID is the
// acting manager, which for employee events is also the owner.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	EmployeeID string      `json:"employee_id"`
	ManagerID  string      `json:"manager_id"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload"`
}

// EmployeeSnapshot captures employee state for event payloads.
type EmployeeSnapshot struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Position   string  `json:"position"`
	Department string  `json:"department"`
	Salary     float64 `json:"salary"`
}

// SnapshotOf builds a snapshot from a domain employee.
func SnapshotOf(employee *domain.Employee) EmployeeSnapshot {
	return EmployeeSnapshot{
		Name:       employee.Name,
		Email:      employee.Email,
		Position:   employee.Position,
		Department: employee.Department,
		Salary:     employee.Salary,
	}
}

// EmployeeCreatedPayload payload.
type EmployeeCreatedPayload struct {
	Employee EmployeeSnapshot `json:"employee"`
}

// EmployeeUpdatedPayload payload.
type EmployeeUpdatedPayload struct {
	Old EmployeeSnapshot `json:"old"`
	New EmployeeSnapshot `json:"new"`
}

// EmployeeDeletedPayload payload.
type EmployeeDeletedPayload struct {
	Employee EmployeeSnapshot `json:"employee"`
}
