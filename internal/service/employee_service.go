package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/events"
	"github.com/spec-kit/employee-service/internal/repository"
	apperrors "github.com/spec-kit/employee-service/pkg/util"
)

// EmployeeService implements ownership-scoped CRUD over employee records.
// Every operation takes the authenticated manager id; records owned by
// other managers behave as if they do not exist.
type EmployeeService struct {
	employees  repository.EmployeeRepository
	dispatcher events.Dispatcher
}

// EmployeeDependencies bundles requirements for the employee service.
type EmployeeDependencies struct {
	EmployeeRepo repository.EmployeeRepository
	Dispatcher   events.Dispatcher
}

// EmployeeCreateInput describes employee creation payload.
type EmployeeCreateInput struct {
	Name       string
	Email      string
	Position   string
	Department string
	Salary     float64
}

// EmployeeUpdateInput carries a partial update; nil fields are left as-is.
type EmployeeUpdateInput struct {
	Name       *string
	Email      *string
	Position   *string
	Department *string
	Salary     *float64
}

// NewEmployeeService constructs the service.
func NewEmployeeService(deps EmployeeDependencies) *EmployeeService {
	return &EmployeeService{
		employees:  deps.EmployeeRepo,
		dispatcher: deps.Dispatcher,
	}
}

// List returns all employees owned by the manager, in insertion order.
func (s *EmployeeService) List(ctx context.Context, managerID string) ([]domain.Employee, error) {
	return s.employees.ListByManager(ctx, managerID)
}

// Create validates input, enforces global email uniqueness and stores the
// record owned by the manager.
func (s *EmployeeService) Create(ctx context.Context, managerID string, input EmployeeCreateInput) (*domain.Employee, error) {
	employee := &domain.Employee{
		Name:       strings.TrimSpace(input.Name),
		Email:      strings.TrimSpace(strings.ToLower(input.Email)),
		Position:   strings.TrimSpace(input.Position),
		Department: strings.TrimSpace(input.Department),
		Salary:     input.Salary,
		ManagerID:  managerID,
	}
	if err := validateEmployee(employee); err != nil {
		return nil, err
	}
	if err := s.checkEmailFree(ctx, employee.Email, ""); err != nil {
		return nil, err
	}

	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventEmployeeCreated, employee, events.EmployeeCreatedPayload{
		Employee: events.SnapshotOf(employee),
	})
	return employee, nil
}

// Get returns the employee when owned by the manager.
func (s *EmployeeService) Get(ctx context.Context, managerID, id string) (*domain.Employee, error) {
	employee, err := s.employees.Get(ctx, managerID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("employee", nil)
		}
		return nil, err
	}
	return employee, nil
}

// Update merges provided fields into the owned record, re-validates the
// merged result with the create rules and persists it.
func (s *EmployeeService) Update(ctx context.Context, managerID, id string, input EmployeeUpdateInput) (*domain.Employee, error) {
	employee, err := s.Get(ctx, managerID, id)
	if err != nil {
		return nil, err
	}
	before := events.SnapshotOf(employee)

	if input.Name != nil {
		employee.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		employee.Email = strings.TrimSpace(strings.ToLower(*input.Email))
	}
	if input.Position != nil {
		employee.Position = strings.TrimSpace(*input.Position)
	}
	if input.Department != nil {
		employee.Department = strings.TrimSpace(*input.Department)
	}
	if input.Salary != nil {
		employee.Salary = *input.Salary
	}

	if err := validateEmployee(employee); err != nil {
		return nil, err
	}
	if input.Email != nil && employee.Email != before.Email {
		if err := s.checkEmailFree(ctx, employee.Email, employee.ID); err != nil {
			return nil, err
		}
	}

	if err := s.employees.Update(ctx, employee); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("employee", nil)
		}
		return nil, err
	}

	s.publish(ctx, events.EventEmployeeUpdated, employee, events.EmployeeUpdatedPayload{
		Old: before,
		New: events.SnapshotOf(employee),
	})
	return employee, nil
}

// Delete removes the owned record. Deleting an absent or foreign record
// reports not-found, on repeat calls as well.
func (s *EmployeeService) Delete(ctx context.Context, managerID, id string) error {
	employee, err := s.Get(ctx, managerID, id)
	if err != nil {
		return err
	}

	if err := s.employees.Delete(ctx, managerID, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("employee", nil)
		}
		return err
	}

	s.publish(ctx, events.EventEmployeeDeleted, employee, events.EmployeeDeletedPayload{
		Employee: events.SnapshotOf(employee),
	})
	return nil
}

func (s *EmployeeService) checkEmailFree(ctx context.Context, email, selfID string) error {
	existing, err := s.employees.GetByEmail(ctx, email)
	if err == nil {
		if existing.ID != selfID {
			return apperrors.NewConflict("employee with this email already exists", nil)
		}
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	return err
}

func (s *EmployeeService) publish(ctx context.Context, eventType events.EventType, employee *domain.Employee, payload any) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		EmployeeID: employee.ID,
		ManagerID:  employee.ManagerID,
		Timestamp:  time.Now().UTC(),
		Payload:    payload,
	})
}

func validateEmployee(employee *domain.Employee) error {
	if employee.Name == "" || employee.Email == "" || employee.Position == "" || employee.Department == "" || employee.Salary == 0 {
		return apperrors.NewValidationError("name, email, position, department, salary required", nil)
	}
	if employee.Salary < 0 {
		return apperrors.NewValidationError("salary must be a positive number", nil)
	}
	return nil
}
