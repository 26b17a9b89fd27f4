package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/employee-service/internal/domain"
)

// -------- test fakes --------

type fakeManagerRepo struct {
	managers []*domain.Manager
	seq      int
}

func (f *fakeManagerRepo) Create(_ context.Context, manager *domain.Manager) error {
	f.seq++
	manager.ID = fmt.Sprintf("mgr-%d", f.seq)
	manager.CreatedAt = time.Now()
	stored := *manager
	f.managers = append(f.managers, &stored)
	return nil
}

func (f *fakeManagerRepo) GetByID(_ context.Context, id string) (*domain.Manager, error) {
	for _, m := range f.managers {
		if m.ID == id {
			found := *m
			return &found, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeManagerRepo) GetByEmail(_ context.Context, email string) (*domain.Manager, error) {
	for _, m := range f.managers {
		if m.Email == email {
			found := *m
			return &found, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type fakeEmployeeRepo struct {
	employees []*domain.Employee
	seq       int
}

func (f *fakeEmployeeRepo) Create(_ context.Context, employee *domain.Employee) error {
	f.seq++
	employee.ID = fmt.Sprintf("emp-%d", f.seq)
	employee.CreatedAt = time.Now()
	employee.UpdatedAt = employee.CreatedAt
	stored := *employee
	f.employees = append(f.employees, &stored)
	return nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, employee *domain.Employee) error {
	for i, e := range f.employees {
		if e.ID == employee.ID && e.ManagerID == employee.ManagerID {
			stored := *employee
			stored.UpdatedAt = time.Now()
			f.employees[i] = &stored
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *fakeEmployeeRepo) Get(_ context.Context, managerID, id string) (*domain.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id && e.ManagerID == managerID {
			found := *e
			return &found, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (*domain.Employee, error) {
	for _, e := range f.employees {
		if e.Email == email {
			found := *e
			return &found, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeEmployeeRepo) ListByManager(_ context.Context, managerID string) ([]domain.Employee, error) {
	var result []domain.Employee
	for _, e := range f.employees {
		if e.ManagerID == managerID {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, managerID, id string) error {
	for i, e := range f.employees {
		if e.ID == id && e.ManagerID == managerID {
			f.employees = append(f.employees[:i], f.employees[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}
