package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/employee-service/internal/domain"
)

// EmployeeRepository encapsulates employee persistence. Every by-id
// operation takes the owning manager id and the employee id as distinct
// parameters and filters on both, so a record owned by another manager is
// indistinguishable from an absent one.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	Update(ctx context.Context, employee *domain.Employee) error
	Get(ctx context.Context, managerID, id string) (*domain.Employee, error)
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
	ListByManager(ctx context.Context, managerID string) ([]domain.Employee, error)
	Delete(ctx context.Context, managerID, id string) error
}

type employeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository instantiates repository.
func NewEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &employeeRepository{pool: pool}
}

func (r *employeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	const query = `
        INSERT INTO employees (name, email, position, department, salary, manager_id)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		employee.Name,
		employee.Email,
		employee.Position,
		employee.Department,
		employee.Salary,
		employee.ManagerID,
	).Scan(&employee.ID, &employee.CreatedAt, &employee.UpdatedAt)
}

func (r *employeeRepository) Update(ctx context.Context, employee *domain.Employee) error {
	const query = `
        UPDATE employees SET name=$1, email=$2, position=$3, department=$4, salary=$5, updated_at=NOW()
        WHERE id=$6 AND manager_id=$7`
	cmd, err := r.pool.Exec(ctx, query,
		employee.Name,
		employee.Email,
		employee.Position,
		employee.Department,
		employee.Salary,
		employee.ID,
		employee.ManagerID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employeeRepository) Get(ctx context.Context, managerID, id string) (*domain.Employee, error) {
	const query = `
        SELECT id, name, email, position, department, salary, manager_id, created_at, updated_at
        FROM employees WHERE id=$1 AND manager_id=$2`
	var employee domain.Employee
	if err := r.pool.QueryRow(ctx, query, id, managerID).Scan(
		&employee.ID,
		&employee.Name,
		&employee.Email,
		&employee.Position,
		&employee.Department,
		&employee.Salary,
		&employee.ManagerID,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	const query = `
        SELECT id, name, email, position, department, salary, manager_id, created_at, updated_at
        FROM employees WHERE email=$1`
	var employee domain.Employee
	if err := r.pool.QueryRow(ctx, query, email).Scan(
		&employee.ID,
		&employee.Name,
		&employee.Email,
		&employee.Position,
		&employee.Department,
		&employee.Salary,
		&employee.ManagerID,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) ListByManager(ctx context.Context, managerID string) ([]domain.Employee, error) {
	const query = `
        SELECT id, name, email, position, department, salary, manager_id, created_at, updated_at
        FROM employees WHERE manager_id=$1 ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Employee
	for rows.Next() {
		var employee domain.Employee
		if err := rows.Scan(
			&employee.ID,
			&employee.Name,
			&employee.Email,
			&employee.Position,
			&employee.Department,
			&employee.Salary,
			&employee.ManagerID,
			&employee.CreatedAt,
			&employee.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, employee)
	}
	return result, rows.Err()
}

func (r *employeeRepository) Delete(ctx context.Context, managerID, id string) error {
	const query = `DELETE FROM employees WHERE id=$1 AND manager_id=$2`
	cmd, err := r.pool.Exec(ctx, query, id, managerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
