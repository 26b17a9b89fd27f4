package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/employee-service/internal/domain"
)

// AuditRepository stores append-only employee change entries.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.EmployeeAudit) error
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.EmployeeAudit, error)
}

type auditRepository struct {
	pool *pgxpool.Pool
}

// NewAuditRepository builds repository.
func NewAuditRepository(pool *pgxpool.Pool) AuditRepository {
	return &auditRepository{pool: pool}
}

func (r *auditRepository) Create(ctx context.Context, entry *domain.EmployeeAudit) error {
	const query = `
        INSERT INTO employee_audit (employee_id, manager_id, change_type, old_value, new_value)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		entry.EmployeeID,
		entry.ManagerID,
		entry.ChangeType,
		entry.OldValue,
		entry.NewValue,
	).Scan(&entry.ID, &entry.CreatedAt)
}

func (r *auditRepository) ListByEmployee(ctx context.Context, employeeID string) ([]domain.EmployeeAudit, error) {
	const query = `
        SELECT id, employee_id, manager_id, change_type, old_value, new_value, created_at
        FROM employee_audit WHERE employee_id=$1 ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.EmployeeAudit
	for rows.Next() {
		var entry domain.EmployeeAudit
		if err := rows.Scan(
			&entry.ID,
			&entry.EmployeeID,
			&entry.ManagerID,
			&entry.ChangeType,
			&entry.OldValue,
			&entry.NewValue,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}
