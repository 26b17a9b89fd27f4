package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/employee-service/internal/domain"
)

// ManagerRepository defines persistence access for managers. The unique
// index on email backs the registration invariant.
type ManagerRepository interface {
	Create(ctx context.Context, manager *domain.Manager) error
	GetByID(ctx context.Context, id string) (*domain.Manager, error)
	GetByEmail(ctx context.Context, email string) (*domain.Manager, error)
}

type managerRepository struct {
	pool *pgxpool.Pool
}

// NewManagerRepository returns a Postgres-backed implementation.
func NewManagerRepository(pool *pgxpool.Pool) ManagerRepository {
	return &managerRepository{pool: pool}
}

func (r *managerRepository) Create(ctx context.Context, manager *domain.Manager) error {
	const query = `
        INSERT INTO managers (name, email, password_hash, department)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		manager.Name,
		manager.Email,
		manager.PasswordHash,
		manager.Department,
	).Scan(&manager.ID, &manager.CreatedAt)
}

func (r *managerRepository) GetByID(ctx context.Context, id string) (*domain.Manager, error) {
	const query = `
        SELECT id, name, email, password_hash, department, created_at
        FROM managers WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *managerRepository) GetByEmail(ctx context.Context, email string) (*domain.Manager, error) {
	const query = `
        SELECT id, name, email, password_hash, department, created_at
        FROM managers WHERE email=$1`
	return r.fetchSingle(ctx, query, email)
}

func (r *managerRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Manager, error) {
	var manager domain.Manager
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&manager.ID,
		&manager.Name,
		&manager.Email,
		&manager.PasswordHash,
		&manager.Department,
		&manager.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &manager, nil
}
