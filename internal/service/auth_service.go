package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/employee-service/internal/auth"
	"github.com/spec-kit/employee-service/internal/config"
	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/repository"
	apperrors "github.com/spec-kit/employee-service/pkg/util"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	managers   repository.ManagerRepository
	tokenMgr   *auth.TokenManager
	limiter    *auth.LoginLimiter
	bcryptCost int
}

// AuthDependencies encapsulates requirements for auth service.
type AuthDependencies struct {
	ManagerRepo  repository.ManagerRepository
	LoginLimiter *auth.LoginLimiter
}

// RegisterInput carries manager registration fields.
type RegisterInput struct {
	Name       string
	Email      string
	Password   string
	Department string
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		managers:   deps.ManagerRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLMinutes),
		limiter:    deps.LoginLimiter,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates a new manager account. The returned manager carries the
// password hash internally; callers must expose public fields only.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.Manager, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Department = strings.TrimSpace(input.Department)
	if input.Name == "" || input.Email == "" || input.Password == "" || input.Department == "" {
		return nil, apperrors.NewValidationError("name, email, password, department required", nil)
	}

	if _, err := s.managers.GetByEmail(ctx, input.Email); err == nil {
		return nil, apperrors.NewConflict("manager already exists", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	manager := &domain.Manager{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Department:   input.Department,
	}
	// The unique index still backs a concurrent register with the same
	// email; the 23505 violation maps to CONFLICT at the boundary.
	if err := s.managers.Create(ctx, manager); err != nil {
		return nil, err
	}
	return manager, nil
}

// Login authenticates a manager and issues a session token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Manager, string, time.Time, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, "", time.Time{}, apperrors.NewValidationError("email and password required", nil)
	}

	if err := s.limiter.Allow(ctx, email); err != nil {
		return nil, "", time.Time{}, err
	}

	manager, err := s.managers.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(manager.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}

	token, exp, err := s.tokenMgr.GenerateToken(manager.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	s.limiter.Reset(ctx, email)
	return manager, token, exp, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
