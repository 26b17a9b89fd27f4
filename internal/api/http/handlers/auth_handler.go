package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-service/internal/api/dto"
	"github.com/spec-kit/employee-service/internal/auth"
	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/service"
	apperrors "github.com/spec-kit/employee-service/pkg/util"
)

// AuthHandler exposes registration and login endpoints for managers.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	manager, err := h.auth.Register(c.UserContext(), service.RegisterInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Department: req.Department,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": managerResponse(manager),
	})
}

// Login handles POST /api/auth/login. The token is returned in the body and
// echoed in the Authorization response header.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	manager, token, exp, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.Set("Authorization", "Bearer "+token)
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"manager": managerResponse(manager),
			"auth":    dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Current handles GET /api/auth/current. The route sits behind the auth
// middleware; it returns the verified token payload.
func (h *AuthHandler) Current(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("no token, authorization denied")
	}

	resp := dto.CurrentManagerResponse{ID: principal.ManagerID}
	if principal.Claims != nil {
		if principal.Claims.IssuedAt != nil {
			resp.IssuedAt = principal.Claims.IssuedAt.Time
		}
		if principal.Claims.ExpiresAt != nil {
			resp.ExpiresAt = principal.Claims.ExpiresAt.Time
		}
	}
	return c.JSON(fiber.Map{"data": resp})
}

func managerResponse(manager *domain.Manager) dto.ManagerResponse {
	return dto.ManagerResponse{
		ID:         manager.ID,
		Name:       manager.Name,
		Email:      manager.Email,
		Department: manager.Department,
	}
}
