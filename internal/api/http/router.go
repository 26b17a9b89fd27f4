package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-service/internal/api/http/handlers"
	"github.com/spec-kit/employee-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Employees      *handlers.EmployeesHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. The auth middleware guards every route
// that reads caller identity, /api/auth/current included.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/current", cfg.AuthMiddleware.Handle, cfg.Auth.Current)

	managerGroup := api.Group("/manager", cfg.AuthMiddleware.Handle)
	managerGroup.Get("/", cfg.Employees.List)
	managerGroup.Post("/", cfg.Employees.Create)
	managerGroup.Get("/:id", cfg.Employees.Get)
	managerGroup.Put("/:id", cfg.Employees.Update)
	managerGroup.Delete("/:id", cfg.Employees.Delete)
}
