package handler

import (
	"go-fuelstation/internal/middleware"
	"go-fuelstation/internal/model"
	"go-fuelstation/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Transactions *TransactionHandler
	Pumps        *PumpHandler
	FuelTypes    *FuelHandler
	Auth         *AuthHandler
	Dashboard    *DashboardHandler
}

type RouterConfig struct {
	Tokens *jwt.Issuer
	// EnforceAuth puts every route except login behind a bearer token and
	// restricts catalog, pump and registration writes to ADMIN.
	EnforceAuth bool
}

// RegisterRoutes mounts the API under /api/v1.
func RegisterRoutes(app *fiber.App, h Handlers, cfg RouterConfig) {
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	api.Post("/auth/login", h.Auth.Login)

	// ============ STATION ROUTES ============
	protected := api
	adminOnly := func(c *fiber.Ctx) error { return c.Next() }
	if cfg.EnforceAuth {
		protected = api.Group("", middleware.RequireAuth(cfg.Tokens))
		adminOnly = middleware.RequireRole(model.RoleAdmin)
	}

	protected.Post("/auth/register", adminOnly, h.Auth.Register)

	// Transactions (operators and admins)
	protected.Get("/transactions", h.Transactions.GetTransactions)
	protected.Get("/transactions/:id", h.Transactions.GetTransaction)
	protected.Post("/transactions", h.Transactions.CreateTransaction)
	protected.Delete("/transactions/:id", h.Transactions.DeleteTransaction)

	// Pumps
	protected.Get("/pumps", h.Pumps.GetPumps)
	protected.Get("/pumps/:id", h.Pumps.GetPump)
	protected.Post("/pumps", adminOnly, h.Pumps.CreatePump)
	protected.Put("/pumps/:id", adminOnly, h.Pumps.UpdatePump)
	protected.Delete("/pumps/:id", adminOnly, h.Pumps.DeletePump)

	// Fuel catalog
	protected.Get("/fuel-types", h.FuelTypes.GetFuelTypes)
	protected.Get("/fuel-types/:id", h.FuelTypes.GetFuelType)
	protected.Post("/fuel-types", adminOnly, h.FuelTypes.CreateFuelType)
	protected.Put("/fuel-types/:id", adminOnly, h.FuelTypes.UpdateFuelType)
	protected.Delete("/fuel-types/:id", adminOnly, h.FuelTypes.DeleteFuelType)

	// Dashboard
	protected.Get("/dashboard/stats", h.Dashboard.GetDashboardStats)
}
