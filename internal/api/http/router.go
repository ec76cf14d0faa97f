package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/loanlink-service/internal/api/http/handlers"
	"github.com/spec-kit/loanlink-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Loans          *handlers.LoansHandler
	Applications   *handlers.ApplicationsHandler
	Payments       *handlers.PaymentsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Registration, login, loans, and
// application intake are open; review routes require manager or admin,
// account management requires admin.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	verify := cfg.AuthMiddleware.Handle

	app.Get("/", cfg.Health.Root)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/users", cfg.Users.Register)
	users := app.Group("/users")
	users.Post("/register", cfg.Users.Register)
	users.Post("/login", cfg.Users.Login)

	admin := users.Group("", verify, auth.RequireAdmin())
	admin.Get("/", cfg.Users.List)
	admin.Get("/:email", cfg.Users.GetByEmail)
	admin.Patch("/role/:id", cfg.Users.UpdateRole)
	admin.Patch("/suspend/:id", cfg.Users.Suspend)

	app.Post("/loans", cfg.Loans.Create)
	app.Get("/loans", cfg.Loans.List)
	app.Get("/loans/:id", cfg.Loans.Get)
	app.Delete("/loans/:id", cfg.Loans.Delete)

	app.Post("/loan-applications", cfg.Applications.Create)
	app.Get("/loan-applications", cfg.Applications.List)
	app.Get("/loan-applications/:id", cfg.Applications.Get)
	app.Patch("/loan-applications/:id", verify, auth.RequireManager(), cfg.Applications.UpdateStatus)

	app.Get("/pending-applications", verify, auth.RequireManager(), cfg.Applications.Pending)
	app.Get("/approved-applications", verify, auth.RequireManager(), cfg.Applications.Approved)
	app.Patch("/application-status/:id", verify, auth.RequireManager(), cfg.Applications.UpdateStatus)

	app.Post("/create-checkout-session", cfg.Payments.CreateCheckoutSession)
}
