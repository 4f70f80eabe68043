package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/enquiry-service/internal/api/http/handlers"
	"github.com/spec-kit/enquiry-service/internal/auth"
	"github.com/spec-kit/enquiry-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health  *handlers.HealthHandler
	Staff   *handlers.StaffHandler
	Enquiry *handlers.EnquiryHandler
	Tokens  *auth.TokenManager
}

// RegisterRoutes wires HTTP routes with their role requirements. Staff
// lifecycle mutations are admin-only; enquiry management admits viewers;
// login and enquiry intake are public.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	adminOnly := auth.RequireRoles(cfg.Tokens, domain.StaffRoleAdmin)
	anyStaff := auth.RequireRoles(cfg.Tokens, domain.StaffRoleAdmin, domain.StaffRoleViewer)

	app.Post("/staff/login", cfg.Staff.Login)
	app.Post("/staff", adminOnly, cfg.Staff.Create)
	app.Get("/staff/:id", adminOnly, cfg.Staff.Get)
	app.Get("/staff", adminOnly, cfg.Staff.List)
	app.Put("/staff/:id", adminOnly, cfg.Staff.Update)
	app.Delete("/staff/:id", adminOnly, cfg.Staff.Delete)

	app.Post("/me/staff/change-password", anyStaff, cfg.Staff.ChangePassword)

	app.Post("/enquiry", cfg.Enquiry.Create)
	app.Get("/enquiry/:id", anyStaff, cfg.Enquiry.Get)
	app.Get("/enquiry", anyStaff, cfg.Enquiry.List)
	app.Put("/enquiry/:id", anyStaff, cfg.Enquiry.Update)
	app.Delete("/enquiry/:id", anyStaff, cfg.Enquiry.Delete)
}
