// Package routes binds the HTTP surface to the handlers.
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"standsreg/internal/handlers"
	"standsreg/internal/middleware"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Auth        *handlers.AuthHandler
	Application *handlers.ApplicationHandler
	Document    *handlers.DocumentHandler
	Admin       *handlers.AdminHandler
	Report      *handlers.ReportHandler
	Setting     *handlers.SettingHandler
	Company     *handlers.CompanyHandler
}

// Setup registers every route on the app.
func Setup(app *fiber.App, h Handlers, authMW *middleware.AuthMiddleware) {
	// Brute-force protection on the credential endpoints only.
	authLimiter := limiter.New(limiter.Config{
		Max:        5,
		Expiration: time.Minute,
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": "standsreg-api"})
	})

	app.Post("/register", authLimiter, h.Auth.Register)
	app.Post("/token", authLimiter, h.Auth.Login)
	app.Get("/companies/public", h.Company.ListPublic)

	authed := app.Group("/", authMW.Handler)
	authed.Get("/me", h.Auth.Me)

	apps := authed.Group("/applications")
	apps.Post("/", h.Application.Create)
	apps.Get("/my", h.Application.My)

	// Admin routes must register before /:id so "admin" is not captured as
	// an id.
	admin := apps.Group("/admin", middleware.AdminRequired)
	admin.Get("/all", h.Admin.ListAllApplications)
	admin.Put("/:id/status", h.Admin.UpdateStatus)

	apps.Get("/:id", h.Application.Get)
	apps.Put("/:id", h.Application.Update)
	apps.Delete("/:id", h.Application.Delete)
	apps.Post("/:id/next-of-kin", h.Application.AddNextOfKin)
	apps.Post("/:id/spouse", h.Application.AddSpouse)
	apps.Post("/:id/beneficiaries", h.Application.AddBeneficiary)
	apps.Post("/:id/payments", h.Application.RecordPayment)
	apps.Post("/:id/documents", h.Document.Upload)
	apps.Get("/:id/documents", h.Document.List)
	apps.Get("/:id/logs", middleware.AdminRequired, h.Admin.GetApplicationLogs)

	authed.Get("/logs", middleware.AdminRequired, h.Admin.GetLogs)

	users := authed.Group("/users", middleware.AdminRequired)
	users.Get("/", h.Admin.ListUsers)
	users.Get("/:id", h.Admin.GetUser)
	users.Put("/:id", h.Admin.UpdateUser)
	users.Delete("/:id", h.Admin.DeleteUser)

	companies := authed.Group("/companies", middleware.AdminRequired)
	companies.Get("/", h.Company.List)
	companies.Post("/", h.Company.Create)
	companies.Get("/:id", h.Company.Get)
	companies.Put("/:id", h.Company.Update)
	companies.Delete("/:id", h.Company.Delete)

	reports := authed.Group("/reports", middleware.AdminRequired)
	reports.Get("/applications/status", h.Report.ApplicationsByStatus)
	reports.Get("/payments/summary", h.Report.PaymentsSummary)

	settings := authed.Group("/settings", middleware.AdminRequired)
	settings.Get("/", h.Setting.All)
	settings.Put("/:key", h.Setting.Set)
}
