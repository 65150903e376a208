package adminRoutes

import (
	adminControllers "sbweb/controllers/admin"
	"sbweb/middleware"
	adminValidator "sbweb/validators/admin"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes wires the back office. Everything here is admin-only.
func SetupAdminRoutes(app *fiber.App, ctl *adminControllers.Controller, auth *middleware.Auth) {
	adminGroup := app.Group("/admin", auth.RequireRole("ADMIN"))

	adminGroup.Get("/users", adminValidator.UserList(), ctl.ListUsers)
	adminGroup.Post("/users", adminValidator.CreateUser(), ctl.CreateUser)
	adminGroup.Get("/users/:id", ctl.GetUser)
	adminGroup.Put("/users/:id", adminValidator.UpdateUser(), ctl.UpdateUser)
	adminGroup.Patch("/users/:id/toggle-enabled", ctl.ToggleUserEnabled)
	adminGroup.Get("/users/:id/progress", ctl.GetUserProgress)

	adminGroup.Get("/progress", adminValidator.PageList(), ctl.ListProgress)
	adminGroup.Get("/stats", ctl.GetStats)

	adminGroup.Get("/analytics", ctl.GetAnalytics)
	adminGroup.Get("/analytics/export/csv", ctl.ExportAnalyticsCSV)

	adminGroup.Get("/audit-logs", adminValidator.AuditLogList(), ctl.ListAuditLogs)
	adminGroup.Get("/audit-logs/export", ctl.ExportAuditLogsCSV)
}
