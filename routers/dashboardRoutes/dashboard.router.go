package dashboardRoutes

import (
	dashboardControllers "sbweb/controllers/dashboard"
	"sbweb/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App, ctl *dashboardControllers.Controller, auth *middleware.Auth) {
	dashboardGroup := app.Group("/dashboard", auth.Required())

	dashboardGroup.Get("/learner", ctl.Learner)
	dashboardGroup.Get("/instructor", auth.RequireRole("ADMIN", "INSTRUCTOR"), ctl.Instructor)
}
