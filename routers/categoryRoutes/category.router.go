package categoryRoutes

import (
	categoryControllers "sbweb/controllers/category"
	"sbweb/middleware"
	categoryValidator "sbweb/validators/category"

	"github.com/gofiber/fiber/v2"
)

func SetupCategoryRoutes(app *fiber.App, ctl *categoryControllers.Controller, auth *middleware.Auth) {
	categoryGroup := app.Group("/categories", auth.Required())
	categoryGroup.Get("", ctl.GetAllCategories)
	categoryGroup.Get("/courses/:id", ctl.GetCourseCategories)

	manageGroup := app.Group("/categories", auth.RequireRole("ADMIN", "INSTRUCTOR"))
	manageGroup.Post("", categoryValidator.SaveCategory(), ctl.CreateCategory)
	manageGroup.Put("/:id", categoryValidator.SaveCategory(), ctl.UpdateCategory)
	manageGroup.Delete("/:id", ctl.DeleteCategory)
	manageGroup.Put("/courses/:id", categoryValidator.Assign(), ctl.AssignCourseCategories)
}
