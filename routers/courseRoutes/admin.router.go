package courseRoutes

import (
	courseControllers "sbweb/controllers/course"
	"sbweb/middleware"
	courseValidator "sbweb/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseAdminRoutes wires course and lesson authoring, restricted to
// instructors and admins.
func SetupCourseAdminRoutes(app *fiber.App, ctl *courseControllers.Controller, auth *middleware.Auth) {
	manageGroup := app.Group("/courses", auth.RequireRole("ADMIN", "INSTRUCTOR"))

	manageGroup.Post("", courseValidator.SaveCourse(), ctl.CreateCourse)
	manageGroup.Put("/:id", courseValidator.SaveCourse(), ctl.UpdateCourse)
	manageGroup.Delete("/:id", ctl.DeleteCourse)
	manageGroup.Patch("/:id/publish", ctl.TogglePublish)

	manageGroup.Post("/:id/lessons", courseValidator.SaveLesson(), ctl.CreateLesson)
	manageGroup.Put("/:id/lessons/:lessonId", courseValidator.SaveLesson(), ctl.UpdateLesson)
	manageGroup.Delete("/:id/lessons/:lessonId", ctl.DeleteLesson)
	manageGroup.Patch("/:id/lessons/reorder", courseValidator.ReorderLessons(), ctl.ReorderLessons)
}
