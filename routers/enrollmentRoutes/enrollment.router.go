package enrollmentRoutes

import (
	enrollmentControllers "sbweb/controllers/enrollment"
	"sbweb/middleware"
	adminValidator "sbweb/validators/admin"

	"github.com/gofiber/fiber/v2"
)

func SetupEnrollmentRoutes(app *fiber.App, ctl *enrollmentControllers.Controller, auth *middleware.Auth) {
	courseGroup := app.Group("/courses", auth.Required())
	courseGroup.Post("/:id/enroll", ctl.Enroll)
	courseGroup.Delete("/:id/enroll", ctl.Unenroll)
	courseGroup.Get("/:id/enrollments", auth.RequireRole("ADMIN", "INSTRUCTOR"), adminValidator.PageList(), ctl.CourseEnrollments)

	enrollmentGroup := app.Group("/enrollments", auth.Required())
	enrollmentGroup.Get("/my", ctl.MyCourses)
}
