package courseRoutes

import (
	courseControllers "sbweb/controllers/course"
	"sbweb/middleware"
	courseValidator "sbweb/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes wires the learner-facing catalog and learning pages.
func SetupCourseRoutes(app *fiber.App, ctl *courseControllers.Controller, auth *middleware.Auth) {
	courseGroup := app.Group("/courses", auth.Required())

	courseGroup.Get("", courseValidator.CourseList(), ctl.GetAllCourses)
	courseGroup.Get("/:id", ctl.GetCourseDetails)
	courseGroup.Get("/:id/learn", ctl.GetLearnScreen)

	courseGroup.Get("/:id/lessons", ctl.GetLessons)
	courseGroup.Get("/:id/lessons/:lessonId/content", ctl.GetLessonContent)
	courseGroup.Post("/:id/lessons/:lessonId/complete", ctl.CompleteLesson)
	courseGroup.Delete("/:id/lessons/:lessonId/complete", ctl.UncompleteLesson)
}
