package taskRoutes

import (
	taskControllers "sbweb/controllers/task"
	"sbweb/middleware"
	adminValidator "sbweb/validators/admin"
	taskValidator "sbweb/validators/task"

	"github.com/gofiber/fiber/v2"
)

func SetupTaskRoutes(app *fiber.App, ctl *taskControllers.Controller, auth *middleware.Auth) {
	courseGroup := app.Group("/courses", auth.Required())
	courseGroup.Get("/:id/tasks", ctl.GetCourseTasks)
	courseGroup.Get("/:id/tasks/:taskId", ctl.GetTask)

	manageGroup := app.Group("/courses", auth.RequireRole("ADMIN", "INSTRUCTOR"))
	manageGroup.Post("/:id/tasks", taskValidator.SaveTask(), ctl.CreateTask)
	manageGroup.Put("/:id/tasks/:taskId", taskValidator.SaveTask(), ctl.UpdateTask)
	manageGroup.Delete("/:id/tasks/:taskId", ctl.DeleteTask)

	taskGroup := app.Group("/tasks", auth.Required())
	taskGroup.Post("/:taskId/submissions", taskValidator.Submit(), ctl.SubmitTask)
	taskGroup.Get("/:taskId/submissions/my", ctl.MySubmissions)

	reviewGroup := app.Group("/tasks", auth.RequireRole("ADMIN", "INSTRUCTOR"))
	reviewGroup.Get("/:taskId/submissions", adminValidator.PageList(), ctl.ListSubmissions)
	reviewGroup.Get("/submissions/:submissionId", ctl.GetSubmission)
	reviewGroup.Patch("/submissions/:submissionId/status", taskValidator.UpdateStatus(), ctl.UpdateSubmissionStatus)
	reviewGroup.Post("/submissions/:submissionId/feedback", taskValidator.Feedback(), ctl.AddFeedback)
}
