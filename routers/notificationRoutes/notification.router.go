package notificationRoutes

import (
	notificationControllers "sbweb/controllers/notification"
	"sbweb/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupNotificationRoutes(app *fiber.App, ctl *notificationControllers.Controller, auth *middleware.Auth) {
	notificationGroup := app.Group("/notifications", auth.Required())

	notificationGroup.Get("", ctl.GetNotifications)
	notificationGroup.Get("/unread-count", ctl.UnreadCount)
	notificationGroup.Patch("/:id/read", ctl.MarkRead)
	notificationGroup.Post("/read-all", ctl.MarkAllRead)
}
