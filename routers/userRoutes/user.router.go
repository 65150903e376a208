package userRoutes

import (
	userControllers "sbweb/controllers/user"
	"sbweb/middleware"
	userValidator "sbweb/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App, ctl *userControllers.Controller, auth *middleware.Auth) {
	userGroup := app.Group("/users/me", auth.Required())

	userGroup.Get("/profile", ctl.GetProfile)
	userGroup.Put("/profile", userValidator.UpdateProfile(), ctl.UpdateProfile)
}
