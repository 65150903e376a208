package authRoutes

import (
	authControllers "sbweb/controllers/auth"
	"sbweb/middleware"
	authValidator "sbweb/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, ctl *authControllers.Controller, auth *middleware.Auth) {
	authGroup := app.Group("/auth")

	authGroup.Post("/login", authValidator.Login(), ctl.Login)
	authGroup.Post("/register", authValidator.Register(), ctl.Register)
	authGroup.Post("/forgot-password", authValidator.ForgotPassword(), ctl.ForgotPassword)
	authGroup.Post("/reset-password", authValidator.ResetPassword(), ctl.ResetPassword)

	authGroup.Post("/logout", auth.Required(), ctl.Logout)
	authGroup.Get("/me", auth.Required(), ctl.Me)
}
