package reviewRoutes

import (
	reviewControllers "sbweb/controllers/review"
	"sbweb/middleware"
	reviewValidator "sbweb/validators/review"

	"github.com/gofiber/fiber/v2"
)

func SetupReviewRoutes(app *fiber.App, ctl *reviewControllers.Controller, auth *middleware.Auth) {
	reviewGroup := app.Group("/courses/:id/reviews", auth.Required())

	reviewGroup.Get("", ctl.ListReviews)
	reviewGroup.Put("", reviewValidator.SaveReview(), ctl.SaveReview)
	reviewGroup.Delete("", ctl.DeleteReview)
}
