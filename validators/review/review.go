package reviewValidator

import (
	"github.com/gofiber/fiber/v2"

	"sbweb/middleware"
	"sbweb/validators/shared"
)

type SaveReviewPayload struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"omitempty,max=2000"`
}

func SaveReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SaveReviewPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errs := shared.Validate(reqData); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}
