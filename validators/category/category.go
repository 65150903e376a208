package categoryValidator

import (
	"github.com/gofiber/fiber/v2"

	"sbweb/middleware"
	"sbweb/validators/shared"
)

type SaveCategoryPayload struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

type AssignPayload struct {
	CategoryIDs []int64 `json:"categoryIds" validate:"required,dive,gt=0"`
}

func SaveCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SaveCategoryPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errs := shared.Validate(reqData); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedCategory", reqData)
		return c.Next()
	}
}

func Assign() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AssignPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errs := shared.Validate(reqData); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedAssign", reqData)
		return c.Next()
	}
}
