package taskValidator

import (
	"github.com/gofiber/fiber/v2"

	"sbweb/middleware"
	"sbweb/validators/shared"
)

type SaveTaskPayload struct {
	Title       string `json:"title" validate:"required,min=3,max=200"`
	Description string `json:"description" validate:"required,min=5"`
	SortOrder   *int   `json:"sortOrder" validate:"omitempty,gte=0"`
}

type SubmitPayload struct {
	GithubURL string `json:"githubUrl" validate:"required,url"`
}

type StatusPayload struct {
	Status string `json:"status" validate:"required,oneof=SUBMITTED REVIEWING APPROVED REJECTED"`
}

type FeedbackPayload struct {
	Comment string `json:"comment" validate:"required,min=1,max=2000"`
}

func SaveTask() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SaveTaskPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errs := shared.Validate(reqData); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedTask", reqData)
		return c.Next()
	}
}

func Submit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errs := shared.Validate(reqData); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}

func UpdateStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(StatusPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errs := shared.Validate(reqData); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedStatus", reqData)
		return c.Next()
	}
}

func Feedback() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(FeedbackPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errs := shared.Validate(reqData); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedFeedback", reqData)
		return c.Next()
	}
}
