package middleware

import (
	"github.com/gofiber/fiber/v2"

	"sbweb/lmsapi"
)

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// ValidationErrorResponse responds with per-field inline messages. Entered
// values are never cleared; the page re-renders them alongside the errors.
func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"status":  false,
		"message": "Validation failed!",
		"errors":  errors,
	})
}

// RespondUpstreamError maps a failed upstream call onto the uniform JSON
// envelope: validation errors keep their field map, other API errors surface
// the upstream message verbatim, and transport failures get the generic
// fallback without leaking details.
func RespondUpstreamError(c *fiber.Ctx, err error) error {
	if apiErr, ok := lmsapi.AsAPIError(err); ok {
		if len(apiErr.Errors) > 0 {
			return c.Status(apiErr.StatusCode).JSON(fiber.Map{
				"status":  false,
				"message": apiErr.Message,
				"errors":  apiErr.Errors,
			})
		}
		return JsonResponse(c, apiErr.StatusCode, false, apiErr.Message, nil)
	}
	return JsonResponse(c, fiber.StatusBadGateway, false, lmsapi.GenericFailureMessage, nil)
}
