package adminValidator

import (
	"github.com/gofiber/fiber/v2"

	"sbweb/middleware"
	"sbweb/validators/shared"
)

type CreateUserPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Role     string `json:"role" validate:"required,oneof=ADMIN INSTRUCTOR LEARNER"`
}

type UpdateUserPayload struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
	Role string `json:"role" validate:"required,oneof=ADMIN INSTRUCTOR LEARNER"`
}

type UserListQuery struct {
	Page    int    `query:"page" validate:"gte=0"`
	Size    int    `query:"size" validate:"gte=1,lte=100"`
	Keyword string `query:"keyword"`
	Role    string `query:"role" validate:"omitempty,oneof=ADMIN INSTRUCTOR LEARNER"`
}

type AuditLogQuery struct {
	Page       int    `query:"page" validate:"gte=0"`
	Size       int    `query:"size" validate:"gte=1,lte=100"`
	Action     string `query:"action"`
	EntityType string `query:"entityType"`
	UserID     int64  `query:"userId" validate:"gte=0"`
}

type PageQuery struct {
	Page int `query:"page" validate:"gte=0"`
	Size int `query:"size" validate:"gte=1,lte=100"`
}

func CreateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateUserPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errs := shared.Validate(reqData); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedCreateUser", reqData)
		return c.Next()
	}
}

func UpdateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateUserPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errs := shared.Validate(reqData); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedUpdateUser", reqData)
		return c.Next()
	}
}

func UserList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := &UserListQuery{Size: 20}
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}
		if errs := shared.Validate(reqData); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedUserList", reqData)
		return c.Next()
	}
}

func AuditLogList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := &AuditLogQuery{Size: 20}
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}
		if errs := shared.Validate(reqData); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedAuditLogList", reqData)
		return c.Next()
	}
}

// PageList validates bare zero-based pagination used by several admin lists.
func PageList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := &PageQuery{Size: 20}
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}
		if errs := shared.Validate(reqData); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedPageList", reqData)
		return c.Next()
	}
}
