package courseValidator

import (
	"github.com/gofiber/fiber/v2"

	"sbweb/middleware"
	"sbweb/validators/shared"
)

type SaveCoursePayload struct {
	Title       string `json:"title" validate:"required,min=3,max=200"`
	Description string `json:"description" validate:"required,min=5"`
}

type SaveLessonPayload struct {
	Title       string `json:"title" validate:"required,min=3,max=200"`
	ContentPath string `json:"contentPath" validate:"required"`
	SortOrder   *int   `json:"sortOrder" validate:"omitempty,gte=0"`
	Published   *bool  `json:"published"`
}

type ReorderPayload struct {
	Orders []ReorderItem `json:"orders" validate:"required,min=1,dive"`
}

type ReorderItem struct {
	LessonID  int64 `json:"lessonId" validate:"required,gt=0"`
	SortOrder int   `json:"sortOrder" validate:"gte=0"`
}

// ListQuery is the zero-based pagination + filter query of the catalog.
type ListQuery struct {
	Page    int    `query:"page" validate:"gte=0"`
	Size    int    `query:"size" validate:"gte=1,lte=100"`
	Keyword string `query:"keyword"`
	Status  string `query:"status" validate:"omitempty,oneof=PUBLISHED DRAFT"`
	Sort    string `query:"sort"`
}

func SaveCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SaveCoursePayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errs := shared.Validate(reqData); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func SaveLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SaveLessonPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errs := shared.Validate(reqData); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

func ReorderLessons() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ReorderPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errs := shared.Validate(reqData); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedReorder", reqData)
		return c.Next()
	}
}

// CourseList validates the catalog query. Page is zero-based and never
// negative; size defaults to 10.
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := &ListQuery{Size: 10}
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}
		if errs := shared.Validate(reqData); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedList", reqData)
		return c.Next()
	}
}
