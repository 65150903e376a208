package courseControllers

import (
	"github.com/gofiber/fiber/v2"

	"sbweb/lmsapi"
	"sbweb/middleware"
	courseValidator "sbweb/validators/course"
)

func lessonID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("lessonId")
	if err != nil || id <= 0 {
		return 0, fiber.ErrBadRequest
	}
	return int64(id), nil
}

func (ctl *Controller) GetLessons(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	id, err := courseID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	lessons, err := ctl.Api.ListLessons(c.Context(), sess.AccessToken, id)
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", lessons)
}

func (ctl *Controller) CreateLesson(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	id, err := courseID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	reqData := c.Locals("validatedLesson").(*courseValidator.SaveLessonPayload)

	lesson, err := ctl.Api.CreateLesson(c.Context(), sess.AccessToken, id, lmsapi.CreateLessonRequest{
		Title:       reqData.Title,
		ContentPath: reqData.ContentPath,
		SortOrder:   reqData.SortOrder,
		Published:   reqData.Published,
	})
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

func (ctl *Controller) UpdateLesson(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	cid, err := courseID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	lid, err := lessonID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}
	reqData := c.Locals("validatedLesson").(*courseValidator.SaveLessonPayload)

	lesson, err := ctl.Api.UpdateLesson(c.Context(), sess.AccessToken, cid, lid, lmsapi.UpdateLessonRequest{
		Title:       reqData.Title,
		ContentPath: reqData.ContentPath,
		Published:   reqData.Published,
	})
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

func (ctl *Controller) DeleteLesson(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	cid, err := courseID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	lid, err := lessonID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	if err := ctl.Api.DeleteLesson(c.Context(), sess.AccessToken, cid, lid); err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}

func (ctl *Controller) ReorderLessons(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	cid, err := courseID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	reqData := c.Locals("validatedReorder").(*courseValidator.ReorderPayload)

	orders := make([]lmsapi.ReorderLessonRequest, 0, len(reqData.Orders))
	for _, o := range reqData.Orders {
		orders = append(orders, lmsapi.ReorderLessonRequest{LessonID: o.LessonID, SortOrder: o.SortOrder})
	}
	if err := ctl.Api.ReorderLessons(c.Context(), sess.AccessToken, cid, orders); err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}

	lessons, err := ctl.Api.ListLessons(c.Context(), sess.AccessToken, cid)
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons reordered successfully!", lessons)
}

func (ctl *Controller) GetLessonContent(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	cid, err := courseID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	lid, err := lessonID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	content, err := ctl.Api.GetLessonContent(c.Context(), sess.AccessToken, cid, lid)
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson content fetched successfully!", content)
}
