package courseControllers

import (
	"github.com/gofiber/fiber/v2"

	"sbweb/middleware"
	"sbweb/viewmodel"
)

// GetLearnScreen renders the learning page for a course, optionally focused
// on a specific lesson via the lesson query parameter.
func (ctl *Controller) GetLearnScreen(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	cid, err := courseID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	selected := int64(c.QueryInt("lesson", 0))

	vm, err := viewmodel.LoadLearnScreen(c.Context(), ctl.Api, sess.AccessToken, cid, selected)
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Learn screen fetched successfully!", vm)
}

// CompleteLesson marks a lesson done and re-fetches the course progress
// snapshot so the caller renders server truth, never a local merge.
func (ctl *Controller) CompleteLesson(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	cid, err := courseID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	lid, err := lessonID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	if _, err := ctl.Api.CompleteLesson(c.Context(), sess.AccessToken, cid, lid); err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return ctl.respondProgress(c, cid, "Lesson completed successfully!")
}

func (ctl *Controller) UncompleteLesson(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	cid, err := courseID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	lid, err := lessonID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	if _, err := ctl.Api.UncompleteLesson(c.Context(), sess.AccessToken, cid, lid); err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return ctl.respondProgress(c, cid, "Lesson marked incomplete successfully!")
}

func (ctl *Controller) respondProgress(c *fiber.Ctx, cid int64, message string) error {
	sess, _ := middleware.SessionFrom(c)
	progress, err := ctl.Api.GetCourseProgress(c.Context(), sess.AccessToken, cid)
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	progress.ProgressPercentage = viewmodel.ClampPercent(progress.ProgressPercentage)
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, progress)
}
