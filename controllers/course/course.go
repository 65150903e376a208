package courseControllers

import (
	"github.com/gofiber/fiber/v2"

	"sbweb/lmsapi"
	"sbweb/middleware"
	"sbweb/viewmodel"
	courseValidator "sbweb/validators/course"
)

type Controller struct {
	Api  *lmsapi.Client
	Auth *middleware.Auth
}

func New(api *lmsapi.Client, auth *middleware.Auth) *Controller {
	return &Controller{Api: api, Auth: auth}
}

func courseID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fiber.ErrBadRequest
	}
	return int64(id), nil
}

// GetAllCourses renders the catalog page.
func (ctl *Controller) GetAllCourses(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	reqData := c.Locals("validatedList").(*courseValidator.ListQuery)

	page, err := ctl.Api.ListCourses(c.Context(), sess.AccessToken, lmsapi.CourseQuery{
		Page:    reqData.Page,
		Size:    reqData.Size,
		Keyword: reqData.Keyword,
		Status:  reqData.Status,
		Sort:    reqData.Sort,
	})
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses":    page.Content,
		"pagination": viewmodel.NewPager(page),
	})
}

// GetCourseDetails renders the composed course-detail screen.
func (ctl *Controller) GetCourseDetails(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	id, err := courseID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	reviewPage := c.QueryInt("reviewPage", 0)
	if reviewPage < 0 {
		reviewPage = 0
	}

	vm, err := viewmodel.LoadCourseDetail(c.Context(), ctl.Api, sess.AccessToken, id, reviewPage, 10)
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", vm)
}

func (ctl *Controller) CreateCourse(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	reqData := c.Locals("validatedCourse").(*courseValidator.SaveCoursePayload)

	course, err := ctl.Api.CreateCourse(c.Context(), sess.AccessToken, lmsapi.CourseRequest{
		Title:       reqData.Title,
		Description: reqData.Description,
	})
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

func (ctl *Controller) UpdateCourse(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	id, err := courseID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	reqData := c.Locals("validatedCourse").(*courseValidator.SaveCoursePayload)

	course, err := ctl.Api.UpdateCourse(c.Context(), sess.AccessToken, id, lmsapi.CourseRequest{
		Title:       reqData.Title,
		Description: reqData.Description,
	})
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

func (ctl *Controller) DeleteCourse(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	id, err := courseID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	if err := ctl.Api.DeleteCourse(c.Context(), sess.AccessToken, id); err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

func (ctl *Controller) TogglePublish(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	id, err := courseID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	course, err := ctl.Api.TogglePublish(c.Context(), sess.AccessToken, id)
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Publish state changed successfully!", course)
}
