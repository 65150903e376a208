package categoryControllers

import (
	"github.com/gofiber/fiber/v2"

	"sbweb/lmsapi"
	"sbweb/middleware"
	categoryValidator "sbweb/validators/category"
)

type Controller struct {
	Api  *lmsapi.Client
	Auth *middleware.Auth
}

func New(api *lmsapi.Client, auth *middleware.Auth) *Controller {
	return &Controller{Api: api, Auth: auth}
}

func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, fiber.ErrBadRequest
	}
	return int64(id), nil
}

func (ctl *Controller) GetAllCategories(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)

	categories, err := ctl.Api.ListCategories(c.Context(), sess.AccessToken)
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", categories)
}

func (ctl *Controller) CreateCategory(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	reqData := c.Locals("validatedCategory").(*categoryValidator.SaveCategoryPayload)

	category, err := ctl.Api.CreateCategory(c.Context(), sess.AccessToken, lmsapi.CategoryRequest{
		Name:        reqData.Name,
		Description: reqData.Description,
	})
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully!", category)
}

func (ctl *Controller) UpdateCategory(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	id, err := paramID(c, "id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category id!", nil)
	}
	reqData := c.Locals("validatedCategory").(*categoryValidator.SaveCategoryPayload)

	category, err := ctl.Api.UpdateCategory(c.Context(), sess.AccessToken, id, lmsapi.CategoryRequest{
		Name:        reqData.Name,
		Description: reqData.Description,
	})
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category updated successfully!", category)
}

func (ctl *Controller) DeleteCategory(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	id, err := paramID(c, "id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category id!", nil)
	}

	if err := ctl.Api.DeleteCategory(c.Context(), sess.AccessToken, id); err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category deleted successfully!", nil)
}

func (ctl *Controller) GetCourseCategories(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	cid, err := paramID(c, "id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	categories, err := ctl.Api.CourseCategories(c.Context(), sess.AccessToken, cid)
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course categories fetched successfully!", categories)
}

// AssignCourseCategories replaces a course's category set, then returns the
// refreshed list.
func (ctl *Controller) AssignCourseCategories(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	cid, err := paramID(c, "id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	reqData := c.Locals("validatedAssign").(*categoryValidator.AssignPayload)

	if err := ctl.Api.SetCourseCategories(c.Context(), sess.AccessToken, cid, reqData.CategoryIDs); err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}

	categories, err := ctl.Api.CourseCategories(c.Context(), sess.AccessToken, cid)
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course categories updated successfully!", categories)
}
