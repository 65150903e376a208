package adminControllers

import (
	"github.com/gofiber/fiber/v2"

	"sbweb/lmsapi"
	"sbweb/middleware"
	adminValidator "sbweb/validators/admin"
	"sbweb/viewmodel"
)

type Controller struct {
	Api  *lmsapi.Client
	Auth *middleware.Auth
}

func New(api *lmsapi.Client, auth *middleware.Auth) *Controller {
	return &Controller{Api: api, Auth: auth}
}

func userID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fiber.ErrBadRequest
	}
	return int64(id), nil
}

func (ctl *Controller) ListUsers(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	reqData := c.Locals("validatedUserList").(*adminValidator.UserListQuery)

	page, err := ctl.Api.ListUsers(c.Context(), sess.AccessToken, lmsapi.AdminUserQuery{
		Page:    reqData.Page,
		Size:    reqData.Size,
		Keyword: reqData.Keyword,
		Role:    reqData.Role,
	})
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", fiber.Map{
		"users":      page.Content,
		"pagination": viewmodel.NewPager(page),
	})
}

func (ctl *Controller) GetUser(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	id, err := userID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	user, err := ctl.Api.GetUser(c.Context(), sess.AccessToken, id)
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully!", user)
}

func (ctl *Controller) CreateUser(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	reqData := c.Locals("validatedCreateUser").(*adminValidator.CreateUserPayload)

	user, err := ctl.Api.CreateUser(c.Context(), sess.AccessToken, lmsapi.AdminCreateUserRequest{
		Email:    reqData.Email,
		Password: reqData.Password,
		Name:     reqData.Name,
		Role:     reqData.Role,
	})
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User created successfully!", user)
}

func (ctl *Controller) UpdateUser(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	id, err := userID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}
	reqData := c.Locals("validatedUpdateUser").(*adminValidator.UpdateUserPayload)

	user, err := ctl.Api.UpdateUser(c.Context(), sess.AccessToken, id, lmsapi.AdminUpdateUserRequest{
		Name: reqData.Name,
		Role: reqData.Role,
	})
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated successfully!", user)
}

func (ctl *Controller) ToggleUserEnabled(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	id, err := userID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	user, err := ctl.Api.ToggleUserEnabled(c.Context(), sess.AccessToken, id)
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User state changed successfully!", user)
}

func (ctl *Controller) ListProgress(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	reqData := c.Locals("validatedPageList").(*adminValidator.PageQuery)

	page, err := ctl.Api.ListProgress(c.Context(), sess.AccessToken, reqData.Page, reqData.Size)
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress overview fetched successfully!", fiber.Map{
		"progress":   page.Content,
		"pagination": viewmodel.NewPager(page),
	})
}

// GetUserProgress drills into one learner's per-course progress, clamped the
// same way learner-facing bars are.
func (ctl *Controller) GetUserProgress(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	id, err := userID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	progress, err := ctl.Api.UserProgress(c.Context(), sess.AccessToken, id)
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	for i := range progress {
		progress[i].ProgressPercentage = viewmodel.ClampPercent(progress[i].ProgressPercentage)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User progress fetched successfully!", progress)
}

func (ctl *Controller) GetStats(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)

	stats, err := ctl.Api.Stats(c.Context(), sess.AccessToken)
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", stats)
}
