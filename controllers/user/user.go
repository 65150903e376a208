package userControllers

import (
	"github.com/gofiber/fiber/v2"

	"sbweb/lmsapi"
	"sbweb/middleware"
	"sbweb/session"
	userValidator "sbweb/validators/user"
)

type Controller struct {
	Api   *lmsapi.Client
	Auth  *middleware.Auth
	Store *session.Store
}

func New(api *lmsapi.Client, auth *middleware.Auth, store *session.Store) *Controller {
	return &Controller{Api: api, Auth: auth, Store: store}
}

func (ctl *Controller) GetProfile(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)

	profile, err := ctl.Api.GetProfile(c.Context(), sess.AccessToken)
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", profile)
}

// UpdateProfile saves the new username upstream and refreshes the copy held
// in the session row so the header renders the new name immediately.
func (ctl *Controller) UpdateProfile(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	reqData := c.Locals("validatedProfile").(*userValidator.UpdateProfilePayload)

	profile, err := ctl.Api.UpdateProfile(c.Context(), sess.AccessToken, lmsapi.UpdateProfileRequest{
		Username: reqData.Username,
	})
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}

	user := sess.User()
	user.Username = profile.Username
	if err := ctl.Store.UpdateUser(sess.ID, user); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to refresh session!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", profile)
}
