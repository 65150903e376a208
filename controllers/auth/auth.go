package authControllers

import (
	"github.com/gofiber/fiber/v2"

	"sbweb/lmsapi"
	"sbweb/middleware"
	"sbweb/notify"
	authValidator "sbweb/validators/auth"
)

type Controller struct {
	Api    *lmsapi.Client
	Auth   *middleware.Auth
	Badges *notify.Registry
}

func New(api *lmsapi.Client, auth *middleware.Auth, badges *notify.Registry) *Controller {
	return &Controller{Api: api, Auth: auth, Badges: badges}
}

// Login authenticates against the upstream API and opens a browser session.
// An upstream 401 here is the one place it surfaces as "invalid credentials"
// (the upstream message verbatim) instead of a session teardown.
func (ctl *Controller) Login(c *fiber.Ctx) error {
	reqData := c.Locals("validatedLogin").(*authValidator.LoginPayload)

	res, err := ctl.Api.Login(c.Context(), lmsapi.LoginRequest{
		Email:    reqData.Email,
		Password: reqData.Password,
	})
	if err != nil {
		return middleware.RespondUpstreamError(c, err)
	}

	sess, err := ctl.Auth.Store.Create(res.User, res.AccessToken, res.RefreshToken)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to open session!", nil)
	}
	if err := ctl.Auth.IssueCookie(c, sess); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to open session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged in successfully!", fiber.Map{
		"user": res.User,
	})
}

// Register creates an account upstream and logs the browser straight in.
func (ctl *Controller) Register(c *fiber.Ctx) error {
	reqData := c.Locals("validatedRegister").(*authValidator.RegisterPayload)

	res, err := ctl.Api.Register(c.Context(), lmsapi.RegisterRequest{
		Email:    reqData.Email,
		Password: reqData.Password,
		Username: reqData.Username,
	})
	if err != nil {
		return middleware.RespondUpstreamError(c, err)
	}

	sess, err := ctl.Auth.Store.Create(res.User, res.AccessToken, res.RefreshToken)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to open session!", nil)
	}
	if err := ctl.Auth.IssueCookie(c, sess); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to open session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Account created successfully!", fiber.Map{
		"user": res.User,
	})
}

// Logout notifies the upstream best-effort, then unconditionally clears the
// local session, its badge poller and the cookie. Logout never gets stuck on
// a failing server call.
func (ctl *Controller) Logout(c *fiber.Ctx) error {
	if sess, ok := middleware.SessionFrom(c); ok {
		_ = ctl.Api.Logout(c.Context(), sess.AccessToken)
		ctl.Badges.Remove(sess.ID)
	}
	ctl.Auth.Teardown(c)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out successfully!", nil)
}

// Me returns the session's user record, the thing every page gates on.
func (ctl *Controller) Me(c *fiber.Ctx) error {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Please log in to continue.", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session active.", fiber.Map{
		"user": sess.User(),
	})
}

func (ctl *Controller) ForgotPassword(c *fiber.Ctx) error {
	reqData := c.Locals("validatedForgotPassword").(*authValidator.ForgotPasswordPayload)

	res, err := ctl.Api.ForgotPassword(c.Context(), lmsapi.ForgotPasswordRequest{Email: reqData.Email})
	if err != nil {
		return middleware.RespondUpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, res.Message, nil)
}

func (ctl *Controller) ResetPassword(c *fiber.Ctx) error {
	reqData := c.Locals("validatedResetPassword").(*authValidator.ResetPasswordPayload)

	res, err := ctl.Api.ResetPassword(c.Context(), lmsapi.ResetPasswordRequest{
		Token:       reqData.Token,
		NewPassword: reqData.NewPassword,
	})
	if err != nil {
		return middleware.RespondUpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, res.Message, nil)
}
