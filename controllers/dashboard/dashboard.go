package dashboardControllers

import (
	"github.com/gofiber/fiber/v2"

	"sbweb/lmsapi"
	"sbweb/middleware"
	"sbweb/viewmodel"
)

type Controller struct {
	Api  *lmsapi.Client
	Auth *middleware.Auth
}

func New(api *lmsapi.Client, auth *middleware.Auth) *Controller {
	return &Controller{Api: api, Auth: auth}
}

// Learner renders the learner dashboard view-model: enrollments joined with
// progress, pending tasks and recent feedback.
func (ctl *Controller) Learner(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)

	vm, err := viewmodel.LoadLearnerDashboard(c.Context(), ctl.Api, sess.AccessToken)
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", vm)
}

// Instructor renders the review queue for instructors and admins.
func (ctl *Controller) Instructor(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)

	vm, err := viewmodel.LoadInstructorDashboard(c.Context(), ctl.Api, sess.AccessToken)
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", vm)
}
