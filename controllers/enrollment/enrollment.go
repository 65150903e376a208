package enrollmentControllers

import (
	"github.com/gofiber/fiber/v2"

	"golang.org/x/sync/errgroup"

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

func courseID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fiber.ErrBadRequest
	}
	return int64(id), nil
}

// Enroll joins a course and returns the fresh enrollment so the detail page
// flips to its enrolled state without a full reload.
func (ctl *Controller) Enroll(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	cid, err := courseID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	enrollment, err := ctl.Api.Enroll(c.Context(), sess.AccessToken, cid)
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled successfully!", enrollment)
}

func (ctl *Controller) Unenroll(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	cid, err := courseID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	resp, err := ctl.Api.Unenroll(c.Context(), sess.AccessToken, cid)
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Unenrolled successfully!", resp)
}

// MyCourses joins the caller's enrollments with their progress snapshots.
// The full list feeds the All tab; the active and completed buckets follow
// Enrollment.Status strictly, so dropped courses appear in neither.
func (ctl *Controller) MyCourses(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)

	g, gctx := errgroup.WithContext(c.Context())
	var enrollments []lmsapi.Enrollment
	var progress []lmsapi.CourseProgress
	g.Go(func() error {
		var err error
		enrollments, err = ctl.Api.MyEnrollments(gctx, sess.AccessToken)
		return err
	})
	g.Go(func() error {
		var err error
		progress, err = ctl.Api.MyProgress(gctx, sess.AccessToken)
		return err
	})
	if err := g.Wait(); err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}

	cards := viewmodel.JoinCourses(enrollments, progress)
	active := make([]viewmodel.CourseCard, 0, len(cards))
	completed := make([]viewmodel.CourseCard, 0)
	for _, card := range cards {
		switch card.Enrollment.Status {
		case lmsapi.EnrollmentActive:
			active = append(active, card)
		case lmsapi.EnrollmentCompleted:
			completed = append(completed, card)
		}
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "My courses fetched successfully!", fiber.Map{
		"all":       cards,
		"active":    active,
		"completed": completed,
	})
}

// CourseEnrollments is the back-office roster of a course.
func (ctl *Controller) CourseEnrollments(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	cid, err := courseID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	reqData := c.Locals("validatedPageList").(*adminValidator.PageQuery)

	page, err := ctl.Api.CourseEnrollments(c.Context(), sess.AccessToken, cid, reqData.Page, reqData.Size)
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": page.Content,
		"pagination":  viewmodel.NewPager(page),
	})
}
