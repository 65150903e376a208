package reviewControllers

import (
	"github.com/gofiber/fiber/v2"

	"sbweb/lmsapi"
	"sbweb/middleware"
	reviewValidator "sbweb/validators/review"
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

func (ctl *Controller) ListReviews(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	cid, err := courseID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	page := c.QueryInt("page", 0)
	if page < 0 {
		page = 0
	}

	reviews, err := ctl.Api.ListReviews(c.Context(), sess.AccessToken, cid, page, 10)
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully!", fiber.Map{
		"reviews":    reviews.Content,
		"pagination": viewmodel.NewPager(reviews),
	})
}

// SaveReview creates or replaces the caller's review. The upstream keeps one
// review per user per course, so the detail page sends the same form either
// way and we pick the verb from the exists flag.
func (ctl *Controller) SaveReview(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	cid, err := courseID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	reqData := c.Locals("validatedReview").(*reviewValidator.SaveReviewPayload)
	req := lmsapi.ReviewRequest{Rating: reqData.Rating, Comment: reqData.Comment}

	var review lmsapi.Review
	if _, lookupErr := ctl.Api.MyReview(c.Context(), sess.AccessToken, cid); lookupErr == nil {
		review, err = ctl.Api.UpdateReview(c.Context(), sess.AccessToken, cid, req)
	} else {
		review, err = ctl.Api.CreateReview(c.Context(), sess.AccessToken, cid, req)
	}
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review saved successfully!", review)
}

func (ctl *Controller) DeleteReview(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	cid, err := courseID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	if err := ctl.Api.DeleteReview(c.Context(), sess.AccessToken, cid); err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review deleted successfully!", nil)
}
