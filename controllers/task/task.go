package taskControllers

import (
	"github.com/gofiber/fiber/v2"

	"sbweb/lmsapi"
	"sbweb/middleware"
	adminValidator "sbweb/validators/admin"
	taskValidator "sbweb/validators/task"
	"sbweb/viewmodel"
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

func (ctl *Controller) GetCourseTasks(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	cid, err := paramID(c, "id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	tasks, err := ctl.Api.ListTasks(c.Context(), sess.AccessToken, cid)
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tasks fetched successfully!", tasks)
}

func (ctl *Controller) GetTask(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	cid, err := paramID(c, "id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	tid, err := paramID(c, "taskId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid task id!", nil)
	}

	task, err := ctl.Api.GetTask(c.Context(), sess.AccessToken, cid, tid)
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Task fetched successfully!", task)
}

func (ctl *Controller) CreateTask(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	cid, err := paramID(c, "id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	reqData := c.Locals("validatedTask").(*taskValidator.SaveTaskPayload)

	task, err := ctl.Api.CreateTask(c.Context(), sess.AccessToken, cid, lmsapi.TaskRequest{
		Title:       reqData.Title,
		Description: reqData.Description,
		SortOrder:   reqData.SortOrder,
	})
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Task created successfully!", task)
}

func (ctl *Controller) UpdateTask(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	cid, err := paramID(c, "id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	tid, err := paramID(c, "taskId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid task id!", nil)
	}
	reqData := c.Locals("validatedTask").(*taskValidator.SaveTaskPayload)

	task, err := ctl.Api.UpdateTask(c.Context(), sess.AccessToken, cid, tid, lmsapi.TaskRequest{
		Title:       reqData.Title,
		Description: reqData.Description,
		SortOrder:   reqData.SortOrder,
	})
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Task updated successfully!", task)
}

func (ctl *Controller) DeleteTask(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	cid, err := paramID(c, "id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	tid, err := paramID(c, "taskId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid task id!", nil)
	}

	if err := ctl.Api.DeleteTask(c.Context(), sess.AccessToken, cid, tid); err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Task deleted successfully!", nil)
}

// SubmitTask sends a solution link and returns the caller's submission list
// for the task so the page shows the new row with server-assigned status.
func (ctl *Controller) SubmitTask(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	tid, err := paramID(c, "taskId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid task id!", nil)
	}
	reqData := c.Locals("validatedSubmission").(*taskValidator.SubmitPayload)

	if _, err := ctl.Api.SubmitTask(c.Context(), sess.AccessToken, tid, lmsapi.CreateSubmissionRequest{
		GithubURL: reqData.GithubURL,
	}); err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}

	mine, err := ctl.Api.MySubmissions(c.Context(), sess.AccessToken, tid)
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Task submitted successfully!", mine)
}

func (ctl *Controller) MySubmissions(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	tid, err := paramID(c, "taskId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid task id!", nil)
	}

	mine, err := ctl.Api.MySubmissions(c.Context(), sess.AccessToken, tid)
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submissions fetched successfully!", mine)
}

// ListSubmissions is the reviewer view, paged.
func (ctl *Controller) ListSubmissions(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	tid, err := paramID(c, "taskId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid task id!", nil)
	}
	reqData := c.Locals("validatedPageList").(*adminValidator.PageQuery)

	page, err := ctl.Api.ListSubmissions(c.Context(), sess.AccessToken, tid, reqData.Page, reqData.Size)
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submissions fetched successfully!", fiber.Map{
		"submissions": page.Content,
		"pagination":  viewmodel.NewPager(page),
	})
}

func (ctl *Controller) GetSubmission(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	sid, err := paramID(c, "submissionId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid submission id!", nil)
	}

	submission, err := ctl.Api.GetSubmission(c.Context(), sess.AccessToken, sid)
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submission fetched successfully!", submission)
}

func (ctl *Controller) UpdateSubmissionStatus(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	sid, err := paramID(c, "submissionId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid submission id!", nil)
	}
	reqData := c.Locals("validatedStatus").(*taskValidator.StatusPayload)

	submission, err := ctl.Api.UpdateSubmissionStatus(c.Context(), sess.AccessToken, sid, lmsapi.UpdateSubmissionStatusRequest{
		Status: reqData.Status,
	})
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submission status updated successfully!", submission)
}

// AddFeedback posts a review comment and returns the refreshed submission so
// the thread renders without another round trip.
func (ctl *Controller) AddFeedback(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	sid, err := paramID(c, "submissionId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid submission id!", nil)
	}
	reqData := c.Locals("validatedFeedback").(*taskValidator.FeedbackPayload)

	if _, err := ctl.Api.AddFeedback(c.Context(), sess.AccessToken, sid, lmsapi.CreateFeedbackRequest{
		Comment: reqData.Comment,
	}); err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}

	submission, err := ctl.Api.GetSubmission(c.Context(), sess.AccessToken, sid)
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Feedback added successfully!", submission)
}
