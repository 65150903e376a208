package lmsapi

import (
	"context"
	"fmt"
	"net/http"
)

// Submission status state machine: SUBMITTED → REVIEWING → {APPROVED, REJECTED}.
// Transitions are performed upstream by admin/instructor roles only.
const (
	SubmissionSubmitted = "SUBMITTED"
	SubmissionReviewing = "REVIEWING"
	SubmissionApproved  = "APPROVED"
	SubmissionRejected  = "REJECTED"
)

type Task struct {
	ID          int64  `json:"id"`
	CourseID    int64  `json:"courseId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	SortOrder   int    `json:"sortOrder"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type TaskSubmission struct {
	ID          int64          `json:"id"`
	TaskID      int64          `json:"taskId"`
	TaskTitle   string         `json:"taskTitle"`
	UserID      int64          `json:"userId"`
	UserName    string         `json:"userName"`
	GithubURL   string         `json:"githubUrl"`
	Status      string         `json:"status"`
	Feedbacks   []TaskFeedback `json:"feedbacks,omitempty"`
	SubmittedAt string         `json:"submittedAt"`
	UpdatedAt   string         `json:"updatedAt"`
}

type TaskFeedback struct {
	ID           int64  `json:"id"`
	SubmissionID int64  `json:"submissionId"`
	ReviewerID   int64  `json:"reviewerId"`
	ReviewerName string `json:"reviewerName"`
	Comment      string `json:"comment"`
	CreatedAt    string `json:"createdAt"`
}

type TaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	SortOrder   *int   `json:"sortOrder,omitempty"`
}

type CreateSubmissionRequest struct {
	GithubURL string `json:"githubUrl"`
}

type UpdateSubmissionStatusRequest struct {
	Status string `json:"status"`
}

type CreateFeedbackRequest struct {
	Comment string `json:"comment"`
}

func (c *Client) ListTasks(ctx context.Context, token string, courseID int64) ([]Task, error) {
	return get[[]Task](c, ctx, token, fmt.Sprintf("/courses/%d/tasks", courseID), nil)
}

func (c *Client) GetTask(ctx context.Context, token string, courseID, taskID int64) (Task, error) {
	return get[Task](c, ctx, token, fmt.Sprintf("/courses/%d/tasks/%d", courseID, taskID), nil)
}

func (c *Client) CreateTask(ctx context.Context, token string, courseID int64, req TaskRequest) (Task, error) {
	return post[Task](c, ctx, token, fmt.Sprintf("/courses/%d/tasks", courseID), req)
}

func (c *Client) UpdateTask(ctx context.Context, token string, courseID, taskID int64, req TaskRequest) (Task, error) {
	return put[Task](c, ctx, token, fmt.Sprintf("/courses/%d/tasks/%d", courseID, taskID), req)
}

func (c *Client) DeleteTask(ctx context.Context, token string, courseID, taskID int64) error {
	return doNoContent(c, ctx, token, http.MethodDelete, fmt.Sprintf("/courses/%d/tasks/%d", courseID, taskID), nil)
}

func (c *Client) SubmitTask(ctx context.Context, token string, taskID int64, req CreateSubmissionRequest) (TaskSubmission, error) {
	return post[TaskSubmission](c, ctx, token, fmt.Sprintf("/tasks/%d/submissions", taskID), req)
}

func (c *Client) MySubmissions(ctx context.Context, token string, taskID int64) ([]TaskSubmission, error) {
	return get[[]TaskSubmission](c, ctx, token, fmt.Sprintf("/tasks/%d/submissions/my", taskID), nil)
}

func (c *Client) ListSubmissions(ctx context.Context, token string, taskID int64, page, size int) (Page[TaskSubmission], error) {
	return get[Page[TaskSubmission]](c, ctx, token, fmt.Sprintf("/tasks/%d/submissions", taskID), pageQuery(page, size))
}

func (c *Client) GetSubmission(ctx context.Context, token string, submissionID int64) (TaskSubmission, error) {
	return get[TaskSubmission](c, ctx, token, fmt.Sprintf("/tasks/submissions/%d", submissionID), nil)
}

func (c *Client) UpdateSubmissionStatus(ctx context.Context, token string, submissionID int64, req UpdateSubmissionStatusRequest) (TaskSubmission, error) {
	return patch[TaskSubmission](c, ctx, token, fmt.Sprintf("/tasks/submissions/%d/status", submissionID), req)
}

func (c *Client) AddFeedback(ctx context.Context, token string, submissionID int64, req CreateFeedbackRequest) (TaskFeedback, error) {
	return post[TaskFeedback](c, ctx, token, fmt.Sprintf("/tasks/submissions/%d/feedback", submissionID), req)
}
