package lmsapi

import "context"

// PendingTaskItem is a server-computed dashboard projection: tasks in
// enrolled courses with no live submission by the learner.
type PendingTaskItem struct {
	TaskID      int64  `json:"taskId"`
	TaskTitle   string `json:"taskTitle"`
	CourseID    int64  `json:"courseId"`
	CourseTitle string `json:"courseTitle"`
}

type RecentFeedbackItem struct {
	SubmissionID int64  `json:"submissionId"`
	TaskTitle    string `json:"taskTitle"`
	ReviewerName string `json:"reviewerName"`
	Comment      string `json:"comment"`
	CreatedAt    string `json:"createdAt"`
}

type LearnerDashboardResponse struct {
	EnrolledCourses []CourseProgress     `json:"enrolledCourses"`
	PendingTasks    []PendingTaskItem    `json:"pendingTasks"`
	RecentFeedbacks []RecentFeedbackItem `json:"recentFeedbacks"`
}

type RecentSubmissionItem struct {
	SubmissionID int64  `json:"submissionId"`
	TaskTitle    string `json:"taskTitle"`
	LearnerName  string `json:"learnerName"`
	Status       string `json:"status"`
	SubmittedAt  string `json:"submittedAt"`
}

type InstructorDashboardResponse struct {
	UnreviewedCount   int                    `json:"unreviewedCount"`
	RecentSubmissions []RecentSubmissionItem `json:"recentSubmissions"`
}

func (c *Client) LearnerDashboard(ctx context.Context, token string) (LearnerDashboardResponse, error) {
	return get[LearnerDashboardResponse](c, ctx, token, "/dashboard/learner", nil)
}

func (c *Client) InstructorDashboard(ctx context.Context, token string) (InstructorDashboardResponse, error) {
	return get[InstructorDashboardResponse](c, ctx, token, "/dashboard/instructor", nil)
}
