package lmsapi

import (
	"context"
	"fmt"
)

type AdminUser struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Enabled   bool   `json:"enabled"`
	CreatedAt string `json:"createdAt"`
}

type AdminCreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type AdminUpdateUserRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type UserProgressSummary struct {
	UserID           int64  `json:"userId"`
	UserName         string `json:"userName"`
	Email            string `json:"email"`
	EnrolledCourses  int    `json:"enrolledCourses"`
	CompletedCourses int    `json:"completedCourses"`
	AverageProgress  int    `json:"averageProgress"`
}

type UserCourseProgress struct {
	CourseID           int64  `json:"courseId"`
	CourseTitle        string `json:"courseTitle"`
	CompletedLessons   int    `json:"completedLessons"`
	TotalLessons       int    `json:"totalLessons"`
	ProgressPercentage int    `json:"progressPercentage"`
	EnrolledAt         string `json:"enrolledAt"`
}

type AdminStats struct {
	TotalUsers            int     `json:"totalUsers"`
	TotalCourses          int     `json:"totalCourses"`
	TotalEnrollments      int     `json:"totalEnrollments"`
	AverageCompletionRate float64 `json:"averageCompletionRate"`
}

// AdminUserQuery narrows the user listing by keyword and role.
type AdminUserQuery struct {
	Page    int
	Size    int
	Keyword string
	Role    string
}

func (c *Client) ListUsers(ctx context.Context, token string, q AdminUserQuery) (Page[AdminUser], error) {
	query := pageQuery(q.Page, q.Size)
	if q.Keyword != "" {
		query["keyword"] = q.Keyword
	}
	if q.Role != "" {
		query["role"] = q.Role
	}
	return get[Page[AdminUser]](c, ctx, token, "/admin/users", query)
}

func (c *Client) GetUser(ctx context.Context, token string, id int64) (AdminUser, error) {
	return get[AdminUser](c, ctx, token, fmt.Sprintf("/admin/users/%d", id), nil)
}

func (c *Client) CreateUser(ctx context.Context, token string, req AdminCreateUserRequest) (AdminUser, error) {
	return post[AdminUser](c, ctx, token, "/admin/users", req)
}

func (c *Client) UpdateUser(ctx context.Context, token string, id int64, req AdminUpdateUserRequest) (AdminUser, error) {
	return put[AdminUser](c, ctx, token, fmt.Sprintf("/admin/users/%d", id), req)
}

func (c *Client) ToggleUserEnabled(ctx context.Context, token string, id int64) (AdminUser, error) {
	return patch[AdminUser](c, ctx, token, fmt.Sprintf("/admin/users/%d/toggle-enabled", id), nil)
}

func (c *Client) ListProgress(ctx context.Context, token string, page, size int) (Page[UserProgressSummary], error) {
	return get[Page[UserProgressSummary]](c, ctx, token, "/admin/progress", pageQuery(page, size))
}

func (c *Client) UserProgress(ctx context.Context, token string, userID int64) ([]UserCourseProgress, error) {
	return get[[]UserCourseProgress](c, ctx, token, fmt.Sprintf("/admin/users/%d/progress", userID), nil)
}

func (c *Client) Stats(ctx context.Context, token string) (AdminStats, error) {
	return get[AdminStats](c, ctx, token, "/admin/stats", nil)
}
