package lmsapi

import (
	"context"
	"fmt"
	"net/http"
)

// Enrollment status values are server-driven; the client only reads them.
const (
	EnrollmentActive    = "ACTIVE"
	EnrollmentCompleted = "COMPLETED"
	EnrollmentDropped   = "DROPPED"
)

type Enrollment struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"userId"`
	Username    string  `json:"username"`
	CourseID    int64   `json:"courseId"`
	CourseTitle string  `json:"courseTitle"`
	Status      string  `json:"status"`
	EnrolledAt  string  `json:"enrolledAt"`
	CompletedAt *string `json:"completedAt"`
}

func (c *Client) Enroll(ctx context.Context, token string, courseID int64) (Enrollment, error) {
	return post[Enrollment](c, ctx, token, fmt.Sprintf("/courses/%d/enroll", courseID), nil)
}

func (c *Client) Unenroll(ctx context.Context, token string, courseID int64) (MessageResponse, error) {
	return doJSON[MessageResponse](c, ctx, token, http.MethodDelete, fmt.Sprintf("/courses/%d/enroll", courseID), nil, nil)
}

// GetEnrollment returns the caller's enrollment for a course; 404 means the
// user is simply not enrolled.
func (c *Client) GetEnrollment(ctx context.Context, token string, courseID int64) (Enrollment, error) {
	return get[Enrollment](c, ctx, token, fmt.Sprintf("/courses/%d/enrollment", courseID), nil)
}

func (c *Client) MyEnrollments(ctx context.Context, token string) ([]Enrollment, error) {
	return get[[]Enrollment](c, ctx, token, "/enrollments/my", nil)
}

func (c *Client) CourseEnrollments(ctx context.Context, token string, courseID int64, page, size int) (Page[Enrollment], error) {
	return get[Page[Enrollment]](c, ctx, token, fmt.Sprintf("/courses/%d/enrollments", courseID), pageQuery(page, size))
}
