package lmsapi

import "context"

type EnrollmentTrend struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type CompletionStats struct {
	CourseTitle          string  `json:"courseTitle"`
	TotalEnrollments     int     `json:"totalEnrollments"`
	CompletedEnrollments int     `json:"completedEnrollments"`
	CompletionRate       float64 `json:"completionRate"`
}

type PopularCourse struct {
	CourseID        int64    `json:"courseId"`
	CourseTitle     string   `json:"courseTitle"`
	EnrollmentCount int      `json:"enrollmentCount"`
	AverageRating   *float64 `json:"averageRating"`
}

func (c *Client) EnrollmentTrends(ctx context.Context, token, period string) ([]EnrollmentTrend, error) {
	query := map[string]string{"period": period}
	return get[[]EnrollmentTrend](c, ctx, token, "/admin/analytics/enrollments", query)
}

func (c *Client) CompletionStatsList(ctx context.Context, token string) ([]CompletionStats, error) {
	return get[[]CompletionStats](c, ctx, token, "/admin/analytics/completions", nil)
}

func (c *Client) PopularCourses(ctx context.Context, token string) ([]PopularCourse, error) {
	return get[[]PopularCourse](c, ctx, token, "/admin/analytics/popular-courses", nil)
}

// AnalyticsCSV returns the analytics export as an opaque byte stream.
func (c *Client) AnalyticsCSV(ctx context.Context, token string) ([]byte, string, error) {
	return doBytes(c, ctx, token, "/admin/analytics/export/csv")
}
