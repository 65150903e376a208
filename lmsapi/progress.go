package lmsapi

import (
	"context"
	"fmt"
	"net/http"
)

// LessonProgress invariant: Completed is true iff CompletedAt is non-null.
type LessonProgress struct {
	LessonID    int64   `json:"lessonId"`
	LessonTitle string  `json:"lessonTitle"`
	SortOrder   int     `json:"sortOrder"`
	Completed   bool    `json:"completed"`
	CompletedAt *string `json:"completedAt"`
}

// CourseProgress is a server-derived snapshot, re-fetched after every
// mutating action rather than merged locally.
type CourseProgress struct {
	CourseID           int64            `json:"courseId"`
	CourseTitle        string           `json:"courseTitle"`
	TotalLessons       int              `json:"totalLessons"`
	CompletedLessons   int              `json:"completedLessons"`
	ProgressPercentage int              `json:"progressPercentage"`
	LessonProgresses   []LessonProgress `json:"lessonProgresses"`
}

func (c *Client) CompleteLesson(ctx context.Context, token string, courseID, lessonID int64) (MessageResponse, error) {
	return post[MessageResponse](c, ctx, token, fmt.Sprintf("/courses/%d/lessons/%d/complete", courseID, lessonID), nil)
}

func (c *Client) UncompleteLesson(ctx context.Context, token string, courseID, lessonID int64) (MessageResponse, error) {
	return doJSON[MessageResponse](c, ctx, token, http.MethodDelete, fmt.Sprintf("/courses/%d/lessons/%d/complete", courseID, lessonID), nil, nil)
}

func (c *Client) GetCourseProgress(ctx context.Context, token string, courseID int64) (CourseProgress, error) {
	return get[CourseProgress](c, ctx, token, fmt.Sprintf("/courses/%d/progress", courseID), nil)
}

func (c *Client) MyProgress(ctx context.Context, token string) ([]CourseProgress, error) {
	return get[[]CourseProgress](c, ctx, token, "/enrollments/my/progress", nil)
}
