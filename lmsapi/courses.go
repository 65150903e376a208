package lmsapi

import (
	"context"
	"fmt"
	"net/http"
)

// Course is a catalog entry.
type Course struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Published   bool   `json:"published"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// Lesson belongs to a course; sortOrder drives sidebar ordering.
type Lesson struct {
	ID          int64  `json:"id"`
	CourseID    int64  `json:"courseId"`
	Title       string `json:"title"`
	ContentPath string `json:"contentPath"`
	SortOrder   int    `json:"sortOrder"`
	Published   bool   `json:"published"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// LessonContent is the markdown body of a lesson.
type LessonContent struct {
	LessonID   int64  `json:"lessonId"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	OrderIndex int    `json:"orderIndex"`
}

type CourseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type CreateLessonRequest struct {
	Title       string `json:"title"`
	ContentPath string `json:"contentPath"`
	SortOrder   *int   `json:"sortOrder,omitempty"`
	Published   *bool  `json:"published,omitempty"`
}

type UpdateLessonRequest struct {
	Title       string `json:"title"`
	ContentPath string `json:"contentPath"`
	Published   *bool  `json:"published,omitempty"`
}

type ReorderLessonRequest struct {
	LessonID  int64 `json:"lessonId"`
	SortOrder int   `json:"sortOrder"`
}

// CourseQuery narrows the catalog listing. Empty fields are omitted and the
// server falls back to its default ordering.
type CourseQuery struct {
	Page    int
	Size    int
	Keyword string
	Status  string
	Sort    string
}

func (c *Client) ListCourses(ctx context.Context, token string, q CourseQuery) (Page[Course], error) {
	query := pageQuery(q.Page, q.Size)
	if q.Keyword != "" {
		query["keyword"] = q.Keyword
	}
	if q.Status != "" {
		query["status"] = q.Status
	}
	if q.Sort != "" {
		query["sort"] = q.Sort
	}
	return get[Page[Course]](c, ctx, token, "/courses", query)
}

func (c *Client) GetCourse(ctx context.Context, token string, id int64) (Course, error) {
	return get[Course](c, ctx, token, fmt.Sprintf("/courses/%d", id), nil)
}

func (c *Client) CreateCourse(ctx context.Context, token string, req CourseRequest) (Course, error) {
	return post[Course](c, ctx, token, "/courses", req)
}

func (c *Client) UpdateCourse(ctx context.Context, token string, id int64, req CourseRequest) (Course, error) {
	return put[Course](c, ctx, token, fmt.Sprintf("/courses/%d", id), req)
}

func (c *Client) DeleteCourse(ctx context.Context, token string, id int64) error {
	return doNoContent(c, ctx, token, http.MethodDelete, fmt.Sprintf("/courses/%d", id), nil)
}

func (c *Client) TogglePublish(ctx context.Context, token string, id int64) (Course, error) {
	return patch[Course](c, ctx, token, fmt.Sprintf("/courses/%d/publish", id), nil)
}

func (c *Client) ListLessons(ctx context.Context, token string, courseID int64) ([]Lesson, error) {
	return get[[]Lesson](c, ctx, token, fmt.Sprintf("/courses/%d/lessons", courseID), nil)
}

func (c *Client) GetLesson(ctx context.Context, token string, courseID, id int64) (Lesson, error) {
	return get[Lesson](c, ctx, token, fmt.Sprintf("/courses/%d/lessons/%d", courseID, id), nil)
}

func (c *Client) CreateLesson(ctx context.Context, token string, courseID int64, req CreateLessonRequest) (Lesson, error) {
	return post[Lesson](c, ctx, token, fmt.Sprintf("/courses/%d/lessons", courseID), req)
}

func (c *Client) UpdateLesson(ctx context.Context, token string, courseID, id int64, req UpdateLessonRequest) (Lesson, error) {
	return put[Lesson](c, ctx, token, fmt.Sprintf("/courses/%d/lessons/%d", courseID, id), req)
}

func (c *Client) DeleteLesson(ctx context.Context, token string, courseID, id int64) error {
	return doNoContent(c, ctx, token, http.MethodDelete, fmt.Sprintf("/courses/%d/lessons/%d", courseID, id), nil)
}

func (c *Client) ReorderLessons(ctx context.Context, token string, courseID int64, orders []ReorderLessonRequest) error {
	return doNoContent(c, ctx, token, http.MethodPatch, fmt.Sprintf("/courses/%d/lessons/reorder", courseID), orders)
}

func (c *Client) GetLessonContent(ctx context.Context, token string, courseID, lessonID int64) (LessonContent, error) {
	return get[LessonContent](c, ctx, token, fmt.Sprintf("/courses/%d/lessons/%d/content", courseID, lessonID), nil)
}
