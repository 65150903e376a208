package lmsapi

import (
	"context"
	"fmt"
	"net/http"
)

type Category struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"createdAt"`
}

type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (c *Client) ListCategories(ctx context.Context, token string) ([]Category, error) {
	return get[[]Category](c, ctx, token, "/categories", nil)
}

func (c *Client) GetCategory(ctx context.Context, token string, id int64) (Category, error) {
	return get[Category](c, ctx, token, fmt.Sprintf("/categories/%d", id), nil)
}

func (c *Client) CreateCategory(ctx context.Context, token string, req CategoryRequest) (Category, error) {
	return post[Category](c, ctx, token, "/categories", req)
}

func (c *Client) UpdateCategory(ctx context.Context, token string, id int64, req CategoryRequest) (Category, error) {
	return put[Category](c, ctx, token, fmt.Sprintf("/categories/%d", id), req)
}

func (c *Client) DeleteCategory(ctx context.Context, token string, id int64) error {
	return doNoContent(c, ctx, token, http.MethodDelete, fmt.Sprintf("/categories/%d", id), nil)
}

func (c *Client) CourseCategories(ctx context.Context, token string, courseID int64) ([]Category, error) {
	return get[[]Category](c, ctx, token, fmt.Sprintf("/categories/courses/%d", courseID), nil)
}

func (c *Client) SetCourseCategories(ctx context.Context, token string, courseID int64, categoryIDs []int64) error {
	return doNoContent(c, ctx, token, http.MethodPut, fmt.Sprintf("/categories/courses/%d", courseID), categoryIDs)
}
