package lmsapi

import (
	"context"
	"fmt"
	"net/http"
)

type Review struct {
	ID        int64   `json:"id"`
	CourseID  int64   `json:"courseId"`
	UserID    int64   `json:"userId"`
	UserName  string  `json:"userName"`
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

type ReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

func (c *Client) ListReviews(ctx context.Context, token string, courseID int64, page, size int) (Page[Review], error) {
	return get[Page[Review]](c, ctx, token, fmt.Sprintf("/courses/%d/reviews", courseID), pageQuery(page, size))
}

// MyReview returns the caller's review for a course; 404 means no review yet.
func (c *Client) MyReview(ctx context.Context, token string, courseID int64) (Review, error) {
	return get[Review](c, ctx, token, fmt.Sprintf("/courses/%d/reviews/my", courseID), nil)
}

func (c *Client) CreateReview(ctx context.Context, token string, courseID int64, req ReviewRequest) (Review, error) {
	return post[Review](c, ctx, token, fmt.Sprintf("/courses/%d/reviews", courseID), req)
}

func (c *Client) UpdateReview(ctx context.Context, token string, courseID int64, req ReviewRequest) (Review, error) {
	return put[Review](c, ctx, token, fmt.Sprintf("/courses/%d/reviews/my", courseID), req)
}

func (c *Client) DeleteReview(ctx context.Context, token string, courseID int64) error {
	return doNoContent(c, ctx, token, http.MethodDelete, fmt.Sprintf("/courses/%d/reviews/my", courseID), nil)
}
