package lmsapi

import (
	"context"
	"fmt"
	"net/http"
)

type Notification struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Message   string  `json:"message"`
	Type      string  `json:"type"`
	Read      bool    `json:"read"`
	Link      *string `json:"link"`
	CreatedAt string  `json:"createdAt"`
}

type unreadCountResponse struct {
	Count int `json:"count"`
}

// ListNotifications returns the latest notifications, most recent first.
func (c *Client) ListNotifications(ctx context.Context, token string) ([]Notification, error) {
	return get[[]Notification](c, ctx, token, "/notifications", nil)
}

func (c *Client) UnreadCount(ctx context.Context, token string) (int, error) {
	out, err := get[unreadCountResponse](c, ctx, token, "/notifications/unread-count", nil)
	if err != nil {
		return 0, err
	}
	return out.Count, nil
}

func (c *Client) MarkRead(ctx context.Context, token string, id int64) (Notification, error) {
	return patch[Notification](c, ctx, token, fmt.Sprintf("/notifications/%d/read", id), nil)
}

func (c *Client) MarkAllRead(ctx context.Context, token string) error {
	return doNoContent(c, ctx, token, http.MethodPost, "/notifications/read-all", nil)
}
