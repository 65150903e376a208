package lmsapi

import (
	"context"
	"fmt"
)

type AuditLog struct {
	ID         int64   `json:"id"`
	UserID     *int64  `json:"userId"`
	UserName   *string `json:"userName"`
	Action     string  `json:"action"`
	EntityType string  `json:"entityType"`
	EntityID   *int64  `json:"entityId"`
	Details    *string `json:"details"`
	IPAddress  *string `json:"ipAddress"`
	CreatedAt  string  `json:"createdAt"`
}

// AuditLogQuery filters are advisory; empty fields mean server defaults.
type AuditLogQuery struct {
	Page       int
	Size       int
	Action     string
	EntityType string
	UserID     int64
}

func (c *Client) ListAuditLogs(ctx context.Context, token string, q AuditLogQuery) (Page[AuditLog], error) {
	query := pageQuery(q.Page, q.Size)
	if q.Action != "" {
		query["action"] = q.Action
	}
	if q.EntityType != "" {
		query["entityType"] = q.EntityType
	}
	if q.UserID > 0 {
		query["userId"] = fmt.Sprintf("%d", q.UserID)
	}
	return get[Page[AuditLog]](c, ctx, token, "/admin/audit-logs", query)
}

// AuditLogsCSV returns the audit-log export as an opaque byte stream.
func (c *Client) AuditLogsCSV(ctx context.Context, token string) ([]byte, string, error) {
	return doBytes(c, ctx, token, "/admin/audit-logs/export")
}
