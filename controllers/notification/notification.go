package notificationControllers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"sbweb/lmsapi"
	"sbweb/middleware"
	"sbweb/notify"
	"sbweb/session"
	"sbweb/viewmodel"
)

type Controller struct {
	Api    *lmsapi.Client
	Auth   *middleware.Auth
	Badges *notify.Registry
}

func New(api *lmsapi.Client, auth *middleware.Auth, badges *notify.Registry) *Controller {
	return &Controller{Api: api, Auth: auth, Badges: badges}
}

// poller resolves the badge poller for the session, starting one on first
// use. The fetch closure captures the session's token, not the request.
func (ctl *Controller) poller(sess *session.Session) *notify.Poller {
	token := sess.AccessToken
	return ctl.Badges.Get(sess.ID, func(ctx context.Context) (int, error) {
		return ctl.Api.UnreadCount(ctx, token)
	})
}

// UnreadCount serves the header badge from the per-session poller cache.
func (ctl *Controller) UnreadCount(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	p := ctl.poller(sess)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Unread count fetched successfully!", fiber.Map{
		"count": p.Count(),
	})
}

// GetNotifications lists the dropdown items, capped at the most recent
// twenty; the total and unread counts report the full picture.
func (ctl *Controller) GetNotifications(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)

	items, err := ctl.Api.ListNotifications(c.Context(), sess.AccessToken)
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}

	unread := 0
	for _, n := range items {
		if !n.Read {
			unread++
		}
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notifications fetched successfully!", fiber.Map{
		"notifications": viewmodel.CapItems(items, viewmodel.NotificationCap),
		"total":         len(items),
		"unread":        unread,
	})
}

// MarkRead marks one notification read. The badge is re-read from the
// upstream after the write rather than decremented locally, so marking an
// already-read notification leaves the count unchanged.
func (ctl *Controller) MarkRead(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid notification id!", nil)
	}

	notification, err := ctl.Api.MarkRead(c.Context(), sess.AccessToken, int64(id))
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	ctl.poller(sess).Refresh(c.Context())
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notification marked read successfully!", notification)
}

// MarkAllRead zeroes the badge optimistically; if the upstream call fails the
// next poll restores the true count.
func (ctl *Controller) MarkAllRead(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	p := ctl.poller(sess)
	p.MarkAllRead()

	if err := ctl.Api.MarkAllRead(c.Context(), sess.AccessToken); err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "All notifications marked read successfully!", nil)
}
