package adminControllers

import (
	"golang.org/x/sync/errgroup"

	"github.com/gofiber/fiber/v2"

	"sbweb/lmsapi"
	"sbweb/middleware"
	adminValidator "sbweb/validators/admin"
	"sbweb/viewmodel"
)

// GetAnalytics composes the analytics screen: trends, per-course completion
// rates and the popularity ranking, fetched concurrently. All three are
// primary; a partial analytics page is worse than an error state.
func (ctl *Controller) GetAnalytics(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	period := c.Query("period", "30d")

	g, gctx := errgroup.WithContext(c.Context())
	var trends []lmsapi.EnrollmentTrend
	var completions []lmsapi.CompletionStats
	var popular []lmsapi.PopularCourse
	g.Go(func() error {
		var err error
		trends, err = ctl.Api.EnrollmentTrends(gctx, sess.AccessToken, period)
		return err
	})
	g.Go(func() error {
		var err error
		completions, err = ctl.Api.CompletionStatsList(gctx, sess.AccessToken)
		return err
	})
	g.Go(func() error {
		var err error
		popular, err = ctl.Api.PopularCourses(gctx, sess.AccessToken)
		return err
	})
	if err := g.Wait(); err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Analytics fetched successfully!", fiber.Map{
		"enrollmentTrends": trends,
		"completionStats":  completions,
		"popularCourses":   popular,
		"period":           period,
	})
}

// ExportAnalyticsCSV streams the upstream export through untouched.
func (ctl *Controller) ExportAnalyticsCSV(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)

	data, contentType, err := ctl.Api.AnalyticsCSV(c.Context(), sess.AccessToken)
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	if contentType == "" {
		contentType = "text/csv"
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="analytics.csv"`)
	return c.Send(data)
}

func (ctl *Controller) ListAuditLogs(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	reqData := c.Locals("validatedAuditLogList").(*adminValidator.AuditLogQuery)

	page, err := ctl.Api.ListAuditLogs(c.Context(), sess.AccessToken, lmsapi.AuditLogQuery{
		Page:       reqData.Page,
		Size:       reqData.Size,
		Action:     reqData.Action,
		EntityType: reqData.EntityType,
		UserID:     reqData.UserID,
	})
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Audit logs fetched successfully!", fiber.Map{
		"logs":       page.Content,
		"pagination": viewmodel.NewPager(page),
	})
}

func (ctl *Controller) ExportAuditLogsCSV(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)

	data, contentType, err := ctl.Api.AuditLogsCSV(c.Context(), sess.AccessToken)
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	if contentType == "" {
		contentType = "text/csv"
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="audit-logs.csv"`)
	return c.Send(data)
}
