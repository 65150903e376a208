package certificateControllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"sbweb/lmsapi"
	"sbweb/middleware"
)

type Controller struct {
	Api  *lmsapi.Client
	Auth *middleware.Auth
}

func New(api *lmsapi.Client, auth *middleware.Auth) *Controller {
	return &Controller{Api: api, Auth: auth}
}

func (ctl *Controller) MyCertificates(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)

	certificates, err := ctl.Api.MyCertificates(c.Context(), sess.AccessToken)
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", certificates)
}

func (ctl *Controller) GetCertificate(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid certificate id!", nil)
	}

	certificate, err := ctl.Api.GetCertificate(c.Context(), sess.AccessToken, int64(id))
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate fetched successfully!", certificate)
}

// DownloadPDF streams the rendered certificate through untouched. The bytes
// are opaque; only the headers are ours.
func (ctl *Controller) DownloadPDF(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid certificate id!", nil)
	}

	data, contentType, err := ctl.Api.CertificatePDF(c.Context(), sess.AccessToken, int64(id))
	if err != nil {
		return ctl.Auth.UpstreamError(c, err)
	}
	if contentType == "" {
		contentType = "application/pdf"
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="certificate-%d.pdf"`, id))
	return c.Send(data)
}
