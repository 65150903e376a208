package certificateRoutes

import (
	certificateControllers "sbweb/controllers/certificate"
	"sbweb/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupCertificateRoutes(app *fiber.App, ctl *certificateControllers.Controller, auth *middleware.Auth) {
	certificateGroup := app.Group("/certificates", auth.Required())

	certificateGroup.Get("/my", ctl.MyCertificates)
	certificateGroup.Get("/:id", ctl.GetCertificate)
	certificateGroup.Get("/:id/pdf", ctl.DownloadPDF)
}
