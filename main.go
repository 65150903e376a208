package main

import (
	"context"
	"log"

	"sbweb/config"
	adminControllers "sbweb/controllers/admin"
	authControllers "sbweb/controllers/auth"
	categoryControllers "sbweb/controllers/category"
	certificateControllers "sbweb/controllers/certificate"
	courseControllers "sbweb/controllers/course"
	dashboardControllers "sbweb/controllers/dashboard"
	enrollmentControllers "sbweb/controllers/enrollment"
	notificationControllers "sbweb/controllers/notification"
	reviewControllers "sbweb/controllers/review"
	taskControllers "sbweb/controllers/task"
	userControllers "sbweb/controllers/user"
	"sbweb/lmsapi"
	"sbweb/middleware"
	"sbweb/notify"
	adminRoutes "sbweb/routers/adminRoutes"
	authRoutes "sbweb/routers/authRoutes"
	categoryRoutes "sbweb/routers/categoryRoutes"
	certificateRoutes "sbweb/routers/certificateRoutes"
	courseRoutes "sbweb/routers/courseRoutes"
	dashboardRoutes "sbweb/routers/dashboardRoutes"
	enrollmentRoutes "sbweb/routers/enrollmentRoutes"
	notificationRoutes "sbweb/routers/notificationRoutes"
	reviewRoutes "sbweb/routers/reviewRoutes"
	taskRoutes "sbweb/routers/taskRoutes"
	userRoutes "sbweb/routers/userRoutes"
	"sbweb/session"
	"sbweb/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()

	db, err := session.Connect(config.AppConfig.SessionDBDriver, config.AppConfig.SessionDBName)
	if err != nil {
		log.Fatalf("Failed to connect session database: %v", err)
	}
	store := session.NewStore(db, config.AppConfig.SessionTTL)

	api := lmsapi.New(config.AppConfig.ApiBaseURL, config.AppConfig.ApiTimeout)
	auth := middleware.NewAuth(store)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	badges := notify.NewRegistry(ctx, config.AppConfig.NotifyPollInterval)
	defer badges.RemoveAll()

	sweeper := utils.StartSessionSweeper(store, badges)
	defer sweeper.Stop()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.CorsOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders:     "Content-Type,Authorization",
		AllowCredentials: config.AppConfig.CorsOrigins != "*",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Resolve the session cookie once for every request
	app.Use(auth.Load())

	authRoutes.SetupAuthRoutes(app, authControllers.New(api, auth, badges), auth)
	dashboardRoutes.SetupDashboardRoutes(app, dashboardControllers.New(api, auth), auth)

	courseCtl := courseControllers.New(api, auth)
	courseRoutes.SetupCourseRoutes(app, courseCtl, auth)
	courseRoutes.SetupCourseAdminRoutes(app, courseCtl, auth)

	enrollmentRoutes.SetupEnrollmentRoutes(app, enrollmentControllers.New(api, auth), auth)
	taskRoutes.SetupTaskRoutes(app, taskControllers.New(api, auth), auth)
	reviewRoutes.SetupReviewRoutes(app, reviewControllers.New(api, auth), auth)
	categoryRoutes.SetupCategoryRoutes(app, categoryControllers.New(api, auth), auth)
	notificationRoutes.SetupNotificationRoutes(app, notificationControllers.New(api, auth, badges), auth)
	certificateRoutes.SetupCertificateRoutes(app, certificateControllers.New(api, auth), auth)
	userRoutes.SetupUserRoutes(app, userControllers.New(api, auth, store), auth)
	adminRoutes.SetupAdminRoutes(app, adminControllers.New(api, auth), auth)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
