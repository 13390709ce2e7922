package server

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"

	"github.com/jobdeck/jobdeck/internal/controllers"
	"github.com/jobdeck/jobdeck/internal/version"
)

type HTTPServerDependencies struct {
	AllowedOrigins []string

	JobsController        *controllers.JobsController
	ResumesController     *controllers.ResumesController
	InterviewsController  *controllers.InterviewsController
	AnalyticsController   *controllers.AnalyticsController
	MaintenanceController *controllers.MaintenanceController
}

func NewHTTPServer(deps HTTPServerDependencies) *fiber.App {
	router := fiber.New(fiber.Config{
		AppName: "jobdeck",
	})

	corsConfig := cors.Config{}
	if len(deps.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = deps.AllowedOrigins
		// Credentials cannot be combined with the wildcard default.
		corsConfig.AllowCredentials = true
	}

	router.Use(cors.New(corsConfig))
	router.Use(logger.New())

	// Health check endpoint (no authentication required)
	router.Get("/health", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":    "healthy",
			"service":   "jobdeck",
			"version":   version.GetVersion(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := router.Group("/api")

	api.Post("/jobs", deps.JobsController.CreateJob)
	api.Get("/jobs", deps.JobsController.GetJobs)
	api.Put("/jobs/:id", deps.JobsController.UpdateJob)

	api.Post("/resumes", deps.ResumesController.AddResume)
	// "/resumes/all" must be registered before the company wildcard.
	api.Get("/resumes/all", deps.ResumesController.GetAllResumes)
	api.Get("/resumes/:company", deps.ResumesController.GetResumesByCompany)

	api.Post("/interviews", deps.InterviewsController.ScheduleInterview)
	api.Get("/interviews", deps.InterviewsController.GetInterviews)

	api.Get("/analytics", deps.AnalyticsController.GetAnalytics)

	api.Delete("/cleanup", deps.MaintenanceController.Cleanup)
	api.Get("/test-db", deps.MaintenanceController.TestDB)

	return router
}
