package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kubeafrika/backend/config"
	"kubeafrika/backend/controllers"
	"kubeafrika/backend/jobstore"
	"kubeafrika/backend/middleware"
	"kubeafrika/backend/session"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, store jobstore.Store, cfg *config.Config) {
	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware(db, cfg)

	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Health
	healthController := controllers.NewHealthController(cfg)
	app.Get("/api/health", healthController.Check)

	// Tutorials and lessons
	tutorialsController := controllers.NewTutorialsController(db, cfg)
	tutorials := app.Group("/api/tutorials")
	tutorials.Get("/", tutorialsController.ListTutorials)
	tutorials.Post("/", authMiddleware, adminMiddleware, tutorialsController.CreateTutorial)
	tutorials.Get("/:slug", tutorialsController.GetTutorial)
	tutorials.Put("/:slug", authMiddleware, adminMiddleware, tutorialsController.UpdateTutorial)
	tutorials.Delete("/:slug", authMiddleware, adminMiddleware, tutorialsController.DeleteTutorial)
	tutorials.Get("/:slug/lessons", tutorialsController.GetLessons)
	tutorials.Post("/:slug/lessons", authMiddleware, adminMiddleware, tutorialsController.AddLesson)
	tutorials.Post("/:slug/lessons/:id/complete", authMiddleware, tutorialsController.CompleteLesson)

	// Lesson navigation sessions
	sessionController := controllers.NewSessionController(db, cfg, session.NewTracker())
	tutorials.Get("/:slug/session", authMiddleware, sessionController.GetSession)
	tutorials.Post("/:slug/session/next", authMiddleware, sessionController.NextLesson)
	tutorials.Post("/:slug/session/previous", authMiddleware, sessionController.PreviousLesson)
	tutorials.Post("/:slug/session/goto", authMiddleware, sessionController.GoToLesson)

	// Job board
	jobsController := controllers.NewJobsController(store)
	jobs := app.Group("/api/jobs")
	jobs.Get("/", jobsController.ListJobs)
	jobs.Post("/", authMiddleware, adminMiddleware, jobsController.CreateJob)
	jobs.Get("/:id", jobsController.GetJob)
	jobs.Put("/:id", authMiddleware, adminMiddleware, jobsController.UpdateJob)
	jobs.Delete("/:id", authMiddleware, adminMiddleware, jobsController.DeleteJob)
	jobs.Post("/:id/apply", jobsController.ApplyToJob)

	// Applications
	applicationsController := controllers.NewApplicationsController(store)
	app.Get("/api/applications", applicationsController.ListApplications)
	app.Put("/api/applications/:id/status", authMiddleware, adminMiddleware, applicationsController.UpdateStatus)

	// Community forum
	forumController := controllers.NewForumController(db, cfg)
	forum := app.Group("/api/forum/posts")
	forum.Get("/", forumController.ListPosts)
	forum.Post("/", authMiddleware, forumController.CreatePost)
	forum.Get("/:id", forumController.GetPost)
	forum.Post("/:id/replies", authMiddleware, forumController.AddReply)

	// Resume builder
	resumeController := controllers.NewResumeController(db, cfg)
	app.Get("/api/resume", authMiddleware, resumeController.GetResume)
	app.Put("/api/resume", authMiddleware, resumeController.SaveResume)
}
