package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"kubeafrika/backend/config"
	"kubeafrika/backend/jobstore"
	"kubeafrika/backend/middleware"
	"kubeafrika/backend/routes"
	"kubeafrika/backend/seed"
	"kubeafrika/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Seed the tutorial track
	if cfg.SeedData {
		if err := seed.Tutorials(db); err != nil {
			log.Fatalf("Error seeding tutorials: %v", err)
		}
	}

	// Pick the job board backend
	var store jobstore.Store
	if cfg.JobsBackend == "postgres" {
		if cfg.SeedData {
			if err := seed.JobsInto(db); err != nil {
				log.Fatalf("Error seeding jobs: %v", err)
			}
		}
		store = jobstore.NewGormStore(db)
	} else {
		store = jobstore.NewMemoryStore(seed.Jobs())
	}

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, db, store, cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
