package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/FertVad/CampusConnect-sub003/internal/config"
	"github.com/FertVad/CampusConnect-sub003/internal/database"
	"github.com/FertVad/CampusConnect-sub003/internal/handler"
	"github.com/FertVad/CampusConnect-sub003/internal/repository"
)

func main() {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Initialize repositories
	subjectRepo := repository.NewSubjectRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)

	// Initialize handlers
	importHandler, err := handler.NewScheduleImportHandler(subjectRepo, scheduleRepo, cfg.Google)
	if err != nil {
		log.Fatalf("Failed to initialize import handler: %v", err)
	}
	scheduleHandler := handler.NewScheduleHandler(scheduleRepo)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"error": fiber.Map{
					"code":    "INTERNAL_ERROR",
					"message": err.Error(),
				},
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.CORS.Origins, ","),
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
	}))

	// API v1 routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Schedule routes
	scheduleRoutes := api.Group("/schedule")
	scheduleRoutes.Get("/", scheduleHandler.ListByGroup)
	scheduleRoutes.Post("/import", importHandler.ImportFile)
	scheduleRoutes.Post("/import/sheet", importHandler.ImportSheet)
	scheduleRoutes.Get("/import/logs", importHandler.ListImportLogs)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}
	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
