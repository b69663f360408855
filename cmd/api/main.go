package main

import (
	"log"

	"tvh-attendance-backend/config"
	"tvh-attendance-backend/internal/notification"
	"tvh-attendance-backend/internal/repository"
	"tvh-attendance-backend/internal/routes"
	"tvh-attendance-backend/internal/ws"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	config.ConnectDB()

	app := fiber.New(fiber.Config{
		// Selfies arrive as base64 in the JSON body
		BodyLimit: 50 * 1024 * 1024,
	})

	app.Use(cors.New())
	app.Use(logger.New())

	// Serve stored selfies and QR assets
	app.Static("/uploads", "./uploads")

	hub := ws.NewHub()
	go hub.Run()

	notifier := notification.NewService(repository.NewStaffRepository(config.DB))
	notifier.Start()

	routes.SetupAuthRoutes(app, config.DB)
	routes.SetupStaffRoutes(app, config.DB)
	routes.SetupAttendanceRoutes(app, config.DB, hub, notifier)
	routes.SetupLeaveRoutes(app, config.DB, hub, notifier)
	routes.SetupLiveFeedRoutes(app, hub)

	port := config.GetEnv("PORT", "5000")
	log.Printf("Server running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
