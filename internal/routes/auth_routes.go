package routes

import (
	"tvh-attendance-backend/internal/handler"
	"tvh-attendance-backend/internal/repository"
	"tvh-attendance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	staffRepo := repository.NewStaffRepository(db)
	svc := usecase.NewAuthService(staffRepo)
	hdl := handler.NewAuthHandler(svc)

	api := app.Group("/api/auth")

	api.Post("/login", hdl.Login)
}
