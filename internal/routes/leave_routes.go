package routes

import (
	"tvh-attendance-backend/internal/handler"
	"tvh-attendance-backend/internal/middleware"
	"tvh-attendance-backend/internal/notification"
	"tvh-attendance-backend/internal/repository"
	"tvh-attendance-backend/internal/usecase"
	"tvh-attendance-backend/internal/ws"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupLeaveRoutes(app *fiber.App, db *gorm.DB, hub *ws.Hub, notifier *notification.Service) {
	repo := repository.NewLeaveRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	svc := usecase.NewLeaveService(repo, staffRepo, notifier, hub)
	hdl := handler.NewLeaveHandler(svc)

	api := app.Group("/api/leaves")
	adminOnly := middleware.Role("admin")

	api.Post("/apply", hdl.Apply)
	api.Get("/", middleware.Auth, adminOnly, hdl.List)
	api.Put("/:id/status", middleware.Auth, adminOnly, hdl.Decide)
	api.Delete("/:id", middleware.Auth, adminOnly, hdl.Delete)
}
