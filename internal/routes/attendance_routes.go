package routes

import (
	"tvh-attendance-backend/internal/handler"
	"tvh-attendance-backend/internal/middleware"
	"tvh-attendance-backend/internal/notification"
	"tvh-attendance-backend/internal/repository"
	"tvh-attendance-backend/internal/storage"
	"tvh-attendance-backend/internal/usecase"
	"tvh-attendance-backend/internal/ws"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAttendanceRoutes(app *fiber.App, db *gorm.DB, hub *ws.Hub, notifier *notification.Service) {
	repo := repository.NewAttendanceRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	photos := storage.NewDiskPhotoStore("uploads/attendance")
	svc := usecase.NewAttendanceService(repo, staffRepo, photos, notifier, hub, usecase.PolicyFromEnv())
	hdl := handler.NewAttendanceHandler(svc, repo)

	api := app.Group("/api/attendance")

	// Punching and the log are open: the kiosk flow has no login.
	api.Post("/", hdl.Mark)
	api.Get("/", hdl.List)
	api.Get("/records", hdl.List) // compatibility alias

	// Admin-only views
	api.Get("/export", middleware.Auth, middleware.Role("admin"), hdl.Export)
	api.Get("/today", middleware.Auth, middleware.Role("admin"), hdl.TodayStats)
}
