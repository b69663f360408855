package routes

import (
	"tvh-attendance-backend/internal/handler"
	"tvh-attendance-backend/internal/middleware"
	"tvh-attendance-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupStaffRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewStaffRepository(db)
	hdl := handler.NewStaffHandler(repo)

	api := app.Group("/api/staff")

	adminOnly := middleware.Role("admin")

	api.Post("/", middleware.Auth, adminOnly, hdl.Add)
	api.Get("/", middleware.Auth, adminOnly, hdl.GetAll)
	api.Get("/system-qr", middleware.Auth, adminOnly, hdl.SystemQR)
	api.Get("/:staffId", hdl.GetByStaffID) // kiosk looks itself up, stays open
	api.Put("/:id", middleware.Auth, adminOnly, hdl.Update)
	api.Delete("/:id", middleware.Auth, adminOnly, hdl.Delete)
}
