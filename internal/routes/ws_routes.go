package routes

import (
	"tvh-attendance-backend/internal/ws"

	"github.com/gofiber/fiber/v2"
)

func SetupLiveFeedRoutes(app *fiber.App, hub *ws.Hub) {
	app.Use("/ws", ws.UpgradeRequired)
	app.Get("/ws/live", hub.Handler())
}
