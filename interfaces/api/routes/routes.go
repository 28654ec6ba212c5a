package routes

import (
	"github.com/gofiber/fiber/v2"
	"timeguard/interfaces/api/handlers"
	"timeguard/interfaces/api/middleware"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, auth middleware.AuthConfig) {
	// Setup health and root routes
	SetupHealthRoutes(app, h)

	// API version group
	api := app.Group("/api/v1")
	protected := middleware.Protected(auth)

	SetupAuthRoutes(api, h, protected)
	SetupUserRoutes(api, h, protected)
	SetupTaskRoutes(api, h, protected)
	SetupTimeEntryRoutes(api, h, protected)
	SetupReportRoutes(api, h, protected)
	SetupFriendRoutes(api, h, protected)
}
