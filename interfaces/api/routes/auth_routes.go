package routes

import (
	"github.com/gofiber/fiber/v2"
	"timeguard/interfaces/api/handlers"
)

func SetupAuthRoutes(api fiber.Router, h *handlers.Handlers, protected fiber.Handler) {
	auth := api.Group("/auth")

	auth.Post("/register", h.AuthHandler.Register)
	auth.Post("/login", h.AuthHandler.Login)

	// Protected routes - require authentication
	auth.Post("/logout", protected, h.AuthHandler.Logout)
}
