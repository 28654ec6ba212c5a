package routes

import (
	"github.com/gofiber/fiber/v2"
	"timeguard/interfaces/api/handlers"
)

func SetupTaskRoutes(api fiber.Router, h *handlers.Handlers, protected fiber.Handler) {
	tasks := api.Group("/tasks", protected)
	tasks.Post("/create", h.TaskHandler.CreateTask)
	tasks.Get("/my-tasks", h.TaskHandler.GetMyTasks)
	tasks.Put("/edit/:id", h.TaskHandler.UpdateTask)
	tasks.Delete("/delete/:id", h.TaskHandler.DeleteTask)

	// Timer
	tasks.Post("/start", h.TaskHandler.StartTimer)
	tasks.Post("/stop", h.TaskHandler.StopTimer)

	tasks.Get("/:id", h.TaskHandler.GetTask)
}
