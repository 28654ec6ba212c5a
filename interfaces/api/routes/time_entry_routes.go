package routes

import (
	"github.com/gofiber/fiber/v2"
	"timeguard/interfaces/api/handlers"
)

func SetupTimeEntryRoutes(api fiber.Router, h *handlers.Handlers, protected fiber.Handler) {
	entries := api.Group("/time-entries", protected)
	entries.Post("/create", h.TimeEntryHandler.CreateEntry)
	entries.Get("/task/:task_id", h.TimeEntryHandler.ListByTask)
	entries.Get("/task/:task_id/total-time", h.TimeEntryHandler.GetTotalTime)
	entries.Put("/edit/:id", h.TimeEntryHandler.UpdateEntry)
	entries.Delete("/delete/:id", h.TimeEntryHandler.DeleteEntry)
	entries.Get("/:id", h.TimeEntryHandler.GetEntry)
}
