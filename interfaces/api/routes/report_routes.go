package routes

import (
	"github.com/gofiber/fiber/v2"
	"timeguard/interfaces/api/handlers"
)

func SetupReportRoutes(api fiber.Router, h *handlers.Handlers, protected fiber.Handler) {
	reports := api.Group("/reports", protected)

	generate := reports.Group("/generate")
	generate.Get("/", h.ReportHandler.Generate)
	generate.Get("/achievements", h.ReportHandler.Achievements)
	generate.Get("/activity-feed", h.ReportHandler.ActivityFeed)
	generate.Get("/performance-metrics", h.ReportHandler.PerformanceMetrics)
	generate.Get("/task-progress", h.ReportHandler.TaskProgress)
	generate.Get("/task-distribution", h.ReportHandler.TaskDistribution)
	generate.Get("/time-entries-calendar", h.ReportHandler.TimeEntriesCalendar)
	generate.Get("/upcoming-deadlines", h.ReportHandler.UpcomingDeadlines)

	// Snapshots
	snapshots := reports.Group("/snapshots")
	snapshots.Post("/", h.SnapshotHandler.CreateSnapshot)
	snapshots.Get("/", h.SnapshotHandler.ListSnapshots)
	snapshots.Get("/:id", h.SnapshotHandler.GetSnapshot)
	snapshots.Get("/:id/download", h.SnapshotHandler.DownloadSnapshot)
	snapshots.Delete("/:id", h.SnapshotHandler.DeleteSnapshot)
}
