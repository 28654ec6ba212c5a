package handlers

import (
	"context"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"timeguard/pkg/logger"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck คืน nil ถ้า dependency ใช้งานได้
type HealthCheck func(ctx context.Context) error

type HealthHandler struct {
	appName         string
	storageProvider string
	checks          map[string]HealthCheck
}

func NewHealthHandler(appName, storageProvider string, checks map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{
		appName:         appName,
		storageProvider: storageProvider,
		checks:          checks,
	}
}

// Health 503 ถ้ามี dependency ตัวใดล้ม
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := "ok"
	deps := fiber.Map{}
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			logger.WarnContext(ctx, "Health check failed", "dependency", name, "error", err)
			deps[name] = "down"
			status = "degraded"
			continue
		}
		deps[name] = "up"
	}

	code := fiber.StatusOK
	if status != "ok" {
		code = fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status":       status,
		"service":      h.appName,
		"storage":      h.storageProvider,
		"dependencies": deps,
	})
}

func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Welcome to " + h.appName,
		"version": "1.0.0",
		"docs":    "/api/v1",
		"health":  "/health",
	})
}
