package handlers

import (
	"github.com/gofiber/fiber/v2"
	"timeguard/domain/dto"
	"timeguard/domain/services"
	"timeguard/pkg/logger"
	"timeguard/pkg/utils"
)

type TimeEntryHandler struct {
	timeEntryService services.TimeEntryService
}

func NewTimeEntryHandler(timeEntryService services.TimeEntryService) *TimeEntryHandler {
	return &TimeEntryHandler{
		timeEntryService: timeEntryService,
	}
}

// CreateEntry บันทึกเวลาแบบ manual; ไม่มี end_time = entry ที่ยังเปิดอยู่
func (h *TimeEntryHandler) CreateEntry(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, ok, err := currentUser(c)
	if !ok {
		return err
	}

	var req dto.CreateTimeEntryRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	entry, err := h.timeEntryService.CreateEntry(ctx, user.ID, &req)
	if err != nil {
		logger.WarnContext(ctx, "Time entry creation failed", "task_id", req.TaskID, "error", err)
		return utils.HandleError(c, err)
	}

	return utils.CreatedResponse(c, fiber.Map{
		"message":   "Time entry created successfully",
		"timeEntry": dto.TimeEntryToResponse(entry),
	})
}

func (h *TimeEntryHandler) GetEntry(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, ok, err := currentUser(c)
	if !ok {
		return err
	}

	entryID, ok, err := parseUUIDParam(c, "id", "time entry")
	if !ok {
		return err
	}

	entry, err := h.timeEntryService.GetEntry(ctx, user.ID, entryID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, fiber.Map{"timeEntry": dto.TimeEntryToResponse(entry)})
}

func (h *TimeEntryHandler) ListByTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, ok, err := currentUser(c)
	if !ok {
		return err
	}

	taskID, ok, err := parseUUIDParam(c, "task_id", "task")
	if !ok {
		return err
	}

	entries, err := h.timeEntryService.ListByTask(ctx, user.ID, taskID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, fiber.Map{"timeEntries": dto.TimeEntriesToResponses(entries)})
}

func (h *TimeEntryHandler) UpdateEntry(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, ok, err := currentUser(c)
	if !ok {
		return err
	}

	entryID, ok, err := parseUUIDParam(c, "id", "time entry")
	if !ok {
		return err
	}

	var req dto.UpdateTimeEntryRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	entry, err := h.timeEntryService.UpdateEntry(ctx, user.ID, entryID, &req)
	if err != nil {
		logger.WarnContext(ctx, "Time entry update failed", "entry_id", entryID, "error", err)
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, fiber.Map{
		"message":   "Time entry updated successfully",
		"timeEntry": dto.TimeEntryToResponse(entry),
	})
}

func (h *TimeEntryHandler) DeleteEntry(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, ok, err := currentUser(c)
	if !ok {
		return err
	}

	entryID, ok, err := parseUUIDParam(c, "id", "time entry")
	if !ok {
		return err
	}

	if err := h.timeEntryService.DeleteEntry(ctx, user.ID, entryID); err != nil {
		return utils.HandleError(c, err)
	}

	return utils.MessageResponse(c, "Time entry deleted successfully")
}

// GetTotalTime รวมเวลาเฉพาะ entry ที่ปิดแล้ว (วินาที)
func (h *TimeEntryHandler) GetTotalTime(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, ok, err := currentUser(c)
	if !ok {
		return err
	}

	taskID, ok, err := parseUUIDParam(c, "task_id", "task")
	if !ok {
		return err
	}

	total, err := h.timeEntryService.TotalDuration(ctx, user.ID, taskID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, fiber.Map{
		"task_id":            taskID,
		"total_time_seconds": int64(total.Seconds()),
	})
}
