package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"timeguard/domain/dto"
	"timeguard/domain/services"
	"timeguard/pkg/apperrors"
	"timeguard/pkg/logger"
	"timeguard/pkg/utils"
)

type TaskHandler struct {
	taskService      services.TaskService
	timeEntryService services.TimeEntryService
}

func NewTaskHandler(taskService services.TaskService, timeEntryService services.TimeEntryService) *TaskHandler {
	return &TaskHandler{
		taskService:      taskService,
		timeEntryService: timeEntryService,
	}
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, ok, err := currentUser(c)
	if !ok {
		return err
	}

	var req dto.CreateTaskRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	task, err := h.taskService.CreateTask(ctx, user.ID, &req)
	if err != nil {
		logger.WarnContext(ctx, "Task creation failed", "user_id", user.ID, "error", err)
		return utils.HandleError(c, err)
	}

	return utils.CreatedResponse(c, fiber.Map{
		"message": "Task created successfully",
		"task":    dto.TaskToTaskResponse(task),
	})
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, ok, err := currentUser(c)
	if !ok {
		return err
	}

	taskID, ok, err := parseUUIDParam(c, "id", "task")
	if !ok {
		return err
	}

	task, err := h.taskService.GetTask(ctx, user.ID, taskID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, fiber.Map{"task": dto.TaskToTaskResponse(task)})
}

// GetMyTasks task ที่เป็น owner หรือ assignee เรียงตาม due date
func (h *TaskHandler) GetMyTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, ok, err := currentUser(c)
	if !ok {
		return err
	}

	tasks, err := h.taskService.ListMyTasks(ctx, user.ID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, fiber.Map{"tasks": dto.TasksToTaskResponses(tasks)})
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, ok, err := currentUser(c)
	if !ok {
		return err
	}

	taskID, ok, err := parseUUIDParam(c, "id", "task")
	if !ok {
		return err
	}

	var req dto.UpdateTaskRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	task, err := h.taskService.UpdateTask(ctx, user.ID, taskID, &req)
	if err != nil {
		logger.WarnContext(ctx, "Task update failed", "task_id", taskID, "error", err)
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, fiber.Map{
		"message": "Task updated successfully",
		"task":    dto.TaskToTaskResponse(task),
	})
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, ok, err := currentUser(c)
	if !ok {
		return err
	}

	taskID, ok, err := parseUUIDParam(c, "id", "task")
	if !ok {
		return err
	}

	if err := h.taskService.DeleteTask(ctx, user.ID, taskID); err != nil {
		logger.WarnContext(ctx, "Task deletion failed", "task_id", taskID, "error", err)
		return utils.HandleError(c, err)
	}

	return utils.MessageResponse(c, "Task deleted successfully")
}

// ═══════════════════════════════════════════════════════════════════════════════
// Timer
// ═══════════════════════════════════════════════════════════════════════════════

func (h *TaskHandler) StartTimer(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, ok, err := currentUser(c)
	if !ok {
		return err
	}

	var req dto.TaskIDRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	taskID := uuid.MustParse(req.TaskID)

	entry, err := h.timeEntryService.StartTimer(ctx, user.ID, taskID)
	if err != nil {
		logger.WarnContext(ctx, "Timer start failed", "task_id", taskID, "error", err)
		return utils.HandleError(c, err)
	}

	return utils.CreatedResponse(c, fiber.Map{
		"message":   "Timer started",
		"timeEntry": dto.TimeEntryToResponse(entry),
	})
}

func (h *TaskHandler) StopTimer(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, ok, err := currentUser(c)
	if !ok {
		return err
	}

	var req dto.TaskIDRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	taskID := uuid.MustParse(req.TaskID)

	entry, err := h.timeEntryService.StopTimer(ctx, user.ID, taskID)
	if errors.Is(err, services.ErrNoActiveEntry) {
		// ไม่มี timer ที่เดินอยู่ตอบ 400 ส่วน task ที่ไม่มีอยู่ยังเป็น 404
		return utils.BadRequestResponse(c, apperrors.MessageOf(err))
	}
	if err != nil {
		logger.WarnContext(ctx, "Timer stop failed", "task_id", taskID, "error", err)
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, fiber.Map{
		"message":   "Timer stopped",
		"timeEntry": dto.TimeEntryToResponse(entry),
	})
}
