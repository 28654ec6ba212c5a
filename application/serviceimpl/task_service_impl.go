package serviceimpl

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"timeguard/domain/dto"
	"timeguard/domain/models"
	"timeguard/domain/ports"
	"timeguard/domain/repositories"
	"timeguard/domain/services"
	"timeguard/pkg/apperrors"
	"timeguard/pkg/logger"
	"timeguard/pkg/utils"
)

const minTitleLength = 3

type TaskServiceImpl struct {
	taskRepo  repositories.TaskRepository
	userRepo  repositories.UserRepository
	publisher ports.EventPublisherPort
}

func NewTaskService(taskRepo repositories.TaskRepository, userRepo repositories.UserRepository, publisher ports.EventPublisherPort) services.TaskService {
	return &TaskServiceImpl{
		taskRepo:  taskRepo,
		userRepo:  userRepo,
		publisher: publisher,
	}
}

// ═══════════════════════════════════════════════════════════════════════════════
// Shared lookups (ใช้ร่วมกับ time entry service)
// ═══════════════════════════════════════════════════════════════════════════════

// loadTask คืน NotFound ถ้าไม่มี task
func loadTask(ctx context.Context, repo repositories.TaskRepository, taskID uuid.UUID) (*models.Task, error) {
	task, err := repo.GetByID(ctx, taskID)
	if err != nil {
		return nil, apperrors.Internal("failed to load task", err)
	}
	if task == nil {
		return nil, apperrors.NotFound("Task not found")
	}
	return task, nil
}

// loadAccessibleTask owner หรือ assignee เท่านั้น
func loadAccessibleTask(ctx context.Context, repo repositories.TaskRepository, userID, taskID uuid.UUID) (*models.Task, error) {
	task, err := loadTask(ctx, repo, taskID)
	if err != nil {
		return nil, err
	}
	if !task.CanAccess(userID) {
		logger.WarnContext(ctx, "Task access denied", "task_id", taskID, "user_id", userID)
		return nil, apperrors.Authorization("You are not allowed to access this task")
	}
	return task, nil
}

// resolveAssignee nil/ว่าง = owner
func (s *TaskServiceImpl) resolveAssignee(ctx context.Context, ownerID uuid.UUID, raw *string) (uuid.UUID, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return ownerID, nil
	}
	assigneeID, err := uuid.Parse(*raw)
	if err != nil {
		return uuid.Nil, apperrors.Validation("assignee_id must be a valid UUID")
	}
	if assigneeID == ownerID {
		return ownerID, nil
	}

	assignee, err := s.userRepo.GetByID(ctx, assigneeID)
	if err != nil {
		return uuid.Nil, apperrors.Internal("failed to load assignee", err)
	}
	if assignee == nil {
		return uuid.Nil, apperrors.Validation("Assignee not found")
	}
	return assigneeID, nil
}

// ═══════════════════════════════════════════════════════════════════════════════
// CRUD
// ═══════════════════════════════════════════════════════════════════════════════

func (s *TaskServiceImpl) CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error) {
	dueDate, err := utils.ParseISO8601(req.DueDate)
	if err != nil {
		return nil, apperrors.Validation("due_date must be a valid ISO8601 date")
	}

	assigneeID, err := s.resolveAssignee(ctx, userID, req.AssigneeID)
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
		DueDate:     &dueDate,
		UserID:      userID,
		AssigneeID:  assigneeID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, apperrors.Internal("failed to create task", err)
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "user_id", userID, "assignee_id", assigneeID)
	publishEvent(ctx, s.publisher, ports.EventTaskCreated, userID, task.ID, map[string]any{
		"title":       task.Title,
		"assignee_id": assigneeID.String(),
	})

	// โหลดใหม่เพื่อให้มี owner/assignee
	return loadTask(ctx, s.taskRepo, task.ID)
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, userID, taskID uuid.UUID) (*models.Task, error) {
	return loadAccessibleTask(ctx, s.taskRepo, userID, taskID)
}

func (s *TaskServiceImpl) ListMyTasks(ctx context.Context, userID uuid.UUID) ([]*models.Task, error) {
	tasks, err := s.taskRepo.ListByMember(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to list tasks", err)
	}
	return tasks, nil
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, userID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := loadTask(ctx, s.taskRepo, taskID)
	if err != nil {
		return nil, err
	}
	if !task.IsOwner(userID) {
		logger.WarnContext(ctx, "Task update denied", "task_id", taskID, "user_id", userID)
		return nil, apperrors.Authorization("Only the task owner can edit this task")
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if utf8.RuneCountInString(title) < minTitleLength {
			return nil, apperrors.Validation("title must be at least 3 characters")
		}
		task.Title = title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.DueDate != nil {
		due, err := utils.ParseOptionalISO8601(req.DueDate)
		if err != nil {
			return nil, apperrors.Validation("due_date must be a valid ISO8601 date")
		}
		task.DueDate = due
	}
	if req.AssigneeID != nil {
		assigneeID, err := s.resolveAssignee(ctx, task.UserID, req.AssigneeID)
		if err != nil {
			return nil, err
		}
		task.AssigneeID = assigneeID
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, apperrors.Internal("failed to update task", err)
	}

	logger.InfoContext(ctx, "Task updated", "task_id", taskID, "user_id", userID)
	publishEvent(ctx, s.publisher, ports.EventTaskUpdated, userID, taskID, map[string]any{
		"status": task.Status,
	})

	return loadTask(ctx, s.taskRepo, taskID)
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	task, err := loadTask(ctx, s.taskRepo, taskID)
	if err != nil {
		return err
	}
	if !task.IsOwner(userID) {
		logger.WarnContext(ctx, "Task delete denied", "task_id", taskID, "user_id", userID)
		return apperrors.Authorization("Only the task owner can delete this task")
	}

	if err := s.taskRepo.DeleteWithEntries(ctx, taskID); err != nil {
		return apperrors.Internal("failed to delete task", err)
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID, "user_id", userID)
	publishEvent(ctx, s.publisher, ports.EventTaskDeleted, userID, taskID, nil)
	return nil
}
