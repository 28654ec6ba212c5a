package serviceimpl

import (
	"context"
	"errors"
	"time"

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

const (
	msgTimerRunning  = "A timer is already running for this task"
	msgEndAfterStart = "end_time must be after start_time"
)

type TimeEntryServiceImpl struct {
	entryRepo repositories.TimeEntryRepository
	taskRepo  repositories.TaskRepository
	locker    ports.LockPort // nil = ไม่มี Redis
	lockTTL   time.Duration
	publisher ports.EventPublisherPort
	now       Clock
}

func NewTimeEntryService(
	entryRepo repositories.TimeEntryRepository,
	taskRepo repositories.TaskRepository,
	locker ports.LockPort,
	lockTTL time.Duration,
	publisher ports.EventPublisherPort,
) services.TimeEntryService {
	return NewTimeEntryServiceWithClock(entryRepo, taskRepo, locker, lockTTL, publisher, systemClock)
}

// NewTimeEntryServiceWithClock เหมือน NewTimeEntryService แต่กำหนดแหล่งเวลาเองได้
func NewTimeEntryServiceWithClock(
	entryRepo repositories.TimeEntryRepository,
	taskRepo repositories.TaskRepository,
	locker ports.LockPort,
	lockTTL time.Duration,
	publisher ports.EventPublisherPort,
	clock Clock,
) services.TimeEntryService {
	if clock == nil {
		clock = systemClock
	}
	return &TimeEntryServiceImpl{
		entryRepo: entryRepo,
		taskRepo:  taskRepo,
		locker:    locker,
		lockTTL:   lockTTL,
		publisher: publisher,
		now:       clock,
	}
}

// loadAccessibleEntry entry + สิทธิ์ของ task ที่ entry สังกัด
func (s *TimeEntryServiceImpl) loadAccessibleEntry(ctx context.Context, userID, entryID uuid.UUID) (*models.TimeEntry, error) {
	entry, err := s.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		return nil, apperrors.Internal("failed to load time entry", err)
	}
	if entry == nil {
		return nil, apperrors.NotFound("Time entry not found")
	}
	if _, err := loadAccessibleTask(ctx, s.taskRepo, userID, entry.TaskID); err != nil {
		return nil, err
	}
	return entry, nil
}

// createEntry insert entry; ชน partial unique index = มี timer เปิดอยู่แล้ว
func (s *TimeEntryServiceImpl) createEntry(ctx context.Context, entry *models.TimeEntry) error {
	if err := s.entryRepo.Create(ctx, entry); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return apperrors.Conflict(msgTimerRunning)
		}
		return apperrors.Internal("failed to create time entry", err)
	}
	return nil
}

// ═══════════════════════════════════════════════════════════════════════════════
// Create / timer
// ═══════════════════════════════════════════════════════════════════════════════

func (s *TimeEntryServiceImpl) CreateEntry(ctx context.Context, userID uuid.UUID, req *dto.CreateTimeEntryRequest) (*models.TimeEntry, error) {
	taskID, err := uuid.Parse(req.TaskID)
	if err != nil {
		return nil, apperrors.Validation("task_id must be a valid UUID")
	}

	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, apperrors.Internal("failed to load task", err)
	}
	if task == nil {
		return nil, apperrors.Validation("Task not found")
	}
	if !task.CanAccess(userID) {
		logger.WarnContext(ctx, "Time entry create denied", "task_id", taskID, "user_id", userID)
		return nil, apperrors.Authorization("You are not allowed to log time on this task")
	}

	start, err := utils.ParseISO8601(req.StartTime)
	if err != nil {
		return nil, apperrors.Validation("start_time must be a valid ISO8601 date")
	}
	end, err := utils.ParseOptionalISO8601(req.EndTime)
	if err != nil {
		return nil, apperrors.Validation("end_time must be a valid ISO8601 date")
	}
	if end != nil && !end.After(start) {
		return nil, apperrors.Invariant(msgEndAfterStart)
	}

	entry := &models.TimeEntry{TaskID: taskID, StartTime: start, EndTime: end}

	if end != nil {
		// entry ที่ปิดแล้วไม่กระทบ invariant ของ timer
		if err := s.createEntry(ctx, entry); err != nil {
			return nil, err
		}
	} else {
		err = withLock(ctx, s.locker, taskLockKey(taskID), s.lockTTL, func() error {
			open, err := s.entryRepo.CountOpen(ctx, taskID)
			if err != nil {
				return apperrors.Internal("failed to check open entries", err)
			}
			if open > 0 {
				return apperrors.Conflict(msgTimerRunning)
			}
			return s.createEntry(ctx, entry)
		})
		if err != nil {
			return nil, err
		}
	}

	logger.InfoContext(ctx, "Time entry created", "entry_id", entry.ID, "task_id", taskID, "user_id", userID)
	publishEvent(ctx, s.publisher, ports.EventTimeEntryCreated, userID, entry.ID, map[string]any{
		"task_id": taskID.String(),
		"open":    entry.IsOpen(),
	})
	return entry, nil
}

func (s *TimeEntryServiceImpl) StartTimer(ctx context.Context, userID, taskID uuid.UUID) (*models.TimeEntry, error) {
	if _, err := loadAccessibleTask(ctx, s.taskRepo, userID, taskID); err != nil {
		return nil, err
	}

	var entry *models.TimeEntry
	err := withLock(ctx, s.locker, taskLockKey(taskID), s.lockTTL, func() error {
		open, err := s.entryRepo.FindLatestOpen(ctx, taskID)
		if err != nil {
			return apperrors.Internal("failed to check open entries", err)
		}
		if open != nil {
			return apperrors.Conflict(msgTimerRunning)
		}

		entry = &models.TimeEntry{TaskID: taskID, StartTime: s.now()}
		return s.createEntry(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Timer started", "entry_id", entry.ID, "task_id", taskID, "user_id", userID)
	publishEvent(ctx, s.publisher, ports.EventTimerStarted, userID, entry.ID, map[string]any{
		"task_id": taskID.String(),
	})
	return entry, nil
}

func (s *TimeEntryServiceImpl) StopTimer(ctx context.Context, userID, taskID uuid.UUID) (*models.TimeEntry, error) {
	if _, err := loadAccessibleTask(ctx, s.taskRepo, userID, taskID); err != nil {
		return nil, err
	}

	var entry *models.TimeEntry
	err := withLock(ctx, s.locker, taskLockKey(taskID), s.lockTTL, func() error {
		// ถ้ามี entry เปิดค้างหลายอัน ปิดเฉพาะอันล่าสุด
		open, err := s.entryRepo.FindLatestOpen(ctx, taskID)
		if err != nil {
			return apperrors.Internal("failed to find open entry", err)
		}
		if open == nil {
			return services.ErrNoActiveEntry
		}

		now := s.now()
		if !now.After(open.StartTime) {
			return apperrors.Invariant(msgEndAfterStart)
		}
		open.EndTime = &now

		if err := s.entryRepo.Update(ctx, open); err != nil {
			return apperrors.Internal("failed to stop timer", err)
		}
		entry = open
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Timer stopped", "entry_id", entry.ID, "task_id", taskID, "duration", entry.Duration().String())
	publishEvent(ctx, s.publisher, ports.EventTimerStopped, userID, entry.ID, map[string]any{
		"task_id":          taskID.String(),
		"duration_seconds": int64(entry.Duration().Seconds()),
	})
	return entry, nil
}

// ═══════════════════════════════════════════════════════════════════════════════
// Read / edit / delete
// ═══════════════════════════════════════════════════════════════════════════════

func (s *TimeEntryServiceImpl) GetEntry(ctx context.Context, userID, entryID uuid.UUID) (*models.TimeEntry, error) {
	return s.loadAccessibleEntry(ctx, userID, entryID)
}

func (s *TimeEntryServiceImpl) ListByTask(ctx context.Context, userID, taskID uuid.UUID) ([]*models.TimeEntry, error) {
	if _, err := loadAccessibleTask(ctx, s.taskRepo, userID, taskID); err != nil {
		return nil, err
	}
	entries, err := s.entryRepo.ListByTaskID(ctx, taskID)
	if err != nil {
		return nil, apperrors.Internal("failed to list time entries", err)
	}
	return entries, nil
}

func (s *TimeEntryServiceImpl) UpdateEntry(ctx context.Context, userID, entryID uuid.UUID, req *dto.UpdateTimeEntryRequest) (*models.TimeEntry, error) {
	entry, err := s.loadAccessibleEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	// merge กับค่าเดิมก่อน validate
	if req.StartTime != nil && *req.StartTime != "" {
		start, err := utils.ParseISO8601(*req.StartTime)
		if err != nil {
			return nil, apperrors.Validation("start_time must be a valid ISO8601 date")
		}
		entry.StartTime = start
	}
	end, err := utils.ParseOptionalISO8601(req.EndTime)
	if err != nil {
		return nil, apperrors.Validation("end_time must be a valid ISO8601 date")
	}
	if end != nil {
		entry.EndTime = end
	}
	if entry.EndTime != nil && !entry.EndTime.After(entry.StartTime) {
		return nil, apperrors.Invariant(msgEndAfterStart)
	}

	if err := s.entryRepo.Update(ctx, entry); err != nil {
		return nil, apperrors.Internal("failed to update time entry", err)
	}

	logger.InfoContext(ctx, "Time entry updated", "entry_id", entryID, "user_id", userID)
	publishEvent(ctx, s.publisher, ports.EventTimeEntryUpdated, userID, entryID, map[string]any{
		"task_id": entry.TaskID.String(),
	})
	return entry, nil
}

func (s *TimeEntryServiceImpl) DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error {
	entry, err := s.loadAccessibleEntry(ctx, userID, entryID)
	if err != nil {
		return err
	}

	if err := s.entryRepo.Delete(ctx, entryID); err != nil {
		return apperrors.Internal("failed to delete time entry", err)
	}

	logger.InfoContext(ctx, "Time entry deleted", "entry_id", entryID, "user_id", userID)
	publishEvent(ctx, s.publisher, ports.EventTimeEntryDeleted, userID, entryID, map[string]any{
		"task_id": entry.TaskID.String(),
	})
	return nil
}

// TotalDuration ผลรวมของ entry ที่ปิดแล้ว ปัดลงเป็นวินาที
func (s *TimeEntryServiceImpl) TotalDuration(ctx context.Context, userID, taskID uuid.UUID) (time.Duration, error) {
	entries, err := s.ListByTask(ctx, userID, taskID)
	if err != nil {
		return 0, err
	}

	var total time.Duration
	for _, e := range entries {
		total += e.Duration()
	}
	return total.Truncate(time.Second), nil
}
