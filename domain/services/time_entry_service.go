package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"timeguard/domain/dto"
	"timeguard/domain/models"
	"timeguard/pkg/apperrors"
)

// ErrNoActiveEntry คืนจาก StopTimer เมื่อ task ไม่มี entry ที่เปิดอยู่
var ErrNoActiveEntry = apperrors.NotFound("No active time entry found for this task")

// TimeEntryService ทุก operation ต้องเป็น owner หรือ assignee ของ task
type TimeEntryService interface {
	CreateEntry(ctx context.Context, userID uuid.UUID, req *dto.CreateTimeEntryRequest) (*models.TimeEntry, error)
	StartTimer(ctx context.Context, userID, taskID uuid.UUID) (*models.TimeEntry, error)
	StopTimer(ctx context.Context, userID, taskID uuid.UUID) (*models.TimeEntry, error)
	GetEntry(ctx context.Context, userID, entryID uuid.UUID) (*models.TimeEntry, error)
	ListByTask(ctx context.Context, userID, taskID uuid.UUID) ([]*models.TimeEntry, error)
	UpdateEntry(ctx context.Context, userID, entryID uuid.UUID, req *dto.UpdateTimeEntryRequest) (*models.TimeEntry, error)
	DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error
	TotalDuration(ctx context.Context, userID, taskID uuid.UUID) (time.Duration, error)
}
