package repositories

import (
	"context"

	"github.com/google/uuid"
	"timeguard/domain/models"
)

type TimeEntryRepository interface {
	Create(ctx context.Context, entry *models.TimeEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.TimeEntry, error)
	ListByTaskID(ctx context.Context, taskID uuid.UUID) ([]*models.TimeEntry, error)
	// FindLatestOpen entry ที่ยังไม่ปิดและเริ่มล่าสุด หรือ nil
	FindLatestOpen(ctx context.Context, taskID uuid.UUID) (*models.TimeEntry, error)
	CountOpen(ctx context.Context, taskID uuid.UUID) (int64, error)
	Update(ctx context.Context, entry *models.TimeEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
}
