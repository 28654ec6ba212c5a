package repositories

import (
	"context"

	"github.com/google/uuid"
	"timeguard/domain/models"
)

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	// ListByMember tasks ที่ userID เป็น owner หรือ assignee เรียงตาม due_date (null ท้ายสุด)
	ListByMember(ctx context.Context, userID uuid.UUID) ([]*models.Task, error)
	// ListByMemberWithEntries เหมือน ListByMember แต่ preload time entries สำหรับ report
	ListByMemberWithEntries(ctx context.Context, userID uuid.UUID) ([]*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	// DeleteWithEntries ลบ task และ time entries ของมันใน transaction เดียว
	DeleteWithEntries(ctx context.Context, id uuid.UUID) error
}
