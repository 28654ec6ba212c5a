package repositories

import (
	"context"

	"github.com/google/uuid"
	"timeguard/domain/models"
)

type ReportSnapshotRepository interface {
	Create(ctx context.Context, snapshot *models.ReportSnapshot) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ReportSnapshot, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.ReportSnapshot, error)
	UpdateStoragePath(ctx context.Context, id uuid.UUID, path string) error
	Delete(ctx context.Context, id uuid.UUID) error
}
