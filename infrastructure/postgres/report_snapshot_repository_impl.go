package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"timeguard/domain/models"
	"timeguard/domain/repositories"
)

type ReportSnapshotRepositoryImpl struct {
	db *gorm.DB
}

func NewReportSnapshotRepository(db *gorm.DB) repositories.ReportSnapshotRepository {
	return &ReportSnapshotRepositoryImpl{db: db}
}

func (r *ReportSnapshotRepositoryImpl) Create(ctx context.Context, snapshot *models.ReportSnapshot) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(snapshot).Error
}

func (r *ReportSnapshotRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.ReportSnapshot, error) {
	var snapshot models.ReportSnapshot
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &snapshot, nil
}

// ListByUserID ไม่ดึง data เพื่อให้ list เบา
func (r *ReportSnapshotRepositoryImpl) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.ReportSnapshot, error) {
	var snapshots []*models.ReportSnapshot
	err := r.db.WithContext(ctx).
		Omit("data").
		Where("user_id = ?", userID).
		Order("generated_at DESC").
		Find(&snapshots).Error
	return snapshots, err
}

func (r *ReportSnapshotRepositoryImpl) UpdateStoragePath(ctx context.Context, id uuid.UUID, path string) error {
	return r.db.WithContext(ctx).
		Model(&models.ReportSnapshot{}).
		Where("id = ?", id).
		Update("storage_path", path).Error
}

func (r *ReportSnapshotRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ReportSnapshot{}).Error
}
