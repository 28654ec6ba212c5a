package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"timeguard/domain/models"
	"timeguard/domain/repositories"
)

type TimeEntryRepositoryImpl struct {
	db *gorm.DB
}

func NewTimeEntryRepository(db *gorm.DB) repositories.TimeEntryRepository {
	return &TimeEntryRepositoryImpl{db: db}
}

func (r *TimeEntryRepositoryImpl) Create(ctx context.Context, entry *models.TimeEntry) error {
	return translateError(r.db.WithContext(ctx).Create(entry).Error)
}

func (r *TimeEntryRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.TimeEntry, error) {
	var entry models.TimeEntry
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *TimeEntryRepositoryImpl) ListByTaskID(ctx context.Context, taskID uuid.UUID) ([]*models.TimeEntry, error) {
	var entries []*models.TimeEntry
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("start_time ASC").
		Find(&entries).Error
	return entries, err
}

func (r *TimeEntryRepositoryImpl) FindLatestOpen(ctx context.Context, taskID uuid.UUID) (*models.TimeEntry, error) {
	var entry models.TimeEntry
	err := r.db.WithContext(ctx).
		Where("task_id = ? AND end_time IS NULL", taskID).
		Order("start_time DESC").
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *TimeEntryRepositoryImpl) CountOpen(ctx context.Context, taskID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.TimeEntry{}).
		Where("task_id = ? AND end_time IS NULL", taskID).
		Count(&count).Error
	return count, err
}

func (r *TimeEntryRepositoryImpl) Update(ctx context.Context, entry *models.TimeEntry) error {
	err := r.db.WithContext(ctx).
		Model(&models.TimeEntry{}).
		Where("id = ?", entry.ID).
		Updates(map[string]interface{}{
			"start_time": entry.StartTime,
			"end_time":   entry.EndTime,
		}).Error
	return translateError(err)
}

func (r *TimeEntryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.TimeEntry{}).Error
}
