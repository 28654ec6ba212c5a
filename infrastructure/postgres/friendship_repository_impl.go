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

const pairScope = "(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)"

type FriendshipRepositoryImpl struct {
	db *gorm.DB
}

func NewFriendshipRepository(db *gorm.DB) repositories.FriendshipRepository {
	return &FriendshipRepositoryImpl{db: db}
}

func (r *FriendshipRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Friendship, error) {
	var friendship models.Friendship
	err := r.db.WithContext(ctx).
		Preload("Sender").
		Preload("Receiver").
		Where("id = ?", id).
		First(&friendship).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &friendship, nil
}

func (r *FriendshipRepositoryImpl) ListBetween(ctx context.Context, userA, userB uuid.UUID) ([]*models.Friendship, error) {
	var friendships []*models.Friendship
	err := r.db.WithContext(ctx).
		Where(pairScope, userA, userB, userB, userA).
		Find(&friendships).Error
	return friendships, err
}

func (r *FriendshipRepositoryImpl) CreateReplacingRejected(ctx context.Context, friendship *models.Friendship) error {
	a, b := friendship.SenderID, friendship.ReceiverID
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("status = ?", models.FriendshipRejected).
			Where(pairScope, a, b, b, a).
			Delete(&models.Friendship{}).Error
		if err != nil {
			return err
		}
		return translateError(tx.Omit(clause.Associations).Create(friendship).Error)
	})
}

func (r *FriendshipRepositoryImpl) UpdatePendingStatus(ctx context.Context, id uuid.UUID, status string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Friendship{}).
		Where("id = ?", id).
		Where("status = ?", models.FriendshipPending).
		Update("status", status)
	return result.RowsAffected > 0, result.Error
}

func (r *FriendshipRepositoryImpl) ListAccepted(ctx context.Context, userID uuid.UUID) ([]*models.Friendship, error) {
	var friendships []*models.Friendship
	err := r.db.WithContext(ctx).
		Preload("Sender").
		Preload("Receiver").
		Where("status = ?", models.FriendshipAccepted).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("updated_at DESC").
		Find(&friendships).Error
	return friendships, err
}

func (r *FriendshipRepositoryImpl) ListByReceiver(ctx context.Context, receiverID uuid.UUID, statuses ...string) ([]*models.Friendship, error) {
	var friendships []*models.Friendship
	db := r.db.WithContext(ctx).
		Preload("Sender").
		Preload("Receiver").
		Where("receiver_id = ?", receiverID)
	if len(statuses) > 0 {
		db = db.Where("status IN ?", statuses)
	}
	err := db.Order("created_at DESC").Find(&friendships).Error
	return friendships, err
}

func (r *FriendshipRepositoryImpl) ListBySender(ctx context.Context, senderID uuid.UUID, statuses ...string) ([]*models.Friendship, error) {
	var friendships []*models.Friendship
	db := r.db.WithContext(ctx).
		Preload("Sender").
		Preload("Receiver").
		Where("sender_id = ?", senderID)
	if len(statuses) > 0 {
		db = db.Where("status IN ?", statuses)
	}
	err := db.Order("created_at DESC").Find(&friendships).Error
	return friendships, err
}

func (r *FriendshipRepositoryImpl) DeleteAcceptedBetween(ctx context.Context, userA, userB uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("status = ?", models.FriendshipAccepted).
		Where(pairScope, userA, userB, userB, userA).
		Delete(&models.Friendship{})
	return result.RowsAffected, result.Error
}
