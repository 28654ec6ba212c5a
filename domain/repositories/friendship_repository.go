package repositories

import (
	"context"

	"github.com/google/uuid"
	"timeguard/domain/models"
)

type FriendshipRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Friendship, error)
	// ListBetween edges ระหว่างสอง user ทั้งสองทิศทาง
	ListBetween(ctx context.Context, userA, userB uuid.UUID) ([]*models.Friendship, error)
	// CreateReplacingRejected ลบ edge ที่ rejected ระหว่างคู่นี้แล้วสร้าง edge ใหม่
	CreateReplacingRejected(ctx context.Context, friendship *models.Friendship) error
	// UpdatePendingStatus เปลี่ยน status เฉพาะ request ที่ยัง pending; false = ไม่มีแถวถูกแก้
	UpdatePendingStatus(ctx context.Context, id uuid.UUID, status string) (bool, error)
	ListAccepted(ctx context.Context, userID uuid.UUID) ([]*models.Friendship, error)
	ListByReceiver(ctx context.Context, receiverID uuid.UUID, statuses ...string) ([]*models.Friendship, error)
	ListBySender(ctx context.Context, senderID uuid.UUID, statuses ...string) ([]*models.Friendship, error)
	// DeleteAcceptedBetween คืนจำนวน edge ที่ลบ
	DeleteAcceptedBetween(ctx context.Context, userA, userB uuid.UUID) (int64, error)
}
