package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	FriendshipPending  = "pending"
	FriendshipAccepted = "accepted"
	FriendshipRejected = "rejected"
)

// Friendship directed edge จาก sender ไป receiver
type Friendship struct {
	ID         uuid.UUID `gorm:"primaryKey;type:uuid"`
	SenderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Sender     User      `gorm:"foreignKey:SenderID"`
	ReceiverID uuid.UUID `gorm:"type:uuid;not null;index"`
	Receiver   User      `gorm:"foreignKey:ReceiverID"`
	Status     string    `gorm:"size:10;not null;default:'pending';index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Friendship) TableName() string {
	return "friendships"
}

func (f *Friendship) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

func (f *Friendship) IsPending() bool {
	return f.Status == FriendshipPending
}

// Counterpart คืนอีกฝั่งของ edge เมื่อมองจาก userID
func (f *Friendship) Counterpart(userID uuid.UUID) User {
	if f.SenderID == userID {
		return f.Receiver
	}
	return f.Sender
}
