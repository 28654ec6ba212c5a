package dto

import (
	"time"

	"github.com/google/uuid"
)

const (
	FriendActionAccept = "accept"
	FriendActionReject = "reject"
)

type FriendRequestRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

type RespondFriendRequestRequest struct {
	RequestID string `json:"request_id" validate:"required,uuid"`
	Action    string `json:"action" validate:"required,oneof=accept reject"`
}

type RemoveFriendRequest struct {
	FriendID string `json:"friend_id" validate:"required,uuid"`
}

type FriendshipResponse struct {
	ID         uuid.UUID    `json:"id"`
	SenderID   uuid.UUID    `json:"sender_id"`
	ReceiverID uuid.UUID    `json:"receiver_id"`
	Status     string       `json:"status"`
	Sender     *UserSummary `json:"sender,omitempty"`
	Receiver   *UserSummary `json:"receiver,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}
