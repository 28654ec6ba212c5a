package services

import (
	"context"

	"github.com/google/uuid"
	"timeguard/domain/models"
)

type FriendshipService interface {
	SendRequest(ctx context.Context, senderID uuid.UUID, receiverEmail string) (*models.Friendship, error)
	// Respond action: accept | reject
	Respond(ctx context.Context, userID, requestID uuid.UUID, action string) (*models.Friendship, error)
	ListFriends(ctx context.Context, userID uuid.UUID) ([]*models.User, error)
	RemoveFriend(ctx context.Context, userID, friendID uuid.UUID) error
	CancelRequest(ctx context.Context, userID, requestID uuid.UUID) (*models.Friendship, error)
	ListIncomingRequests(ctx context.Context, userID uuid.UUID) ([]*models.Friendship, error)
	ListSentRequests(ctx context.Context, userID uuid.UUID) ([]*models.Friendship, error)
}
