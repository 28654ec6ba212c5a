package serviceimpl

import (
	"context"
	"time"

	"github.com/google/uuid"

	"timeguard/domain/dto"
	"timeguard/domain/models"
	"timeguard/domain/ports"
	"timeguard/domain/repositories"
	"timeguard/domain/services"
	"timeguard/pkg/apperrors"
	"timeguard/pkg/logger"
)

type FriendshipServiceImpl struct {
	friendshipRepo repositories.FriendshipRepository
	userRepo       repositories.UserRepository
	locker         ports.LockPort
	lockTTL        time.Duration
	publisher      ports.EventPublisherPort
}

func NewFriendshipService(
	friendshipRepo repositories.FriendshipRepository,
	userRepo repositories.UserRepository,
	locker ports.LockPort,
	lockTTL time.Duration,
	publisher ports.EventPublisherPort,
) services.FriendshipService {
	return &FriendshipServiceImpl{
		friendshipRepo: friendshipRepo,
		userRepo:       userRepo,
		locker:         locker,
		lockTTL:        lockTTL,
		publisher:      publisher,
	}
}

func (s *FriendshipServiceImpl) loadRequest(ctx context.Context, requestID uuid.UUID) (*models.Friendship, error) {
	friendship, err := s.friendshipRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, apperrors.Internal("failed to load friend request", err)
	}
	if friendship == nil {
		return nil, apperrors.NotFound("Friend request not found")
	}
	return friendship, nil
}

// SendRequest edge ที่ rejected ไม่ขวาง และจะถูกแทนที่ด้วย request ใหม่
func (s *FriendshipServiceImpl) SendRequest(ctx context.Context, senderID uuid.UUID, receiverEmail string) (*models.Friendship, error) {
	receiver, err := s.userRepo.GetByEmail(ctx, normalizeEmail(receiverEmail))
	if err != nil {
		return nil, apperrors.Internal("failed to look up receiver", err)
	}
	if receiver == nil {
		return nil, apperrors.NotFound("User not found")
	}
	if receiver.ID == senderID {
		return nil, apperrors.Validation("You cannot send a friend request to yourself")
	}

	friendship := &models.Friendship{
		SenderID:   senderID,
		ReceiverID: receiver.ID,
		Status:     models.FriendshipPending,
	}

	err = withLock(ctx, s.locker, pairLockKey(senderID, receiver.ID), s.lockTTL, func() error {
		edges, err := s.friendshipRepo.ListBetween(ctx, senderID, receiver.ID)
		if err != nil {
			return apperrors.Internal("failed to check existing requests", err)
		}
		for _, edge := range edges {
			switch edge.Status {
			case models.FriendshipAccepted:
				return apperrors.Conflict("You are already friends with this user")
			case models.FriendshipPending:
				return apperrors.Conflict("A friend request between you and this user is already pending")
			}
		}

		if err := s.friendshipRepo.CreateReplacingRejected(ctx, friendship); err != nil {
			return apperrors.Internal("failed to create friend request", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Friend request sent", "request_id", friendship.ID, "sender_id", senderID, "receiver_id", receiver.ID)
	publishEvent(ctx, s.publisher, ports.EventFriendRequested, senderID, friendship.ID, map[string]any{
		"receiver_id": receiver.ID.String(),
	})

	return s.loadRequest(ctx, friendship.ID)
}

func (s *FriendshipServiceImpl) Respond(ctx context.Context, userID, requestID uuid.UUID, action string) (*models.Friendship, error) {
	var status, eventType string
	switch action {
	case dto.FriendActionAccept:
		status, eventType = models.FriendshipAccepted, ports.EventFriendAccepted
	case dto.FriendActionReject:
		status, eventType = models.FriendshipRejected, ports.EventFriendRejected
	default:
		return nil, apperrors.Validation("action must be accept or reject")
	}

	friendship, err := s.loadRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if friendship.ReceiverID != userID {
		return nil, apperrors.Authorization("Only the receiver can respond to this request")
	}
	if !friendship.IsPending() {
		return nil, apperrors.Conflict("Friend request is no longer pending")
	}

	updated, err := s.friendshipRepo.UpdatePendingStatus(ctx, requestID, status)
	if err != nil {
		return nil, apperrors.Internal("failed to update friend request", err)
	}
	if !updated {
		return nil, apperrors.Conflict("Friend request is no longer pending")
	}

	logger.InfoContext(ctx, "Friend request answered", "request_id", requestID, "status", status)
	publishEvent(ctx, s.publisher, eventType, userID, requestID, map[string]any{
		"sender_id": friendship.SenderID.String(),
	})

	return s.loadRequest(ctx, requestID)
}

// ListFriends counterpart ที่ไม่ซ้ำจาก edge ที่ accepted ทั้งสองทิศทาง
func (s *FriendshipServiceImpl) ListFriends(ctx context.Context, userID uuid.UUID) ([]*models.User, error) {
	edges, err := s.friendshipRepo.ListAccepted(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to list friends", err)
	}

	seen := make(map[uuid.UUID]bool, len(edges))
	friends := make([]*models.User, 0, len(edges))
	for _, edge := range edges {
		friend := edge.Counterpart(userID)
		if seen[friend.ID] {
			continue
		}
		seen[friend.ID] = true
		friends = append(friends, &friend)
	}
	return friends, nil
}

func (s *FriendshipServiceImpl) RemoveFriend(ctx context.Context, userID, friendID uuid.UUID) error {
	removed, err := s.friendshipRepo.DeleteAcceptedBetween(ctx, userID, friendID)
	if err != nil {
		return apperrors.Internal("failed to remove friend", err)
	}
	if removed == 0 {
		return apperrors.NotFound("Friendship not found")
	}

	logger.InfoContext(ctx, "Friend removed", "user_id", userID, "friend_id", friendID)
	publishEvent(ctx, s.publisher, ports.EventFriendRemoved, userID, friendID, nil)
	return nil
}

// CancelRequest sender เท่านั้นและต้องยัง pending; ผลคือ rejected
func (s *FriendshipServiceImpl) CancelRequest(ctx context.Context, userID, requestID uuid.UUID) (*models.Friendship, error) {
	friendship, err := s.loadRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if friendship.SenderID != userID {
		return nil, apperrors.Authorization("Only the sender can cancel this request")
	}
	if !friendship.IsPending() {
		return nil, apperrors.Conflict("Only pending requests can be cancelled")
	}

	updated, err := s.friendshipRepo.UpdatePendingStatus(ctx, requestID, models.FriendshipRejected)
	if err != nil {
		return nil, apperrors.Internal("failed to cancel friend request", err)
	}
	if !updated {
		return nil, apperrors.Conflict("Only pending requests can be cancelled")
	}

	logger.InfoContext(ctx, "Friend request cancelled", "request_id", requestID, "user_id", userID)
	publishEvent(ctx, s.publisher, ports.EventFriendCancelled, userID, requestID, nil)

	return s.loadRequest(ctx, requestID)
}

func (s *FriendshipServiceImpl) ListIncomingRequests(ctx context.Context, userID uuid.UUID) ([]*models.Friendship, error) {
	requests, err := s.friendshipRepo.ListByReceiver(ctx, userID, models.FriendshipPending)
	if err != nil {
		return nil, apperrors.Internal("failed to list incoming requests", err)
	}
	return requests, nil
}

func (s *FriendshipServiceImpl) ListSentRequests(ctx context.Context, userID uuid.UUID) ([]*models.Friendship, error) {
	requests, err := s.friendshipRepo.ListBySender(ctx, userID, models.FriendshipPending, models.FriendshipRejected)
	if err != nil {
		return nil, apperrors.Internal("failed to list sent requests", err)
	}
	return requests, nil
}
