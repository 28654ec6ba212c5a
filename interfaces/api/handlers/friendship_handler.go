package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"timeguard/domain/dto"
	"timeguard/domain/services"
	"timeguard/pkg/logger"
	"timeguard/pkg/utils"
)

type FriendshipHandler struct {
	friendshipService services.FriendshipService
}

func NewFriendshipHandler(friendshipService services.FriendshipService) *FriendshipHandler {
	return &FriendshipHandler{
		friendshipService: friendshipService,
	}
}

func (h *FriendshipHandler) SendRequest(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, ok, err := currentUser(c)
	if !ok {
		return err
	}

	var req dto.FriendRequestRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	request, err := h.friendshipService.SendRequest(ctx, user.ID, req.Email)
	if err != nil {
		logger.WarnContext(ctx, "Friend request failed", "sender_id", user.ID, "error", err)
		return utils.HandleError(c, err)
	}

	return utils.CreatedResponse(c, fiber.Map{
		"message": "Friend request sent",
		"request": dto.FriendshipToResponse(request),
	})
}

// Respond accept หรือ reject คำขอที่ส่งมาหาเรา
func (h *FriendshipHandler) Respond(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, ok, err := currentUser(c)
	if !ok {
		return err
	}

	var req dto.RespondFriendRequestRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	requestID := uuid.MustParse(req.RequestID)

	request, err := h.friendshipService.Respond(ctx, user.ID, requestID, req.Action)
	if err != nil {
		logger.WarnContext(ctx, "Friend request response failed", "request_id", requestID, "error", err)
		return utils.HandleError(c, err)
	}

	message := "Friend request accepted"
	if req.Action == dto.FriendActionReject {
		message = "Friend request rejected"
	}

	return utils.SuccessResponse(c, fiber.Map{
		"message": message,
		"request": dto.FriendshipToResponse(request),
	})
}

func (h *FriendshipHandler) ListFriends(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, ok, err := currentUser(c)
	if !ok {
		return err
	}

	friends, err := h.friendshipService.ListFriends(ctx, user.ID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, fiber.Map{"friends": dto.UsersToSummaries(friends)})
}

func (h *FriendshipHandler) RemoveFriend(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, ok, err := currentUser(c)
	if !ok {
		return err
	}

	var req dto.RemoveFriendRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	friendID := uuid.MustParse(req.FriendID)

	if err := h.friendshipService.RemoveFriend(ctx, user.ID, friendID); err != nil {
		return utils.HandleError(c, err)
	}

	return utils.MessageResponse(c, "Friend removed successfully")
}

func (h *FriendshipHandler) ListIncomingRequests(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, ok, err := currentUser(c)
	if !ok {
		return err
	}

	requests, err := h.friendshipService.ListIncomingRequests(ctx, user.ID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, fiber.Map{"requests": dto.FriendshipsToResponses(requests)})
}

func (h *FriendshipHandler) ListSentRequests(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, ok, err := currentUser(c)
	if !ok {
		return err
	}

	requests, err := h.friendshipService.ListSentRequests(ctx, user.ID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, fiber.Map{"requests": dto.FriendshipsToResponses(requests)})
}

func (h *FriendshipHandler) CancelRequest(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, ok, err := currentUser(c)
	if !ok {
		return err
	}

	requestID, ok, err := parseUUIDParam(c, "id", "request")
	if !ok {
		return err
	}

	request, err := h.friendshipService.CancelRequest(ctx, user.ID, requestID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, fiber.Map{
		"message": "Friend request cancelled",
		"request": dto.FriendshipToResponse(request),
	})
}
