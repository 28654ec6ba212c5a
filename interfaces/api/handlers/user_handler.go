package handlers

import (
	"github.com/gofiber/fiber/v2"
	"timeguard/domain/dto"
	"timeguard/domain/services"
	"timeguard/pkg/logger"
	"timeguard/pkg/utils"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, ok, err := currentUser(c)
	if !ok {
		return err
	}

	profile, err := h.userService.GetProfile(ctx, user.ID)
	if err != nil {
		logger.WarnContext(ctx, "Profile lookup failed", "user_id", user.ID, "error", err)
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, fiber.Map{"user": dto.UserToUserResponse(profile)})
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, ok, err := currentUser(c)
	if !ok {
		return err
	}

	var req dto.UpdateProfileRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	logger.InfoContext(ctx, "Profile update attempt", "user_id", user.ID)

	updated, err := h.userService.UpdateProfile(ctx, user.ID, &req)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, fiber.Map{
		"message": "Profile updated successfully",
		"user":    dto.UserToUserResponse(updated),
	})
}

// SearchUsers GET /users?search=
func (h *UserHandler) SearchUsers(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, ok, err := currentUser(c)
	if !ok {
		return err
	}

	var req dto.UserSearchRequest
	if ok, err := parseQuery(c, &req); !ok {
		return err
	}

	users, err := h.userService.SearchUsers(ctx, user.ID, &req)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, fiber.Map{"users": dto.UsersToSummaries(users)})
}
