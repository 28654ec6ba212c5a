package handlers

import (
	"github.com/gofiber/fiber/v2"
	"timeguard/domain/dto"
	"timeguard/domain/services"
	"timeguard/pkg/logger"
	"timeguard/pkg/utils"
)

type AuthHandler struct {
	userService services.UserService
}

func NewAuthHandler(userService services.UserService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.RegisterRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	logger.InfoContext(ctx, "Registration attempt", "email", req.Email)

	user, err := h.userService.Register(ctx, &req)
	if err != nil {
		logger.WarnContext(ctx, "Registration failed", "email", req.Email, "error", err)
		return utils.HandleError(c, err)
	}

	return utils.CreatedResponse(c, fiber.Map{
		"message": "User registered successfully",
		"user":    dto.UserToUserResponse(user),
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	logger.InfoContext(ctx, "Login attempt", "email", req.Email)

	token, user, err := h.userService.Login(ctx, &req)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, fiber.Map{
		"token": token,
		"user":  dto.UserToUserResponse(user),
	})
}

// Logout revoke token ปัจจุบัน
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, ok, err := currentUser(c)
	if !ok {
		return err
	}

	if err := h.userService.Logout(ctx, user.TokenID, user.ExpiresAt); err != nil {
		return utils.HandleError(c, err)
	}

	logger.InfoContext(ctx, "User logged out", "user_id", user.ID)
	return utils.MessageResponse(c, "Logged out successfully")
}
