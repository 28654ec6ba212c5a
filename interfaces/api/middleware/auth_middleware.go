package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"timeguard/domain/ports"
	"timeguard/pkg/logger"
	"timeguard/pkg/utils"
)

// AuthConfig Revocations เป็น nil ได้ (ไม่มี Redis = logout ไม่ revoke)
type AuthConfig struct {
	Secret      string
	Revocations ports.TokenRevocationPort
}

// Protected middleware validates JWT tokens and sets user context
func Protected(cfg AuthConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return utils.UnauthorizedResponse(c, "Missing authorization header")
		}

		token := utils.ExtractTokenFromHeader(authHeader)
		if token == "" {
			return utils.UnauthorizedResponse(c, "Invalid authorization header format")
		}

		userCtx, err := utils.ValidateTokenStringToUUID(token, cfg.Secret)
		if err != nil {
			logger.WarnContext(ctx, "Token validation failed", "error", err)
			switch {
			case errors.Is(err, utils.ErrExpiredToken):
				return utils.UnauthorizedResponse(c, "Token has expired")
			case errors.Is(err, utils.ErrMissingToken):
				return utils.UnauthorizedResponse(c, "Missing token")
			default:
				return utils.UnauthorizedResponse(c, "Invalid token")
			}
		}

		if cfg.Revocations != nil && userCtx.TokenID != "" {
			revoked, err := cfg.Revocations.IsRevoked(ctx, userCtx.TokenID)
			if err != nil {
				// Redis ล่มไม่ควรทำให้ทุก request 401
				logger.WarnContext(ctx, "Token revocation check failed", "error", err)
			} else if revoked {
				return utils.UnauthorizedResponse(c, "Token has been revoked")
			}
		}

		c.Locals("user", userCtx)
		c.SetUserContext(logger.ContextWithUserID(ctx, userCtx.ID.String()))

		return c.Next()
	}
}
