package utils

import (
	"github.com/gofiber/fiber/v2"
	"timeguard/pkg/apperrors"
	"timeguard/pkg/logger"
)

// HandleError map error จาก service เป็น HTTP response; internal error ถูก log แต่ไม่ส่งรายละเอียดให้ client
func HandleError(c *fiber.Ctx, err error) error {
	message := apperrors.MessageOf(err)

	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		return ErrorResponse(c, fiber.StatusBadRequest, ErrCodeValidation, message, nil)
	case apperrors.KindInvariant:
		return ErrorResponse(c, fiber.StatusBadRequest, ErrCodeInvariant, message, nil)
	case apperrors.KindAuthentication:
		return UnauthorizedResponse(c, message)
	case apperrors.KindAuthorization:
		return ForbiddenResponse(c, message)
	case apperrors.KindNotFound:
		return NotFoundResponse(c, message)
	case apperrors.KindConflict:
		return ConflictResponse(c, message)
	default:
		logger.ErrorContext(c.UserContext(), "Unhandled error",
			"method", c.Method(),
			"path", c.Path(),
			"error", err,
		)
		return InternalServerErrorResponse(c)
	}
}
