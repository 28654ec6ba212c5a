package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"timeguard/pkg/logger"
	"timeguard/pkg/utils"
)

// parseBody อ่าน body แล้ว validate; ถ้าไม่ผ่านจะเขียน response แล้วคืน false
func parseBody(c *fiber.Ctx, req interface{}) (bool, error) {
	ctx := c.UserContext()

	if err := c.BodyParser(req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return false, utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return false, utils.ValidationErrorResponse(c, errors)
	}

	return true, nil
}

// parseQuery เหมือน parseBody แต่อ่านจาก query string
func parseQuery(c *fiber.Ctx, req interface{}) (bool, error) {
	ctx := c.UserContext()

	if err := c.QueryParser(req); err != nil {
		logger.WarnContext(ctx, "Invalid query parameters", "error", err)
		return false, utils.BadRequestResponse(c, "Invalid query parameters")
	}

	if err := utils.ValidateStruct(req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return false, utils.ValidationErrorResponse(c, errors)
	}

	return true, nil
}

func parseUUIDParam(c *fiber.Ctx, name, label string) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, false, utils.BadRequestResponse(c, "Invalid "+label+" ID")
	}
	return id, true, nil
}

func currentUser(c *fiber.Ctx) (*utils.UserContext, bool, error) {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(c.UserContext(), "Unauthorized access attempt")
		return nil, false, utils.UnauthorizedResponse(c, "")
	}
	return user, true, nil
}
