package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"timeguard/pkg/logger"
	"timeguard/pkg/utils"
)

// LoggerMiddleware log หนึ่งบรรทัดต่อ request หลังประมวลผลเสร็จ
func LoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		// error ที่หลุดมายังไม่ถูกเขียนเป็น response จนกว่า ErrorHandler จะทำงาน
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		attrs := []any{
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency", time.Since(start).String(),
			"ip", c.IP(),
		}
		if user, uerr := utils.GetUserFromContext(c); uerr == nil {
			attrs = append(attrs, "user_id", user.ID)
		}

		logFunc := logger.InfoContext
		if status >= 500 {
			logFunc = logger.ErrorContext
		} else if status >= 400 {
			logFunc = logger.WarnContext
		}

		logFunc(c.UserContext(), "Request completed", attrs...)

		return err
	}
}
