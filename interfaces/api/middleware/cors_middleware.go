package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware origins ว่าง = อนุญาตทุก origin แต่ไม่ส่ง credentials
func CorsMiddleware(allowOrigins []string) fiber.Handler {
	origins := strings.Join(allowOrigins, ",")
	credentials := true
	if origins == "" || origins == "*" {
		origins = "*"
		credentials = false
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,HEAD",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization,X-Request-ID",
		ExposeHeaders:    "Content-Length,Content-Type,Content-Disposition,X-Request-ID",
		AllowCredentials: credentials,
	})
}
