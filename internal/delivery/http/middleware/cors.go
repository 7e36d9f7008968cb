package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS - middleware для настройки Cross-Origin Resource Sharing.
// API только на чтение: GET и OPTIONS с любого источника.
func CORS() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,OPTIONS",
		AllowHeaders:  "Content-Type,Accept,X-Request-ID",
		ExposeHeaders: HeaderRequestID,
	})
}
