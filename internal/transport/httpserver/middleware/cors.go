package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS returns a middleware that allows cross-origin reads from browser
// clients. Counter updates go through PATCH, so it is allowed as well.
func CORS() fiber.Handler {
	return cors.New(cors.Config{
		AllowMethods: "GET,PATCH,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	})
}
