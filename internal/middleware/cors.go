package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

const (
	corsAllowMethods = "GET,POST,PUT,PATCH,DELETE,OPTIONS"
	corsAllowHeaders = "Content-Type,Authorization,X-API-Key"
	corsMaxAge       = 86400
)

// CORS allows every origin. Any OPTIONS request is answered with 204, and every
// response carries Access-Control-Allow-Origin: * whether or not Origin was sent.
func CORS() fiber.Handler {
	preflight := cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: corsAllowMethods,
		AllowHeaders: corsAllowHeaders,
		MaxAge:       corsMaxAge,
	})
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
		if c.Method() != fiber.MethodOptions {
			return preflight(c)
		}
		// fiber's cors only answers complete preflights (Origin plus Access-Control-Request-Method).
		if c.Get(fiber.HeaderOrigin) != "" && c.Get(fiber.HeaderAccessControlRequestMethod) != "" {
			return preflight(c)
		}
		c.Set(fiber.HeaderAccessControlAllowMethods, corsAllowMethods)
		c.Set(fiber.HeaderAccessControlAllowHeaders, corsAllowHeaders)
		c.Set(fiber.HeaderAccessControlMaxAge, strconv.Itoa(corsMaxAge))
		return c.SendStatus(fiber.StatusNoContent)
	}
}
