package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger is the logging stage of the access chain. It records the
// method, path, and originating host for gated routes and always passes
// the request through.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		log.Printf("logger info: %s %s %s", c.Method(), c.Path(), c.Hostname())
		return c.Next()
	}
}
