package middleware

import (
	"log"

	"carservice/internal/services"

	"github.com/gofiber/fiber/v2"
)

// Context keys for the identity attached by the verification stage.
const (
	// ClaimsKey holds the full jwt.MapClaims of the verified token.
	ClaimsKey = "identity_claims"
	// EmailKey holds the verified caller's email.
	EmailKey = "identity_email"
)

// TokenCookie is the name of the cookie carrying the identity token.
const TokenCookie = "token"

// TokenAuth is the verification stage of the access chain. It extracts the
// identity token from the request's cookie jar and verifies it. A missing,
// malformed, or expired token rejects the request with 401; a valid one
// attaches the decoded claims to the context and passes through.
func TokenAuth(tokens *services.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(TokenCookie)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
			})
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			log.Printf("Token verification failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
			})
		}

		c.Locals(ClaimsKey, claims)
		if email, ok := claims["email"].(string); ok {
			c.Locals(EmailKey, email)
		}
		return c.Next()
	}
}

// CallerEmail returns the verified email attached by TokenAuth, or "" when
// the route was not gated.
func CallerEmail(c *fiber.Ctx) string {
	email, _ := c.Locals(EmailKey).(string)
	return email
}
