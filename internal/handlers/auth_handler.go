package handlers

import (
	"log"
	"time"

	"carservice/internal/config"
	"carservice/internal/middleware"
	"carservice/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for token issuance and logout.
type AuthHandler struct {
	tokens   *services.TokenService
	cookie   config.CookiePolicy
	validate *validator.Validate
}

// NewAuthHandler creates a new AuthHandler. The cookie policy comes from
// the deployment profile.
func NewAuthHandler(tokens *services.TokenService, cookie config.CookiePolicy) *AuthHandler {
	return &AuthHandler{
		tokens:   tokens,
		cookie:   cookie,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the auth routes with the policy router.
func (h *AuthHandler) RegisterRoutes(router *middleware.Router) {
	router.Add(fiber.MethodPost, "/jwt", h.HandleIssueToken)
	router.Add(fiber.MethodPost, "/logout", h.HandleLogout)
}

// HandleIssueToken signs the supplied identity claims into a token and sets
// it as the HTTP-only token cookie.
func (h *AuthHandler) HandleIssueToken(c *fiber.Ctx) error {
	var claims map[string]interface{}
	if err := c.BodyParser(&claims); err != nil {
		log.Printf("Error parsing token request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	email, _ := claims["email"].(string)
	if err := h.validate.Var(email, "required,email"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "An email field is required to issue a token",
		})
	}

	tokenString, err := h.tokens.Issue(claims)
	if err != nil {
		log.Printf("Error issuing token for %s: %v", email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not issue token",
			"error":   err.Error(),
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    tokenString,
		Expires:  time.Now().Add(h.tokens.TTL()),
		MaxAge:   int(h.tokens.TTL().Seconds()),
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: h.cookie.SameSite,
	})

	return c.JSON(fiber.Map{
		"successToken": true,
	})
}

// HandleLogout clears the token cookie. The token itself stays
// cryptographically valid until its natural expiry; there is no server-side
// revocation registry.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err == nil && len(body) > 0 {
		log.Printf("logging out %v", body)
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: h.cookie.SameSite,
	})

	return c.JSON(fiber.Map{
		"clearToken": "Success",
	})
}
