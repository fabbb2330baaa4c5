// Package middleware provides the request authentication chain: bearer token
// resolution to an acting user, and the admin gate admin-only routes compose
// on top.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"standsreg/internal/models"
	"standsreg/internal/services/auth"
)

// UserKey is the request-local key the resolved actor is stored under.
const UserKey = "user"

// AuthMiddleware resolves the Authorization header to a user on every
// request. Invalid, expired or orphaned tokens all end the request with 401.
type AuthMiddleware struct {
	authService auth.Service
}

func NewAuthMiddleware(authService auth.Service) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Handler authenticates the request and stores the actor in locals.
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization format"})
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	user, err := m.authService.Authenticate(tokenString)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}

	c.Locals(UserKey, user)
	return c.Next()
}

// AdminRequired rejects any actor that is not an admin. Must run after
// Handler.
func AdminRequired(c *fiber.Ctx) error {
	user := CurrentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "not authenticated"})
	}
	if user.Role != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "admin privileges required"})
	}
	return c.Next()
}

// CurrentUser returns the actor resolved by Handler, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(UserKey).(*models.User)
	return user
}
