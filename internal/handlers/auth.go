package handlers

import (
	"github.com/gofiber/fiber/v2"

	"standsreg/internal/middleware"
	"standsreg/internal/models"
	"standsreg/internal/services/auth"
	"standsreg/internal/utils"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new applicant account.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input models.RegisterUserInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	user, err := h.authService.Register(&input)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, user)
}

// Login exchanges form credentials for a bearer token. The form field is
// named username but carries the email, matching OAuth2 password flow
// clients.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email := c.FormValue("username")
	password := c.FormValue("password")
	if email == "" || password == "" {
		return utils.BadRequest(c, "username and password are required")
	}

	user, token, err := h.authService.Login(email, password)
	if err != nil {
		return respondError(c, err)
	}

	return utils.Success(c, fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
		"user_id":      user.ID,
		"user_role":    user.Role,
	})
}

// Me returns the authenticated user's own profile.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return utils.Unauthorized(c, "not authenticated")
	}
	return utils.Success(c, user)
}
