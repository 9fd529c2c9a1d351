package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/server"
	"github.com/qolzam/jobly/users/models"
	"github.com/qolzam/jobly/users/services"
)

// AuthHandler issues tokens for existing and newly registered users.
type AuthHandler struct {
	userService services.UserService
}

func NewAuthHandler(userService services.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// Token handles POST /auth/token
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := server.DecodeJSON(c, &req); err != nil {
		return err
	}

	token, err := h.userService.Authenticate(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"token": token})
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := server.DecodeJSON(c, &req); err != nil {
		return err
	}

	token, err := h.userService.Register(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"token": token})
}
