package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/server"
	"github.com/qolzam/jobly/users/models"
	"github.com/qolzam/jobly/users/services"
)

// UserHandler handles the /users endpoints
type UserHandler struct {
	userService services.UserService
}

// NewUserHandler creates a new UserHandler with injected dependencies
func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req models.CreateUserRequest
	if err := server.DecodeJSON(c, &req); err != nil {
		return err
	}

	user, token, err := h.userService.CreateUser(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"user": user, "token": token})
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"users": users})
}

// GetUser handles GET /users/:username
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.userService.GetUser(c.UserContext(), c.Params("username"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"user": user})
}

// UpdateUser handles PATCH /users/:username
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	var req models.UpdateUserRequest
	if err := server.DecodeJSON(c, &req); err != nil {
		return err
	}

	user, err := h.userService.UpdateUser(c.UserContext(), c.Params("username"), &req)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"user": user})
}

// DeleteUser handles DELETE /users/:username
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	username := c.Params("username")
	if err := h.userService.DeleteUser(c.UserContext(), username); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"deleted": username})
}

// ApplyToJob handles POST /users/:username/jobs/:id
func (h *UserHandler) ApplyToJob(c *fiber.Ctx) error {
	jobID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrNotFound
	}

	if err := h.userService.ApplyToJob(c.UserContext(), c.Params("username"), jobID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"applied": jobID})
}
