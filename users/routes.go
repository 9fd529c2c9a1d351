package users

import (
	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/middleware/authrole"
	"github.com/qolzam/jobly/internal/middleware/constraints"
	"github.com/qolzam/jobly/users/handlers"
)

// UsersHandlers holds all the handlers this router needs.
type UsersHandlers struct {
	UserHandler *handlers.UserHandler
}

// RegisterRoutes mounts /users. Collection routes are admin only; a single
// account is open to admins and its owner.
func RegisterRoutes(router fiber.Router, h *UsersHandlers) {
	group := router.Group("/users")
	admin := authrole.Admin()
	adminOrSelf := authrole.AdminOrSelf("username")

	group.Post("/", admin, h.UserHandler.CreateUser)
	group.Get("/", admin, h.UserHandler.ListUsers)

	group.Get("/:username", adminOrSelf, h.UserHandler.GetUser)
	group.Patch("/:username", adminOrSelf, h.UserHandler.UpdateUser)
	group.Delete("/:username", adminOrSelf, h.UserHandler.DeleteUser)
	group.Post("/:username/jobs/:id", constraints.RequireInt("id"), adminOrSelf, h.UserHandler.ApplyToJob)
}
