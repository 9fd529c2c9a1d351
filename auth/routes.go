package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/auth/handlers"
	"github.com/qolzam/jobly/internal/middleware/ratelimit"
	platformconfig "github.com/qolzam/jobly/internal/platform/config"
)

// AuthHandlers holds all the handlers this router needs.
type AuthHandlers struct {
	AuthHandler *handlers.AuthHandler
}

// RegisterRoutes mounts the anonymous /auth endpoints behind per-IP limiters.
func RegisterRoutes(router fiber.Router, h *AuthHandlers, limits platformconfig.RateLimitsConfig) {
	group := router.Group("/auth")

	group.Post("/token", ratelimit.New("login", limits.Login), h.AuthHandler.Token)
	group.Post("/register", ratelimit.New("registration", limits.Register), h.AuthHandler.Register)
}
