package server

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/pkg/log"
)

const healthTimeout = 2 * time.Second

// Pinger is anything that can check its backing connection.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health answers GET /health with {"status":"ok"} when the database responds
// and 503 otherwise.
func Health(db Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			log.ErrorWithContext(ctx, "[Health] database ping failed: %v", err)
			return fiber.NewError(fiber.StatusServiceUnavailable, "Database unavailable")
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}
