// Package ratelimit throttles the anonymous authentication endpoints per client IP.
package ratelimit

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/qolzam/jobly/internal/pkg/log"
	"github.com/qolzam/jobly/internal/platform/config"
)

// New returns a limiter named for logs and messages. A disabled config
// returns a pass-through handler.
func New(name string, cfg config.RateLimitConfig) fiber.Handler {
	if !cfg.Enabled || cfg.Max <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}

	return limiter.New(limiter.Config{
		Max:        cfg.Max,
		Expiration: cfg.Duration,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + ":" + name
		},
		LimitReached: func(c *fiber.Ctx) error {
			log.WarnWithContext(c.UserContext(), "[RateLimit] %s limit exceeded from IP: %s", name, c.IP())
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(cfg.Duration.Seconds())))
			return fiber.NewError(fiber.StatusTooManyRequests,
				fmt.Sprintf("Too many %s attempts. Please try again later.", name))
		},
	})
}
