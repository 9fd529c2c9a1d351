package constraints

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// RequireInt makes a route match only when param is a positive integer; any
// other value is answered with 404 as if the route did not exist.
func RequireInt(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		value := c.Params(param)
		if n, err := strconv.Atoi(value); err != nil || n <= 0 {
			return fiber.NewError(fiber.StatusNotFound, "Not Found")
		}
		return c.Next()
	}
}
