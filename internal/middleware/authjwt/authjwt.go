// Package authjwt identifies the caller from an optional bearer token.
package authjwt

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/pkg/log"
	"github.com/qolzam/jobly/internal/types"
)

// TokenVerifier turns a raw token into an identity.
type TokenVerifier interface {
	Verify(token string) (types.UserContext, error)
}

// Config defines the config for the JWT middleware.
type Config struct {
	Verifier TokenVerifier
}

// New stores the verified UserContext in Locals when a valid
// "Authorization: Bearer <token>" header is present. A missing or invalid
// token never fails the request; route guards decide what anonymous callers
// may do. The identity is stored under types.UserCtxName, the key
// CurrentUser and the authrole guards read.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := bearerToken(c.Get(types.HeaderAuthorization))
		if tokenString == "" {
			return c.Next()
		}

		user, err := cfg.Verifier.Verify(tokenString)
		if err != nil {
			log.DebugWithContext(c.UserContext(), "[authjwt] ignoring token: %v", err)
			return c.Next()
		}

		c.Locals(types.UserCtxName, user)
		return c.Next()
	}
}

func bearerToken(header string) string {
	if !strings.HasPrefix(header, types.BearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, types.BearerPrefix))
}

// CurrentUser returns the identity stored by New, if any.
func CurrentUser(c *fiber.Ctx) (types.UserContext, bool) {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	return user, ok
}
