// Package authrole guards routes by the identity authjwt stored in Locals.
// No identity is 401; an identity without the needed rights is 403.
package authrole

import (
	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/apierrors"
	"github.com/qolzam/jobly/internal/types"
)

// Config selects the rule a route enforces.
type Config struct {
	// Admin requires is_admin.
	Admin bool
	// SelfParam, when set, also admits the user named by this route param.
	SelfParam string
}

// New creates a guard from cfg.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals(types.UserCtxName).(types.UserContext)
		if !ok || user.Username == "" {
			return apierrors.NewUnauthorizedError("Authentication required")
		}

		switch {
		case cfg.SelfParam != "":
			if !user.CanActAs(c.Params(cfg.SelfParam)) {
				return apierrors.NewForbiddenError("Admin or account owner only")
			}
		case cfg.Admin:
			if !user.IsAdmin {
				return apierrors.NewForbiddenError("Admin only")
			}
		}
		return c.Next()
	}
}

// LoggedIn admits any authenticated user.
func LoggedIn() fiber.Handler {
	return New(Config{})
}

// Admin admits administrators.
func Admin() fiber.Handler {
	return New(Config{Admin: true})
}

// AdminOrSelf admits administrators and the user named by param.
func AdminOrSelf(param string) fiber.Handler {
	return New(Config{SelfParam: param})
}
