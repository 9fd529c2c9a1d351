package authrole

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/apierrors"
	"github.com/qolzam/jobly/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func status(t *testing.T, user *types.UserContext, guard fiber.Handler, path string) int {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: apierrors.Handler})
	app.Use(func(c *fiber.Ctx) error {
		if user != nil {
			c.Locals(types.UserCtxName, *user)
		}
		return c.Next()
	})
	app.Get("/users/:username", guard, func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	return resp.StatusCode
}

func TestLoggedIn(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, status(t, nil, LoggedIn(), "/users/u1"))
	assert.Equal(t, http.StatusOK, status(t, &types.UserContext{Username: "u2"}, LoggedIn(), "/users/u1"))
}

func TestAdmin(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, status(t, nil, Admin(), "/users/u1"))
	assert.Equal(t, http.StatusForbidden, status(t, &types.UserContext{Username: "u1"}, Admin(), "/users/u1"))
	assert.Equal(t, http.StatusOK, status(t, &types.UserContext{Username: "a", IsAdmin: true}, Admin(), "/users/u1"))
}

func TestAdminOrSelf(t *testing.T) {
	guard := AdminOrSelf("username")

	assert.Equal(t, http.StatusUnauthorized, status(t, nil, guard, "/users/u1"))
	assert.Equal(t, http.StatusOK, status(t, &types.UserContext{Username: "u1"}, guard, "/users/u1"))
	assert.Equal(t, http.StatusForbidden, status(t, &types.UserContext{Username: "u2"}, guard, "/users/u1"))
	assert.Equal(t, http.StatusOK, status(t, &types.UserContext{Username: "a", IsAdmin: true}, guard, "/users/u1"))
}
