package authjwt

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/apierrors"
	"github.com/qolzam/jobly/internal/middleware/authrole"
	"github.com/qolzam/jobly/internal/testutil"
	"github.com/qolzam/jobly/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T) (*fiber.App, *testutil.Keys) {
	keys := testutil.NewKeys(t)
	app := fiber.New()
	app.Use(New(Config{Verifier: keys.Verifier}))
	app.Get("/", func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return c.SendString("anonymous")
		}
		return c.JSON(user)
	})
	return app, keys
}

func get(t *testing.T, app *fiber.App, header string) map[string]interface{} {
	t.Helper()
	req := httptest.NewRequest("GET", "/", nil)
	if header != "" {
		req.Header.Set(types.HeaderAuthorization, header)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	if resp.Header.Get("Content-Type") != fiber.MIMEApplicationJSON {
		return nil
	}
	return testutil.DecodeJSON(t, resp)
}

func TestAuthJWT_ValidToken(t *testing.T) {
	app, keys := newApp(t)

	body := get(t, app, "Bearer "+keys.Token(t, "u1", true))
	assert.Equal(t, "u1", body["username"])
	assert.Equal(t, true, body["isAdmin"])
}

func TestAuthJWT_AnonymousContinues(t *testing.T) {
	app, _ := newApp(t)

	assert.Nil(t, get(t, app, ""))
	assert.Nil(t, get(t, app, "Bearer garbage"))
	assert.Nil(t, get(t, app, "Basic dTE6cHc="))
}

func TestAuthJWT_ForeignKeyIgnored(t *testing.T) {
	app, _ := newApp(t)
	other := testutil.NewKeys(t)

	assert.Nil(t, get(t, app, "Bearer "+other.Token(t, "u1", true)))
}

func TestAuthJWT_IdentityReachesRoleGuards(t *testing.T) {
	keys := testutil.NewKeys(t)
	app := fiber.New(fiber.Config{ErrorHandler: apierrors.Handler})
	app.Use(New(Config{Verifier: keys.Verifier}))
	app.Get("/admin", authrole.Admin(), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	app.Get("/users/:username", authrole.AdminOrSelf("username"), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	status := func(target, token string) int {
		req := httptest.NewRequest("GET", target, nil)
		if token != "" {
			req.Header.Set(types.HeaderAuthorization, "Bearer "+token)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	admin := keys.Token(t, "root", true)
	user := keys.Token(t, "u1", false)

	assert.Equal(t, http.StatusOK, status("/admin", admin))
	assert.Equal(t, http.StatusForbidden, status("/admin", user))
	assert.Equal(t, http.StatusUnauthorized, status("/admin", ""))
	assert.Equal(t, http.StatusOK, status("/users/u1", user))
	assert.Equal(t, http.StatusForbidden, status("/users/u2", user))
}
