package auth

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/auth/handlers"
	"github.com/qolzam/jobly/internal/apierrors"
	platformconfig "github.com/qolzam/jobly/internal/platform/config"
	"github.com/qolzam/jobly/internal/testutil"
	"github.com/qolzam/jobly/users/models"
	"github.com/qolzam/jobly/users/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stubUserService implements only what the auth routes call.
type stubUserService struct {
	services.UserService
	mock.Mock
}

func (m *stubUserService) Authenticate(ctx context.Context, req *models.LoginRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *stubUserService) Register(ctx context.Context, req *models.RegisterRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func setupApp(t *testing.T, limits platformconfig.RateLimitsConfig) (*testutil.HTTPHelper, *stubUserService) {
	t.Helper()

	svc := new(stubUserService)
	app := fiber.New(fiber.Config{ErrorHandler: apierrors.Handler})
	RegisterRoutes(app, &AuthHandlers{AuthHandler: handlers.NewAuthHandler(svc)}, limits)
	return testutil.NewHTTPHelper(t, app), svc
}

func TestToken(t *testing.T) {
	h, svc := setupApp(t, platformconfig.RateLimitsConfig{})
	svc.On("Authenticate", mock.Anything, &models.LoginRequest{Username: "u1", Password: "password1"}).Return("tok", nil)
	svc.On("Authenticate", mock.Anything, &models.LoginRequest{Username: "u1", Password: "wrong"}).
		Return("", apierrors.NewUnauthorizedError("Invalid username/password"))

	resp := h.NewRequest(http.MethodPost, "/auth/token", map[string]string{"username": "u1", "password": "password1"}).Send()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]interface{}{"token": "tok"}, testutil.DecodeJSON(t, resp))

	resp = h.NewRequest(http.MethodPost, "/auth/token", map[string]string{"username": "u1", "password": "wrong"}).Send()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid username/password", testutil.ErrorMessage(t, resp))
}

func TestToken_BadRequest(t *testing.T) {
	h, svc := setupApp(t, platformconfig.RateLimitsConfig{})

	resp := h.NewRequest(http.MethodPost, "/auth/token", map[string]string{"username": "u1"}).Send()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = h.NewRequest(http.MethodPost, "/auth/token", map[string]interface{}{"username": 42, "password": "x"}).Send()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	svc.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
}

func TestRegister(t *testing.T) {
	h, svc := setupApp(t, platformconfig.RateLimitsConfig{})
	svc.On("Register", mock.Anything, mock.Anything).Return("tok", nil)

	resp := h.NewRequest(http.MethodPost, "/auth/register", map[string]interface{}{
		"username": "new", "password": "password", "firstName": "first", "lastName": "last", "email": "new@email.com",
	}).Send()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = h.NewRequest(http.MethodPost, "/auth/register", map[string]interface{}{
		"username": "new", "password": "password", "firstName": "first", "lastName": "last",
		"email": "new@email.com", "isAdmin": true,
	}).Send()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	svc.AssertNumberOfCalls(t, "Register", 1)
}

func TestToken_RateLimited(t *testing.T) {
	limits := platformconfig.RateLimitsConfig{
		Login: platformconfig.RateLimitConfig{Enabled: true, Max: 1, Duration: time.Minute},
	}
	h, svc := setupApp(t, limits)
	svc.On("Authenticate", mock.Anything, mock.Anything).Return("tok", nil)

	body := map[string]string{"username": "u1", "password": "password1"}
	resp := h.NewRequest(http.MethodPost, "/auth/token", body).Send()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = h.NewRequest(http.MethodPost, "/auth/token", body).Send()
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderRetryAfter))
}
