package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/types"
	"github.com/stretchr/testify/require"
)

// HTTPHelper provides a robust way to make HTTP requests in tests.
type HTTPHelper struct {
	t   *testing.T
	app *fiber.App
}

// NewHTTPHelper creates a new test helper for a given Fiber app.
func NewHTTPHelper(t *testing.T, app *fiber.App) *HTTPHelper {
	require.NotNil(t, app, "Fiber app provided to HTTPHelper cannot be nil")
	return &HTTPHelper{t: t, app: app}
}

// Request represents a test request under construction.
type Request struct {
	helper  *HTTPHelper
	method  string
	path    string
	body    string
	headers http.Header
}

// NewRequest begins building a request. Non-string bodies are sent as JSON.
func (h *HTTPHelper) NewRequest(method, path string, body interface{}) *Request {
	r := &Request{helper: h, method: method, path: path, headers: http.Header{}}

	switch b := body.(type) {
	case nil:
	case string:
		r.body = b
	default:
		raw, err := json.Marshal(body)
		require.NoError(h.t, err, "Failed to marshal request body to JSON")
		r.body = string(raw)
	}
	if r.body != "" {
		r.headers.Set(types.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	return r
}

// WithHeader sets a header.
func (r *Request) WithHeader(key, value string) *Request {
	r.headers.Set(key, value)
	return r
}

// WithToken adds an Authorization: Bearer header.
func (r *Request) WithToken(token string) *Request {
	return r.WithHeader(types.HeaderAuthorization, types.BearerPrefix+token)
}

// Send executes the request and returns the response.
func (r *Request) Send() *http.Response {
	var body io.Reader
	if r.body != "" {
		body = strings.NewReader(r.body)
	}
	req := httptest.NewRequest(r.method, r.path, body)
	req.Header = r.headers

	resp, err := r.helper.app.Test(req, int(10*time.Second.Milliseconds()))
	require.NoError(r.helper.t, err, "app.Test should not return an error")
	require.NotNil(r.helper.t, resp, "app.Test response should not be nil")
	return resp
}

// DecodeJSON reads the response body into a generic map.
func DecodeJSON(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ErrorMessage extracts error.message from an error response.
func ErrorMessage(t *testing.T, resp *http.Response) interface{} {
	t.Helper()

	body := DecodeJSON(t, resp)
	errBody, ok := body["error"].(map[string]interface{})
	require.True(t, ok, "response has no error object: %v", body)
	return errBody["message"]
}
