package apierrors

import (
	"errors"
	"net/http"
	"strings"
)

// Sentinel kinds, matched with errors.Is against any *APIError.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
)

// APIError is an error with an HTTP status and one or more user-facing messages.
type APIError struct {
	Status   int
	Messages []string
	kind     error
}

func (e *APIError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// Is lets errors.Is(err, ErrNotFound) and friends match by kind.
func (e *APIError) Is(target error) bool {
	return e.kind != nil && e.kind == target
}

// Message returns a single string for one message and a list otherwise.
func (e *APIError) Message() interface{} {
	if len(e.Messages) == 1 {
		return e.Messages[0]
	}
	return e.Messages
}

func newAPIError(status int, kind error, fallback string, messages []string) *APIError {
	if len(messages) == 0 {
		messages = []string{fallback}
	}
	return &APIError{Status: status, Messages: messages, kind: kind}
}

// NewBadRequestError is raised for validation failures, including the ones
// detected by the SQL builders (empty update, inverted range).
func NewBadRequestError(messages ...string) *APIError {
	return newAPIError(http.StatusBadRequest, ErrBadRequest, "Bad Request", messages)
}

// NewUnauthorizedError is raised when a request needs a logged-in user.
func NewUnauthorizedError(messages ...string) *APIError {
	return newAPIError(http.StatusUnauthorized, ErrUnauthorized, "Unauthorized", messages)
}

// NewForbiddenError is raised when the logged-in user lacks the required role.
func NewForbiddenError(messages ...string) *APIError {
	return newAPIError(http.StatusForbidden, ErrForbidden, "Forbidden", messages)
}

// NewNotFoundError is raised when a keyed row does not exist.
func NewNotFoundError(messages ...string) *APIError {
	return newAPIError(http.StatusNotFound, ErrNotFound, "Not Found", messages)
}

// StatusOf returns the HTTP status carried by err, or 500.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return http.StatusInternalServerError
}
