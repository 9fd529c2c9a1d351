package apierrors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/pkg/log"
)

// ErrorBody is the JSON envelope of every error response.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail holds a string or a list of strings plus the status code.
type ErrorDetail struct {
	Message interface{} `json:"message"`
	Status  int         `json:"status"`
}

// Handler is the fiber ErrorHandler for the whole application.
func Handler(c *fiber.Ctx, err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return c.Status(apiErr.Status).JSON(ErrorBody{
			Error: ErrorDetail{Message: apiErr.Message(), Status: apiErr.Status},
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(ErrorBody{
			Error: ErrorDetail{Message: fiberErr.Message, Status: fiberErr.Code},
		})
	}

	log.ErrorWithContext(c.UserContext(), "[ErrorHandler] %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(http.StatusInternalServerError).JSON(ErrorBody{
		Error: ErrorDetail{Message: err.Error(), Status: http.StatusInternalServerError},
	})
}
