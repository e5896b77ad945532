package utils

import (
	"errors"

	"highscore-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// StandardResponse represents the standard API response format
type StandardResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// SuccessResponse sends a success response
func SuccessResponse(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(StandardResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse sends an error response
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	status := "error"
	if code >= 500 {
		status = "fail"
	}
	return c.Status(code).JSON(StandardResponse{
		Status:  status,
		Code:    code,
		Message: message,
	})
}

// StatusFor maps a service error onto an HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrConstraintViolation):
		return fiber.StatusConflict
	case errors.Is(err, models.ErrTypeCoercion):
		return fiber.StatusBadRequest
	case errors.Is(err, models.ErrStoreUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// ServiceErrorResponse sends err with the status StatusFor picks. Messages
// of unexpected errors are replaced by fallback.
func ServiceErrorResponse(c *fiber.Ctx, err error, fallback string) error {
	code := StatusFor(err)
	if code == fiber.StatusInternalServerError {
		return ErrorResponse(c, code, fallback)
	}
	return ErrorResponse(c, code, err.Error())
}
