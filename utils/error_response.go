package utils

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is a struct for error response
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Field   string `json:"field,omitempty"`
}

// Fail writes an ErrorResponse with the given status.
func Fail(c *fiber.Ctx, status int, message string, err error) error {
	res := ErrorResponse{Message: message}
	if err != nil {
		res.Error = err.Error()
	}
	return c.Status(status).JSON(res)
}
