package utils

import (
	"github.com/geomark-service/internal/pkg/errors"
	"github.com/gofiber/fiber/v2"
)

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

// SendError maps an AppError to its HTTP status. Anything else becomes a
// generic 500 so storage faults never leak raw to the client.
func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := err.(*errors.AppError); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	return c.Status(500).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}
