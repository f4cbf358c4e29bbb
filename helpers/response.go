package helpers

import (
	"errors"

	"banksampah/services"

	"github.com/gofiber/fiber/v2"
)

func JSONSuccess(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func JSONError(c *fiber.Ctx, message string) error {
	return JSONErrorStatus(c, fiber.StatusBadRequest, message)
}

func JSONErrorStatus(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
		"data":    nil,
	})
}

// JSONServiceError maps the service error taxonomy onto response codes. Only
// CONTENTION_RETRY is retryable; everything else needs a corrected request.
func JSONServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		return JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS")
	case errors.Is(err, services.ErrInvalidFormat):
		return JSONError(c, "INVALID_PIN_FORMAT")
	case errors.Is(err, services.ErrInsufficientAuthority):
		return JSONErrorStatus(c, fiber.StatusForbidden, "INSUFFICIENT_AUTHORITY")
	case errors.Is(err, services.ErrUnitMismatch):
		return JSONErrorStatus(c, fiber.StatusForbidden, "UNIT_MISMATCH")
	case errors.Is(err, services.ErrValidation):
		return JSONError(c, "VALIDATION_ERROR")
	case errors.Is(err, services.ErrItemNotFound):
		return JSONErrorStatus(c, fiber.StatusNotFound, "ITEM_NOT_FOUND")
	case errors.Is(err, services.ErrInsufficientFunds):
		return JSONErrorStatus(c, fiber.StatusConflict, "INSUFFICIENT_FUNDS")
	case errors.Is(err, services.ErrContention):
		return JSONErrorStatus(c, fiber.StatusConflict, "CONTENTION_RETRY")
	case errors.Is(err, services.ErrNotFound):
		return JSONErrorStatus(c, fiber.StatusNotFound, "NOT_FOUND")
	case errors.Is(err, services.ErrAlreadyBlocked):
		return JSONErrorStatus(c, fiber.StatusConflict, "ALREADY_BLOCKED")
	case errors.Is(err, services.ErrNotBlocked):
		return JSONErrorStatus(c, fiber.StatusConflict, "NOT_BLOCKED")
	default:
		return JSONErrorStatus(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}
}
