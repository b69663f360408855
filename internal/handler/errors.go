package handler

import (
	"errors"
	"log"

	"tvh-attendance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

// respondError maps the usecase error taxonomy onto HTTP statuses. Anything
// unrecognized is logged and answered with a generic 500; no internal detail
// leaks to the caller.
func respondError(c *fiber.Ctx, err error) error {
	var admission *usecase.AdmissionError

	switch {
	case errors.Is(err, usecase.ErrMissingFields),
		errors.Is(err, usecase.ErrLocationRequired),
		errors.Is(err, usecase.ErrInvalidLeaveStatus),
		errors.Is(err, usecase.ErrPasswordNotSet):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
	case errors.As(err, &admission):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, usecase.ErrStaffNotFound),
		errors.Is(err, usecase.ErrLeaveNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, usecase.ErrLeaveDecided):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
	default:
		log.Printf("Unexpected error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}
}
