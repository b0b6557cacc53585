package handler

import (
	"errors"
	"strconv"

	"go-fuelstation/internal/repository"
	"go-fuelstation/internal/service"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps service and repository errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrPumpNotFound),
		errors.Is(err, service.ErrFuelTypeNotFound),
		errors.Is(err, service.ErrTransactionNotFound),
		errors.Is(err, repository.ErrNotFound):
		return fiber.StatusNotFound

	case errors.Is(err, service.ErrQuantityRequired),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrValidation):
		return fiber.StatusBadRequest

	case errors.Is(err, service.ErrInvalidFuelPrice):
		return fiber.StatusUnprocessableEntity

	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, repository.ErrReferenced),
		errors.Is(err, repository.ErrDuplicate):
		return fiber.StatusConflict

	case errors.Is(err, service.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	}
	return fiber.StatusInternalServerError
}

// respondError writes known errors directly and hands the rest to the app
// error handler, which logs them.
func respondError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		return err
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
