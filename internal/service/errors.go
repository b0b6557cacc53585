package service

import (
	"errors"
	"fmt"

	"go-fuelstation/pkg/validator"
)

// Errors returned by the services. The HTTP layer maps them to status codes.
var (
	// not found
	ErrPumpNotFound        = errors.New("pump not found")
	ErrFuelTypeNotFound    = errors.New("fuel type not found")
	ErrTransactionNotFound = errors.New("transaction not found")

	// invalid argument
	ErrQuantityRequired = errors.New("either litres or value must be provided")
	ErrInvalidQuantity  = errors.New("quantity must be greater than zero")
	ErrValidation       = errors.New("validation failed")

	// invalid state
	ErrInvalidFuelPrice = errors.New("fuel price invalid for computation")

	// conflict
	ErrUsernameTaken = errors.New("username already in use")

	// unauthorized
	ErrInvalidCredentials = errors.New("invalid username or password")
)

func validateStruct(v interface{}) error {
	if errs := validator.ValidateStruct(v); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, first.FailedField, first.Tag)
	}
	return nil
}
