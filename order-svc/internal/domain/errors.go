package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMissingCrust    = errors.New("missing crust")
	ErrMissingToppings = errors.New("missing toppings")
	ErrUnknownOption   = errors.New("unknown option")
)

// ValidationError is a user-input error shown on the form. It is never logged.
type ValidationError struct {
	Code    string
	Message string
	err     error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

func MissingCrust() *ValidationError {
	return &ValidationError{
		Code:    "missing_crust",
		Message: "Please select a crust type.",
		err:     ErrMissingCrust,
	}
}

func MissingToppings() *ValidationError {
	return &ValidationError{
		Code:    "missing_toppings",
		Message: "Please select at least one topping.",
		err:     ErrMissingToppings,
	}
}

func unknownOption(field, value string) error {
	return fmt.Errorf("%s %q: %w", field, value, ErrUnknownOption)
}
