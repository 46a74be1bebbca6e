package service

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks a request the caller can fix: missing fields, bad
	// hex codes, duplicate discriminators, price mismatches.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized marks rejected admin credentials or tokens.
	ErrUnauthorized = errors.New("unauthorized")
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
