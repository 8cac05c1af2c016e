package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nmtri/soquy/internal/model"
)

// Validation errors.
var (
	ErrNilContext       = errors.New("context cannot be nil")
	ErrEmptyString      = errors.New("string parameter cannot be empty")
	ErrNilParameter     = errors.New("parameter cannot be nil")
	ErrInvalidDateRange = errors.New("start date must be before end date")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateRange ensures start does not come after end.
func validateRange(start, end model.Date) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: date", ErrNilParameter)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: %s after %s", ErrInvalidDateRange, start, end)
	}
	return nil
}
