// Package errors provides the base error kinds shared by every domain package.
// Domain sentinels wrap one of these kinds so callers can branch on either the
// precise failure or its broad category.
package errors

import (
	"errors"
	"fmt"
)

// Base error kinds.
var (
	// ErrNotFound indicates a required value (such as a key) is absent.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates the input data is malformed or fails verification.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnavailable indicates an underlying resource (file, keeper) could not be read.
	ErrUnavailable = errors.New("unavailable")
)

// Wrap wraps an error with additional context while preserving the error chain.
// Use this to add context at each layer without losing the original error type.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
