// Package domain defines the ordered properties map and its parse errors.
package domain

import (
	"github.com/allisson/secure/internal/errors"
)

// ErrPropertiesParse indicates the text is not valid properties syntax: a
// malformed \uXXXX escape or a continuation on the last line.
var ErrPropertiesParse = errors.Wrap(errors.ErrInvalidInput, "invalid properties syntax")
