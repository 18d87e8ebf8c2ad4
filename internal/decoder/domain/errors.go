// Package domain defines the errors raised while turning decrypted payloads
// into text and while reading payload files.
package domain

import (
	"github.com/allisson/secure/internal/errors"
)

var (
	// ErrEncoding indicates the decrypted bytes are not valid UTF-8 text.
	ErrEncoding = errors.Wrap(errors.ErrInvalidInput, "decrypted payload is not valid UTF-8")

	// ErrFileIO indicates a key or payload file could not be read. The
	// underlying *fs.PathError stays in the chain.
	ErrFileIO = errors.Wrap(errors.ErrUnavailable, "file read failed")
)
