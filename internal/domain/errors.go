package domain

import "errors"

var (
	// ErrValidation signals a malformed argument or remote result shape.
	ErrValidation = errors.New("validation failed")
	// ErrInvariant signals a failed post-condition (collection not actually
	// created or dropped after the remote call succeeded).
	ErrInvariant = errors.New("invariant violated")
)
