package naics

import "errors"

// Common registry errors.
var (
	// ErrNotFound is returned when a code has no entry in the table.
	ErrNotFound = errors.New("classification code not found")

	// ErrInvalidCode is returned when a code is empty or contains
	// non-digit characters.
	ErrInvalidCode = errors.New("classification code must be a non-empty digit string")
)
