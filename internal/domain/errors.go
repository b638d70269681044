package domain

import "errors"

var (
	// ErrNotFound is wrapped by every lookup that misses.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks a record rejected before it reached the store.
	ErrValidation = errors.New("invalid record")

	// ErrInvalidMap marks a level map that breaks a map invariant.
	ErrInvalidMap = errors.New("invalid level map")
)
