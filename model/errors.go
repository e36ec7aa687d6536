package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimensions is returned when an engine is constructed with a zero or negative dimension
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	// ErrOutOfBounds is returned when a seeding coordinate falls outside the grid
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)
