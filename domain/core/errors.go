package core

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors - centralized error definitions
var (
	// Input errors
	ErrNoValidRows   = errors.New("no valid rows after cleaning")
	ErrMissingColumn = errors.New("required column missing")

	// Histogram errors
	ErrBadEdges = errors.New("bin edges must be at least two and strictly ascending")

	// Curve errors
	ErrTooFewPoints   = errors.New("need at least two control points")
	ErrBadSampleCount = errors.New("points per segment must be at least 4")
)

// Error constructors with context
func NewMissingColumnError(missing []string, found []string) error {
	return fmt.Errorf("%w: %s (columns found: %v)", ErrMissingColumn, strings.Join(missing, ", "), found)
}

func NewValidationError(field string, reason string) error {
	return fmt.Errorf("validation failed for %s: %s", field, reason)
}

// Error checking helpers
func IsInputError(err error) bool {
	return errors.Is(err, ErrNoValidRows) ||
		errors.Is(err, ErrMissingColumn)
}
