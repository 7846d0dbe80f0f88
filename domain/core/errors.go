package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound        = errors.New("resource not found")
	ErrSessionNotFound = fmt.Errorf("%w: session", ErrNotFound)

	// Structural violations - caller bugs, fail fast
	ErrRowOutOfBounds    = errors.New("row index out of bounds")
	ErrColumnOutOfBounds = errors.New("column index out of bounds")
	ErrTooFewColumns     = errors.New("at least two columns required for comparison")

	// Input validation errors. Invalid sample sizes have no sentinel: setting
	// one clears the stored size instead of erroring.
	ErrInvalidPercent    = errors.New("cell value must be an integer percentage in [0,100]")
	ErrInvalidConfidence = errors.New("unsupported confidence level")
)

// Error constructors with context
func NewRowBoundsError(row, rows int) error {
	return fmt.Errorf("%w: row %d of %d", ErrRowOutOfBounds, row, rows)
}

func NewColumnBoundsError(col, cols int) error {
	return fmt.Errorf("%w: column %d of %d", ErrColumnOutOfBounds, col, cols)
}

// Error checking helpers

// IsStructuralViolation reports whether err indicates a broken call-site
// contract (out-of-bounds indexes, too few columns) rather than missing data.
func IsStructuralViolation(err error) bool {
	return errors.Is(err, ErrRowOutOfBounds) ||
		errors.Is(err, ErrColumnOutOfBounds) ||
		errors.Is(err, ErrTooFewColumns)
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidPercent) ||
		errors.Is(err, ErrInvalidConfidence)
}
