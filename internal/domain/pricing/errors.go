package pricing

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned when a compute function rejects its inputs.
// Validation happens entirely at the compute boundary; once inputs are
// accepted the arithmetic cannot fail.
var ErrInvalidInput = errors.New("invalid pricing input")

func invalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// validFinite checks that a value is a finite, non-negative number.
func validFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalidInputf("%s must be a finite number", name)
	}
	if v < 0 {
		return invalidInputf("%s must not be negative", name)
	}
	return nil
}
