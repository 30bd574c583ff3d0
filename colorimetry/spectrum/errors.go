package spectrum

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by domain and curve construction and arithmetic.
var (
	ErrInvalidShape   = errors.New("spectrum: invalid shape")
	ErrNotAscending   = errors.New("spectrum: wavelengths must be strictly ascending")
	ErrNonFinite      = errors.New("spectrum: non-finite value")
	ErrLengthMismatch = errors.New("spectrum: values and domain must have same length")
	ErrDomainMismatch = errors.New("spectrum: curves must share the same domain")
	ErrOutOfRange     = errors.New("spectrum: wavelength outside domain")
	ErrZeroPeak       = errors.New("spectrum: curve maximum is not positive")
)

func validateShape(s Shape) error {
	if !isFinite(s.Start) || !isFinite(s.End) || !isFinite(s.Interval) {
		return fmt.Errorf("%w: non-finite bound in %v", ErrInvalidShape, s)
	}
	if s.Interval <= 0 {
		return fmt.Errorf("%w: interval must be > 0: %f", ErrInvalidShape, s.Interval)
	}
	if s.End < s.Start {
		return fmt.Errorf("%w: end %f before start %f", ErrInvalidShape, s.End, s.Start)
	}
	return nil
}

func validateFinite(values []float64) error {
	for i, v := range values {
		if !isFinite(v) {
			return fmt.Errorf("%w: index %d: %v", ErrNonFinite, i, v)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
