package generation

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by the generators.
var (
	ErrInvalidParameter = errors.New("generation: invalid parameter")
	ErrUnknownMethod    = errors.New("generation: unknown method")
)

func validateFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be finite: %v", ErrInvalidParameter, name, v)
	}
	return nil
}

func validateWidth(name string, v float64) error {
	if err := validateFinite(name, v); err != nil {
		return err
	}
	if v <= 0 {
		return fmt.Errorf("%w: %s must be > 0: %f", ErrInvalidParameter, name, v)
	}
	return nil
}

// validateComponents checks the parallel LED component sequences. An empty
// intensities slice means unit intensity for every component.
func validateComponents(peaks, fwhms, intensities []float64) error {
	if len(peaks) == 0 {
		return fmt.Errorf("%w: at least one LED component is required", ErrInvalidParameter)
	}
	if len(fwhms) != len(peaks) {
		return fmt.Errorf("%w: %d peaks but %d fwhms", ErrInvalidParameter, len(peaks), len(fwhms))
	}
	if len(intensities) != 0 && len(intensities) != len(peaks) {
		return fmt.Errorf("%w: %d peaks but %d intensities", ErrInvalidParameter, len(peaks), len(intensities))
	}

	for i := range peaks {
		if err := validateFinite(fmt.Sprintf("peak[%d]", i), peaks[i]); err != nil {
			return err
		}
		if err := validateWidth(fmt.Sprintf("fwhm[%d]", i), fwhms[i]); err != nil {
			return err
		}
	}

	if len(intensities) == 0 {
		return nil
	}
	positive := false
	for i, v := range intensities {
		name := fmt.Sprintf("intensity[%d]", i)
		if err := validateFinite(name, v); err != nil {
			return err
		}
		if v < 0 {
			return fmt.Errorf("%w: %s must be >= 0: %f", ErrInvalidParameter, name, v)
		}
		if v > 0 {
			positive = true
		}
	}
	if !positive {
		return fmt.Errorf("%w: at least one intensity must be > 0", ErrInvalidParameter)
	}
	return nil
}
