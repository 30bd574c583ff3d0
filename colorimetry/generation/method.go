package generation

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-spd/colorimetry/spectrum"
)

// GaussianMethod selects a Gaussian parameterisation.
type GaussianMethod int

const (
	GaussianMethodNormal GaussianMethod = iota
	GaussianMethodFWHM
)

// LEDMethod selects an LED emission model.
type LEDMethod int

const (
	LEDMethodOhno2005 LEDMethod = iota
)

var (
	gaussianMethodNames = map[GaussianMethod]string{
		GaussianMethodNormal: "normal",
		GaussianMethodFWHM:   "fwhm",
	}
	ledMethodNames = map[LEDMethod]string{
		LEDMethodOhno2005: "ohno 2005",
	}
)

// String implements fmt.Stringer.
func (m GaussianMethod) String() string {
	if name, ok := gaussianMethodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("GaussianMethod(%d)", int(m))
}

// String implements fmt.Stringer.
func (m LEDMethod) String() string {
	if name, ok := ledMethodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("LEDMethod(%d)", int(m))
}

// ParseGaussianMethod resolves a case-insensitive method name
// ("normal" or "fwhm").
func ParseGaussianMethod(name string) (GaussianMethod, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for m, n := range gaussianMethodNames {
		if n == key {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: gaussian %q", ErrUnknownMethod, name)
}

// ParseLEDMethod resolves a case-insensitive method name ("ohno 2005").
func ParseLEDMethod(name string) (LEDMethod, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for m, n := range ledMethodNames {
		if n == key {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: led %q", ErrUnknownMethod, name)
}

// Gaussian dispatches to [GaussianNormal] (center = mean, width = sigma)
// or [GaussianFWHM] (center = peak, width = fwhm).
func Gaussian(center, width float64, method GaussianMethod, opts ...Option) (*spectrum.Curve, error) {
	switch method {
	case GaussianMethodNormal:
		return GaussianNormal(center, width, opts...)
	case GaussianMethodFWHM:
		return GaussianFWHM(center, width, opts...)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMethod, method)
	}
}

// SingleLED dispatches to the selected single-LED model.
func SingleLED(peak, fwhm float64, method LEDMethod, opts ...Option) (*spectrum.Curve, error) {
	switch method {
	case LEDMethodOhno2005:
		return SingleLEDOhno2005(peak, fwhm, opts...)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMethod, method)
	}
}

// MultiLEDs dispatches to the selected multi-LED model.
func MultiLEDs(peaks, fwhms, intensities []float64, method LEDMethod, opts ...Option) (*spectrum.Curve, error) {
	switch method {
	case LEDMethodOhno2005:
		return MultiLEDOhno2005(peaks, fwhms, intensities, opts...)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMethod, method)
	}
}
