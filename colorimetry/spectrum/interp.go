package spectrum

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// Interpolator selects how [Curve.At] evaluates wavelengths between grid points.
type Interpolator int

const (
	// Linear interpolates between the two enclosing samples.
	Linear Interpolator = iota
	// Cubic uses a monotone piecewise cubic (Fritsch-Butland) fitted over the
	// whole domain. It honours uneven spacing and never overshoots the two
	// enclosing samples. Curves with fewer than three samples fall back to
	// linear interpolation.
	Cubic
)

// minCubicSamples is the smallest curve that gets a cubic fit.
const minCubicSamples = 3

// String implements fmt.Stringer.
func (m Interpolator) String() string {
	switch m {
	case Linear:
		return "linear"
	case Cubic:
		return "cubic"
	default:
		return "unknown"
	}
}

// fit prepares the predictor used for off-grid lookups. It returns nil when
// linear interpolation applies.
func (m Interpolator) fit(wl, values []float64) (interp.Predictor, error) {
	if m != Cubic || len(values) < minCubicSamples {
		return nil, nil
	}
	var fb interp.FritschButland
	if err := fb.Fit(wl, values); err != nil {
		return nil, fmt.Errorf("spectrum: cubic fit: %w", err)
	}
	return &fb, nil
}

// lerp evaluates values between index i and i+1 at fraction frac in [0,1].
func lerp(values []float64, i int, frac float64) float64 {
	return values[i] + frac*(values[i+1]-values[i])
}
