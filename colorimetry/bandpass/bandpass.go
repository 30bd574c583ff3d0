// Package bandpass models the finite spectral bandwidth of a measuring
// instrument: it blurs generated curves with a triangular slit function and
// applies the Stearns & Stearns (1988) bandpass correction.
//
// Convolution treats samples outside the domain as zero, so curves that are
// non-zero at the domain edges are attenuated there.
package bandpass

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-spd/colorimetry/spectrum"
	"github.com/cwbudde/algo-spd/internal/conv"
)

// AlphaStearns is the Stearns & Stearns (1988) correction coefficient.
const AlphaStearns = 0.083

// Errors returned by bandpass operations.
var (
	ErrInvalidBandwidth = errors.New("bandpass: bandwidth must be finite and > 0")
	ErrNonUniformDomain = errors.New("bandpass: domain must be evenly spaced")
)

// TriangularSlit returns a unit-sum triangular slit kernel with full width
// at half maximum bandwidth, sampled every interval nanometers. The kernel
// has odd length and is centred on its middle sample.
func TriangularSlit(bandwidth, interval float64) ([]float64, error) {
	if !(bandwidth > 0) || math.IsInf(bandwidth, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBandwidth, bandwidth)
	}
	if !(interval > 0) || math.IsInf(interval, 0) {
		return nil, fmt.Errorf("bandpass: interval must be finite and > 0: %v", interval)
	}

	half := max(int(math.Ceil(bandwidth/interval-1e-9))-1, 0)
	kernel := make([]float64, 2*half+1)
	sum := 0.0
	for i := range kernel {
		x := math.Abs(float64(i-half)) * interval
		kernel[i] = 1 - x/bandwidth
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel, nil
}

// Apply convolves c with a triangular slit of the given bandwidth. The
// curve's domain must be evenly spaced; the result shares that domain.
func Apply(c *spectrum.Curve, bandwidth float64) (*spectrum.Curve, error) {
	d := c.Domain()
	if c.Len() < 2 {
		if _, err := TriangularSlit(bandwidth, 1); err != nil {
			return nil, err
		}
		return spectrum.New(d, c.Values(), spectrum.WithInterpolator(c.Interpolator()))
	}

	interval, ok := d.Interval()
	if !ok {
		return nil, ErrNonUniformDomain
	}
	kernel, err := TriangularSlit(bandwidth, interval)
	if err != nil {
		return nil, err
	}

	out, err := conv.ConvolveMode(c.Values(), kernel, conv.ModeSame)
	if err != nil {
		return nil, fmt.Errorf("bandpass: %w", err)
	}
	return spectrum.New(d, out, spectrum.WithInterpolator(c.Interpolator()))
}

// Stearns1988 applies the Stearns & Stearns (1988) bandpass correction:
//
//	v'[i] = -α·v[i-1] + (1+2α)·v[i] - α·v[i+1]
//	v'[0] = (1+α)·v[0] - α·v[1],  and symmetrically at the end
//
// with α = AlphaStearns. All terms use the uncorrected values.
func Stearns1988(c *spectrum.Curve) (*spectrum.Curve, error) {
	v := c.Values()
	n := len(v)
	if n < 2 {
		return spectrum.New(c.Domain(), v, spectrum.WithInterpolator(c.Interpolator()))
	}

	const a = AlphaStearns
	out := make([]float64, n)
	out[0] = (1+a)*v[0] - a*v[1]
	out[n-1] = (1+a)*v[n-1] - a*v[n-2]
	for i := 1; i < n-1; i++ {
		out[i] = -a*v[i-1] + (1+2*a)*v[i] - a*v[i+1]
	}
	return spectrum.New(c.Domain(), out, spectrum.WithInterpolator(c.Interpolator()))
}
