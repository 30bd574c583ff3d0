// Package spectral computes descriptive statistics of sampled spectral
// curves: extrema, centroid, spread and the measured full width at half
// maximum. Wavelength-weighted quantities use each sample's own wavelength,
// so unevenly spaced domains are supported.
package spectral

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-spd/colorimetry/spectrum"
)

// Stats holds statistics computed from a curve.
type Stats struct {
	Count  int
	Sum    float64 // sum of samples
	Mean   float64
	Energy float64 // sum of squared samples

	Max            float64
	PeakWavelength float64 // nm
	Min            float64
	MinWavelength  float64 // nm

	// Shape descriptors, in nm.
	Centroid float64
	Spread   float64
	FWHM     float64
}

// Calculate computes all statistics of c. An empty curve yields zero Stats.
func Calculate(c *spectrum.Curve) Stats {
	n := c.Len()
	if n == 0 {
		return Stats{}
	}

	wl := c.Domain().Wavelengths()
	v := c.Values()

	peak, trough := floats.MaxIdx(v), floats.MinIdx(v)
	s := Stats{
		Count:          n,
		Sum:            floats.Sum(v),
		Energy:         floats.Dot(v, v),
		Max:            v[peak],
		PeakWavelength: wl[peak],
		Min:            v[trough],
		MinWavelength:  wl[trough],
	}
	s.Mean = s.Sum / float64(n)

	s.Centroid, s.Spread = moments(wl, v, s.Sum)
	s.FWHM = fwhm(wl, v)
	return s
}

// Centroid returns the value-weighted mean wavelength of c in nm.
//
//	centroid = sum(λ_i * v_i) / sum(v_i)
func Centroid(c *spectrum.Curve) float64 {
	v := c.Values()
	cent, _ := moments(c.Domain().Wavelengths(), v, floats.Sum(v))
	return cent
}

// FWHM returns the measured full width at half maximum of c's highest peak
// in nm. Half-maximum crossings are linearly interpolated between samples.
// It returns 0 when the curve does not fall to half its maximum on both
// sides of the peak within the domain.
func FWHM(c *spectrum.Curve) float64 {
	return fwhm(c.Domain().Wavelengths(), c.Values())
}

// moments returns the value-weighted mean wavelength and the weighted
// standard deviation of wavelength around it.
func moments(wl, v []float64, sum float64) (mean, std float64) {
	if len(v) == 0 || sum == 0 {
		return 0, 0
	}
	if len(v) < 2 {
		return stat.Mean(wl, v), 0
	}
	mean, variance := stat.PopMeanVariance(wl, v)
	return mean, math.Sqrt(math.Max(variance, 0))
}

func fwhm(wl, v []float64) float64 {
	n := len(v)
	if n < 3 {
		return 0
	}

	peak := floats.MaxIdx(v)
	if v[peak] <= 0 {
		return 0
	}
	half := v[peak] / 2

	lower := math.NaN()
	for i := peak; i >= 1; i-- {
		if v[i-1] <= half && v[i] > half {
			lower = crossing(wl[i-1], wl[i], v[i-1], v[i], half)
			break
		}
	}
	upper := math.NaN()
	for i := peak; i < n-1; i++ {
		if v[i+1] <= half && v[i] > half {
			upper = crossing(wl[i], wl[i+1], v[i], v[i+1], half)
			break
		}
	}
	if math.IsNaN(lower) || math.IsNaN(upper) {
		return 0
	}
	return upper - lower
}

// crossing linearly interpolates the wavelength between wlA and wlB where
// the curve crosses threshold.
func crossing(wlA, wlB, vA, vB, threshold float64) float64 {
	denom := vB - vA
	if denom == 0 {
		return (wlA + wlB) / 2
	}
	t := (threshold - vA) / denom
	return wlA + t*(wlB-wlA)
}
