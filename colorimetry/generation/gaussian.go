package generation

import (
	"math"

	"github.com/cwbudde/algo-spd/colorimetry/spectrum"
)

// GaussianNormal returns exp(-0.5((λ-mean)/sigma)²). The curve peaks at 1
// for λ = mean and falls to 1/√e at one sigma.
func GaussianNormal(mean, sigma float64, opts ...Option) (*spectrum.Curve, error) {
	if err := validateFinite("gaussian mean", mean); err != nil {
		return nil, err
	}
	if err := validateWidth("gaussian sigma", sigma); err != nil {
		return nil, err
	}
	return evaluate(opts, func(wl float64) float64 {
		return gaussianNormal(wl, mean, sigma)
	})
}

// GaussianFWHM returns exp(-((λ-peak)/fwhm)²). The curve peaks at 1 for
// λ = peak and falls to 1/e at one fwhm.
//
// fwhm is a width scale in the units callers conventionally pass; the
// statistical half-maximum width of this curve is 2√(ln 2)·fwhm.
func GaussianFWHM(peak, fwhm float64, opts ...Option) (*spectrum.Curve, error) {
	if err := validateFinite("gaussian peak", peak); err != nil {
		return nil, err
	}
	if err := validateWidth("gaussian fwhm", fwhm); err != nil {
		return nil, err
	}
	return evaluate(opts, func(wl float64) float64 {
		return gaussianFWHM(wl, peak, fwhm)
	})
}

func gaussianNormal(wl, mean, sigma float64) float64 {
	x := (wl - mean) / sigma
	return math.Exp(-0.5 * x * x)
}

func gaussianFWHM(wl, peak, fwhm float64) float64 {
	x := (wl - peak) / fwhm
	return math.Exp(-x * x)
}
