package generation

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spd/colorimetry/spectrum"
)

// SingleLEDOhno2005 returns the Ohno (2005) single-LED lineshape
//
//	S(λ) = (g(λ) + 2·g(λ)⁵) / 3,  g(λ) = exp(-((λ-peak)/fwhm)²)
//
// The curve peaks at 1 for λ = peak and is narrower-shouldered than
// [GaussianFWHM] with the same width: at one fwhm it is (e⁻¹ + 2e⁻⁵)/3.
func SingleLEDOhno2005(peak, fwhm float64, opts ...Option) (*spectrum.Curve, error) {
	if err := validateFinite("led peak", peak); err != nil {
		return nil, err
	}
	if err := validateWidth("led fwhm", fwhm); err != nil {
		return nil, err
	}
	return evaluate(opts, func(wl float64) float64 {
		return ohno2005(wl, peak, fwhm)
	})
}

func ohno2005(wl, peak, fwhm float64) float64 {
	g := gaussianFWHM(wl, peak, fwhm)
	return (g + 2*math.Pow(g, 5)) / 3
}

// MultiLEDSumOhno2005 returns the intensity-weighted sum of Ohno (2005)
// single-LED curves, one per component, before normalisation. peaks, fwhms
// and intensities are parallel; nil intensities weight every component by 1.
func MultiLEDSumOhno2005(peaks, fwhms, intensities []float64, opts ...Option) (*spectrum.Curve, error) {
	if err := validateComponents(peaks, fwhms, intensities); err != nil {
		return nil, err
	}
	d, err := resolveDomain(opts)
	if err != nil {
		return nil, err
	}

	sum, err := Zeros(WithDomain(d))
	if err != nil {
		return nil, err
	}
	for i := range peaks {
		led, err := SingleLEDOhno2005(peaks[i], fwhms[i], WithDomain(d))
		if err != nil {
			return nil, err
		}
		if len(intensities) != 0 {
			if led, err = led.Scale(intensities[i]); err != nil {
				return nil, err
			}
		}
		if sum, err = sum.Add(led); err != nil {
			return nil, err
		}
	}
	return sum, nil
}

// MultiLEDOhno2005 returns [MultiLEDSumOhno2005] divided by its maximum over
// the whole domain, so the composite peaks at exactly 1 and every
// component's intensity rescales every output sample.
//
// A sum that is zero everywhere on a non-empty domain, e.g. when all peaks
// lie far outside it, fails with [spectrum.ErrZeroPeak].
func MultiLEDOhno2005(peaks, fwhms, intensities []float64, opts ...Option) (*spectrum.Curve, error) {
	sum, err := MultiLEDSumOhno2005(peaks, fwhms, intensities, opts...)
	if err != nil {
		return nil, err
	}
	if sum.Len() == 0 {
		return sum, nil
	}
	out, err := sum.Normalize(1)
	if err != nil {
		return nil, fmt.Errorf("generation: multi-LED normalisation: %w", err)
	}
	return out, nil
}
