// Package spectrum provides the wavelength domain and the sampled spectral
// curve container consumed by the generators in package generation and the
// instrument models in package bandpass.
//
// A [Domain] is an ordered set of wavelengths in nanometers. It is usually
// built from a [Shape] (start, end, interval), but arbitrary strictly
// ascending grids are accepted:
//
//	d, err := spectrum.DefaultShape().Domain() // 360..780 nm, 1 nm
//	d, err := spectrum.NewDomain([]float64{400, 450, 520, 700})
//
// A [Curve] maps every wavelength of its domain to exactly one finite value
// and is never mutated after construction. Arithmetic returns new curves:
//
//	c, err := spectrum.FromFunc(d, func(wl float64) float64 { return wl / 780 })
//	n, err := c.Normalize(1)
//
// Point lookup with [Curve.At] is exact on grid wavelengths and interpolates
// between them; queries outside the domain fail with [ErrOutOfRange].
package spectrum
