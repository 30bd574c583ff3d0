// Package generation synthesises parametric spectral power distributions:
// flat fills, Gaussian bands and LED emission models.
//
// Every generator is a pure function of its parameters and a wavelength
// domain. The domain defaults to [spectrum.DefaultShape] (360..780 nm at
// 1 nm) and is selected with [WithShape] or [WithDomain]:
//
//	c, err := generation.GaussianFWHM(555, 25)
//	c, err := generation.SingleLEDOhno2005(555, 25, generation.WithShape(spectrum.Shape{
//		Start: 380, End: 780, Interval: 5,
//	}))
//
// # Shapes
//
//   - [Constant], [Zeros], [Ones]: flat curves.
//   - [GaussianNormal]: exp(-0.5((λ-μ)/σ)²).
//   - [GaussianFWHM]: exp(-((λ-λp)/w)²). The width is a conventional "FWHM"
//     scale and not the statistical half-maximum width.
//   - [SingleLEDOhno2005]: (g + 2g⁵)/3 with g the FWHM Gaussian, after
//     Ohno, Y. (2005), Spectral design considerations for white LED color
//     rendering, Optical Engineering 44(11).
//   - [MultiLEDSumOhno2005]: intensity-weighted sum of single-LED curves.
//   - [MultiLEDOhno2005]: the same sum, normalised so that its maximum over
//     the domain is 1.
//
// Invalid parameters fail with [ErrInvalidParameter] before any curve is
// built. An empty domain yields an empty curve.
package generation
