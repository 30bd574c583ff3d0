package generation

import "github.com/cwbudde/algo-spd/colorimetry/spectrum"

// Constant returns a curve equal to value at every wavelength.
func Constant(value float64, opts ...Option) (*spectrum.Curve, error) {
	if err := validateFinite("constant value", value); err != nil {
		return nil, err
	}
	return evaluate(opts, func(float64) float64 { return value })
}

// Zeros returns a curve equal to 0 at every wavelength.
func Zeros(opts ...Option) (*spectrum.Curve, error) {
	return Constant(0, opts...)
}

// Ones returns a curve equal to 1 at every wavelength.
func Ones(opts ...Option) (*spectrum.Curve, error) {
	return Constant(1, opts...)
}
