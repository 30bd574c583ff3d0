package spectrum

import (
	"fmt"
	"sort"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/interp"
)

// Option configures a Curve.
type Option func(*config)

type config struct {
	interp Interpolator
}

func defaultConfig() config {
	return config{interp: Linear}
}

// WithInterpolator selects the interpolation used for off-grid lookups.
// Unknown interpolators are ignored.
func WithInterpolator(m Interpolator) Option {
	return func(c *config) {
		if m == Linear || m == Cubic {
			c.interp = m
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Curve is a sampled spectral distribution: one finite value per domain
// wavelength. Curves are immutable once constructed.
type Curve struct {
	domain Domain
	values []float64
	cfg    config
	spline interp.Predictor // nil for linear lookups
}

func newCurve(d Domain, values []float64, cfg config) (*Curve, error) {
	spline, err := cfg.interp.fit(d.wavelengths, values)
	if err != nil {
		return nil, err
	}
	return &Curve{domain: d, values: values, cfg: cfg, spline: spline}, nil
}

// New creates a curve from a domain and a table of values.
func New(d Domain, values []float64, opts ...Option) (*Curve, error) {
	if len(values) != d.Len() {
		return nil, fmt.Errorf("%w: %d values for %d wavelengths", ErrLengthMismatch, len(values), d.Len())
	}
	if err := validateFinite(values); err != nil {
		return nil, err
	}
	return newCurve(d, append([]float64(nil), values...), applyOptions(opts))
}

// FromFunc creates a curve by evaluating fn at every domain wavelength.
func FromFunc(d Domain, fn func(wl float64) float64, opts ...Option) (*Curve, error) {
	values := make([]float64, d.Len())
	for i, wl := range d.wavelengths {
		values[i] = fn(wl)
	}
	if err := validateFinite(values); err != nil {
		return nil, err
	}
	return newCurve(d, values, applyOptions(opts))
}

// Domain returns the curve's domain.
func (c *Curve) Domain() Domain {
	return c.domain
}

// Len returns the number of samples.
func (c *Curve) Len() int {
	return len(c.values)
}

// Values returns a copy of the samples in wavelength order.
func (c *Curve) Values() []float64 {
	return append([]float64(nil), c.values...)
}

// Value returns the i-th sample.
func (c *Curve) Value(i int) float64 {
	return c.values[i]
}

// Interpolator returns the interpolation used by At.
func (c *Curve) Interpolator() Interpolator {
	return c.cfg.interp
}

// At returns the value at wavelength wl. Grid wavelengths are returned
// exactly; wavelengths between grid points are interpolated.
func (c *Curve) At(wl float64) (float64, error) {
	if i, ok := c.domain.Index(wl); ok {
		return c.values[i], nil
	}
	if len(c.values) == 0 || wl < c.domain.Min() || wl > c.domain.Max() {
		return 0, fmt.Errorf("%w: %g not in [%g, %g]", ErrOutOfRange, wl, c.domain.Min(), c.domain.Max())
	}

	if c.spline != nil {
		return c.spline.Predict(wl), nil
	}
	wls := c.domain.wavelengths
	i := sort.SearchFloat64s(wls, wl) - 1
	frac := (wl - wls[i]) / (wls[i+1] - wls[i])
	return lerp(c.values, i, frac), nil
}

// Max returns the largest sample, or 0 for an empty curve.
func (c *Curve) Max() float64 {
	_, v := c.Peak()
	return v
}

// Min returns the smallest sample, or 0 for an empty curve.
func (c *Curve) Min() float64 {
	if len(c.values) == 0 {
		return 0
	}
	m := c.values[0]
	for _, v := range c.values[1:] {
		m = min(m, v)
	}
	return m
}

// Peak returns the wavelength and value of the largest sample. The first
// occurrence wins on ties. An empty curve returns zeros.
func (c *Curve) Peak() (wavelength, value float64) {
	if len(c.values) == 0 {
		return 0, 0
	}
	idx := 0
	for i, v := range c.values {
		if v > c.values[idx] {
			idx = i
		}
	}
	return c.domain.wavelengths[idx], c.values[idx]
}

// Scale returns a new curve with every sample multiplied by k.
func (c *Curve) Scale(k float64) (*Curve, error) {
	if !isFinite(k) {
		return nil, fmt.Errorf("%w: scale factor %v", ErrNonFinite, k)
	}
	out := make([]float64, len(c.values))
	if len(out) > 0 {
		vecmath.ScaleBlock(out, c.values, k)
	}
	return c.derive(out)
}

// Add returns the sample-wise sum of c and o.
func (c *Curve) Add(o *Curve) (*Curve, error) {
	if err := c.sameDomain(o); err != nil {
		return nil, err
	}
	out := append([]float64(nil), c.values...)
	if len(out) > 0 {
		vecmath.AddBlockInPlace(out, o.values)
	}
	return c.derive(out)
}

// Mul returns the sample-wise product of c and o.
func (c *Curve) Mul(o *Curve) (*Curve, error) {
	if err := c.sameDomain(o); err != nil {
		return nil, err
	}
	out := make([]float64, len(c.values))
	if len(out) > 0 {
		vecmath.MulBlock(out, c.values, o.values)
	}
	return c.derive(out)
}

// Normalize returns values * factor / max, so that the curve's maximum
// equals factor. An empty curve is returned unchanged; a curve whose maximum
// is not positive fails with ErrZeroPeak.
func (c *Curve) Normalize(factor float64) (*Curve, error) {
	if len(c.values) == 0 {
		return c.derive(nil)
	}
	peak := c.Max()
	if peak <= 0 {
		return nil, fmt.Errorf("%w: max = %v", ErrZeroPeak, peak)
	}
	return c.Scale(factor / peak)
}

func (c *Curve) sameDomain(o *Curve) error {
	if !c.domain.Equal(o.domain) {
		return fmt.Errorf("%w: %d vs %d wavelengths", ErrDomainMismatch, c.domain.Len(), o.domain.Len())
	}
	return nil
}

// derive wraps freshly computed samples on c's domain.
func (c *Curve) derive(values []float64) (*Curve, error) {
	if values == nil {
		values = []float64{}
	}
	if err := validateFinite(values); err != nil {
		return nil, err
	}
	return newCurve(c.domain, values, c.cfg)
}
