package generation

import "github.com/cwbudde/algo-spd/colorimetry/spectrum"

// Option configures the domain a generator evaluates over.
type Option func(*config)

type config struct {
	shape     spectrum.Shape
	domain    spectrum.Domain
	useDomain bool
}

func defaultConfig() config {
	return config{shape: spectrum.DefaultShape()}
}

// WithShape evaluates over the evenly spaced grid described by s.
func WithShape(s spectrum.Shape) Option {
	return func(c *config) {
		c.shape = s
		c.useDomain = false
	}
}

// WithDomain evaluates over an explicit domain, which may be empty or
// unevenly spaced.
func WithDomain(d spectrum.Domain) Option {
	return func(c *config) {
		c.domain = d
		c.useDomain = true
	}
}

func resolveDomain(opts []Option) (spectrum.Domain, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.useDomain {
		return cfg.domain, nil
	}
	return cfg.shape.Domain()
}

// evaluate builds a curve by applying fn to every wavelength of the
// configured domain.
func evaluate(opts []Option, fn func(wl float64) float64) (*spectrum.Curve, error) {
	d, err := resolveDomain(opts)
	if err != nil {
		return nil, err
	}
	return spectrum.FromFunc(d, fn)
}
