package spectrum

import (
	"fmt"
	"math"
	"sort"
)

// Shape describes an evenly spaced wavelength grid in nanometers.
type Shape struct {
	Start    float64
	End      float64
	Interval float64
}

// DefaultShape returns the standard visible-range grid: 360..780 nm at 1 nm.
func DefaultShape() Shape {
	return Shape{Start: 360, End: 780, Interval: 1}
}

// Domain returns the wavelengths of the shape, Start + i*Interval up to End.
// A trailing partial interval is dropped, so the last wavelength never
// exceeds End.
func (s Shape) Domain() (Domain, error) {
	if err := validateShape(s); err != nil {
		return Domain{}, err
	}

	n := int(math.Floor((s.End-s.Start)/s.Interval+1e-9)) + 1
	wl := make([]float64, n)
	for i := range wl {
		wl[i] = s.Start + float64(i)*s.Interval
	}
	return Domain{wavelengths: wl}, nil
}

// String implements fmt.Stringer.
func (s Shape) String() string {
	return fmt.Sprintf("(%g, %g, %g)", s.Start, s.End, s.Interval)
}

// Domain is an immutable, strictly ascending set of wavelengths.
// The zero value is the empty domain.
type Domain struct {
	wavelengths []float64
}

// DefaultDomain returns the domain of [DefaultShape].
func DefaultDomain() Domain {
	d, err := DefaultShape().Domain()
	if err != nil {
		panic(err)
	}
	return d
}

// NewDomain creates a domain from arbitrary strictly ascending wavelengths.
// An empty slice yields the empty domain.
func NewDomain(wavelengths []float64) (Domain, error) {
	if err := validateFinite(wavelengths); err != nil {
		return Domain{}, err
	}
	for i := 1; i < len(wavelengths); i++ {
		if wavelengths[i] <= wavelengths[i-1] {
			return Domain{}, fmt.Errorf("%w: index %d: %v <= %v",
				ErrNotAscending, i, wavelengths[i], wavelengths[i-1])
		}
	}
	return Domain{wavelengths: append([]float64(nil), wavelengths...)}, nil
}

// Len returns the number of wavelengths.
func (d Domain) Len() int {
	return len(d.wavelengths)
}

// At returns the i-th wavelength.
func (d Domain) At(i int) float64 {
	return d.wavelengths[i]
}

// Wavelengths returns a copy of the wavelengths in ascending order.
func (d Domain) Wavelengths() []float64 {
	return append([]float64(nil), d.wavelengths...)
}

// Min returns the smallest wavelength, or 0 for the empty domain.
func (d Domain) Min() float64 {
	if len(d.wavelengths) == 0 {
		return 0
	}
	return d.wavelengths[0]
}

// Max returns the largest wavelength, or 0 for the empty domain.
func (d Domain) Max() float64 {
	if len(d.wavelengths) == 0 {
		return 0
	}
	return d.wavelengths[len(d.wavelengths)-1]
}

// Index returns the position of wl on the grid. Grid wavelengths match
// within a relative tolerance of 1e-9.
func (d Domain) Index(wl float64) (int, bool) {
	i := sort.SearchFloat64s(d.wavelengths, wl)
	for _, j := range [2]int{i, i - 1} {
		if j >= 0 && j < len(d.wavelengths) && sameWavelength(d.wavelengths[j], wl) {
			return j, true
		}
	}
	return -1, false
}

// Interval reports the grid spacing when the domain is evenly spaced.
func (d Domain) Interval() (float64, bool) {
	if len(d.wavelengths) < 2 {
		return 0, false
	}
	step := d.wavelengths[1] - d.wavelengths[0]
	for i := 2; i < len(d.wavelengths); i++ {
		if math.Abs(d.wavelengths[i]-d.wavelengths[i-1]-step) > 1e-9*step {
			return 0, false
		}
	}
	return step, true
}

// Equal reports whether both domains hold the same wavelengths.
func (d Domain) Equal(o Domain) bool {
	if len(d.wavelengths) != len(o.wavelengths) {
		return false
	}
	for i, wl := range d.wavelengths {
		if !sameWavelength(wl, o.wavelengths[i]) {
			return false
		}
	}
	return true
}

func sameWavelength(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
