package generation

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cwbudde/algo-spd/colorimetry/spectrum"
	"github.com/cwbudde/algo-spd/internal/testutil"
)

const eps = 1e-7

var (
	ledPeaks       = []float64{457, 530, 615}
	ledFWHMs       = []float64{20, 30, 20}
	ledIntensities = []float64{0.731, 1.000, 1.660}
)

func TestConstant(t *testing.T) {
	c, err := Constant(math.Pi)
	if err != nil {
		t.Fatalf("Constant() error = %v", err)
	}
	if c.Len() != 421 {
		t.Fatalf("len = %d, want 421", c.Len())
	}
	for _, wl := range []float64{360, 555, 780} {
		testutil.RequireValueAt(t, c, wl, math.Pi, eps)
	}
	testutil.RequireSliceNearlyEqual(t, c.Values(), testutil.DC(math.Pi, c.Len()), 0)
}

func TestZerosOnes(t *testing.T) {
	tests := []struct {
		name  string
		gen   func(...Option) (*spectrum.Curve, error)
		value float64
	}{
		{name: "zeros", gen: Zeros, value: 0},
		{name: "ones", gen: Ones, value: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.gen()
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			want, err := Constant(tt.value)
			if err != nil {
				t.Fatalf("Constant() error = %v", err)
			}
			if diff := cmp.Diff(want.Values(), got.Values()); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
			for _, wl := range []float64{360, 555, 780} {
				v, _ := got.At(wl)
				if v != tt.value {
					t.Fatalf("At(%v) = %v, want %v", wl, v, tt.value)
				}
			}
		})
	}
}

func TestConstantRejectsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := Constant(v); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("Constant(%v) error = %v, want ErrInvalidParameter", v, err)
		}
	}
}

func TestGaussianNormal(t *testing.T) {
	c, err := GaussianNormal(555, 25)
	if err != nil {
		t.Fatalf("GaussianNormal() error = %v", err)
	}
	testutil.RequireValueAt(t, c, 530, 0.606530659712633, eps)
	testutil.RequireValueAt(t, c, 555, 1, eps)
	testutil.RequireValueAt(t, c, 580, 0.606530659712633, eps)
}

func TestGaussianFWHM(t *testing.T) {
	c, err := GaussianFWHM(555, 25)
	if err != nil {
		t.Fatalf("GaussianFWHM() error = %v", err)
	}
	testutil.RequireValueAt(t, c, 530, 0.367879441171443, eps)
	testutil.RequireValueAt(t, c, 555, 1, eps)
	testutil.RequireValueAt(t, c, 580, 0.367879441171443, eps)
}

func TestGaussianFormsAgree(t *testing.T) {
	fwhm, err := GaussianFWHM(520, 30)
	if err != nil {
		t.Fatalf("GaussianFWHM() error = %v", err)
	}
	normal, err := GaussianNormal(520, 30/math.Sqrt2)
	if err != nil {
		t.Fatalf("GaussianNormal() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, fwhm.Values(), normal.Values(), 1e-12)
}

func TestSingleLEDOhno2005(t *testing.T) {
	c, err := SingleLEDOhno2005(555, 25)
	if err != nil {
		t.Fatalf("SingleLEDOhno2005() error = %v", err)
	}
	testutil.RequireValueAt(t, c, 530, 0.127118445056538, eps)
	testutil.RequireValueAt(t, c, 555, 1, eps)
	testutil.RequireValueAt(t, c, 580, 0.127118445056538, eps)
}

func TestSingleLEDNarrowerThanGaussian(t *testing.T) {
	led, err := SingleLEDOhno2005(555, 25)
	if err != nil {
		t.Fatalf("SingleLEDOhno2005() error = %v", err)
	}
	gauss, err := GaussianFWHM(555, 25)
	if err != nil {
		t.Fatalf("GaussianFWHM() error = %v", err)
	}
	for i := range led.Len() {
		if led.Value(i) > gauss.Value(i)+1e-15 {
			t.Fatalf("sample %d: led %v above gaussian %v", i, led.Value(i), gauss.Value(i))
		}
	}
}

func TestSymmetry(t *testing.T) {
	gens := map[string]func() (*spectrum.Curve, error){
		"normal": func() (*spectrum.Curve, error) { return GaussianNormal(555, 25) },
		"fwhm":   func() (*spectrum.Curve, error) { return GaussianFWHM(555, 25) },
		"led":    func() (*spectrum.Curve, error) { return SingleLEDOhno2005(555, 25) },
	}

	for name, gen := range gens {
		t.Run(name, func(t *testing.T) {
			c, err := gen()
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			for d := 1.0; d <= 195; d++ {
				lo, err := c.At(555 - d)
				if err != nil {
					t.Fatalf("At(%v) error = %v", 555-d, err)
				}
				hi, err := c.At(555 + d)
				if err != nil {
					t.Fatalf("At(%v) error = %v", 555+d, err)
				}
				if lo != hi {
					t.Fatalf("d=%v: %v != %v", d, lo, hi)
				}
			}
		})
	}
}

func TestMultiLEDSumOhno2005(t *testing.T) {
	tests := []struct {
		name        string
		intensities []float64
		want        map[float64]float64
	}{
		{
			name:        "weighted",
			intensities: ledIntensities,
			want: map[float64]float64{
				500: 0.129513248576116,
				570: 0.059932156222703,
				640: 0.116433257970624,
			},
		},
		{
			name: "default intensities",
			want: map[float64]float64{
				500: 0.130394510062799,
				570: 0.058539618824187,
				640: 0.070140708922879,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := MultiLEDSumOhno2005(ledPeaks, ledFWHMs, tt.intensities)
			if err != nil {
				t.Fatalf("MultiLEDSumOhno2005() error = %v", err)
			}
			for wl, want := range tt.want {
				testutil.RequireValueAt(t, c, wl, want, eps)
			}
		})
	}
}

func TestMultiLEDOhno2005(t *testing.T) {
	tests := []struct {
		name        string
		intensities []float64
		want        map[float64]float64
	}{
		{
			name:        "weighted",
			intensities: ledIntensities,
			want: map[float64]float64{
				500: 0.078014917993900,
				570: 0.036101343332176,
				640: 0.070135921785657,
			},
		},
		{
			name: "default intensities",
			want: map[float64]float64{
				500: 0.130278032023210,
				570: 0.058487326898433,
				640: 0.070078054043722,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := MultiLEDOhno2005(ledPeaks, ledFWHMs, tt.intensities)
			if err != nil {
				t.Fatalf("MultiLEDOhno2005() error = %v", err)
			}
			for wl, want := range tt.want {
				testutil.RequireValueAt(t, c, wl, want, eps)
			}
			if got := c.Max(); math.Abs(got-1) > 1e-12 {
				t.Fatalf("Max() = %v, want 1", got)
			}

			sum, err := MultiLEDSumOhno2005(ledPeaks, ledFWHMs, tt.intensities)
			if err != nil {
				t.Fatalf("MultiLEDSumOhno2005() error = %v", err)
			}
			scaled, err := c.Scale(sum.Max())
			if err != nil {
				t.Fatalf("Scale() error = %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, scaled.Values(), sum.Values(), 1e-12)
		})
	}
}

func TestMultiLEDIntensityRescalesEverySample(t *testing.T) {
	base, err := MultiLEDOhno2005(ledPeaks, ledFWHMs, []float64{1, 1, 1})
	if err != nil {
		t.Fatalf("MultiLEDOhno2005() error = %v", err)
	}
	boosted, err := MultiLEDOhno2005(ledPeaks, ledFWHMs, []float64{1, 1, 3})
	if err != nil {
		t.Fatalf("MultiLEDOhno2005() error = %v", err)
	}

	// 457 nm is far from the boosted 615 nm component, yet its normalised
	// value drops because the maximum moved.
	b, _ := base.At(457)
	g, _ := boosted.At(457)
	if !(g < b) {
		t.Fatalf("At(457): boosted %v, base %v; want boosted < base", g, b)
	}
}

func TestMultiLEDSingleComponentMatchesSingleLED(t *testing.T) {
	multi, err := MultiLEDOhno2005([]float64{555}, []float64{25}, []float64{0.3})
	if err != nil {
		t.Fatalf("MultiLEDOhno2005() error = %v", err)
	}
	single, err := SingleLEDOhno2005(555, 25)
	if err != nil {
		t.Fatalf("SingleLEDOhno2005() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, multi.Values(), single.Values(), 1e-12)
}

func TestMultiLEDInvalidParameters(t *testing.T) {
	tests := []struct {
		name        string
		peaks       []float64
		fwhms       []float64
		intensities []float64
	}{
		{name: "no components"},
		{name: "fwhm length", peaks: []float64{450, 550}, fwhms: []float64{20}},
		{name: "intensity length", peaks: []float64{450}, fwhms: []float64{20}, intensities: []float64{1, 1}},
		{name: "zero fwhm", peaks: []float64{450}, fwhms: []float64{0}},
		{name: "negative fwhm", peaks: []float64{450}, fwhms: []float64{-5}},
		{name: "nan peak", peaks: []float64{math.NaN()}, fwhms: []float64{20}},
		{name: "negative intensity", peaks: []float64{450, 550}, fwhms: []float64{20, 20}, intensities: []float64{1, -0.5}},
		{name: "all zero intensities", peaks: []float64{450, 550}, fwhms: []float64{20, 20}, intensities: []float64{0, 0}},
		{name: "inf intensity", peaks: []float64{450}, fwhms: []float64{20}, intensities: []float64{math.Inf(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := MultiLEDOhno2005(tt.peaks, tt.fwhms, tt.intensities)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("error = %v, want ErrInvalidParameter", err)
			}
			if c != nil {
				t.Fatalf("curve = %v, want nil", c)
			}
		})
	}
}

func TestMultiLEDZeroSumFails(t *testing.T) {
	_, err := MultiLEDOhno2005([]float64{5000}, []float64{20}, nil)
	if !errors.Is(err, spectrum.ErrZeroPeak) {
		t.Fatalf("error = %v, want ErrZeroPeak", err)
	}
}

func TestInvalidWidths(t *testing.T) {
	tests := []struct {
		name string
		gen  func(w float64) (*spectrum.Curve, error)
	}{
		{name: "normal", gen: func(w float64) (*spectrum.Curve, error) { return GaussianNormal(555, w) }},
		{name: "fwhm", gen: func(w float64) (*spectrum.Curve, error) { return GaussianFWHM(555, w) }},
		{name: "led", gen: func(w float64) (*spectrum.Curve, error) { return SingleLEDOhno2005(555, w) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, w := range []float64{0, -1, math.NaN(), math.Inf(1)} {
				if _, err := tt.gen(w); !errors.Is(err, ErrInvalidParameter) {
					t.Fatalf("width %v: error = %v, want ErrInvalidParameter", w, err)
				}
			}
		})
	}
}

func TestEmptyDomain(t *testing.T) {
	empty := WithDomain(spectrum.Domain{})
	gens := map[string]func() (*spectrum.Curve, error){
		"constant": func() (*spectrum.Curve, error) { return Constant(2, empty) },
		"zeros":    func() (*spectrum.Curve, error) { return Zeros(empty) },
		"ones":     func() (*spectrum.Curve, error) { return Ones(empty) },
		"normal":   func() (*spectrum.Curve, error) { return GaussianNormal(555, 25, empty) },
		"fwhm":     func() (*spectrum.Curve, error) { return GaussianFWHM(555, 25, empty) },
		"led":      func() (*spectrum.Curve, error) { return SingleLEDOhno2005(555, 25, empty) },
		"multi":    func() (*spectrum.Curve, error) { return MultiLEDOhno2005(ledPeaks, ledFWHMs, nil, empty) },
	}

	for name, gen := range gens {
		t.Run(name, func(t *testing.T) {
			c, err := gen()
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if c.Len() != 0 {
				t.Fatalf("len = %d, want 0", c.Len())
			}
		})
	}

	if _, err := MultiLEDOhno2005(ledPeaks, ledFWHMs, []float64{0, 0, 0}, empty); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("zero intensities on empty domain: error = %v, want ErrInvalidParameter", err)
	}
}

func TestWithShape(t *testing.T) {
	c, err := GaussianFWHM(555, 25, WithShape(spectrum.Shape{Start: 380, End: 780, Interval: 5}))
	if err != nil {
		t.Fatalf("GaussianFWHM() error = %v", err)
	}
	if c.Len() != 81 {
		t.Fatalf("len = %d, want 81", c.Len())
	}
	testutil.RequireValueAt(t, c, 530, 0.367879441171443, eps)
}

func TestWithInvalidShape(t *testing.T) {
	_, err := Ones(WithShape(spectrum.Shape{Start: 380, End: 780, Interval: 0}))
	if !errors.Is(err, spectrum.ErrInvalidShape) {
		t.Fatalf("error = %v, want ErrInvalidShape", err)
	}
}

func TestOptionsLastWins(t *testing.T) {
	d, err := spectrum.NewDomain([]float64{500, 555, 600})
	if err != nil {
		t.Fatalf("NewDomain() error = %v", err)
	}

	c, err := Ones(WithShape(spectrum.Shape{Start: 400, End: 410, Interval: 1}), WithDomain(d))
	if err != nil {
		t.Fatalf("Ones() error = %v", err)
	}
	if c.Len() != 3 {
		t.Fatalf("len = %d, want 3", c.Len())
	}

	c, err = Ones(WithDomain(d), WithShape(spectrum.Shape{Start: 400, End: 410, Interval: 1}))
	if err != nil {
		t.Fatalf("Ones() error = %v", err)
	}
	if c.Len() != 11 {
		t.Fatalf("len = %d, want 11", c.Len())
	}
}

func TestUnevenDomain(t *testing.T) {
	d, err := spectrum.NewDomain([]float64{400, 457, 530, 531.5, 615, 700})
	if err != nil {
		t.Fatalf("NewDomain() error = %v", err)
	}
	c, err := MultiLEDOhno2005(ledPeaks, ledFWHMs, ledIntensities, WithDomain(d))
	if err != nil {
		t.Fatalf("MultiLEDOhno2005() error = %v", err)
	}
	if got := c.Max(); math.Abs(got-1) > 1e-12 {
		t.Fatalf("Max() = %v, want 1", got)
	}
	testutil.RequireFinite(t, c.Values())
}

func TestDeterministic(t *testing.T) {
	a, err := MultiLEDOhno2005(ledPeaks, ledFWHMs, ledIntensities)
	if err != nil {
		t.Fatalf("MultiLEDOhno2005() error = %v", err)
	}
	b, err := MultiLEDOhno2005(ledPeaks, ledFWHMs, ledIntensities)
	if err != nil {
		t.Fatalf("MultiLEDOhno2005() error = %v", err)
	}
	if diff := cmp.Diff(a.Values(), b.Values()); diff != "" {
		t.Fatalf("non-deterministic output (-a +b):\n%s", diff)
	}
}

func TestInputsNotRetained(t *testing.T) {
	peaks := append([]float64(nil), ledPeaks...)
	c, err := MultiLEDOhno2005(peaks, ledFWHMs, nil)
	if err != nil {
		t.Fatalf("MultiLEDOhno2005() error = %v", err)
	}
	before := c.Values()
	peaks[0] = 700
	if diff := cmp.Diff(before, c.Values()); diff != "" {
		t.Fatalf("curve changed after mutating input (-before +after):\n%s", diff)
	}
}
