package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Sampler is anything that can be evaluated at a wavelength.
type Sampler interface {
	At(wl float64) (float64, error)
}

// RequireValueAt fails t if s evaluated at wl differs from want by more
// than eps.
func RequireValueAt(t *testing.T, s Sampler, wl, want, eps float64) {
	t.Helper()
	got, err := s.At(wl)
	if err != nil {
		t.Fatalf("At(%v) error = %v", wl, err)
	}
	if math.Abs(got-want) > eps {
		t.Fatalf("At(%v) = %.15f, want %.15f (diff %v > eps %v)", wl, got, want, math.Abs(got-want), eps)
	}
}

// Approx returns a cmp option equating floats within the absolute
// tolerance eps.
func Approx(eps float64) cmp.Option {
	return cmpopts.EquateApprox(0, eps)
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	if diff := cmp.Diff(want, got, Approx(eps)); diff != "" {
		t.Fatalf("values differ beyond eps %v (-want +got):\n%s", eps, diff)
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		maxDiff = max(maxDiff, math.Abs(a[i]-b[i]))
	}
	return maxDiff, nil
}
