package testutil

// Grid returns start, start+step, ... up to and including end.
func Grid(start, end, step float64) []float64 {
	if step <= 0 || end < start {
		return nil
	}
	n := int((end-start)/step+1e-9) + 1
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// Linear evaluates offset + slope*x for every x.
func Linear(xs []float64, offset, slope float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = offset + slope*x
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued slice.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return DC(1.0, n)
}
