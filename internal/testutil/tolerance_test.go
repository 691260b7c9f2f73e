package testutil

import "testing"

func TestRequireSliceNearlyEqual(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.0 + 1e-13, 3.0}

	RequireSliceNearlyEqual(t, a, a, 0)
	RequireSliceNearlyEqual(t, a, b, 1e-12)
}

func TestRequireFinite(t *testing.T) {
	RequireFinite(t, []float64{0, -1.5, 9.66})
}

func TestRequireAllNonNegative(t *testing.T) {
	RequireAllNonNegative(t, []float64{0, 0.05, 0.33})
}
