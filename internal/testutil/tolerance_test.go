package testutil

import "testing"

func TestRequireNearlyEqualPasses(t *testing.T) {
	RequireNearlyEqual(t, 38.709677, 1200.0/31, 1e-6)
}

func TestRequireSliceNearlyEqualPasses(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{0, 100, 200}, []float64{0, 100.0000001, 199.9999999}, 1e-6)
}
