package testutil

import (
	"math"
	"testing"
)

// RequireNearlyEqual fails t if got and want differ by more than eps.
func RequireNearlyEqual(t *testing.T, got, want, eps float64) {
	t.Helper()
	if diff := math.Abs(got - want); diff > eps || math.IsNaN(got) {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, diff, eps)
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}
