package testutil

import "testing"

func TestDeterministicCurveReproducible(t *testing.T) {
	a := DeterministicCurve(7, 500)
	b := DeterministicCurve(7, 500)
	if len(a) != 500 {
		t.Fatalf("len = %d, want 500", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
		if a[i] < -2048 || a[i] > 2047 {
			t.Fatalf("a[%d] = %d outside 12-bit range", i, a[i])
		}
	}
}

func TestVibratoBounds(t *testing.T) {
	v := Vibrato(100, 50, 20, 80)
	if v[0] != 100 {
		t.Fatalf("v[0] = %d, want 100", v[0])
	}
	for i, s := range v {
		if s < 50 || s > 150 {
			t.Fatalf("v[%d] = %d outside [50, 150]", i, s)
		}
	}
}

func TestConstant(t *testing.T) {
	c := Constant(-3, 4)
	for i, s := range c {
		if s != -3 {
			t.Fatalf("c[%d] = %d, want -3", i, s)
		}
	}
}
