package flags

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cwbudde/algo-microtune/internal/testutil"
	"github.com/cwbudde/algo-microtune/tuning"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Flag
		str  string
	}{
		{"empty", "", []Flag{}, ""},
		{"single", "B20", []Flag{{'B', 20}}, "B20"},
		{"negative", "g-5", []Flag{{'g', -5}}, "g-5"},
		{"several", "g-5B20Y0", []Flag{{'g', -5}, {'B', 20}, {'Y', 0}}, "g-5B20Y0"},
		{"bare letter", "NB3", []Flag{{'N', 0}, {'B', 3}}, "N0B3"},
		{"duplicate keeps first position", "B1H2B3", []Flag{{'B', 3}, {'H', 2}}, "B3H2"},
		{"duplicate resets sign", "B-1B4", []Flag{{'B', 4}}, "B4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, f.All()); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
			if got := f.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"5B20", "-B2", "B2!", "B2 H3", "B99999999999", "B5-3", "B--3"} {
		if _, err := Parse(in); !errors.Is(err, ErrMalformedFlags) {
			t.Errorf("Parse(%q) error = %v, want ErrMalformedFlags", in, err)
		}
	}
}

func TestFlagsSetRemove(t *testing.T) {
	var f Flags
	f.Set('A', 1)
	f.Set('B', 2)
	f.Set('A', 3)

	if v, ok := f.Remove('A'); !ok || v != 3 {
		t.Fatalf("Remove('A') = %d, %v, want 3, true", v, ok)
	}
	if _, ok := f.Remove('A'); ok {
		t.Fatal("second Remove('A') reported a value")
	}
	if f.Len() != 1 || f.String() != "B2" {
		t.Fatalf("after Remove: Len() = %d, String() = %q", f.Len(), f.String())
	}
}

func TestExtractDetune(t *testing.T) {
	tests := []struct {
		in     string
		flags  string
		detune float64
	}{
		{"B20Z-5H3", "B20H3", -5 * 1200.0 / 31},
		{"Z2", "", 2 * tuning.EDO31StepCents},
		{"g-5B20", "g-5B20", 0},
		{"", "", 0},
	}
	for _, tt := range tests {
		got, detune, err := ExtractDetune(tt.in)
		if err != nil {
			t.Fatalf("ExtractDetune(%q): %v", tt.in, err)
		}
		if got != tt.flags {
			t.Errorf("ExtractDetune(%q) flags = %q, want %q", tt.in, got, tt.flags)
		}
		testutil.RequireNearlyEqual(t, detune, tt.detune, 1e-9)
	}
}

func TestExtractDetuneMalformed(t *testing.T) {
	if _, _, err := ExtractDetune("5B20"); !errors.Is(err, ErrMalformedFlags) {
		t.Fatalf("ExtractDetune error = %v, want ErrMalformedFlags", err)
	}
}
