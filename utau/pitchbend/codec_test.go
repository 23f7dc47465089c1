package pitchbend

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cwbudde/algo-microtune/internal/testutil"
)

func TestAlphabetValues(t *testing.T) {
	tests := []struct {
		c    byte
		want int
	}{
		{'A', 0}, {'Z', 25}, {'a', 26}, {'z', 51}, {'0', 52}, {'9', 61}, {'+', 62}, {'/', 63},
	}
	for _, tt := range tests {
		got, err := StdAlphabet.Value(tt.c)
		if err != nil {
			t.Fatalf("Value(%q): %v", tt.c, err)
		}
		if got != tt.want {
			t.Errorf("Value(%q) = %d, want %d", tt.c, got, tt.want)
		}
		if s := StdAlphabet.Symbol(tt.want); s != tt.c {
			t.Errorf("Symbol(%d) = %q, want %q", tt.want, s, tt.c)
		}
	}
}

func TestAlphabetRejectsForeignSymbols(t *testing.T) {
	for _, c := range []byte{'#', '=', '-', '_', ' ', 0, 0xFF} {
		if _, err := StdAlphabet.Value(c); !errors.Is(err, ErrInvalidSymbol) {
			t.Errorf("Value(%q) error = %v, want ErrInvalidSymbol", c, err)
		}
	}
}

func TestSampleRoundTripAllPatterns(t *testing.T) {
	for v := MinSample; v <= MaxSample; v++ {
		pair := EncodeSample(int16(v))
		got, err := DecodeSample(pair)
		if err != nil {
			t.Fatalf("DecodeSample(%q): %v", pair, err)
		}
		if int(got) != v {
			t.Fatalf("DecodeSample(EncodeSample(%d)) = %d", v, got)
		}
	}
}

func TestSampleTwosComplement(t *testing.T) {
	tests := []struct {
		pair string
		want int16
	}{
		{"AA", 0},
		{"AB", 1},
		{"//", -1},
		{"f/", 2047},
		{"gA", -2048},
		{"BA", 64},
	}
	for _, tt := range tests {
		got, err := DecodeSample(tt.pair)
		if err != nil {
			t.Fatalf("DecodeSample(%q): %v", tt.pair, err)
		}
		if got != tt.want {
			t.Errorf("DecodeSample(%q) = %d, want %d", tt.pair, got, tt.want)
		}
		if enc := EncodeSample(tt.want); enc != tt.pair {
			t.Errorf("EncodeSample(%d) = %q, want %q", tt.want, enc, tt.pair)
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Curve
	}{
		{"empty", "", nil},
		{"single", "AA", Curve{0}},
		{"literal", "ABACAD", Curve{1, 2, 3}},
		{"repeat", "AA#4#", Curve{0, 0, 0, 0}},
		{"repeat one", "AB#1#", Curve{1}},
		{"repeat without closing delimiter", "AB#3", Curve{1, 1, 1}},
		{"multi-sample literal before repeat", "ABAC#3#", Curve{1, 2, 2, 2}},
		{"segments", "AB#2#ACAD#3#//", Curve{1, 1, 2, 3, 3, 3, -1}},
		{"negative run", "//#6#AA", Curve{-1, -1, -1, -1, -1, -1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.in)
			if err != nil {
				t.Fatalf("Decode(%q): %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Decode(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		symbol bool
	}{
		{"odd literal", "AAB", false},
		{"odd literal before repeat", "A#3#", false},
		{"invalid symbol", "A!", true},
		{"invalid symbol after repeat", "AA#2#A=", true},
		{"zero count", "AA#0#", false},
		{"negative count", "AA#-2#", false},
		{"signed count", "AA#+2#", false},
		{"non-numeric count", "AA#x#", false},
		{"empty count", "AA##", false},
		{"repeat without sample", "#5#", false},
		{"empty segment between markers", "AA#3##2#", false},
		{"oversized count", "AA#99999999999#", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.in)
			if !errors.Is(err, ErrMalformedCurve) {
				t.Fatalf("Decode(%q) error = %v, want ErrMalformedCurve", tt.in, err)
			}
			if got := errors.Is(err, ErrInvalidSymbol); got != tt.symbol {
				t.Errorf("errors.Is(err, ErrInvalidSymbol) = %v, want %v", got, tt.symbol)
			}
		})
	}
}

func TestDecodeCurveLimit(t *testing.T) {
	half := MaxSamples / 2
	in := "AA#" + strconv.Itoa(half) + "#AB#" + strconv.Itoa(half+1) + "#"
	if _, err := Decode(in); !errors.Is(err, ErrMalformedCurve) {
		t.Fatalf("Decode over limit error = %v, want ErrMalformedCurve", err)
	}
}

func TestEncodeRunThreshold(t *testing.T) {
	tests := []struct {
		name string
		in   Curve
		want string
	}{
		{"single", Curve{0}, "AA"},
		{"five literal", Curve(testutil.Constant(100, 5)), strings.Repeat("Bk", 5)},
		{"six marked", Curve(testutil.Constant(100, 6)), "Bk#6#"},
		{"seven marked", Curve(testutil.Constant(100, 7)), "Bk#7#"},
		{"mixed", Curve{1, 2, 2, 2, 2, 2, 2, 2, 3}, "ABAC#7#AD"},
		{"negative", Curve{-1, -1}, "////"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.in)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if got != tt.want {
				t.Errorf("Encode(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEncodeEmpty(t *testing.T) {
	for _, c := range []Curve{nil, {}} {
		if _, err := Encode(c); !errors.Is(err, ErrEmptyCurve) {
			t.Errorf("Encode(%v) error = %v, want ErrEmptyCurve", c, err)
		}
	}
}

func TestEncodeTruncatesTo12Bits(t *testing.T) {
	got, err := Encode(Curve{4096 + 5})
	if err != nil {
		t.Fatal(err)
	}
	if want := EncodeSample(5); got != want {
		t.Errorf("Encode(4101) = %q, want %q", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	curves := []Curve{
		Curve(testutil.Constant(0, 1)),
		Curve(testutil.Constant(-2048, 300)),
		Curve(testutil.Vibrato(0, 2000, 37, 400)),
		Curve(testutil.Vibrato(-500, 40, 8, 64)),
	}
	for seed := int64(1); seed <= 20; seed++ {
		curves = append(curves, Curve(testutil.DeterministicCurve(seed, 1+int(seed)*37)))
	}

	for i, c := range curves {
		enc, err := Encode(c)
		if err != nil {
			t.Fatalf("curve %d: Encode: %v", i, err)
		}
		dec, err := Decode(enc)
		if err != nil {
			t.Fatalf("curve %d: Decode(%q): %v", i, enc, err)
		}
		if diff := cmp.Diff(c, dec); diff != "" {
			t.Fatalf("curve %d: round trip mismatch (-want +got):\n%s", i, diff)
		}
	}
}
