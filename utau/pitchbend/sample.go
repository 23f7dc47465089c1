package pitchbend

import "fmt"

const (
	// MinSample is the lowest value a 12-bit sample can hold.
	MinSample = -2048
	// MaxSample is the highest value a 12-bit sample can hold.
	MaxSample = 2047

	sampleBits = 12
	sampleMask = 1<<sampleBits - 1
)

// Curve is a time-ordered pitch-bend curve in cents.
type Curve []int16

// Float64s returns the samples of c as float64 values.
func (c Curve) Float64s() []float64 {
	out := make([]float64, len(c))
	for i, v := range c {
		out[i] = float64(v)
	}
	return out
}

// EncodeSample returns the digit pair for v. Values outside
// [MinSample, MaxSample] are truncated to their low 12 bits.
func EncodeSample(v int16) string {
	hi, lo := encodePair(StdAlphabet, v)
	return string([]byte{hi, lo})
}

// DecodeSample decodes a two-character digit pair into a sample.
func DecodeSample(pair string) (int16, error) {
	if len(pair) != 2 {
		return 0, fmt.Errorf("%w: digit pair %q must have 2 characters", ErrMalformedCurve, pair)
	}
	return decodePair(StdAlphabet, pair[0], pair[1])
}

func encodePair(a *Alphabet, v int16) (byte, byte) {
	u := int(v) & sampleMask
	return a.Symbol(u >> 6), a.Symbol(u)
}

func decodePair(a *Alphabet, hi, lo byte) (int16, error) {
	h, err := a.Value(hi)
	if err != nil {
		return 0, err
	}

	l, err := a.Value(lo)
	if err != nil {
		return 0, err
	}

	u := h<<6 | l
	if u > MaxSample {
		u -= 1 << sampleBits
	}

	return int16(u), nil
}
