package pitchbend

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// Delimiter brackets the repeat count of a run.
	Delimiter = '#'

	// RunThreshold is the shortest run Encode writes with a repeat marker.
	// Shorter runs are written as literal digit pairs.
	RunThreshold = 6

	// MaxSamples bounds the length of a decoded curve.
	MaxSamples = 1 << 20
)

// Decode parses an encoded curve using the standard alphabet.
func Decode(s string) (Curve, error) {
	return StdAlphabet.Decode(s)
}

// Encode formats c using the standard alphabet.
func Encode(c Curve) (string, error) {
	return StdAlphabet.Encode(c)
}

// Decode parses an encoded curve. The input is split on [Delimiter] and
// consumed two tokens at a time: a literal run of digit pairs followed by a
// repeat count. A trailing token without a count is a plain literal run. An
// empty input decodes to an empty curve.
func (a *Alphabet) Decode(s string) (Curve, error) {
	tokens := strings.Split(s, string(Delimiter))

	var out Curve
	for i := 0; i < len(tokens); i += 2 {
		literal := tokens[i]

		before := len(out)
		var err error
		out, err = a.appendLiteral(out, literal)
		if err != nil {
			return nil, err
		}

		if i+1 == len(tokens) {
			break
		}

		if len(out) == before {
			return nil, fmt.Errorf("%w: repeat marker %d has no preceding sample", ErrMalformedCurve, i/2)
		}

		count, err := parseCount(tokens[i+1])
		if err != nil {
			return nil, err
		}

		// The count includes the sample that was already decoded.
		if len(out)+count-1 > MaxSamples {
			return nil, fmt.Errorf("%w: curve exceeds %d samples", ErrMalformedCurve, MaxSamples)
		}

		last := out[len(out)-1]
		for range count - 1 {
			out = append(out, last)
		}
	}

	return out, nil
}

func (a *Alphabet) appendLiteral(dst Curve, literal string) (Curve, error) {
	if len(literal)%2 != 0 {
		return nil, fmt.Errorf("%w: odd-length literal run %q", ErrMalformedCurve, literal)
	}

	if len(dst)+len(literal)/2 > MaxSamples {
		return nil, fmt.Errorf("%w: curve exceeds %d samples", ErrMalformedCurve, MaxSamples)
	}

	for j := 0; j < len(literal); j += 2 {
		v, err := decodePair(a, literal[j], literal[j+1])
		if err != nil {
			return nil, fmt.Errorf("%w: literal run %q: %w", ErrMalformedCurve, literal, err)
		}
		dst = append(dst, v)
	}

	return dst, nil
}

func parseCount(tok string) (int, error) {
	if tok == "" {
		return 0, fmt.Errorf("%w: empty repeat count", ErrMalformedCurve)
	}

	for i := range len(tok) {
		if tok[i] < '0' || tok[i] > '9' {
			return 0, fmt.Errorf("%w: repeat count %q is not a decimal number", ErrMalformedCurve, tok)
		}
	}

	n, err := strconv.Atoi(tok)
	if err != nil || n > MaxSamples {
		return 0, fmt.Errorf("%w: repeat count %q out of range", ErrMalformedCurve, tok)
	}

	if n < 1 {
		return 0, fmt.Errorf("%w: repeat count must be at least 1, got %d", ErrMalformedCurve, n)
	}

	return n, nil
}

// Encode formats c as an encoded curve. Consecutive samples with the same
// 12-bit pattern form a run; runs of at least [RunThreshold] samples are
// written as one digit pair followed by a repeat marker.
func (a *Alphabet) Encode(c Curve) (string, error) {
	if len(c) == 0 {
		return "", ErrEmptyCurve
	}

	var b strings.Builder
	b.Grow(2 * len(c))

	run := 1
	for i := 1; i <= len(c); i++ {
		if i < len(c) && int(c[i])&sampleMask == int(c[i-1])&sampleMask {
			run++
			continue
		}

		a.writeRun(&b, c[i-1], run)
		run = 1
	}

	return b.String(), nil
}

func (a *Alphabet) writeRun(b *strings.Builder, v int16, run int) {
	hi, lo := encodePair(a, v)

	if run < RunThreshold {
		for range run {
			b.WriteByte(hi)
			b.WriteByte(lo)
		}
		return
	}

	b.WriteByte(hi)
	b.WriteByte(lo)
	b.WriteByte(Delimiter)
	b.WriteString(strconv.Itoa(run))
	b.WriteByte(Delimiter)
}
