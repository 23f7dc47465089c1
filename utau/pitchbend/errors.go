package pitchbend

import "errors"

var (
	// ErrInvalidSymbol reports a character outside the base64 alphabet.
	ErrInvalidSymbol = errors.New("pitchbend: invalid base64 symbol")
	// ErrMalformedCurve reports an encoded curve that cannot be decoded.
	ErrMalformedCurve = errors.New("pitchbend: malformed curve")
	// ErrEmptyCurve is returned when encoding a curve without samples.
	ErrEmptyCurve = errors.New("pitchbend: empty curve")
)
