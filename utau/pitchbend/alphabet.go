package pitchbend

import "fmt"

const stdSymbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

const noValue = -1

// Alphabet is a bidirectional mapping between 64 digit characters and the
// 6-bit values they stand for. An Alphabet is immutable after construction
// and safe for concurrent use.
type Alphabet struct {
	symbols [64]byte
	values  [256]int8
}

// StdAlphabet is the standard base64 alphabet: A-Z = 0-25, a-z = 26-51,
// 0-9 = 52-61, '+' = 62 and '/' = 63.
var StdAlphabet = newAlphabet(stdSymbols)

func newAlphabet(symbols string) *Alphabet {
	if len(symbols) != 64 {
		panic(fmt.Sprintf("pitchbend: alphabet needs 64 symbols, got %d", len(symbols)))
	}

	a := &Alphabet{}
	for i := range a.values {
		a.values[i] = noValue
	}

	for i := range len(symbols) {
		c := symbols[i]
		if a.values[c] != noValue {
			panic(fmt.Sprintf("pitchbend: duplicate alphabet symbol %q", c))
		}

		a.symbols[i] = c
		a.values[c] = int8(i)
	}

	return a
}

// Value returns the 6-bit value of digit c.
func (a *Alphabet) Value(c byte) (int, error) {
	v := a.values[c]
	if v == noValue {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, c)
	}
	return int(v), nil
}

// Symbol returns the digit for the low 6 bits of v.
func (a *Alphabet) Symbol(v int) byte {
	return a.symbols[v&0x3F]
}
