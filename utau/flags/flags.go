package flags

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ErrMalformedFlags reports a flag string that does not follow the
// letter/value grammar.
var ErrMalformedFlags = errors.New("flags: malformed flag string")

// Flag is a single named flag value.
type Flag struct {
	Name  rune
	Value int
}

// Flags is an ordered set of flags. The zero value is empty and ready to use.
type Flags struct {
	order  []rune
	values map[rune]int
}

// Get returns the value of the named flag.
func (f *Flags) Get(name rune) (int, bool) {
	v, ok := f.values[name]
	return v, ok
}

// Set assigns a flag value. New flags are appended, existing flags keep their
// position.
func (f *Flags) Set(name rune, value int) {
	if f.values == nil {
		f.values = make(map[rune]int)
	}
	if _, ok := f.values[name]; !ok {
		f.order = append(f.order, name)
	}
	f.values[name] = value
}

// Remove deletes the named flag and returns its value.
func (f *Flags) Remove(name rune) (int, bool) {
	v, ok := f.values[name]
	if !ok {
		return 0, false
	}

	delete(f.values, name)
	for i, n := range f.order {
		if n == name {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}

	return v, true
}

// Len returns the number of flags.
func (f *Flags) Len() int { return len(f.order) }

// All returns the flags in order.
func (f *Flags) All() []Flag {
	out := make([]Flag, len(f.order))
	for i, n := range f.order {
		out[i] = Flag{Name: n, Value: f.values[n]}
	}
	return out
}

// String formats the flags back into a flag string. Every flag is written
// with its value, so a bare letter comes back as "<letter>0".
func (f *Flags) String() string {
	var b strings.Builder
	for _, n := range f.order {
		b.WriteRune(n)
		b.WriteString(strconv.Itoa(f.values[n]))
	}
	return b.String()
}

type parseState int

const (
	awaitingLetter parseState = iota
	accumulating
)

type parser struct {
	isName   func(rune) bool
	state    parseState
	name     rune
	value    int64
	digits   int
	negative bool
	out      Flags
}

// Parse parses a flag string.
func Parse(s string) (*Flags, error) {
	return parse(s, unicode.IsLetter)
}

func parse(s string, isName func(rune) bool) (*Flags, error) {
	p := &parser{isName: isName}
	for pos, c := range s {
		if err := p.step(c); err != nil {
			return nil, fmt.Errorf("%w: %q at offset %d: %w", ErrMalformedFlags, s, pos, err)
		}
	}
	p.commit()
	return &p.out, nil
}

func (p *parser) step(c rune) error {
	switch {
	case p.isName(c):
		p.commit()
		p.name, p.value, p.digits, p.negative = c, 0, 0, false
		p.state = accumulating
	case p.state == awaitingLetter && (c == '-' || isDigit(c)):
		return fmt.Errorf("%q before any flag letter", c)
	case c == '-':
		if p.digits > 0 || p.negative {
			return fmt.Errorf("sign of %q must lead its digits", p.name)
		}
		p.negative = true
	case isDigit(c):
		p.value = p.value*10 + int64(c-'0')
		p.digits++
		if p.value > math.MaxInt32 {
			return fmt.Errorf("value of %q overflows", p.name)
		}
	default:
		return fmt.Errorf("unexpected character %q", c)
	}
	return nil
}

func (p *parser) commit() {
	if p.state != accumulating {
		return
	}
	v := int(p.value)
	if p.negative {
		v = -v
	}
	p.out.Set(p.name, v)
}

func isDigit(c rune) bool { return c >= '0' && c <= '9' }
