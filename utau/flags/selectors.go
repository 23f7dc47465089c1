package flags

import (
	"strings"
	"unicode"
)

// Selector flags pick the tuning and resampler for a single note in scale
// mode. They are symbols rather than letters so they never collide with
// resampler flags.
const (
	// EDOSelector sets the number of equal divisions of the octave.
	EDOSelector = '#'
	// CenterSelector sets the MIDI note that keeps its 12-TET pitch.
	CenterSelector = '$'
	// TuningSelector picks a configured tuning file by index.
	TuningSelector = '^'
	// ResamplerSelector picks a configured resampler by index.
	ResamplerSelector = '!'
)

const selectorRunes = "#$^!"

// ExtractSelectors splits s into its selector flags and the remaining
// resampler flags, which keep their order.
func ExtractSelectors(s string) (*Flags, string, error) {
	all, err := parse(s, func(c rune) bool {
		return unicode.IsLetter(c) || strings.ContainsRune(selectorRunes, c)
	})
	if err != nil {
		return nil, "", err
	}

	var sel Flags
	for _, c := range selectorRunes {
		if v, ok := all.Remove(c); ok {
			sel.Set(c, v)
		}
	}
	return &sel, all.String(), nil
}
