package tuning

import (
	"fmt"
	"strconv"
	"strings"
)

// PitchClassNames lists the twelve chromatic note names, C first.
var PitchClassNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// PitchClass returns the chromatic index (0 = C ... 11 = B) of a note name
// without octave, such as "C#".
func PitchClass(name string) (int, error) {
	for i, n := range PitchClassNames {
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownNote, name)
}

// SplitNote separates a note such as "C#4" or "A-1" into its name and octave.
func SplitNote(note string) (string, int, error) {
	i := len(note)
	for i > 0 && note[i-1] >= '0' && note[i-1] <= '9' {
		i--
	}
	if i == len(note) {
		return "", 0, fmt.Errorf("%w: %q has no octave", ErrUnknownNote, note)
	}
	if i > 0 && note[i-1] == '-' {
		i--
	}

	octave, err := strconv.Atoi(note[i:])
	if err != nil {
		return "", 0, fmt.Errorf("%w: %q: %w", ErrUnknownNote, note, err)
	}
	return note[:i], octave, nil
}

// ParseNote converts a note such as "C4" into a MIDI note number (C4 = 60).
func ParseNote(note string) (int, error) {
	name, octave, err := SplitNote(note)
	if err != nil {
		return 0, err
	}

	pc, err := PitchClass(name)
	if err != nil {
		return 0, err
	}
	return (octave+1)*12 + pc, nil
}

// NoteName formats a MIDI note number using sharps, e.g. 61 -> "C#4".
func NoteName(midi int) string {
	octave := floorDiv(midi, 12) - 1
	var b strings.Builder
	b.WriteString(PitchClassNames[midi-floorDiv(midi, 12)*12])
	b.WriteString(strconv.Itoa(octave))
	return b.String()
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
