package tuning

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
)

const midiNotes = 128

// Scale maps (fractional) MIDI notes to retuned pitches. A Scale is either
// periodic, repeating a set of degrees every period with degree 0 on the
// reference note, or an absolute per-note table. Scales are immutable.
type Scale struct {
	degrees []float64
	period  float64
	table   []float64
}

// NewEDO returns the scale of n equal divisions of the octave.
func NewEDO(n int) (*Scale, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: divisions must be >= 1, got %d", ErrMalformedScale, n)
	}
	steps := make([]float64, n)
	for i := range steps {
		steps[i] = 1200 * float64(i+1) / float64(n)
	}
	return NewScale(steps)
}

// NewScale returns a periodic scale from the pitches of degrees 1..n in
// cents above the root, the way a Scala file lists them. The last pitch is
// the period.
func NewScale(steps []float64) (*Scale, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("%w: no degrees", ErrMalformedScale)
	}
	for i, s := range steps {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return nil, fmt.Errorf("%w: degree %d is not finite", ErrMalformedScale, i+1)
		}
	}

	period := steps[len(steps)-1]
	if period <= 0 {
		return nil, fmt.Errorf("%w: period must be positive, got %g cents", ErrMalformedScale, period)
	}

	degrees := make([]float64, len(steps))
	copy(degrees[1:], steps[:len(steps)-1])
	return &Scale{degrees: degrees, period: period}, nil
}

// NewTable returns a scale from absolute pitches in cents above MIDI note 0,
// one per MIDI note. Missing notes keep their 12-TET pitch.
func NewTable(cents []float64) (*Scale, error) {
	if len(cents) > midiNotes {
		return nil, fmt.Errorf("%w: %d notes, at most %d", ErrMalformedScale, len(cents), midiNotes)
	}
	table := make([]float64, midiNotes)
	for i := range table {
		table[i] = 100 * float64(i)
	}
	copy(table, cents)
	return &Scale{table: table}, nil
}

// LoadScale reads a .scl or .tun file.
func LoadScale(path string) (*Scale, error) {
	var parse func(io.Reader) (*Scale, error)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".scl":
		parse = ParseSCL
	case ".tun":
		parse = ParseTUN
	default:
		return nil, fmt.Errorf("%w: unsupported tuning file type %q", ErrMalformedScale, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tuning: open scale: %w", err)
	}
	defer f.Close()

	s, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Size returns the number of degrees per period, or the number of table
// entries for an absolute scale.
func (s *Scale) Size() int {
	if s.table != nil {
		return len(s.table)
	}
	return len(s.degrees)
}

// Period returns the repeat interval in cents, 0 for an absolute scale.
func (s *Scale) Period() float64 { return s.period }

// Cents returns the retuned pitch of note in cents relative to the 12-TET
// pitch of ref. Notes between integers are interpolated with a Catmull-Rom
// spline through the neighbouring scale pitches.
func (s *Scale) Cents(note, ref float64) float64 {
	if s.table != nil {
		return s.interpolate(note, s.tablePitch) - 100*ref
	}
	return s.interpolate(note-ref, s.degreePitch)
}

func (s *Scale) interpolate(x float64, pitch func(int) float64) float64 {
	k := math.Floor(x)
	t := x - k
	i := int(k)
	return catmullRom(t, pitch(i-1), pitch(i), pitch(i+1), pitch(i+2))
}

func (s *Scale) degreePitch(k int) float64 {
	n := len(s.degrees)
	octaves := floorDiv(k, n)
	return s.degrees[k-octaves*n] + s.period*float64(octaves)
}

// tablePitch extends the table by 12-TET semitones beyond its ends.
func (s *Scale) tablePitch(k int) float64 {
	last := len(s.table) - 1
	switch {
	case k < 0:
		return s.table[0] + 100*float64(k)
	case k > last:
		return s.table[last] + 100*float64(k-last)
	default:
		return s.table[k]
	}
}
