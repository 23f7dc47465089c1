package tuning

import "fmt"

// EDO31StepCents is one step of 31 equal divisions of the octave.
const EDO31StepCents = 1200.0 / 31

// edo31Steps places each chromatic note on a 31-EDO step. Sharps go up two
// steps, so C# (2) stays below Db (3).
var edo31Steps = [12]int{0, 2, 5, 7, 10, 13, 15, 18, 20, 23, 25, 28}

// EDO31 is the detune table for 31 equal divisions of the octave.
var EDO31 = mustDetuneTable(31, edo31Steps)

// DetuneTable holds, for each chromatic note, the cents offset that moves its
// 12-TET pitch onto a step of an equal division of the octave. It is
// immutable and safe for concurrent use.
type DetuneTable struct {
	edo     int
	steps   [12]int
	offsets [12]float64
}

// NewDetuneTable builds a table for edo divisions per octave where the note
// with chromatic index i lands on steps[i]. Steps must be strictly
// increasing and lie within one octave.
func NewDetuneTable(edo int, steps [12]int) (*DetuneTable, error) {
	if edo < 12 {
		return nil, fmt.Errorf("%w: need at least 12 divisions, got %d", ErrMalformedScale, edo)
	}

	t := &DetuneTable{edo: edo, steps: steps}
	stepCents := 1200 / float64(edo)
	for i, s := range steps {
		if s < 0 || s >= edo || (i > 0 && s <= steps[i-1]) {
			return nil, fmt.Errorf("%w: step %d for %s out of order", ErrMalformedScale, s, PitchClassNames[i])
		}
		t.offsets[i] = stepCents*float64(s) - 100*float64(i)
	}
	return t, nil
}

func mustDetuneTable(edo int, steps [12]int) *DetuneTable {
	t, err := NewDetuneTable(edo, steps)
	if err != nil {
		panic(err)
	}
	return t
}

// EDO returns the number of divisions per octave.
func (t *DetuneTable) EDO() int { return t.edo }

// Step returns the step the given pitch class is mapped to.
func (t *DetuneTable) Step(pitchClass int) int { return t.steps[pitchClass] }

// Offset returns the detune in cents for a pitch class.
func (t *DetuneTable) Offset(pitchClass int) float64 { return t.offsets[pitchClass] }

// Pitch returns the retuned pitch of a pitch class in cents above C.
func (t *DetuneTable) Pitch(pitchClass int) float64 {
	return 100*float64(pitchClass) + t.offsets[pitchClass]
}

// NoteDetune strips the octave from a note such as "C#4" and returns the
// detune for the remaining name.
func (t *DetuneTable) NoteDetune(note string) (float64, error) {
	name, _, err := SplitNote(note)
	if err != nil {
		return 0, err
	}

	pc, err := PitchClass(name)
	if err != nil {
		return 0, err
	}

	return t.offsets[pc], nil
}
