package flags

import "github.com/cwbudde/algo-microtune/tuning"

// Detune is the flag carrying an extra detune in 31-EDO steps.
const Detune = 'Z'

// ExtractDetune removes the [Detune] flag from s. It returns the remaining
// flag string, in original order, and the removed value converted to cents.
// Without a Detune flag the detune is 0.
func ExtractDetune(s string) (string, float64, error) {
	f, err := Parse(s)
	if err != nil {
		return "", 0, err
	}

	steps, _ := f.Remove(Detune)
	return f.String(), float64(steps) * tuning.EDO31StepCents, nil
}
