package testutil

import (
	"math"
	"math/rand"
)

// DeterministicCurve returns a reproducible pitch curve of the given length
// made of runs between 1 and 12 samples long, with values spread over the
// full 12-bit range.
func DeterministicCurve(seed int64, length int) []int16 {
	out := make([]int16, 0, length)
	rng := rand.New(rand.NewSource(seed))
	for len(out) < length {
		v := int16(rng.Intn(4096) - 2048)
		run := 1 + rng.Intn(12)
		for j := 0; j < run && len(out) < length; j++ {
			out = append(out, v)
		}
	}
	return out
}

// Vibrato returns a sine-shaped curve oscillating depth cents around center
// with the given period in samples, truncated toward zero.
func Vibrato(center, depth float64, period, length int) []int16 {
	out := make([]int16, length)
	step := 2 * math.Pi / float64(period)
	for i := range out {
		out[i] = int16(center + depth*math.Sin(step*float64(i)))
	}
	return out
}

// Constant returns a curve of n copies of v.
func Constant(v int16, n int) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = v
	}
	return out
}
