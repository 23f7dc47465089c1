package pitchbend

import "math"

// Clamp converts real-valued offsets to samples. Each value is truncated
// toward zero and then limited to [MinSample, MaxSample]; NaN becomes 0.
//
// clipped counts the values that had to be limited. The returned curve is
// valid either way, callers should only warn when clipped > 0.
func Clamp(values []float64) (c Curve, clipped int) {
	c = make(Curve, len(values))
	for i, v := range values {
		t := math.Trunc(v)
		switch {
		case math.IsNaN(t):
			clipped++
		case t < MinSample:
			c[i] = MinSample
			clipped++
		case t > MaxSample:
			c[i] = MaxSample
			clipped++
		default:
			c[i] = int16(t)
		}
	}
	return c, clipped
}
