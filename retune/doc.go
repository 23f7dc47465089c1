// Package retune rewrites the pitch and flag arguments of a resampler call so
// that a note rendered by an unmodified 12-TET resampler comes out in another
// tuning.
//
// [Retuner.Detune31] adds the 31-EDO detune of the note plus the detune
// carried by the Z flag to every sample of the pitch-bend curve.
// [Retuner.Rescale] maps the whole curve through a [tuning.Scale] and picks
// the nearest note for the resampler to render.
//
// A Retuner holds no mutable state and may be shared between goroutines.
package retune
