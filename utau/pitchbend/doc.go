// Package pitchbend implements the compact text encoding UTAU-style resamplers
// use for pitch-bend curves.
//
// A curve is a sequence of signed 12-bit samples, one per fixed time step,
// expressing the pitch offset in cents. Each sample is written as a pair of
// base64 digits (high 6 bits first) holding the two's-complement value.
// Runs of identical samples may be shortened with a repeat marker:
//
//	AA#7#    seven samples of 0
//	ABAC#3#  1, 2, 2, 2
//
// The count between the delimiters repeats the last decoded sample of the
// preceding literal run until the run holds count samples. [Decode] accepts
// literal runs of any length before a marker; [Encode] only ever emits a single
// digit pair in front of one, so encoded output is not byte-identical to every
// accepted input, only value-identical.
package pitchbend
