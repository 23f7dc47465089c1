// Package tuning maps 12-tone equal tempered notes onto other tunings.
//
// [EDO31] is the fixed table used to pull a sequencer's 12-TET note
// assignment onto 31 equal divisions of the octave while keeping the
// enharmonic split (C# sits below Db). [Scale] covers arbitrary equal
// divisions and tunings loaded from Scala (.scl) or AnaMark (.tun) files.
//
// All pitches assume A4 = MIDI 69 = 440 Hz.
package tuning
