// Package flags parses resampler flag strings such as "g-5B20Y0".
//
// A flag string is a run of (letter, signed integer) pairs with no separators.
// A letter starts a new flag, an optional '-' negates it and the digits that
// follow accumulate its decimal value. A letter given twice keeps its first
// position and takes the value of its last occurrence.
package flags
