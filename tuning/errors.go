package tuning

import "errors"

var (
	// ErrUnknownNote reports a note name that is not in the table.
	ErrUnknownNote = errors.New("tuning: unknown note")
	// ErrMalformedScale reports an invalid scale definition or file.
	ErrMalformedScale = errors.New("tuning: malformed scale")
)
