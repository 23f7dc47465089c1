package tuning

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const tunExactSection = "[exact tuning]"

// ParseTUN reads the [Exact Tuning] section of an AnaMark tuning file,
// "note N=cents" lines giving the pitch of MIDI note N in cents above MIDI
// note 0. Notes the file does not list keep their 12-TET pitch.
func ParseTUN(r io.Reader) (*Scale, error) {
	cents := make([]float64, midiNotes)
	for i := range cents {
		cents[i] = 100 * float64(i)
	}

	inSection, found := false, false
	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := sc.Text()
		if i := strings.IndexByte(line, ';'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") {
			inSection = strings.EqualFold(line, tunExactSection)
			found = found || inSection
			continue
		}
		if !inSection {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("%w: tun line %d: missing '='", ErrMalformedScale, lineNo)
		}
		fields := strings.Fields(key)
		if len(fields) != 2 || !strings.EqualFold(fields[0], "note") {
			continue
		}

		note, err := strconv.Atoi(fields[1])
		if err != nil || note < 0 || note >= midiNotes {
			return nil, fmt.Errorf("%w: tun line %d: invalid note %q", ErrMalformedScale, lineNo, fields[1])
		}
		c, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: tun line %d: %w", ErrMalformedScale, lineNo, err)
		}
		cents[note] = c
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tuning: read tun: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("%w: tun has no [Exact Tuning] section", ErrMalformedScale)
	}

	return NewTable(cents)
}
