package tuning

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ParseSCL reads a Scala scale file: a description line, the number of
// degrees, then one pitch per degree. Pitches containing a '.' are cents,
// anything else is a ratio "a/b" or a whole number. Lines starting with '!'
// are comments.
func ParseSCL(r io.Reader) (*Scale, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.HasPrefix(line, "!") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tuning: read scl: %w", err)
	}

	// lines[0] is the free-form description.
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: scl needs a description and a note count", ErrMalformedScale)
	}

	countField := firstField(lines[1])
	count, err := strconv.Atoi(countField)
	if err != nil || count < 1 {
		return nil, fmt.Errorf("%w: invalid scl note count %q", ErrMalformedScale, countField)
	}

	pitches := lines[2:]
	if len(pitches) < count {
		return nil, fmt.Errorf("%w: scl declares %d notes but lists %d", ErrMalformedScale, count, len(pitches))
	}

	steps := make([]float64, count)
	for i := range steps {
		steps[i], err = parseSCLPitch(firstField(pitches[i]))
		if err != nil {
			return nil, fmt.Errorf("%w: scl degree %d: %w", ErrMalformedScale, i+1, err)
		}
	}
	return NewScale(steps)
}

func parseSCLPitch(field string) (float64, error) {
	if field == "" {
		return 0, errors.New("empty pitch")
	}

	if strings.Contains(field, ".") {
		if strings.Contains(field, "/") {
			return 0, fmt.Errorf("pitch %q mixes cents and ratio", field)
		}
		return strconv.ParseFloat(field, 64)
	}

	numStr, denStr, hasDen := strings.Cut(field, "/")
	if !hasDen {
		denStr = "1"
	}
	num, err := strconv.ParseUint(numStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("ratio %q: %w", field, err)
	}
	den, err := strconv.ParseUint(denStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("ratio %q: %w", field, err)
	}
	if num == 0 || den == 0 {
		return 0, fmt.Errorf("ratio %q must be positive", field)
	}
	return 1200 * math.Log2(float64(num)/float64(den)), nil
}

func firstField(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
