package retune

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-microtune/tuning"
)

const (
	defaultCenterNote = 69
	maxMIDINote       = 127
)

type config struct {
	table  *tuning.DetuneTable
	center int
	logger *zap.Logger
}

func defaultConfig() config {
	return config{
		table:  tuning.EDO31,
		center: defaultCenterNote,
		logger: zap.NewNop(),
	}
}

// Option configures a [Retuner].
type Option func(*config) error

// WithDetuneTable sets the table used by Detune31 (default [tuning.EDO31]).
func WithDetuneTable(t *tuning.DetuneTable) Option {
	return func(cfg *config) error {
		if t == nil {
			return errors.New("retune: detune table must not be nil")
		}
		cfg.table = t
		return nil
	}
}

// WithCenterNote sets the MIDI note that keeps its 12-TET pitch in Rescale
// (default 69, A4).
func WithCenterNote(note int) Option {
	return func(cfg *config) error {
		if note < 0 || note > maxMIDINote {
			return fmt.Errorf("retune: center note must be in [0, %d]: %d", maxMIDINote, note)
		}
		cfg.center = note
		return nil
	}
}

// WithLogger sets the logger that receives clipping warnings (default no-op).
func WithLogger(l *zap.Logger) Option {
	return func(cfg *config) error {
		if l == nil {
			return errors.New("retune: logger must not be nil")
		}
		cfg.logger = l
		return nil
	}
}
