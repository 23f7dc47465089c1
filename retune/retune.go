package retune

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-microtune/tuning"
	"github.com/cwbudde/algo-microtune/utau/flags"
	"github.com/cwbudde/algo-microtune/utau/pitchbend"
)

// Result holds the replacement resampler arguments.
type Result struct {
	// Note is the note the resampler should render.
	Note string
	// Flags is the flag string with consumed flags removed.
	Flags string
	// PitchBend is the re-encoded pitch-bend curve.
	PitchBend string
	// Clipped counts samples that had to be limited to the 12-bit range.
	Clipped int
}

// Retuner turns resampler arguments into retuned ones.
type Retuner struct {
	table  *tuning.DetuneTable
	center int
	logger *zap.Logger
}

// New creates a Retuner. Without options it detunes to 31-EDO, centers
// scales on A4 and does not log.
func New(opts ...Option) (*Retuner, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Retuner{
		table:  cfg.table,
		center: cfg.center,
		logger: cfg.logger,
	}, nil
}

// Detune31 decodes pitchBend, adds the note's detune and the Z flag detune to
// every sample, and re-encodes it. The note is returned unchanged and the
// flag string without its Z flag.
func (r *Retuner) Detune31(pitchBend, note, flagString string) (Result, error) {
	curve, err := pitchbend.Decode(pitchBend)
	if err != nil {
		return Result{}, fmt.Errorf("retune: pitch bend: %w", err)
	}

	noteDetune, err := r.table.NoteDetune(note)
	if err != nil {
		return Result{}, fmt.Errorf("retune: note: %w", err)
	}

	rest, flagDetune, err := flags.ExtractDetune(flagString)
	if err != nil {
		return Result{}, fmt.Errorf("retune: flags: %w", err)
	}

	values := curve.Float64s()
	offsetBlock(values, noteDetune+flagDetune)

	r.logger.Debug("detune",
		zap.String("note", note),
		zap.Float64("note_cents", noteDetune),
		zap.Float64("flag_cents", flagDetune),
		zap.Int("samples", len(values)))

	return r.finish(Result{Note: note, Flags: rest}, values)
}

// Rescale maps every sample of pitchBend, taken as an offset from note,
// through s. The returned note is the one nearest to the mean retuned pitch
// and the curve is re-expressed relative to it. Flags pass through unchanged.
func (r *Retuner) Rescale(s *tuning.Scale, pitchBend, note, flagString string) (Result, error) {
	curve, err := pitchbend.Decode(pitchBend)
	if err != nil {
		return Result{}, fmt.Errorf("retune: pitch bend: %w", err)
	}
	if len(curve) == 0 {
		return Result{}, fmt.Errorf("retune: pitch bend: %w", pitchbend.ErrEmptyCurve)
	}

	midi, err := tuning.ParseNote(note)
	if err != nil {
		return Result{}, fmt.Errorf("retune: note: %w", err)
	}

	ref := float64(r.center)
	base := 100 * float64(midi-r.center)
	values := curve.Float64s()
	for i, v := range values {
		values[i] = s.Cents(ref+(base+v)/100, ref)
	}

	mean := vecmath.Sum(values) / float64(len(values))
	target := r.center + int(math.Round(mean/100))
	offsetBlock(values, -100*float64(target-r.center))

	r.logger.Debug("rescale",
		zap.String("note", note),
		zap.String("target", tuning.NoteName(target)),
		zap.Float64("mean_cents", mean))

	return r.finish(Result{Note: tuning.NoteName(target), Flags: flagString}, values)
}

func (r *Retuner) finish(res Result, values []float64) (Result, error) {
	curve, clipped := pitchbend.Clamp(values)
	if clipped > 0 {
		r.logger.Warn("pitch bend clipped",
			zap.Int("clipped", clipped),
			zap.Int("samples", len(curve)))
	}

	enc, err := pitchbend.Encode(curve)
	if err != nil {
		return Result{}, fmt.Errorf("retune: pitch bend: %w", err)
	}

	res.PitchBend = enc
	res.Clipped = clipped
	return res, nil
}

// offsetBlock adds cents to every value.
func offsetBlock(values []float64, cents float64) {
	if cents == 0 || len(values) == 0 {
		return
	}
	offsets := make([]float64, len(values))
	for i := range offsets {
		offsets[i] = cents
	}
	vecmath.AddBlockInPlace(values, offsets)
}
