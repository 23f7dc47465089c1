// Package config loads the resampler wrapper configuration.
package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-microtune/tuning"
	"github.com/cwbudde/algo-microtune/utau/flags"
)

// DefaultFileName is looked up next to the executable when no path is given.
const DefaultFileName = "microtune.yaml"

// Mode selects how the pitch bend is retuned.
type Mode string

const (
	// ModeEDO31 detunes each note onto 31-EDO and honours the Z flag.
	ModeEDO31 Mode = "edo31"
	// ModeScale maps the curve through an arbitrary scale.
	ModeScale Mode = "scale"
)

// Config holds the wrapper configuration.
type Config struct {
	// Resampler is the path of the real resampler executable.
	Resampler string `yaml:"resampler"`
	// Resamplers are picked per note with the ! flag.
	Resamplers map[int]string `yaml:"resamplers"`
	// Tunings are .scl or .tun files picked per note with the ^ flag.
	Tunings map[int]string `yaml:"tunings"`
	// Launcher is prepended to the resampler command, e.g. ["wine"].
	Launcher []string `yaml:"launcher"`
	// Mode defaults to edo31.
	Mode  Mode        `yaml:"mode"`
	Scale ScaleConfig `yaml:"scale"`
	// DryRun prints the resampler command instead of running it.
	DryRun bool `yaml:"dry_run"`

	dir string
}

// ScaleConfig configures scale mode. At most one of EDO and File is set.
// With neither, every note must select its tuning through flags.
type ScaleConfig struct {
	EDO  int    `yaml:"edo"`
	File string `yaml:"file"` // .scl or .tun, relative to the config file
	// CenterNote is the MIDI note that keeps its 12-TET pitch.
	CenterNote int `yaml:"center_note"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Mode: ModeEDO31,
		Scale: ScaleConfig{
			CenterNote: 69,
		},
	}
}

// Load reads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.dir = filepath.Dir(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("MICROTUNE_RESAMPLER"); v != "" {
		c.Resampler = v
	}
	if v := os.Getenv("MICROTUNE_MODE"); v != "" {
		c.Mode = Mode(v)
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Resampler == "" && len(c.Resamplers) == 0 {
		return errors.New("config: resampler path is required")
	}

	switch c.Mode {
	case ModeEDO31:
	case ModeScale:
		if c.Scale.EDO > 0 && c.Scale.File != "" {
			return errors.New("config: scale.edo and scale.file are mutually exclusive")
		}
		if c.Scale.EDO < 0 {
			return fmt.Errorf("config: scale.edo must be positive: %d", c.Scale.EDO)
		}
	default:
		return fmt.Errorf("config: unknown mode %q", c.Mode)
	}

	if c.Scale.CenterNote < 0 || c.Scale.CenterNote > 127 {
		return fmt.Errorf("config: scale.center_note must be in [0, 127]: %d", c.Scale.CenterNote)
	}
	return nil
}

// ResolvePath interprets p relative to the directory of the config file.
func (c *Config) ResolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.dir, p)
}

// LoadScale builds the scale selected by the scale section.
func (c *Config) LoadScale() (*tuning.Scale, error) {
	switch {
	case c.Scale.File != "":
		return tuning.LoadScale(c.ResolvePath(c.Scale.File))
	case c.Scale.EDO > 0:
		return tuning.NewEDO(c.Scale.EDO)
	}
	return nil, errors.New("config: no scale configured and none selected by flags")
}

// DefaultResampler returns the resolved path of the resampler used when a
// note does not pick one. Without a resampler entry it falls back to the
// lowest indexed entry of resamplers.
func (c *Config) DefaultResampler() string {
	if c.Resampler != "" || len(c.Resamplers) == 0 {
		return c.ResolvePath(c.Resampler)
	}
	return c.ResolvePath(c.Resamplers[slices.Min(slices.Collect(maps.Keys(c.Resamplers)))])
}

// Selection is the tuning and resampler chosen for one note.
type Selection struct {
	Scale      *tuning.Scale
	CenterNote int
	Resampler  string
}

// Select resolves the selector flags of one note against the configuration.
// A tuning file picked with ^ carries its own reference pitch and cannot be
// combined with # or $. Selectors that are absent fall back to the scale
// section and the default resampler.
func (c *Config) Select(sel *flags.Flags) (Selection, error) {
	out := Selection{
		CenterNote: c.Scale.CenterNote,
		Resampler:  c.DefaultResampler(),
	}

	if i, ok := sel.Get(flags.ResamplerSelector); ok {
		p, ok := c.Resamplers[i]
		if !ok {
			return Selection{}, fmt.Errorf("config: no resampler with index %d", i)
		}
		out.Resampler = c.ResolvePath(p)
	}

	edo, hasEDO := sel.Get(flags.EDOSelector)
	center, hasCenter := sel.Get(flags.CenterSelector)
	var err error
	if i, ok := sel.Get(flags.TuningSelector); ok {
		if hasEDO || hasCenter {
			return Selection{}, errors.New("config: tuning file selector cannot be combined with edo or center selectors")
		}
		p, ok := c.Tunings[i]
		if !ok {
			return Selection{}, fmt.Errorf("config: no tuning with index %d", i)
		}
		if out.Scale, err = tuning.LoadScale(c.ResolvePath(p)); err != nil {
			return Selection{}, err
		}
		return out, nil
	}

	if hasCenter {
		if center < 0 || center > 127 {
			return Selection{}, fmt.Errorf("config: center note selector must be in [0, 127]: %d", center)
		}
		out.CenterNote = center
	}
	if hasEDO {
		out.Scale, err = tuning.NewEDO(edo)
	} else {
		out.Scale, err = c.LoadScale()
	}
	if err != nil {
		return Selection{}, err
	}
	return out, nil
}
