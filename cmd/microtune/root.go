package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cwbudde/algo-microtune/internal/config"
	"github.com/cwbudde/algo-microtune/retune"
	"github.com/cwbudde/algo-microtune/utau/flags"
)

// Positions of the resampler arguments.
const (
	argInFile = iota
	argOutFile
	argPitch
	argVelocity
	argFlags
	argOffset
	argLength
	argConsonant
	argCutoff
	argVolume
	argModulation
	argTempo
	argPitchBend

	resamplerArgs
)

type app struct {
	configPath string
	verbose    bool
	dryRun     bool

	logger *zap.Logger
	exec   func(ctx context.Context, argv []string) error
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "microtune [flags] in_file out_file pitch velocity flags offset length consonant cutoff volume modulation tempo pitchbend",
		Short: "Retune resampler calls to 31-EDO or another scale",
		Long: `microtune is called by the editor in place of a resampler. It rewrites the
pitch, flags and pitch bend arguments so the note sounds in the configured
tuning, then runs the real resampler with all other arguments unchanged.`,
		Args:          cobra.ExactArgs(resamplerArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return nil
			}

			cfg := zap.NewProductionConfig()
			cfg.Encoding = "console"
			cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
			if a.verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			a.logger, err = cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: a.run,
	}

	// Resampler arguments such as a negative cutoff must not be read as flags.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVarP(&a.configPath, "config", "c", "", "config file (default "+config.DefaultFileName+" next to the executable)")
	cmd.Flags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug output")
	cmd.Flags().BoolVar(&a.dryRun, "dry-run", false, "print the resampler command instead of running it")

	return cmd
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	path := a.configPath
	if path == "" {
		path = defaultConfigPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if a.dryRun {
		cfg.DryRun = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var (
		res       retune.Result
		resampler string
	)
	switch cfg.Mode {
	case config.ModeScale:
		res, resampler, err = a.rescale(cfg, args)
	default:
		res, resampler, err = a.detune31(cfg, args)
	}
	if err != nil {
		return err
	}

	argv := resamplerCommand(cfg.Launcher, resampler, args, res)
	if cfg.DryRun {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), formatCommand(argv))
		return err
	}

	a.logger.Debug("running resampler", zap.Strings("argv", argv))
	return a.exec(cmd.Context(), argv)
}

func (a *app) detune31(cfg *config.Config, args []string) (retune.Result, string, error) {
	r, err := retune.New(
		retune.WithLogger(a.logger),
		retune.WithCenterNote(cfg.Scale.CenterNote),
	)
	if err != nil {
		return retune.Result{}, "", err
	}

	res, err := r.Detune31(args[argPitchBend], args[argPitch], args[argFlags])
	return res, cfg.DefaultResampler(), err
}

// rescale reads the selector flags of the note, which pick its tuning, center
// note and resampler, and strips them before the flags reach the resampler.
func (a *app) rescale(cfg *config.Config, args []string) (retune.Result, string, error) {
	sel, rest, err := flags.ExtractSelectors(args[argFlags])
	if err != nil {
		return retune.Result{}, "", err
	}
	choice, err := cfg.Select(sel)
	if err != nil {
		return retune.Result{}, "", err
	}
	a.logger.Debug("selected tuning",
		zap.Int("size", choice.Scale.Size()),
		zap.Int("center", choice.CenterNote),
		zap.String("resampler", choice.Resampler))

	r, err := retune.New(
		retune.WithLogger(a.logger),
		retune.WithCenterNote(choice.CenterNote),
	)
	if err != nil {
		return retune.Result{}, "", err
	}

	res, err := r.Rescale(choice.Scale, args[argPitchBend], args[argPitch], rest)
	return res, choice.Resampler, err
}

// resamplerCommand substitutes the retuned values into args and prefixes the
// launcher and resampler path.
func resamplerCommand(launcher []string, resampler string, args []string, res retune.Result) []string {
	argv := make([]string, 0, len(launcher)+1+len(args))
	argv = append(argv, launcher...)
	argv = append(argv, resampler)

	start := len(argv)
	argv = append(argv, args...)
	argv[start+argPitch] = res.Note
	argv[start+argFlags] = res.Flags
	argv[start+argPitchBend] = res.PitchBend
	return argv
}

func formatCommand(argv []string) string {
	quoted := make([]string, len(argv))
	for i, s := range argv {
		if s == "" || strings.ContainsAny(s, " \t\"'#$\\") {
			s = strconv.Quote(s)
		}
		quoted[i] = s
	}
	return strings.Join(quoted, " ")
}

func defaultConfigPath() string {
	exe, err := os.Executable()
	if err != nil {
		return config.DefaultFileName
	}
	return filepath.Join(filepath.Dir(exe), config.DefaultFileName)
}

func execResampler(ctx context.Context, argv []string) error {
	c := exec.CommandContext(ctx, argv[0], argv[1:]...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}
