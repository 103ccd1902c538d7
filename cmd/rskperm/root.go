package main

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/rskperm/engine"
	"github.com/katalvlaran/rskperm/random"
)

// app bundles what every subcommand needs once config is resolved.
type app struct {
	cfg    *Config
	logger *zap.Logger
	out    io.Writer
}

// NewRootCommand creates the root command for the rskperm CLI.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rskperm",
		Short: "Random permutations from Young diagram shapes",
		Long: `rskperm draws a uniformly random pair of standard Young tableaux of a
shape with the Greene–Nijenhuis–Wilf hook walk and inverts the
Robinson–Schensted–Knuth correspondence to obtain a permutation.

Shapes use the syntax "4,3,1" or "50^50" (50 rows of length 50).`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	pf := cmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "debug logging to stderr")
	pf.String("format", "text", "output format (text|json|yaml)")
	pf.String("config", "", "YAML config file")
	pf.Uint64("seed", 0, "seed for a reproducible run (default: crypto entropy)")
	pf.Int("max-attempts", 0, "cap on empty-cell draws per label (0: derived from shape)")

	cmd.AddCommand(newSampleCommand(stdout, stderr))
	cmd.AddCommand(newTableauCommand(stdout, stderr))
	cmd.AddCommand(newStaircaseCommand(stdout, stderr))

	return cmd
}

// prepare resolves config and logger for cmd.
func prepare(cmd *cobra.Command, stdout, stderr io.Writer) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "configuration", err)
	}
	return &app{cfg: cfg, logger: newLogger(stderr, cfg.Verbose), out: stdout}, nil
}

// source returns the configured deviate source, offset by stream so parallel
// P and Q draws get independent sequences.
func (a *app) source(stream uint64) random.Source {
	if a.cfg.Seeded {
		return random.NewSeeded(a.cfg.Seed + stream)
	}
	return random.Crypto()
}

// engineOptions maps config onto engine options.
func (a *app) engineOptions() ([]engine.Option, error) {
	opts := []engine.Option{engine.WithLogger(a.logger), engine.WithSource(a.source(0))}
	if a.cfg.Mode != "" {
		mode, err := engine.ParseMode(a.cfg.Mode)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "mode", err)
		}
		opts = append(opts, engine.WithMode(mode))
	}
	if a.cfg.Parallel {
		opts = append(opts, engine.WithPairSources(a.source(0), a.source(1)))
	}
	if a.cfg.MaxAttempts > 0 {
		opts = append(opts, engine.WithMaxAttempts(a.cfg.MaxAttempts))
	}
	return opts, nil
}
