package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rskperm/engine"
	"github.com/katalvlaran/rskperm/shape"
)

func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().String("mark", "X", "matrix cell glyph for σ entries")
	cmd.Flags().String("blank", ".", "matrix cell glyph for empty entries")
}

func newSampleCommand(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Sample a permutation from a shape",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := prepare(cmd, stdout, stderr)
			if err != nil {
				return err
			}
			p, err := parseShape(a.cfg.Shape, a.cfg.Cells)
			if err != nil {
				return err
			}
			return a.samplePermutation(cmd, p)
		},
	}
	cmd.Flags().StringP("shape", "s", "", `partition, e.g. "4,3,1" or "7^7"`)
	cmd.Flags().Int("cells", 0, "resize the shape to this many cells (0 keeps it)")
	cmd.Flags().String("mode", engine.ModeShortcut.String(), "inverse procedure (shortcut|bumping)")
	cmd.Flags().Bool("parallel", false, "draw P and Q concurrently")
	addRenderFlags(cmd)
	return cmd
}

func newStaircaseCommand(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staircase K",
		Short: "Sample a permutation from the staircase K, K-1, …, 1",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := prepare(cmd, stdout, stderr)
			if err != nil {
				return err
			}
			k, err := strconv.Atoi(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "staircase size", err)
			}
			p, err := shape.Staircase(k)
			if err != nil {
				return WrapExitError(ExitCommandError, "staircase size", err)
			}
			return a.samplePermutation(cmd, p)
		},
	}
	cmd.Flags().String("mode", engine.ModeShortcut.String(), "inverse procedure (shortcut|bumping)")
	cmd.Flags().Bool("parallel", false, "draw P and Q concurrently")
	addRenderFlags(cmd)
	return cmd
}

func newTableauCommand(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tableau",
		Short: "Sample one uniformly random standard Young tableau",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := prepare(cmd, stdout, stderr)
			if err != nil {
				return err
			}
			p, err := parseShape(a.cfg.Shape, a.cfg.Cells)
			if err != nil {
				return err
			}
			opts, err := a.engineOptions()
			if err != nil {
				return err
			}
			t, err := engine.New(opts...).SampleTableau(p)
			if err != nil {
				return WrapExitError(ExitFailure, "sampling failed", err)
			}
			return writeTableau(a.out, a.cfg.Format, p, t)
		},
	}
	cmd.Flags().StringP("shape", "s", "", `partition, e.g. "4,3,1" or "7^7"`)
	cmd.Flags().Int("cells", 0, "resize the shape to this many cells (0 keeps it)")
	addRenderFlags(cmd)
	return cmd
}

// parseShape reads --shape and, when cells > 0, resizes it to that many cells.
func parseShape(text string, cells int) (shape.Partition, error) {
	if text == "" {
		return nil, WrapExitError(ExitCommandError, "shape", fmt.Errorf("--shape is required"))
	}
	p, err := shape.Parse(text)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "shape", err)
	}
	if cells > 0 {
		if p, err = shape.Scale(p, cells); err != nil {
			return nil, WrapExitError(ExitCommandError, "shape", err)
		}
	}
	return p, nil
}

// samplePermutation runs the engine on p and prints the result.
func (a *app) samplePermutation(cmd *cobra.Command, p shape.Partition) error {
	defer func() { _ = a.logger.Sync() }()

	opts, err := a.engineOptions()
	if err != nil {
		return err
	}
	res, err := engine.New(opts...).Run(cmd.Context(), p)
	if err != nil {
		return WrapExitError(ExitFailure, "sampling failed", err)
	}
	return writeResult(a.out, a.cfg, res)
}
