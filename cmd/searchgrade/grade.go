package main

import (
	"context"
	"io"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/searchgrade/grading"
	"github.com/katalvlaran/searchgrade/internal/config"
	"github.com/katalvlaran/searchgrade/internal/ctxlog"
	"github.com/katalvlaran/searchgrade/report"
	"github.com/katalvlaran/searchgrade/search"
	"github.com/katalvlaran/searchgrade/submission"
)

func newGradeCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "grade <manifest>",
		Short: "Run every declared search on every declared problem and print the scores",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}

			return gradeOnce(cmd.Context(), cfg, args[0], cmd.OutOrStdout())
		},
	}
}

// gradeOnce loads, builds, grades and prints one manifest.
func gradeOnce(ctx context.Context, cfg config.Config, path string, out io.Writer) error {
	logger := ctxlog.FromContext(ctx)

	m, err := submission.Load(ctx, path)
	if err != nil {
		return err
	}
	reg := search.NewRegistry(search.RegistryOptions{Seed: cfg.Seed, FlounderGiveUp: cfg.FlounderGiveUp})
	roster := submission.Build(ctx, m, reg, rand.New(rand.NewSource(cfg.Seed)))

	g, err := grading.New(
		grading.WithMaxExpansions(cfg.MaxExpansions),
		grading.WithRunTimeout(cfg.RunTimeout),
		grading.WithConcurrency(cfg.Concurrency),
	)
	if err != nil {
		return err
	}
	rep, err := g.GradeRoster(ctx, roster)
	if err != nil {
		return err
	}
	logger.Debug("Printing report.", "run_id", rep.RunID)
	return printerFor(out, cfg.NoColor).Report(rep)
}

// printerFor styles output only for terminals.
func printerFor(out io.Writer, noColor bool) *report.Printer {
	if f, ok := out.(*os.File); ok {
		return report.ForFile(f, noColor)
	}
	return report.New(out, false)
}
