package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zapbench/zap/internal/engine"
	"github.com/zapbench/zap/internal/report"
)

// runBenchmarks wires an Engine from cfg, registers the example
// benchmark groups, and either lists matching benchmarks (--dry-run /
// --list) or runs them, rendering through the text or JSON reporter
// (spec.md §6). It returns the process exit code per spec.md §6: 0 on
// success, 1 if any regression exceeded fail_threshold.
func runBenchmarks(cmd *cobra.Command, cfg engine.Config, f *flags, logger *zap.Logger) (int, error) {
	e := engine.New(cfg, logger)

	if cfg.Compare {
		if err := e.LoadBaseline(); err != nil {
			return 2, fmt.Errorf("loading baseline: %w", err)
		}
	}

	groups := exampleGroups()

	if f.dryRun || f.list {
		for _, name := range e.List(groups) {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return 0, nil
	}

	colorMode, err := report.ParseColorMode(f.color)
	if err != nil {
		return 2, err
	}

	var reporter engine.Reporter
	if f.jsonOutput {
		reporter = report.NewJSONReporter(cmd.OutOrStdout(), e.RunID())
	} else {
		reporter = report.NewTextReporter(cmd.OutOrStdout(), colorMode)
	}
	e.SetReporter(reporter)

	summary, err := e.Run(groups)
	if err != nil {
		return 2, err
	}

	if cfg.Save {
		if err := e.SaveBaseline(); err != nil {
			logger.Warn("could not save baseline", zap.Error(err))
		}
	}

	if summary.HasRegression {
		return 1, nil
	}
	return 0, nil
}
