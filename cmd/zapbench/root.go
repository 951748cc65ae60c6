package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// exitCode is read by main after Execute returns without error; it is
// set by runBenchmarks to spec.md §6's regression exit status.
var exitCode int

func newRootCmd() *cobra.Command {
	v := newViper()
	var f *flags
	var logger *zap.Logger

	root := &cobra.Command{
		Use:   "zapbench",
		Short: "a native micro-benchmarking engine",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := zap.NewProduction()
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer logger.Sync() //nolint:errcheck
			cfg, err := resolveConfig(v, f)
			if err != nil {
				return err
			}
			code, err := runBenchmarks(cmd, cfg, f, logger)
			exitCode = code
			return err
		},
	}

	f = bindFlags(root, v)
	return root
}
