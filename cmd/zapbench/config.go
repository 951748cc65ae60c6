package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zapbench/zap/internal/engine"
)

// flags mirrors spec.md §6's CLI surface. Values are read back out of
// viper after flag/env/file layering rather than bound directly to
// package-level vars, so config precedence (flags > env > .zapbench.yaml
// > defaults) is resolved in one place.
type flags struct {
	filter        string
	tags          []string
	baselinePath  string
	noSave        bool
	noCompare     bool
	failThreshold float64
	jsonOutput    bool
	samples       int
	minIters      int64
	warmup        string
	measurement   string
	color         string
	dryRun        bool
	list          bool
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) *flags {
	f := &flags{}
	fs := cmd.Flags()

	fs.StringVarP(&f.filter, "filter", "f", "", "name filter (substring or glob)")
	fs.StringSliceVarP(&f.tags, "tag", "t", nil, "required tag (repeatable)")
	fs.StringVar(&f.baselinePath, "baseline", "", "baseline file path")
	fs.StringVar(&f.baselinePath, "compare", "", "alias for --baseline")
	fs.StringVar(&f.baselinePath, "save-baseline", "", "alias for --baseline")
	fs.BoolVar(&f.noSave, "no-save", false, "disable writing the baseline")
	fs.BoolVar(&f.noCompare, "no-compare", false, "disable comparing against the baseline")
	fs.Float64Var(&f.failThreshold, "fail-threshold", 0, "exit status 1 if any regression exceeds this percent")
	fs.BoolVar(&f.jsonOutput, "json", false, "emit JSON-per-line instead of a text table")
	fs.IntVar(&f.samples, "samples", 0, "override the target sample count")
	fs.Int64Var(&f.minIters, "min-iters", 0, "override the starting inner-iteration count")
	fs.StringVar(&f.warmup, "warmup", "", "override the warmup duration (ns/us/ms/s/m)")
	fs.StringVar(&f.measurement, "time", "", "override the measurement duration (ns/us/ms/s/m)")
	fs.StringVar(&f.color, "color", "auto", "color policy: auto, always, never")
	fs.BoolVar(&f.dryRun, "dry-run", false, "enumerate matching benchmarks without running them")
	fs.BoolVar(&f.list, "list", false, "alias for --dry-run")

	_ = v.BindPFlags(fs)
	return f
}

// newViper builds a viper instance layering flags (bound by the caller)
// over ZAPBENCH_-prefixed environment variables over a .zapbench.yaml
// file over engine.DefaultConfig's defaults.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName(".zapbench")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("ZAPBENCH")
	v.AutomaticEnv()
	_ = v.ReadInConfig() // a missing config file is not an error; defaults stand

	def := engine.DefaultConfig()
	v.SetDefault("baseline", def.BaselinePath)
	v.SetDefault("samples", def.Default.SampleCount)
	v.SetDefault("warmup", time.Duration(def.Default.WarmupNS).String())
	v.SetDefault("time", time.Duration(def.Default.MeasurementNS).String())
	v.SetDefault("color", "auto")
	return v
}

// parseDuration accepts the ns/us/ms/s/m suffixes spec.md §6 documents.
func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	return d, nil
}

// resolveConfig merges the bound flags/viper values into an
// engine.Config, applying overrides only where the flag was actually
// set (a zero value falls back to the layered viper default).
func resolveConfig(v *viper.Viper, f *flags) (engine.Config, error) {
	cfg := engine.DefaultConfig()

	cfg.Filter = f.filter
	cfg.Tags = f.tags
	cfg.Compare = !f.noCompare
	cfg.Save = !f.noSave

	if path := v.GetString("baseline"); path != "" {
		cfg.BaselinePath = path
	}
	if f.baselinePath != "" {
		cfg.BaselinePath = f.baselinePath
	}

	if samples := v.GetInt("samples"); samples > 0 {
		cfg.Default.SampleCount = samples
	}
	if f.samples > 0 {
		cfg.Default.SampleCount = f.samples
	}

	if minIters := v.GetInt64("min-iters"); minIters > 0 {
		cfg.Default.MinIterations = minIters
	}
	if f.minIters > 0 {
		cfg.Default.MinIterations = f.minIters
	}

	warmupStr := f.warmup
	if warmupStr == "" {
		warmupStr = v.GetString("warmup")
	}
	if warmup, err := parseDuration(warmupStr); err != nil {
		return cfg, &engine.ConfigError{Msg: err.Error()}
	} else if warmup > 0 {
		cfg.Default.WarmupNS = warmup.Nanoseconds()
	}

	measurementStr := f.measurement
	if measurementStr == "" {
		measurementStr = v.GetString("time")
	}
	if measurement, err := parseDuration(measurementStr); err != nil {
		return cfg, &engine.ConfigError{Msg: err.Error()}
	} else if measurement > 0 {
		cfg.Default.MeasurementNS = measurement.Nanoseconds()
	}

	if f.failThreshold > 0 {
		threshold := f.failThreshold
		cfg.FailThreshold = &threshold
	}

	if err := cfg.Default.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
