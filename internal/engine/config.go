package engine

import "fmt"

// BenchConfig bounds one benchmark's (or one group's) run: warmup
// duration, measurement duration, and target sample count (spec.md §3).
type BenchConfig struct {
	WarmupNS      int64
	MeasurementNS int64
	SampleCount   int

	// MinIterations overrides the inner-iteration count warmup starts
	// from (spec.md §6's --min-iters); 0 leaves the controller's own
	// default (1) in place.
	MinIterations int64
}

// Validate enforces spec.md §3's BenchConfig invariant: all fields
// positive, sample_count >= 10.
func (c BenchConfig) Validate() error {
	switch {
	case c.WarmupNS <= 0:
		return &ConfigError{Msg: "warmup duration must be positive"}
	case c.MeasurementNS <= 0:
		return &ConfigError{Msg: "measurement duration must be positive"}
	case c.SampleCount < 10:
		return &ConfigError{Msg: fmt.Sprintf("sample count must be >= 10, got %d", c.SampleCount)}
	}
	return nil
}

// Config is the process-wide configuration spec.md §9 says to
// reconstitute as an explicit object rather than a global: the default
// BenchConfig new groups inherit, the active name and tag filters, and
// the baseline policy.
type Config struct {
	Default BenchConfig

	Filter        string
	Tags          []string
	BaselinePath  string
	Compare       bool
	Save          bool
	FailThreshold *float64 // nil disables the regression-driven exit status
}

// DefaultConfig returns spec.md §6's documented CLI defaults: baseline
// path ".zap/baseline", compare on, save on, 100 samples, 1s warmup, 3s
// measurement.
func DefaultConfig() Config {
	return Config{
		Default: BenchConfig{
			WarmupNS:      1_000_000_000,
			MeasurementNS: 3_000_000_000,
			SampleCount:   100,
		},
		BaselinePath: ".zap/baseline",
		Compare:      true,
		Save:         true,
	}
}
