package engine

import (
	"errors"
	"fmt"
)

// ConfigError reports a malformed BenchConfig or CLI configuration
// (spec.md §7): the process exits non-zero before any benchmark runs.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return fmt.Sprintf("config: %s", e.Msg) }

// ErrReentrant is returned by Run if the engine is asked to start a run
// while one is already in progress. spec.md §9 forbids a benchmark
// routine invoking another benchmark; this guard catches the coarser
// case of Run being called re-entrantly from within a reporter hook or
// a user routine.
var ErrReentrant = errors.New("engine: run already in progress")

// InsufficientSamples is a warning, not an error (spec.md §7): the
// measurement time budget cut a run short of its target sample count.
// It is attached to a Result rather than returned, since it is "never
// fatal".
type InsufficientSamples struct {
	Name string
	Got  int
	Want int
}

func (w InsufficientSamples) String() string {
	return fmt.Sprintf("%s: only %d/%d samples collected before the measurement time budget elapsed", w.Name, w.Got, w.Want)
}
