// Package loopctl implements the adaptive loop controller: the
// warmup/measurement state machine that decides how many inner
// iterations to run per batch and when to stop (spec.md §4.4). This is
// the engine's largest and most load-bearing component.
package loopctl

import (
	"github.com/zapbench/zap/pkg/samplebuf"
	"github.com/zapbench/zap/pkg/timer"
)

// Phase is the controller's current state.
type Phase int

const (
	// Warmup runs first: caches and branch predictors stabilize while
	// the controller grows N until a batch takes on the order of
	// targetBatchNS. Samples taken during Warmup are discarded.
	Warmup Phase = iota
	// Measurement emits up to the configured sample count.
	Measurement
	// Done means the controller will not request another batch.
	Done
)

const (
	targetBatchNS    = int64(1_000_000)   // 1ms: the batch duration warmup aims for
	maxBatchNS       = int64(10_000_000)  // 10ms: above this, warmup halves N
	minSampleBatchNS = int64(500_000)     // 0.5ms: below this, measurement doubles N
	maxIterations    = int64(1_000_000_000)
	minSamplesBeforeTimeCutoff = 10
)

// Config bounds one controller run.
type Config struct {
	WarmupNS      int64
	MeasurementNS int64
	SampleCount   int

	// MinIterations is the inner-iteration count the controller starts
	// warmup from instead of 1 (spec.md §6's --min-iters). Useful when a
	// benchmark body is cheap enough that N=1 batches stay under the
	// clock's resolution even before the first warmup measurement.
	MinIterations int64
}

// Controller drives one benchmark's batches from Warmup through
// Measurement to Done. It is not safe for concurrent use; spec.md §5
// describes the engine as single-threaded and cooperative, and so is
// this type.
type Controller struct {
	clock  timer.Timer
	cfg    Config
	buffer *samplebuf.Buffer

	phase Phase
	n     int64 // current inner-iteration count per batch

	startTime      int64 // 0 means "not yet anchored in this phase"
	lastBatchStart int64
	batchEntry     int64

	measuring bool
	inBatch   bool // true between a successful StartBatch and the matching EndBatch
}

// New constructs a Controller. clock provides monotonic time reads;
// buffer is where Measurement-phase samples are appended (allocated by
// the caller per spec.md §5's allocator policy — one allocation per
// benchmark).
func New(clock timer.Timer, cfg Config, buffer *samplebuf.Buffer) *Controller {
	n := int64(1)
	if cfg.MinIterations > n {
		n = cfg.MinIterations
	}
	return &Controller{
		clock:  clock,
		cfg:    cfg,
		buffer: buffer,
		phase:  Warmup,
		n:      n,
	}
}

// N returns the current inner-iteration count for the in-progress (or
// most recently started) batch.
func (c *Controller) N() int64 { return c.n }

// Phase returns the controller's current state.
func (c *Controller) Phase() Phase { return c.phase }

// StartBatch requests another batch. The call that ends the run returns
// false and moves the controller to Done; every later call also returns
// false.
func (c *Controller) StartBatch() bool {
	if c.phase == Done {
		return false
	}
	if c.phase == Warmup {
		return c.startWarmupBatch()
	}
	return c.startMeasurementBatch()
}

func (c *Controller) startWarmupBatch() bool {
	now := c.clock.Now()

	if c.startTime == 0 {
		c.startTime = now
		c.lastBatchStart = now
		c.inBatch = true
		return true
	}

	batchElapsed := now - c.lastBatchStart
	totalElapsed := now - c.startTime

	switch {
	case batchElapsed > 0 && batchElapsed < targetBatchNS:
		factor := targetBatchNS / batchElapsed
		if factor > 1 {
			c.n *= factor
		} else {
			c.n *= 2
		}
	case batchElapsed > maxBatchNS:
		if c.n > 2 {
			c.n /= 2
		} else {
			c.n = 1
		}
	}
	c.clampN()

	if totalElapsed >= c.cfg.WarmupNS {
		c.phase = Measurement
		c.startTime = 0
		c.measuring = false
	}

	c.lastBatchStart = now
	c.inBatch = true
	return true
}

func (c *Controller) startMeasurementBatch() bool {
	if c.buffer.Len() >= c.cfg.SampleCount {
		c.phase = Done
		return false
	}

	now := c.clock.Now()
	if c.startTime == 0 {
		c.startTime = now
	} else if now-c.startTime >= c.cfg.MeasurementNS && c.buffer.Len() >= minSamplesBeforeTimeCutoff {
		c.phase = Done
		return false
	}

	c.measuring = true
	c.batchEntry = c.clock.Now()
	c.inBatch = true
	return true
}

// EndBatch records the outcome of the batch most recently started by
// StartBatch. It is a no-op during Warmup (warmup samples are
// discarded) or if StartBatch was not actually called first.
func (c *Controller) EndBatch() {
	if !c.inBatch {
		return
	}
	c.inBatch = false

	if !c.measuring || c.phase != Measurement {
		return
	}

	elapsed := c.clock.Now() - c.batchEntry
	sample := float64(elapsed) / float64(c.n)
	c.buffer.Append(sample)

	if elapsed < minSampleBatchNS {
		c.n *= 2
		c.clampN()
	}
	c.measuring = false
}

func (c *Controller) clampN() {
	if c.n > maxIterations {
		c.n = maxIterations
	}
	if c.n < 1 {
		c.n = 1
	}
}
