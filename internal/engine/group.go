package engine

// Group is an ordered list of benchmarks sharing a BenchConfig and a set
// of tags (spec.md §3, §4.9). Groups scope configuration and reporting;
// they do not namespace names (spec.md §9's "Name-space collisions"
// note — the core does not prefix benchmark names by group).
type Group struct {
	Name string

	tags    []string
	cfg     BenchConfig
	hasCfg  bool
	benches []registeredBench
}

type registeredBench struct {
	name string
	fn   Func
}

// NewGroup starts a new, empty Group.
func NewGroup(name string) *Group {
	return &Group{Name: name}
}

// WithTags attaches tags to the group, grounded on
// original_source/zap.h's zap_group_tag and exercised by
// example_advanced.c ("fast", "slow" groupings). Benchmarks inherit
// their group's tags (spec.md §4.9).
func (g *Group) WithTags(tags ...string) *Group {
	g.tags = append(g.tags, tags...)
	return g
}

// WithWarmup overrides the group's warmup duration away from the
// process default, grounded on zap_group_warmup_time in
// original_source/zap.h.
func (g *Group) WithWarmup(ns int64) *Group {
	g.hasCfg = true
	g.cfg.WarmupNS = ns
	return g
}

// WithMeasurement overrides the group's measurement duration, grounded
// on zap_group_measurement_time.
func (g *Group) WithMeasurement(ns int64) *Group {
	g.hasCfg = true
	g.cfg.MeasurementNS = ns
	return g
}

// WithSampleCount overrides the group's target sample count, grounded
// on zap_group_sample_count.
func (g *Group) WithSampleCount(n int) *Group {
	g.hasCfg = true
	g.cfg.SampleCount = n
	return g
}

// Add registers a benchmark under name, run in registration order
// (spec.md §5).
func (g *Group) Add(name string, fn Func) *Group {
	g.benches = append(g.benches, registeredBench{name: name, fn: fn})
	return g
}

// AddParam registers a parameterized benchmark, composing its canonical
// name via BenchID.
func (g *Group) AddParam(label string, param any, fn Func) *Group {
	return g.Add(BenchID(label, param), fn)
}

// resolveConfig returns def with each field the group set to a non-zero
// value via With* replaced by the group's value; def unchanged if no
// With* was called.
func (g *Group) resolveConfig(def BenchConfig) BenchConfig {
	if !g.hasCfg {
		return def
	}
	cfg := def
	if g.cfg.WarmupNS != 0 {
		cfg.WarmupNS = g.cfg.WarmupNS
	}
	if g.cfg.MeasurementNS != 0 {
		cfg.MeasurementNS = g.cfg.MeasurementNS
	}
	if g.cfg.SampleCount != 0 {
		cfg.SampleCount = g.cfg.SampleCount
	}
	return cfg
}

// tagsMatch implements spec.md §4.9's OR semantics: a group matches iff
// it shares at least one tag with required, or required is empty.
func tagsMatch(groupTags, required []string) bool {
	if len(required) == 0 {
		return true
	}
	for _, want := range required {
		for _, have := range groupTags {
			if want == have {
				return true
			}
		}
	}
	return false
}
