// Package bench times repeated invocations of a function and reduces the
// samples to a best (minimum) wall-clock duration.
//
// The minimum is the statistic of interest: scheduling jitter, cache
// misses and GC pauses only ever add time, so the smallest observed
// sample is the closest estimate of the operation's intrinsic cost.
package bench

import "time"

// Default sampling limits.
const (
	DefaultBudget    = 1 * time.Second
	DefaultMaxTrials = 100
)

// Runner samples a function until a wall-clock budget or a trial ceiling
// is reached, whichever comes first. At least one timed trial always runs.
type Runner struct {
	// Budget is the total wall-clock time to spend on timed trials.
	Budget time.Duration
	// MaxTrials caps the number of timed trials.
	MaxTrials int
	// Warmup, when true, makes one untimed call before sampling so
	// first-call costs (lazy binding, interpreter specialization, page
	// faults on a cold array) never pollute the samples.
	Warmup bool
}

// Result holds the samples from one benchmarked function.
type Result struct {
	// Value is the function's return from the last timed trial.
	Value float64
	// Times are the per-trial elapsed durations, in trial order.
	Times []time.Duration
	// Best is the minimum of Times.
	Best time.Duration
	// Trials is len(Times).
	Trials int
}

// NewRunner returns a Runner with the default budget, ceiling and warm-up.
func NewRunner() *Runner {
	return &Runner{
		Budget:    DefaultBudget,
		MaxTrials: DefaultMaxTrials,
		Warmup:    true,
	}
}

// Run benchmarks fn. fn must be self-contained: any input it sums is
// captured by the closure and must not change between trials.
func (r *Runner) Run(fn func() float64) Result {
	budget := r.Budget
	if budget <= 0 {
		budget = DefaultBudget
	}
	maxTrials := r.MaxTrials
	if maxTrials <= 0 {
		maxTrials = DefaultMaxTrials
	}

	if r.Warmup {
		_ = fn()
	}

	res := Result{}
	deadline := time.Now().Add(budget)
	for trial := 0; trial < maxTrials; trial++ {
		start := time.Now()
		v := fn()
		elapsed := time.Since(start)

		res.Value = v
		res.Times = append(res.Times, elapsed)
		if res.Best == 0 || elapsed < res.Best {
			res.Best = elapsed
		}

		if time.Now().After(deadline) {
			break
		}
	}
	res.Trials = len(res.Times)
	return res
}
