// Package search implements the version search over a candidate catalog.
// The bisection engine assumes compatibility is monotonic in version
// order: every version below the minimal working one fails, every version
// at or above it succeeds. Under that assumption it converges in at most
// ceil(log2 N) probes after the initial boundary check.
package search

import (
	"context"
	"math/bits"

	"github.com/indaco/cmakemin/internal/catalog"
	"github.com/indaco/cmakemin/internal/probe"
)

// Trial records one probe and the progress at which it was reported.
type Trial struct {
	Candidate catalog.Candidate
	Outcome   probe.Outcome
	Percent   int
}

// Result is the terminal outcome of a search.
type Result struct {
	// Found reports whether a working version exists in the catalog.
	Found bool

	// Minimal is the lowest candidate that succeeded. Only valid when
	// Found is true.
	Minimal catalog.Candidate

	// Trials is the ordered trace of every probe performed.
	Trials []Trial

	// Inconclusive counts trials that ended in an invocation error. Such
	// trials are treated as failures to keep the search terminating, but
	// they are environment failures, not compatibility verdicts; callers
	// should surface them as a warning.
	Inconclusive int
}

// BoundaryInconclusive reports whether a not-found result rests on an
// invocation error at the boundary probe. In that case nothing was
// learned about the highest candidate and the result should be treated
// as a tooling failure rather than a verdict.
func (r Result) BoundaryInconclusive() bool {
	return !r.Found && len(r.Trials) > 0 && r.Trials[0].Outcome.Status == probe.StatusInvocationError
}

// Engine drives probes over a catalog. Each Run call owns its bounds for
// the duration of the search; engines hold no per-search state, so
// independent searches on distinct projects may run concurrently.
type Engine struct {
	prober   probe.Prober
	reporter Reporter
}

// NewEngine creates an engine. reporter may be nil to disable reporting.
func NewEngine(prober probe.Prober, reporter Reporter) *Engine {
	return &Engine{prober: prober, reporter: reporter}
}

// Run performs a bisection search and returns the minimal working
// candidate, or a not-found result if even the highest candidate fails.
//
// The highest candidate is probed first: if it fails, no candidate can
// satisfy the project and the search stops after one probe. Invocation
// errors shrink the interval from below exactly like configuration
// errors, so the loop always terminates; they can never become the
// answer because the best index only moves on a success.
func (e *Engine) Run(ctx context.Context, cat *catalog.Catalog, projectPath string) Result {
	n := cat.Count()
	progress := newProgress(ceilLog2(n) + 1)

	var result Result

	boundary := e.runTrial(ctx, cat.At(n-1), projectPath, progress, &result)
	if !boundary.Success() {
		return e.finish(result)
	}

	lo, hi, best := 0, n-1, n-1

	for lo < hi {
		// Floor midpoint: on a two-element interval this probes the lower
		// element, so progress always comes from shrinking below.
		mid := lo + (hi-lo)/2

		outcome := e.runTrial(ctx, cat.At(mid), projectPath, progress, &result)

		if outcome.Success() {
			best = mid
			hi = mid
		} else {
			// Configuration errors and invocation errors both shrink from
			// below; the latter are additionally counted as inconclusive.
			lo = mid + 1
		}
	}

	result.Found = true
	result.Minimal = cat.At(best)
	return e.finish(result)
}

// RunLinear probes every candidate in ascending order and returns the
// lowest one that succeeded. It needs N probes instead of O(log N) but
// makes no monotonicity assumption, so it observes every candidate even
// when working versions form disjoint ranges.
func (e *Engine) RunLinear(ctx context.Context, cat *catalog.Catalog, projectPath string) Result {
	n := cat.Count()
	progress := newProgress(n)

	var result Result
	best := -1

	for i := range n {
		outcome := e.runTrial(ctx, cat.At(i), projectPath, progress, &result)
		if outcome.Success() && best == -1 {
			best = i
		}
	}

	if best >= 0 {
		result.Found = true
		result.Minimal = cat.At(best)
	}
	return e.finish(result)
}

// runTrial probes one candidate, appends the trial to the trace, and
// notifies the reporter.
func (e *Engine) runTrial(ctx context.Context, cand catalog.Candidate, projectPath string, p *progress, result *Result) probe.Outcome {
	outcome := e.prober.Probe(ctx, cand, projectPath)
	if outcome.Status == probe.StatusInvocationError {
		result.Inconclusive++
	}

	trial := Trial{Candidate: cand, Outcome: outcome, Percent: p.step()}
	result.Trials = append(result.Trials, trial)
	if e.reporter != nil {
		e.reporter.OnTrial(trial)
	}
	return outcome
}

func (e *Engine) finish(result Result) Result {
	if e.reporter != nil {
		e.reporter.OnFinish(result)
	}
	return result
}

// progress tracks cosmetic completion percentage over an expected number
// of probes. It never feeds back into the search.
type progress struct {
	expected int
	done     int
}

func newProgress(expected int) *progress {
	if expected < 1 {
		expected = 1
	}
	return &progress{expected: expected}
}

// step records one completed probe and returns the percentage done,
// clamped to 100 when a search takes more probes than expected.
func (p *progress) step() int {
	p.done++
	percent := 100 * p.done / p.expected
	if percent > 100 {
		percent = 100
	}
	return percent
}

// ceilLog2 returns ceil(log2(n)) for n >= 1.
func ceilLog2(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}
