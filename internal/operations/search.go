// Package operations provides the reusable search flows behind the CLI
// commands.
package operations

import (
	"context"

	"github.com/indaco/cmakemin/internal/catalog"
	"github.com/indaco/cmakemin/internal/probe"
	"github.com/indaco/cmakemin/internal/report"
	"github.com/indaco/cmakemin/internal/search"
)

// Mode selects the probing strategy.
type Mode int

const (
	// ModeBisect runs the O(log N) bisection search.
	ModeBisect Mode = iota

	// ModeLinear probes every candidate in ascending order.
	ModeLinear
)

// RunSearch probes the catalog against projectPath and reports progress
// on stdout. trialArgs are forwarded to cmake on every trial.
func RunSearch(ctx context.Context, cat *catalog.Catalog, projectPath string, trialArgs []string, mode Mode) search.Result {
	reporter := report.NewConsoleReporter(nil, cat.Versions())
	engine := search.NewEngine(probe.NewCMakeProber(trialArgs...), reporter)

	if mode == ModeLinear {
		return engine.RunLinear(ctx, cat, projectPath)
	}
	return engine.Run(ctx, cat, projectPath)
}
