// Package report renders search progress for the operator: one line per
// trial and a final summary naming the minimal working version or the
// absence of one.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/indaco/cmakemin/internal/printer"
	"github.com/indaco/cmakemin/internal/probe"
	"github.com/indaco/cmakemin/internal/search"
	"github.com/indaco/cmakemin/internal/semver"
)

// ConsoleReporter implements search.Reporter with the classic
// line-per-trial output:
//
//	[ 50%] CMake 3.7.2    ✘ error
//	       CMakeLists.txt:16 (cmake_minimum_required)
//	[ 75%] CMake 3.8.0    ✔ works
//	[100%] Minimal working version: CMake 3.8.0
type ConsoleReporter struct {
	out io.Writer

	// versionWidth pads the version column to the longest version string
	// in the catalog, plus one space.
	versionWidth int
}

// NewConsoleReporter creates a reporter writing to out (os.Stdout when
// nil). versions is the catalog under search, used to size the version
// column.
func NewConsoleReporter(out io.Writer, versions []semver.Version) *ConsoleReporter {
	if out == nil {
		out = os.Stdout
	}

	width := 0
	for _, v := range versions {
		if l := len(v.String()); l > width {
			width = l
		}
	}

	return &ConsoleReporter{out: out, versionWidth: width + 1}
}

// OnTrial prints the trial line and, for located configuration errors,
// a faint reason line underneath.
func (r *ConsoleReporter) OnTrial(trial search.Trial) {
	fmt.Fprintf(r.out, "[%3d%%] CMake %-*s", trial.Percent, r.versionWidth, trial.Candidate.Version)

	switch trial.Outcome.Status {
	case probe.StatusSuccess:
		fmt.Fprintln(r.out, printer.Success("✔ works"))
	case probe.StatusConfigError:
		fmt.Fprintln(r.out, printer.Error("✘ error"))
		fmt.Fprintf(r.out, "       %s\n", printer.Faint(trial.Outcome.Reason()))
		if trial.Outcome.ProposedVersion != "" {
			fmt.Fprintf(r.out, "       %s\n",
				printer.Faint("requires CMake "+trial.Outcome.ProposedVersion+" or higher"))
		}
	case probe.StatusInvocationError:
		fmt.Fprintln(r.out, printer.Warning("? unverified"))
		fmt.Fprintf(r.out, "       %s\n", printer.Faint(trial.Outcome.Reason()))
	}
}

// OnFinish prints the final verdict line. When a working version was
// found, the closing cmake_minimum_required line can be pasted verbatim
// into the project's CMakeLists.txt.
func (r *ConsoleReporter) OnFinish(result search.Result) {
	if result.Inconclusive > 0 {
		fmt.Fprintln(r.out, printer.Warning(fmt.Sprintf(
			"Warning: %d trial(s) could not be run and were treated as failures.", result.Inconclusive)))
	}

	if !result.Found {
		if result.BoundaryInconclusive() {
			fmt.Fprintf(r.out, "[100%%] %s\n",
				printer.Error("ERROR: The highest version could not be tested; no verdict is possible."))
			return
		}
		fmt.Fprintf(r.out, "[100%%] %s\n", printer.Error("ERROR: Could not find working version."))
		return
	}

	version := result.Minimal.Version.String()
	fmt.Fprintf(r.out, "[100%%] Minimal working version: %s %s\n",
		printer.Info("CMake"), printer.Info(version))
	fmt.Fprintf(r.out, "\n%s\n", printer.Bold(fmt.Sprintf("cmake_minimum_required(VERSION %s)", version)))
}
