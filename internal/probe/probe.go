// Package probe runs a single candidate CMake binary against a project
// and classifies the result. Each trial is isolated in its own scratch
// build directory so partial artifacts from one trial cannot leak into
// the next.
package probe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/indaco/cmakemin/internal/catalog"
)

// Prober tests one candidate against a project directory.
type Prober interface {
	Probe(ctx context.Context, candidate catalog.Candidate, projectPath string) Outcome
}

var (
	// configErrorRegex matches CMake's location-bearing diagnostic:
	//   CMake Error at CMakeLists.txt:16 (cmake_minimum_required):
	// The directive group is optional; file and line are mandatory.
	configErrorRegex = regexp.MustCompile(`CMake Error at ([^\n:]+):([0-9]+)(?: \(([^)\n]+)\))?`)

	// proposedVersionRegex matches the version the tool itself asks for:
	//   CMake 3.8 or higher is required.
	proposedVersionRegex = regexp.MustCompile(`CMake ([^ \n]+) or higher is required`)

	// plainErrorRegex matches location-less diagnostics, used only to pick
	// a concise message for invocation errors:
	//   CMake Error: <message>
	plainErrorRegex = regexp.MustCompile(`CMake Error: ([^\n]+)`)
)

// CMakeProber invokes a cmake binary with the project directory as the
// source argument and a throwaway scratch directory as the working
// directory. The project directory itself is never written to.
type CMakeProber struct {
	// ExtraArgs are passed to cmake before the project path, e.g.
	// generator or cache definitions supplied by the operator.
	ExtraArgs []string
}

// NewCMakeProber creates a prober that forwards extraArgs on every trial.
func NewCMakeProber(extraArgs ...string) *CMakeProber {
	return &CMakeProber{ExtraArgs: extraArgs}
}

// Probe runs the candidate once and classifies the outcome. All failures
// are folded into the returned Outcome; Probe never returns an error
// because a failed trial is a regular result for the search.
func (p *CMakeProber) Probe(ctx context.Context, candidate catalog.Candidate, projectPath string) Outcome {
	absProject, err := filepath.Abs(projectPath)
	if err != nil {
		return invocationFailure(fmt.Sprintf("resolving project path: %v", err))
	}

	scratchDir, err := os.MkdirTemp("", "cmakemin-trial-")
	if err != nil {
		return invocationFailure(fmt.Sprintf("creating scratch build directory: %v", err))
	}
	defer os.RemoveAll(scratchDir)

	args := make([]string, 0, len(p.ExtraArgs)+2)
	args = append(args, p.ExtraArgs...)
	args = append(args, absProject, "-Wno-dev")

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, candidate.BinaryPath, args...)
	cmd.Dir = scratchDir
	cmd.Stdout = io.Discard
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if runErr == nil {
		return Outcome{Status: StatusSuccess}
	}

	if ctx.Err() != nil {
		return invocationFailure(fmt.Sprintf("trial cancelled: %v", ctx.Err()))
	}

	var exitErr *exec.ExitError
	if !errors.As(runErr, &exitErr) {
		// The binary never ran: missing file, permission, exec format.
		return invocationFailure(runErr.Error())
	}

	return ClassifyFailure(stderr.String(), runErr)
}

// ClassifyFailure interprets the stderr of a non-zero cmake exit. A
// diagnostic carrying a file and line is a configuration error; anything
// else is unparseable and therefore an invocation error.
func ClassifyFailure(stderr string, runErr error) Outcome {
	if m := configErrorRegex.FindStringSubmatch(stderr); m != nil {
		line, err := strconv.Atoi(m[2])
		if err != nil {
			return invocationFailure(fmt.Sprintf("unparseable line number in diagnostic: %q", m[2]))
		}
		return Outcome{
			Status:          StatusConfigError,
			File:            m[1],
			Line:            line,
			Directive:       m[3],
			ProposedVersion: extractProposedVersion(stderr),
		}
	}

	if m := plainErrorRegex.FindStringSubmatch(stderr); m != nil {
		return invocationFailure(m[1])
	}

	msg := strings.TrimSpace(stderr)
	if msg == "" && runErr != nil {
		msg = runErr.Error()
	}
	return invocationFailure(msg)
}

// extractProposedVersion pulls the minimum version the tool asked for out
// of the diagnostic text, normalized to major.minor.patch. Version ranges
// ("3.8...3.20") collapse to their low end. Returns "" when absent.
func extractProposedVersion(stderr string) string {
	m := proposedVersionRegex.FindStringSubmatch(stderr)
	if m == nil {
		return ""
	}

	proposed := m[1]
	if idx := strings.Index(proposed, ".."); idx >= 0 {
		proposed = proposed[:idx]
	}
	if strings.Count(proposed, ".") == 1 {
		proposed += ".0"
	}
	return proposed
}

func invocationFailure(message string) Outcome {
	return Outcome{Status: StatusInvocationError, Message: message}
}
