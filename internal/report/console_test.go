package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/indaco/cmakemin/internal/catalog"
	"github.com/indaco/cmakemin/internal/printer"
	"github.com/indaco/cmakemin/internal/probe"
	"github.com/indaco/cmakemin/internal/search"
	"github.com/indaco/cmakemin/internal/semver"
)

func TestMain(m *testing.M) {
	printer.SetNoColor(true)
	m.Run()
}

func versions(t *testing.T, specs ...string) []semver.Version {
	t.Helper()
	out := make([]semver.Version, len(specs))
	for i, s := range specs {
		v, err := semver.ParseVersion(s)
		if err != nil {
			t.Fatal(err)
		}
		out[i] = v
	}
	return out
}

func candidate(t *testing.T, version string, index int) catalog.Candidate {
	t.Helper()
	v, err := semver.ParseVersion(version)
	if err != nil {
		t.Fatal(err)
	}
	return catalog.Candidate{Index: index, Version: v, BinaryPath: "/opt/cmake/bin/cmake"}
}

func TestConsoleReporter_OnTrial(t *testing.T) {
	tests := []struct {
		name  string
		trial search.Trial
		want  []string
	}{
		{
			name: "success",
			trial: search.Trial{
				Candidate: candidate(t, "3.8.0", 3),
				Outcome:   probe.Outcome{Status: probe.StatusSuccess},
				Percent:   75,
			},
			want: []string{"[ 75%] CMake 3.8.0", "✔ works"},
		},
		{
			name: "config error with reason",
			trial: search.Trial{
				Candidate: candidate(t, "3.7.2", 2),
				Outcome: probe.Outcome{
					Status:          probe.StatusConfigError,
					File:            "CMakeLists.txt",
					Line:            16,
					Directive:       "cmake_minimum_required",
					ProposedVersion: "3.8.0",
				},
				Percent: 50,
			},
			want: []string{
				"[ 50%] CMake 3.7.2",
				"✘ error",
				"CMakeLists.txt:16 (cmake_minimum_required)",
				"requires CMake 3.8.0 or higher",
			},
		},
		{
			name: "invocation error",
			trial: search.Trial{
				Candidate: candidate(t, "3.5.1", 0),
				Outcome:   probe.Outcome{Status: probe.StatusInvocationError, Message: "exec format error"},
				Percent:   100,
			},
			want: []string{"[100%] CMake 3.5.1", "? unverified", "exec format error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reporter := NewConsoleReporter(&buf, versions(t, "3.5.1", "3.7.2", "3.8.0", "3.10.2"))

			reporter.OnTrial(tt.trial)

			got := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("output missing %q:\n%s", w, got)
				}
			}
		})
	}
}

func TestConsoleReporter_VersionColumnPadding(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewConsoleReporter(&buf, versions(t, "3.5.1", "3.10.2"))

	reporter.OnTrial(search.Trial{
		Candidate: candidate(t, "3.5.1", 0),
		Outcome:   probe.Outcome{Status: probe.StatusSuccess},
		Percent:   50,
	})

	// "3.10.2" is 6 chars, so the column is 7 wide: "3.5.1" plus two
	// trailing spaces before the verdict.
	if !strings.Contains(buf.String(), "CMake 3.5.1  ✔ works") {
		t.Errorf("version column not padded to longest version:\n%q", buf.String())
	}
}

func TestConsoleReporter_OnFinish(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		var buf bytes.Buffer
		reporter := NewConsoleReporter(&buf, versions(t, "3.8.0"))

		reporter.OnFinish(search.Result{
			Found:   true,
			Minimal: candidate(t, "3.8.0", 0),
		})

		got := buf.String()
		for _, w := range []string{
			"[100%] Minimal working version: CMake 3.8.0",
			"cmake_minimum_required(VERSION 3.8.0)",
		} {
			if !strings.Contains(got, w) {
				t.Errorf("output missing %q:\n%s", w, got)
			}
		}
	})

	t.Run("not found", func(t *testing.T) {
		var buf bytes.Buffer
		reporter := NewConsoleReporter(&buf, versions(t, "3.8.0"))

		reporter.OnFinish(search.Result{
			Trials: []search.Trial{{
				Candidate: candidate(t, "3.8.0", 0),
				Outcome:   probe.Outcome{Status: probe.StatusConfigError, File: "CMakeLists.txt", Line: 1},
			}},
		})

		if !strings.Contains(buf.String(), "ERROR: Could not find working version.") {
			t.Errorf("output missing not-found line:\n%s", buf.String())
		}
	})

	t.Run("inconclusive trials warn", func(t *testing.T) {
		var buf bytes.Buffer
		reporter := NewConsoleReporter(&buf, versions(t, "3.8.0"))

		reporter.OnFinish(search.Result{
			Found:        true,
			Minimal:      candidate(t, "3.8.0", 0),
			Inconclusive: 2,
		})

		if !strings.Contains(buf.String(), "2 trial(s) could not be run") {
			t.Errorf("output missing inconclusive warning:\n%s", buf.String())
		}
	})

	t.Run("boundary inconclusive", func(t *testing.T) {
		var buf bytes.Buffer
		reporter := NewConsoleReporter(&buf, versions(t, "3.8.0"))

		reporter.OnFinish(search.Result{
			Inconclusive: 1,
			Trials: []search.Trial{{
				Candidate: candidate(t, "3.8.0", 0),
				Outcome:   probe.Outcome{Status: probe.StatusInvocationError, Message: "exec format error"},
			}},
		})

		if !strings.Contains(buf.String(), "highest version could not be tested") {
			t.Errorf("output missing boundary warning:\n%s", buf.String())
		}
	})
}
