// Package discovery scans a local tools directory for installed CMake
// binaries and turns them into a sorted candidate list for the catalog.
// It only looks at what is already on disk; downloading and unpacking
// releases is somebody else's job.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"

	"github.com/indaco/cmakemin/internal/catalog"
	"github.com/indaco/cmakemin/internal/semver"
)

// dirVersionRegex extracts the version from an unpacked release directory
// name such as "cmake-3.20.0-rc2-linux-x86_64".
var dirVersionRegex = regexp.MustCompile(`^cmake-([0-9]+(?:\.[0-9]+){0,2}(?:-rc[0-9]+)?)`)

// Options filters the discovered candidate set.
type Options struct {
	// LatestPatchOnly keeps only the highest patch release per
	// (major, minor) pair.
	LatestPatchOnly bool

	// IncludeRCs keeps release candidates; they are skipped by default.
	IncludeRCs bool

	// MinVersion and MaxVersion bound the candidate set, inclusive.
	MinVersion *semver.Version
	MaxVersion *semver.Version
}

// Discover walks toolsDir for cmake-* release directories containing a
// runnable binary and returns the matching candidates sorted ascending
// by version, de-duplicated. Directories whose names do not parse as a
// version are skipped silently; an unreadable toolsDir is an error.
func Discover(toolsDir string, opts Options) ([]catalog.Candidate, error) {
	entries, err := os.ReadDir(toolsDir)
	if err != nil {
		return nil, fmt.Errorf("reading tools directory %q: %w", toolsDir, err)
	}

	var candidates []catalog.Candidate
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		m := dirVersionRegex.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		version, err := semver.ParseVersion(m[1])
		if err != nil {
			continue
		}
		if !opts.keep(version) {
			continue
		}

		binary := filepath.Join(toolsDir, entry.Name(), "bin", binaryName())
		if _, err := os.Stat(binary); err != nil {
			// Unpacked directory without a usable binary.
			continue
		}

		candidates = append(candidates, catalog.Candidate{Version: version, BinaryPath: binary})
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Version.Less(candidates[j].Version)
	})
	candidates = dedupe(candidates)

	if opts.LatestPatchOnly {
		candidates = latestPatches(candidates)
	}

	return candidates, nil
}

func (o Options) keep(v semver.Version) bool {
	if v.IsPreRelease() && !o.IncludeRCs {
		return false
	}
	if o.MinVersion != nil && v.Less(*o.MinVersion) {
		return false
	}
	if o.MaxVersion != nil && o.MaxVersion.Less(v) {
		return false
	}
	return true
}

// dedupe drops repeated versions from a sorted candidate list, keeping
// the first occurrence. Duplicates happen when several platform variants
// of the same release are unpacked side by side.
func dedupe(sorted []catalog.Candidate) []catalog.Candidate {
	out := make([]catalog.Candidate, 0, len(sorted))
	for _, c := range sorted {
		if len(out) > 0 && c.Version.Equal(out[len(out)-1].Version) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// latestPatches keeps only the highest version per (major, minor) pair
// from a sorted candidate list.
func latestPatches(sorted []catalog.Candidate) []catalog.Candidate {
	var out []catalog.Candidate
	for i, c := range sorted {
		if i+1 < len(sorted) {
			next := sorted[i+1].Version
			if next.Major == c.Version.Major && next.Minor == c.Version.Minor {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

func binaryName() string {
	if runtime.GOOS == "windows" {
		return "cmake.exe"
	}
	return "cmake"
}
