package semver

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Version represents a CMake release version (major.minor.patch) with an
// optional release-candidate ordinal. RC == 0 means a final release;
// RC >= 1 means release candidate N of that release.
type Version struct {
	Major int
	Minor int
	Patch int
	RC    int
}

var (
	// versionRegex matches CMake-style version strings with an optional "v"
	// prefix and optional components. It captures:
	//   1. Major version
	//   2. (optional) Minor version
	//   3. (optional) Patch version
	//   4. (optional) Release-candidate ordinal
	versionRegex = regexp.MustCompile(
		`^v?([0-9]+)` + // major
			`(?:\.([0-9]+))?` + // optional minor
			`(?:\.([0-9]+))?` + // optional patch
			`(?:-rc([0-9]+))?$`, // optional release candidate
	)

	// errInvalidVersion is returned when a version string does not conform
	// to the expected format.
	errInvalidVersion = errors.New("invalid version format")
)

// maxVersionLength is the maximum allowed length for a version string.
// This prevents potential ReDoS attacks on the regex parser.
const maxVersionLength = 64

// String returns the string representation of the version.
func (v Version) String() string {
	var sb strings.Builder
	sb.Grow(16)
	sb.WriteString(strconv.Itoa(v.Major))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Minor))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Patch))
	if v.RC > 0 {
		sb.WriteString("-rc")
		sb.WriteString(strconv.Itoa(v.RC))
	}
	return sb.String()
}

// IsPreRelease reports whether v is a release candidate rather than a
// final release.
func (v Version) IsPreRelease() bool {
	return v.RC > 0
}

// ParseVersion parses a version string and returns a Version.
//
// Supported formats:
//   - "3.8.0" (full version)
//   - "3.8" and "3" (missing components are zero-padded)
//   - "v3.8.0" (with optional v prefix)
//   - "3.20.0-rc2" (release candidate)
//
// Returns errInvalidVersion (wrapped) when:
//   - Input exceeds maxVersionLength (64 characters)
//   - Format doesn't match the major[.minor[.patch]][-rcN] pattern
//   - The release-candidate ordinal is zero
func ParseVersion(s string) (Version, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Version{}, errInvalidVersion
	}
	if len(trimmed) > maxVersionLength {
		return Version{}, fmt.Errorf("%w: version string exceeds maximum length of %d", errInvalidVersion, maxVersionLength)
	}

	matches := versionRegex.FindStringSubmatch(trimmed)
	if matches == nil {
		return Version{}, fmt.Errorf("%w: %q", errInvalidVersion, trimmed)
	}

	major, err := strconv.Atoi(matches[1])
	if err != nil {
		return Version{}, fmt.Errorf("%w: invalid major version: %s", errInvalidVersion, err.Error())
	}

	var minor, patch, rc int
	if matches[2] != "" {
		if minor, err = strconv.Atoi(matches[2]); err != nil {
			return Version{}, fmt.Errorf("%w: invalid minor version: %s", errInvalidVersion, err.Error())
		}
	}
	if matches[3] != "" {
		if patch, err = strconv.Atoi(matches[3]); err != nil {
			return Version{}, fmt.Errorf("%w: invalid patch version: %s", errInvalidVersion, err.Error())
		}
	}
	if matches[4] != "" {
		if rc, err = strconv.Atoi(matches[4]); err != nil {
			return Version{}, fmt.Errorf("%w: invalid release candidate: %s", errInvalidVersion, err.Error())
		}
		if rc == 0 {
			return Version{}, fmt.Errorf("%w: release candidate ordinal must be positive", errInvalidVersion)
		}
	}

	return Version{Major: major, Minor: minor, Patch: patch, RC: rc}, nil
}

// Compare compares two versions.
// It returns -1 if v < other, 0 if v == other, and +1 if v > other.
// A final release has higher precedence than any of its own release
// candidates (e.g., 3.20.0-rc2 < 3.20.0); release candidates order by
// their ordinal.
func (v Version) Compare(other Version) int {
	if c := compareInt(v.Major, other.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, other.Minor); c != 0 {
		return c
	}
	if c := compareInt(v.Patch, other.Patch); c != 0 {
		return c
	}

	// When major, minor, and patch are equal, a release candidate has
	// lower precedence than the final release.
	switch {
	case v.RC == 0 && other.RC == 0:
		return 0
	case v.RC == 0:
		return 1
	case other.RC == 0:
		return -1
	default:
		return compareInt(v.RC, other.RC)
	}
}

// Less reports whether v sorts strictly before other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// Equal reports whether v and other denote the same version.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// SortVersions sorts versions in ascending order, in place.
func SortVersions(versions []Version) {
	sort.Slice(versions, func(i, j int) bool {
		return versions[i].Less(versions[j])
	})
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
