// Package catalog holds the ordered set of candidate CMake versions a
// search operates on. The catalog is built once from an externally
// supplied, already-sorted sequence and is immutable afterwards.
package catalog

import (
	"errors"
	"fmt"

	"github.com/indaco/cmakemin/internal/semver"
)

var (
	// ErrEmptyCatalog is returned when a catalog is constructed with no
	// candidates. A search cannot proceed without at least one.
	ErrEmptyCatalog = errors.New("catalog contains no candidates")

	// ErrUnsortedCatalog is returned when the supplied candidates are not
	// strictly ascending by version.
	ErrUnsortedCatalog = errors.New("catalog candidates are not strictly ascending")
)

// Candidate identifies one installed CMake version available for testing.
type Candidate struct {
	// Index is the candidate's position in the catalog, 0-based.
	Index int

	// Version is the CMake version of the binary.
	Version semver.Version

	// BinaryPath locates the cmake executable for this version.
	BinaryPath string
}

// Catalog is an immutable, ascending-ordered collection of candidates.
type Catalog struct {
	candidates []Candidate
}

// New builds a catalog from candidates sorted strictly ascending by version.
// Indices are (re)assigned by position. Returns ErrEmptyCatalog for an empty
// input and ErrUnsortedCatalog when the ordering invariant is violated,
// including duplicate versions.
func New(candidates []Candidate) (*Catalog, error) {
	if len(candidates) == 0 {
		return nil, ErrEmptyCatalog
	}

	owned := make([]Candidate, len(candidates))
	copy(owned, candidates)

	for i := range owned {
		if i > 0 && owned[i-1].Version.Compare(owned[i].Version) >= 0 {
			return nil, fmt.Errorf("%w: %s followed by %s",
				ErrUnsortedCatalog, owned[i-1].Version, owned[i].Version)
		}
		owned[i].Index = i
	}

	return &Catalog{candidates: owned}, nil
}

// Count returns the number of candidates in the catalog.
func (c *Catalog) Count() int {
	return len(c.candidates)
}

// At returns the candidate at the given index. Out-of-range indices panic,
// matching slice semantics; callers derive indices from Count.
func (c *Catalog) At(index int) Candidate {
	return c.candidates[index]
}

// Versions returns the catalog's versions in ascending order.
func (c *Catalog) Versions() []semver.Version {
	versions := make([]semver.Version, len(c.candidates))
	for i, cand := range c.candidates {
		versions[i] = cand.Version
	}
	return versions
}
