package catalog

import (
	"errors"
	"testing"

	"github.com/indaco/cmakemin/internal/semver"
)

func mustVersion(t *testing.T, s string) semver.Version {
	t.Helper()
	v, err := semver.ParseVersion(s)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func candidates(t *testing.T, versions ...string) []Candidate {
	t.Helper()
	out := make([]Candidate, len(versions))
	for i, s := range versions {
		out[i] = Candidate{
			Version:    mustVersion(t, s),
			BinaryPath: "/opt/cmake-" + s + "/bin/cmake",
		}
	}
	return out
}

func TestNew(t *testing.T) {
	cat, err := New(candidates(t, "3.5.1", "3.7.1", "3.8.0"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := cat.Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}

	for i := range 3 {
		if got := cat.At(i).Index; got != i {
			t.Errorf("At(%d).Index = %d, want %d", i, got, i)
		}
	}

	if got := cat.At(1).Version.String(); got != "3.7.1" {
		t.Errorf("At(1).Version = %s, want 3.7.1", got)
	}
}

func TestNew_Empty(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("New(nil) error = %v, want ErrEmptyCatalog", err)
	}
}

func TestNew_Unsorted(t *testing.T) {
	tests := []struct {
		name     string
		versions []string
	}{
		{"descending", []string{"3.8.0", "3.7.1"}},
		{"duplicate", []string{"3.7.1", "3.7.1"}},
		{"out of order middle", []string{"3.5.1", "3.9.0", "3.8.0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(candidates(t, tt.versions...))
			if !errors.Is(err, ErrUnsortedCatalog) {
				t.Errorf("New(%v) error = %v, want ErrUnsortedCatalog", tt.versions, err)
			}
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	input := candidates(t, "3.5.1", "3.8.0")
	cat, err := New(input)
	if err != nil {
		t.Fatal(err)
	}

	input[0].BinaryPath = "mutated"
	if cat.At(0).BinaryPath == "mutated" {
		t.Error("catalog shares backing storage with caller input")
	}
}

func TestCatalog_Versions(t *testing.T) {
	cat, err := New(candidates(t, "3.5.1", "3.7.1", "3.8.0"))
	if err != nil {
		t.Fatal(err)
	}

	versions := cat.Versions()
	want := []string{"3.5.1", "3.7.1", "3.8.0"}
	if len(versions) != len(want) {
		t.Fatalf("Versions() length = %d, want %d", len(versions), len(want))
	}
	for i, w := range want {
		if versions[i].String() != w {
			t.Errorf("Versions()[%d] = %s, want %s", i, versions[i], w)
		}
	}
}
