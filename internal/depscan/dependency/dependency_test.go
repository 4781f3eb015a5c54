package dependency_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/swiftdeps/swiftdeps/internal/depscan/dependency"
)

func TestNew(t *testing.T) {
	t.Parallel()

	dep := dependency.New("path/to/my/Package.swift")

	want := &dependency.Dependency{
		FilePath:       "path/to/my/Package.swift",
		ActualFilePath: "path/to/my/Package.swift",
		FileName:       "Package.swift",
	}

	if diff := cmp.Diff(want, dep); diff != "" {
		t.Errorf("New() diff (-want +got):\n%s", diff)
	}

	if dep.Virtual {
		t.Errorf("New() produced a virtual record")
	}
}

func TestNewVirtual(t *testing.T) {
	t.Parallel()

	dep := dependency.NewVirtual("path/to/my/Package.resolved")

	if !dep.Virtual {
		t.Errorf("NewVirtual() produced a non-virtual record")
	}
	if dep.FileName != "Package.resolved" {
		t.Errorf("NewVirtual() FileName = %s, want Package.resolved", dep.FileName)
	}
}

func TestDependency_AddEvidence_AppendOnly(t *testing.T) {
	t.Parallel()

	dep := dependency.New("Package.swift")

	dep.AddEvidence(dependency.EvidenceProduct, "Package.swift", "name", "Gloss", dependency.ConfidenceHighest)
	dep.AddEvidence(dependency.EvidenceProduct, "Package.swift", "name", "Gloss", dependency.ConfidenceHighest)

	// duplicates are kept; reconciling evidence is a downstream concern
	if len(dep.Evidence) != 2 {
		t.Errorf("got %d evidence entries, want 2", len(dep.Evidence))
	}
}

func TestCollection_AddRemove(t *testing.T) {
	t.Parallel()

	collection := dependency.NewCollection()

	a := dependency.New("a/Package.swift")
	b := dependency.New("b/Package.resolved")
	// same path as a, but a distinct record - removal must compare by identity
	aTwin := dependency.New("a/Package.swift")

	collection.Add(a)
	collection.Add(b)
	collection.Add(aTwin)

	collection.Remove(a)

	want := []*dependency.Dependency{b, aTwin}
	got := collection.Dependencies()

	if len(got) != len(want) {
		t.Fatalf("got %d dependencies, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Dependencies()[%d] is not the record that was added", i)
		}
	}
}

func TestCollection_RemoveAbsent(t *testing.T) {
	t.Parallel()

	collection := dependency.NewCollection()
	collection.Add(dependency.New("Package.swift"))

	collection.Remove(dependency.New("Package.swift"))

	if collection.Len() != 1 {
		t.Errorf("Remove() of an absent record changed the collection")
	}
}

func TestConfidence_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		confidence dependency.Confidence
		want       string
	}{
		{dependency.ConfidenceLow, "low"},
		{dependency.ConfidenceMedium, "medium"},
		{dependency.ConfidenceHigh, "high"},
		{dependency.ConfidenceHighest, "highest"},
		{dependency.Confidence(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.confidence.String(); got != tt.want {
			t.Errorf("Confidence(%d).String() = %s, want %s", tt.confidence, got, tt.want)
		}
	}
}
