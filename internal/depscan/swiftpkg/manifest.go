package swiftpkg

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/swiftdeps/swiftdeps/internal/cachedregexp"
	"github.com/swiftdeps/swiftdeps/internal/depscan/dependency"
	"github.com/swiftdeps/swiftdeps/internal/depscan/identifiers"
)

// Capture group #1 is the argument list of the Package initializer, e.g.
// `let package = Package( name: "Gloss" )` captures ` name: "Gloss" `.
const manifestBlockPattern = `(?s)let[^=]+=\s*Package\s*\(\s*([^)]*)\s*\)`

// AnalyzeManifest populates dep, the placeholder record for a Package.swift
// file, with the identity the manifest declares for its own package.
//
// Missing or malformed metadata is absorbed: a manifest without a usable
// name falls back to the name of the directory containing it, and a file
// without a recognizable Package initializer leaves the record untouched
// beyond the ecosystem tag. The only failure is an unreadable file, which
// aborts analysis of this file with no partial mutation.
func AnalyzeManifest(dep *dependency.Dependency) error {
	dep.Ecosystem = Ecosystem

	contents, err := os.ReadFile(dep.ActualFilePath)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", dep.ActualFilePath, err)
	}

	match := cachedregexp.MustCompile(manifestBlockPattern).FindStringSubmatch(string(contents))
	if match == nil {
		return nil
	}

	packageDescription := match[1]
	if packageDescription == "" {
		return nil
	}

	name := findStringEvidence(dep, dependency.EvidenceProduct, packageDescription, "name", "name")
	if name != "" {
		dep.AddEvidence(dependency.EvidenceVendor, ManifestFileName, "name_project", name, dependency.ConfidenceHighest)
		dep.Name = name
	} else {
		// assume the package is named after the directory holding the manifest
		dep.Name = filepath.Base(filepath.Dir(dep.ActualFilePath))
	}

	if dep.Version != "" {
		dep.DisplayName = fmt.Sprintf("%s:%s", dep.Name, dep.Version)
	} else {
		dep.DisplayName = dep.Name
	}

	dep.AddIdentifier(identifiers.BuildSwiftPURL(dep.Name, dep.Version))

	if parent := filepath.Dir(dep.FilePath); parent != "." {
		dep.PackagePath = parent
	}

	return nil
}
