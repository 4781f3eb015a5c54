// Package swiftpkg analyzes Swift Package Manager metadata files.
//
// Two file kinds are handled: Package.swift, the manifest declaring a
// package's own identity, and Package.resolved, the lock file pinning the
// versions of resolved transitive dependencies. Neither format is parsed as
// a structured document - both are scanned with regular expressions so that
// unusual but readable files still give up whatever metadata they contain.
package swiftpkg

import (
	"fmt"
	"strings"

	"github.com/swiftdeps/swiftdeps/internal/cachedregexp"
	"github.com/swiftdeps/swiftdeps/internal/depscan/dependency"
)

// Ecosystem is the tag assigned to every record produced by this package,
// matching the value used by vulnerability databases for Swift/iOS packages.
const Ecosystem = "ios"

const (
	// ManifestFileName is the exact file name that triggers manifest analysis.
	ManifestFileName = "Package.swift"
	// ResolvedFileName is the exact file name that triggers lock analysis.
	ResolvedFileName = "Package.resolved"
)

// Analyzer names used for configuration-based enablement.
const (
	ManifestAnalyzerName = "swift/manifest"
	ResolvedAnalyzerName = "swift/resolved"
)

// findStringEvidence searches blockText for the first `<fieldPattern>: "..."`
// occurrence and returns the quoted value with surrounding whitespace
// trimmed, or an empty string if the field is absent. Non-empty values are
// also recorded as evidence of the given type on the record.
func findStringEvidence(dep *dependency.Dependency, evidenceType dependency.EvidenceType, blockText, field, fieldPattern string) string {
	re := cachedregexp.MustCompile(fmt.Sprintf(`(?s)%s *:\s*"([^"]*)`, fieldPattern))

	value := ""
	if match := re.FindStringSubmatch(blockText); match != nil {
		value = match[1]
	}

	value = strings.TrimSpace(value)
	if value != "" {
		dep.AddEvidence(evidenceType, ManifestFileName, field, value, dependency.ConfidenceHighest)
	}

	return value
}

// unquote strips a single leading and a single trailing quote character.
// This is deliberately not full string unescaping - lock file values are
// plain identifiers and version numbers.
func unquote(s string) string {
	return strings.TrimSuffix(strings.TrimPrefix(s, `"`), `"`)
}
