package swiftpkg

import (
	"fmt"
	"os"

	"github.com/swiftdeps/swiftdeps/internal/cachedregexp"
	"github.com/swiftdeps/swiftdeps/internal/depscan/checksum"
	"github.com/swiftdeps/swiftdeps/internal/depscan/dependency"
	"github.com/swiftdeps/swiftdeps/internal/depscan/identifiers"
)

// One pinned dependency in a Package.resolved file. Capture group #1 is the
// package name, group #2 its version; both retain their surrounding quotes.
// The five fields must appear in exactly this order - entries that deviate
// are skipped rather than reported, since the remaining entries are still
// worth extracting.
const resolvedBlockPattern = `\s*"package":\s(.*),\n\s*"repositoryURL":\s.*,\n.*\n\s*"branch":\s.*,\n\s*"revision":\s.*,\n\s*"version":\s(.*)\n`

// AnalyzeResolved extracts one dependency record per pinned package in a
// Package.resolved file, adding them to deps.
//
// The lock file itself is metadata rather than a shippable unit, so its own
// placeholder record (resolved) is removed from the collection up front. The
// produced records are virtual: they reference the lock file they were found
// in but stand for the pinned packages. Entries appear in source order and
// duplicates are preserved for downstream stages to reconcile.
func AnalyzeResolved(resolved *dependency.Dependency, deps *dependency.Collection) error {
	deps.Remove(resolved)

	contents, err := os.ReadFile(resolved.ActualFilePath)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", resolved.ActualFilePath, err)
	}

	for _, match := range cachedregexp.MustCompile(resolvedBlockPattern).FindAllStringSubmatch(string(contents), -1) {
		name := unquote(match[1])
		version := unquote(match[2])

		dep := dependency.NewVirtual(resolved.ActualFilePath)
		dep.Ecosystem = Ecosystem
		dep.Name = name
		dep.Version = version

		packagePath := fmt.Sprintf("%s:%s", name, version)
		dep.PackagePath = packagePath
		dep.DisplayName = packagePath
		dep.SHA1Sum = checksum.SHA1(packagePath)
		dep.SHA256Sum = checksum.SHA256(packagePath)
		dep.MD5Sum = checksum.MD5(packagePath)

		dep.AddEvidence(dependency.EvidenceVendor, ResolvedFileName, "name", name, dependency.ConfidenceHighest)
		dep.AddEvidence(dependency.EvidenceProduct, ResolvedFileName, "name", name, dependency.ConfidenceHighest)
		dep.AddEvidence(dependency.EvidenceVersion, ResolvedFileName, "version", version, dependency.ConfidenceHighest)
		dep.AddIdentifier(identifiers.BuildSwiftPURL(name, version))

		deps.Add(dep)
	}

	return nil
}
