// Package identifiers builds software identifiers for Swift packages.
//
// Construction is two-phase: a canonical package URL is attempted first, and
// when the inputs cannot be expressed in the purl grammar the identifier
// degrades to a generic "swift:name[@version]" tag. Building never fails
// outright - callers always get a usable identifier back.
package identifiers

import (
	"errors"

	"github.com/package-url/packageurl-go"
	"github.com/swiftdeps/swiftdeps/internal/cachedregexp"
	"github.com/swiftdeps/swiftdeps/internal/depscan/dependency"
)

// Accepted characters for a purl name component, before percent-encoding
// would be needed. Anything outside this set falls back to the generic form
// so that downstream matching never sees an encoded name.
const purlNamePattern = `^[a-zA-Z0-9][a-zA-Z0-9._+-]*$`

var errUnrepresentableName = errors.New("name cannot be represented as a package-url component")

// BuildSwiftPURL returns an identifier for the named Swift package at
// highest confidence, canonical when possible and generic otherwise.
// version may be empty.
func BuildSwiftPURL(name, version string) dependency.Identifier {
	value, err := buildPURL(name, version)
	if err != nil {
		return dependency.Identifier{
			Value:      generic(name, version),
			Kind:       dependency.IdentifierGeneric,
			Confidence: dependency.ConfidenceHighest,
		}
	}

	return dependency.Identifier{
		Value:      value,
		Kind:       dependency.IdentifierPURL,
		Confidence: dependency.ConfidenceHighest,
	}
}

func buildPURL(name, version string) (string, error) {
	if !cachedregexp.MustCompile(purlNamePattern).MatchString(name) {
		return "", errUnrepresentableName
	}

	purl := packageurl.NewPackageURL(packageurl.TypeSwift, "", name, version, nil, "")
	if err := purl.Normalize(); err != nil {
		return "", err
	}

	return purl.ToString(), nil
}

func generic(name, version string) string {
	if version == "" {
		return "swift:" + name
	}

	return "swift:" + name + "@" + version
}
