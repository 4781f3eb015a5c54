package output

import (
	"io"

	"github.com/CycloneDX/cyclonedx-go"
	"github.com/swiftdeps/swiftdeps/internal/depscan/dependency"
	"github.com/swiftdeps/swiftdeps/internal/scanner"
)

// PrintCycloneDXResults writes the results to the writer as a CycloneDX JSON
// SBOM. Records whose identifier is a canonical purl carry it on the
// component; generic fallback identifiers are not valid purls and are left
// off.
func PrintCycloneDXResults(results *scanner.Results, outputWriter io.Writer) error {
	components := make([]cyclonedx.Component, 0, len(results.Dependencies))

	for _, dep := range results.Dependencies {
		component := cyclonedx.Component{
			Type:    cyclonedx.ComponentTypeLibrary,
			Name:    dep.Name,
			Version: dep.Version,
		}

		for _, id := range dep.Identifiers {
			if id.Kind == dependency.IdentifierPURL {
				component.BOMRef = id.Value
				component.PackageURL = id.Value

				break
			}
		}

		if dep.SHA1Sum != "" {
			component.Hashes = &[]cyclonedx.Hash{
				{Algorithm: cyclonedx.HashAlgoMD5, Value: dep.MD5Sum},
				{Algorithm: cyclonedx.HashAlgoSHA1, Value: dep.SHA1Sum},
				{Algorithm: cyclonedx.HashAlgoSHA256, Value: dep.SHA256Sum},
			}
		}

		components = append(components, component)
	}

	bom := cyclonedx.NewBOM()
	bom.Components = &components

	encoder := cyclonedx.NewBOMEncoder(outputWriter, cyclonedx.BOMFileFormatJSON)
	encoder.SetPretty(true)

	return encoder.Encode(bom)
}
