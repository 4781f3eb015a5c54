// Package output renders scan results in the supported report formats.
package output

import (
	"fmt"
	"io"
	"slices"

	"github.com/swiftdeps/swiftdeps/internal/scanner"
)

var format = []string{"table", "json", "cyclonedx"}

// Format returns the list of supported output formats.
func Format() []string {
	return slices.Clone(format)
}

// PrintResults writes the results to the writer in the given format.
func PrintResults(results *scanner.Results, format string, outputWriter io.Writer) error {
	switch format {
	case "table":
		PrintTableResults(results, outputWriter)
		return nil
	case "json":
		return PrintJSONResults(results, outputWriter)
	case "cyclonedx":
		return PrintCycloneDXResults(results, outputWriter)
	default:
		return fmt.Errorf("unsupported output format \"%s\" - must be one of: %v", format, Format())
	}
}
