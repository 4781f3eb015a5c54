package output

import (
	"encoding/json"
	"io"

	"github.com/swiftdeps/swiftdeps/internal/scanner"
)

// PrintJSONResults writes the results to the writer as indented JSON.
func PrintJSONResults(results *scanner.Results, outputWriter io.Writer) error {
	encoder := json.NewEncoder(outputWriter)
	encoder.SetIndent("", "  ")

	return encoder.Encode(results)
}
