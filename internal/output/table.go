package output

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/swiftdeps/swiftdeps/internal/depscan/dependency"
	"github.com/swiftdeps/swiftdeps/internal/scanner"
)

// PrintTableResults prints the scanned dependencies as a human friendly table.
func PrintTableResults(results *scanner.Results, outputWriter io.Writer) {
	outputTable := table.NewWriter()
	outputTable.SetOutputMirror(outputWriter)
	outputTable.AppendHeader(table.Row{"Name", "Version", "Ecosystem", "Identifier", "Source"})

	for _, dep := range results.Dependencies {
		outputTable.AppendRow(table.Row{
			dep.Name,
			dep.Version,
			dep.Ecosystem,
			primaryIdentifier(dep),
			dep.FilePath,
		})
	}

	if outputTable.Length() == 0 {
		return
	}
	outputTable.Render()
}

func primaryIdentifier(dep *dependency.Dependency) string {
	if len(dep.Identifiers) == 0 {
		return ""
	}

	return dep.Identifiers[0].Value
}
