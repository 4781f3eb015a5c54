// Package scan implements the `scan` command for swiftdeps.
package scan

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/swiftdeps/swiftdeps/internal/cmdlogger"
	"github.com/swiftdeps/swiftdeps/internal/output"
	"github.com/swiftdeps/swiftdeps/internal/scanner"
)

func Command(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "scan",
		Usage:       "scans directories for Swift package manifests and lock files, and reports the dependencies they declare.",
		Description: "scans directories for Swift package manifests and lock files, and reports the dependencies they declare.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      "config",
				Usage:     "set/override config file",
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "sets the output format; value can be: " + formatUsage(),
				Value:   "table",
				Action: func(_ context.Context, _ *cli.Command, s string) error {
					if !slices.Contains(output.Format(), s) {
						return fmt.Errorf("unsupported output format \"%s\" - must be one of: %s", s, formatUsage())
					}

					return nil
				},
			},
			&cli.StringFlag{
				Name:      "output",
				Usage:     "saves the result to the given file path",
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:  "verbosity",
				Usage: "specify the level of information that should be provided during runtime; value can be: " + verbosityUsage(),
				Value: "info",
			},
		},
		ArgsUsage: "[directory1 directory2...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return action(ctx, cmd, stdout)
		},
	}
}

func formatUsage() string {
	return strings.Join(output.Format(), ", ")
}

func verbosityUsage() string {
	return strings.Join(cmdlogger.Levels(), ", ")
}

func action(ctx context.Context, cmd *cli.Command, stdout io.Writer) error {
	level, err := cmdlogger.ParseLevel(cmd.String("verbosity"))
	if err != nil {
		return err
	}
	cmdlogger.SetLevel(level)

	format := cmd.String("format")
	outputPath := cmd.String("output")

	outputWriter := stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()

		outputWriter = f
	} else if format != "table" {
		// structured output is going to stdout, keep logs out of it
		cmdlogger.SendEverythingToStderr()
	}

	results, err := scanner.DoScan(ctx, scanner.Actions{
		DirectoryPaths:     cmd.Args().Slice(),
		ConfigOverridePath: cmd.String("config"),
	})
	if err != nil {
		return err
	}

	if errPrint := output.PrintResults(&results, format, outputWriter); errPrint != nil {
		return fmt.Errorf("failed to write output: %w", errPrint)
	}

	cmdlogger.Infof("Found %d packages", len(results.Dependencies))

	return nil
}
