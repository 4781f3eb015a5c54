package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/swiftdeps/swiftdeps/cmd/swiftdeps/scan"
	"github.com/swiftdeps/swiftdeps/internal/cmdlogger"
	"github.com/swiftdeps/swiftdeps/internal/scanner"
	"github.com/swiftdeps/swiftdeps/internal/version"
)

func run(args []string, stdout, stderr io.Writer) int {
	logHandler := cmdlogger.New(stdout, stderr)
	slog.SetDefault(slog.New(logHandler))

	app := &cli.Command{
		Name:           "swiftdeps",
		Version:        version.Version,
		Usage:          "scans Swift package manifests and lock files for dependencies",
		Suggest:        true,
		Writer:         stdout,
		ErrWriter:      stderr,
		DefaultCommand: "scan",
		Commands: []*cli.Command{
			scan.Command(stdout, stderr),
		},
	}

	// cli's default exit-code handling assumes errors implementing
	// cli.ExitCoder are intentional, which Go's duck typing makes too easy
	// to hit by accident (e.g. *exec.ExitError); handle codes ourselves
	app.ExitErrHandler = func(_ context.Context, _ *cli.Command, _ error) {}

	err := app.Run(context.Background(), args)
	if err != nil {
		if errors.Is(err, scanner.ErrNoPackagesFound) {
			cmdlogger.Errorf("No package sources found, --help for usage information.")

			return 128
		}

		cmdlogger.Errorf("%v", err)
	}

	// if we've been told to print an error, and not already exited with
	// a specific error code, then exit with a generic non-zero code
	if logHandler.HasErrored() {
		return 127
	}

	return 0
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}
