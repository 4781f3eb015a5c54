// Package scanner discovers Swift package metadata files on disk and runs
// the matching analyzers over them.
package scanner

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/swiftdeps/swiftdeps/internal/cmdlogger"
	"github.com/swiftdeps/swiftdeps/internal/config"
	"github.com/swiftdeps/swiftdeps/internal/depscan/dependency"
	"github.com/swiftdeps/swiftdeps/internal/depscan/swiftpkg"
)

// ErrNoPackagesFound is returned when no candidate files exist under any of
// the scanned directories.
var ErrNoPackagesFound = errors.New("no package sources found")

// Analyses are independent per file, so files are processed concurrently up
// to this limit; the shared collection serializes additions and removals.
const concurrentAnalyses = 8

// Actions describes one scan request.
type Actions struct {
	DirectoryPaths     []string
	ConfigOverridePath string
}

// Results holds the dependency records of a completed scan, sorted by file
// path, name and version.
type Results struct {
	Dependencies []*dependency.Dependency `json:"dependencies"`
}

// DoScan walks the requested directories, analyzes every Package.swift and
// Package.resolved found, and returns the collected dependency records.
//
// Files that cannot be analyzed are reported and skipped; the scan only
// fails outright when a directory cannot be walked or the config is invalid.
func DoScan(ctx context.Context, actions Actions) (Results, error) {
	if len(actions.DirectoryPaths) == 0 {
		actions.DirectoryPaths = []string{"."}
	}

	cfg, err := config.Lookup(actions.ConfigOverridePath, actions.DirectoryPaths[0])
	if err != nil {
		return Results{}, err
	}
	if cfg.LoadPath != "" {
		cmdlogger.Infof("Loaded filter and config from %s", cfg.LoadPath)
	}

	candidates, err := findCandidates(actions.DirectoryPaths, &cfg)
	if err != nil {
		return Results{}, err
	}
	if len(candidates) == 0 {
		return Results{}, ErrNoPackagesFound
	}

	collection := dependency.NewCollection()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrentAnalyses)

	for _, path := range candidates {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			analyzeFile(path, collection)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Results{}, err
	}

	deps := make([]*dependency.Dependency, 0, collection.Len())
	for _, dep := range collection.Dependencies() {
		if entry, ignored := cfg.ShouldIgnore(dep); ignored {
			reason := entry.Reason
			if reason == "" {
				reason = "(no reason given)"
			}
			cmdlogger.Infof("Package %s has been ignored: %s", dep.DisplayName, reason)

			continue
		}

		deps = append(deps, dep)
	}

	sortDependencies(deps)

	return Results{Dependencies: deps}, nil
}

func findCandidates(dirs []string, cfg *config.Config) ([]string, error) {
	var candidates []string

	for _, dir := range dirs {
		cmdlogger.Infof("Scanning dir %s", dir)

		err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if entry.IsDir() {
				if entry.Name() == ".git" {
					return filepath.SkipDir
				}

				return nil
			}

			switch entry.Name() {
			case swiftpkg.ManifestFileName:
				if cfg.AnalyzerEnabled(swiftpkg.ManifestAnalyzerName) {
					candidates = append(candidates, path)
				}
			case swiftpkg.ResolvedFileName:
				if cfg.AnalyzerEnabled(swiftpkg.ResolvedAnalyzerName) {
					candidates = append(candidates, path)
				}
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed walking %s: %w", dir, err)
		}
	}

	return candidates, nil
}

// analyzeFile runs the analyzer matching the file's name. An analysis
// failure is reported and the file's placeholder record withdrawn, so a
// single unreadable file never aborts the scan or leaves a partial record.
func analyzeFile(path string, collection *dependency.Collection) {
	dep := dependency.New(path)
	collection.Add(dep)

	var err error
	if dep.FileName == swiftpkg.ManifestFileName {
		err = swiftpkg.AnalyzeManifest(dep)
	} else {
		err = swiftpkg.AnalyzeResolved(dep, collection)
	}

	if err != nil {
		cmdlogger.Errorf("Failed to analyze %s: %v", path, err)
		collection.Remove(dep)
	}
}

func sortDependencies(deps []*dependency.Dependency) {
	slices.SortFunc(deps, func(a, b *dependency.Dependency) int {
		if c := cmp.Compare(a.FilePath, b.FilePath); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.Version, b.Version)
	})
}
