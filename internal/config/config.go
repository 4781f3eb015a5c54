// Package config manages the configuration for swiftdeps.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/swiftdeps/swiftdeps/internal/depscan/dependency"
)

// ConfigFileName is looked up in the scan root when no explicit config path
// is given.
var ConfigFileName = "swiftdeps.toml"

type Config struct {
	// Analyzer names that should not run, e.g. "swift/resolved".
	DisabledAnalyzers []string      `toml:"DisabledAnalyzers"`
	IgnoredPackages   []IgnoreEntry `toml:"IgnoredPackages"`

	// The path this config was loaded from, set after a successful parse.
	LoadPath string `toml:"-"`
}

type IgnoreEntry struct {
	Name string `toml:"name"`
	// If the version is empty, the entry applies to all versions.
	Version string `toml:"version,omitempty"`
	Reason  string `toml:"reason,omitempty"`
}

func (e IgnoreEntry) matches(dep *dependency.Dependency) bool {
	if e.Name != dep.Name {
		return false
	}
	if e.Version != "" && e.Version != dep.Version {
		return false
	}

	return true
}

// AnalyzerEnabled reports whether the named analyzer should run.
func (c *Config) AnalyzerEnabled(name string) bool {
	return !slices.Contains(c.DisabledAnalyzers, name)
}

// ShouldIgnore returns the first ignore entry matching the record, if any.
func (c *Config) ShouldIgnore(dep *dependency.Dependency) (IgnoreEntry, bool) {
	for _, entry := range c.IgnoredPackages {
		if entry.matches(dep) {
			return entry, true
		}
	}

	return IgnoreEntry{}, false
}

// Load reads the config file at the given path.
func Load(path string) (Config, error) {
	var cfg Config

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("could not load config %s: %w", path, err)
	}

	cfg.LoadPath = path

	return cfg, nil
}

// Lookup returns the config for a scan: the file at overridePath if given,
// otherwise the ConfigFileName found in scanRoot, otherwise a zero config.
func Lookup(overridePath, scanRoot string) (Config, error) {
	if overridePath != "" {
		return Load(overridePath)
	}

	path := filepath.Join(scanRoot, ConfigFileName)
	if _, err := os.Stat(path); err != nil {
		return Config{}, nil
	}

	return Load(path)
}
