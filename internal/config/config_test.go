package config_test

import (
	"testing"

	"github.com/swiftdeps/swiftdeps/internal/config"
	"github.com/swiftdeps/swiftdeps/internal/depscan/dependency"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load("testdata/swiftdeps.toml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LoadPath != "testdata/swiftdeps.toml" {
		t.Errorf("LoadPath = %s", cfg.LoadPath)
	}
	if len(cfg.IgnoredPackages) != 2 {
		t.Fatalf("got %d ignored packages, want 2", len(cfg.IgnoredPackages))
	}
	if cfg.IgnoredPackages[0].Reason != "vendored fork, patched internally" {
		t.Errorf("Reason = %s", cfg.IgnoredPackages[0].Reason)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := config.Load("testdata/invalid.toml"); err == nil {
		t.Errorf("Load() expected an error for invalid toml")
	}
}

func TestLookup_NoConfig(t *testing.T) {
	t.Parallel()

	cfg, err := config.Lookup("", t.TempDir())
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if cfg.LoadPath != "" {
		t.Errorf("expected a zero config, got one loaded from %s", cfg.LoadPath)
	}
}

func TestConfig_AnalyzerEnabled(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load("testdata/swiftdeps.toml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.AnalyzerEnabled("swift/resolved") {
		t.Errorf("swift/resolved should be disabled")
	}
	if !cfg.AnalyzerEnabled("swift/manifest") {
		t.Errorf("swift/manifest should be enabled")
	}
}

func TestConfig_ShouldIgnore(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load("testdata/swiftdeps.toml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		name    string
		version string
		want    bool
	}{
		{name: "Alamofire", version: "5.0.0", want: true},
		{name: "Alamofire", version: "5.1.0", want: false},
		// version-less entries apply to all versions
		{name: "Gloss", version: "2.0.0", want: true},
		{name: "swift-nio", version: "2.40.0", want: false},
	}

	for _, tt := range tests {
		dep := &dependency.Dependency{Name: tt.name, Version: tt.version}

		if _, got := cfg.ShouldIgnore(dep); got != tt.want {
			t.Errorf("ShouldIgnore(%s@%s) = %v, want %v", tt.name, tt.version, got, tt.want)
		}
	}
}
