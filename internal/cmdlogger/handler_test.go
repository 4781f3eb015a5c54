package cmdlogger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/swiftdeps/swiftdeps/internal/cmdlogger"
)

func TestHandler_RoutesByLevel(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	handler := cmdlogger.New(stdout, stderr)
	logger := slog.New(handler)

	logger.Info("found 2 packages")
	logger.Error("could not read Package.swift")

	if got := stdout.String(); got != "found 2 packages\n" {
		t.Errorf("stdout = %q", got)
	}
	if got := stderr.String(); got != "could not read Package.swift\n" {
		t.Errorf("stderr = %q", got)
	}
	if !handler.HasErrored() {
		t.Errorf("HasErrored() = false after an error was logged")
	}
}

func TestHandler_SendEverythingToStderr(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	handler := cmdlogger.New(stdout, stderr)
	handler.SendEverythingToStderr()
	logger := slog.New(handler)

	logger.Info("scanning ./app")

	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want it untouched", stdout.String())
	}
	if got := stderr.String(); got != "scanning ./app\n" {
		t.Errorf("stderr = %q", got)
	}
}

func TestHandler_LevelFiltering(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	handler := cmdlogger.New(stdout, stderr)
	handler.SetLevel(slog.LevelWarn)

	if handler.Enabled(context.Background(), slog.LevelInfo) {
		t.Errorf("info should be filtered out at warn level")
	}
	if !handler.Enabled(context.Background(), slog.LevelWarn) {
		t.Errorf("warn should be enabled at warn level")
	}
}
