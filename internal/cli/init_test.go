package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func withInitInput(t *testing.T, input string) {
	t.Helper()
	original := initInput
	initInput = strings.NewReader(input)
	t.Cleanup(func() { initInput = original })
}

func TestInitCommandCreatesFiles(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ".quizclock", "config.yml")
	withInitInput(t, "\n")

	var out, err bytes.Buffer
	code := Run([]string{"init", "--config", configPath}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, err.String())
	}
	if !strings.Contains(out.String(), "Wrote") {
		t.Fatalf("expected output to include writes, got %q", out.String())
	}
	if _, statErr := os.Stat(configPath); statErr != nil {
		t.Fatalf("expected config file to exist: %v", statErr)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "questions.csv")); statErr != nil {
		t.Fatalf("expected sample deck to exist: %v", statErr)
	}

	out.Reset()
	err.Reset()
	code = Run([]string{"validate", "--config", configPath}, &out, &err)
	if code != ExitOK {
		t.Fatalf("scaffolded deck should validate, got %d (stderr %q)", code, err.String())
	}
}

func TestInitCommandRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.yml", "version: 1\n")
	withInitInput(t, "y\n")

	var out, err bytes.Buffer
	code := Run([]string{"init", "--config", configPath}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout output, got %q", out.String())
	}
	if !strings.Contains(err.String(), "already exists") {
		t.Fatalf("expected overwrite warning, got %q", err.String())
	}
}

func TestInitCommandCancelled(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ".quizclock", "config.yml")
	withInitInput(t, "n\n")

	var out, err bytes.Buffer
	code := Run([]string{"init", "--config", configPath}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "Init cancelled.") {
		t.Fatalf("expected cancel message, got %q", err.String())
	}
	if _, statErr := os.Stat(configPath); !os.IsNotExist(statErr) {
		t.Fatalf("expected no config file, got %v", statErr)
	}
}
