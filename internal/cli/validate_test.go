package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateDeckOK(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "questions.csv", choiceCSV)

	var out, err bytes.Buffer
	code := Run([]string{"validate", "--file", path}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, err.String())
	}
	if !strings.Contains(out.String(), "Deck OK: 2 choice questions") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestValidateDeckReportsIssues(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "questions.csv", "question,option1,option2,correctIndex\n,a,b,7\n")

	var out, err bytes.Buffer
	code := Run([]string{"validate", "--file", path}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "Validation failed") || !strings.Contains(err.String(), "questions[0]") {
		t.Fatalf("expected issue list, got %q", err.String())
	}
}

func TestValidateDeckFromConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "deck.csv", openCSV)
	writeFile(t, dir, filepath.Join(".quizclock", "config.yml"), "version: 1\nquiz:\n  file: deck.csv\n")
	chdir(t, dir)

	var out, err bytes.Buffer
	code := Run([]string{"validate"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, err.String())
	}
	if !strings.Contains(out.String(), "2 open questions") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestValidateRejectsBadVariant(t *testing.T) {
	var out, err bytes.Buffer
	code := Run([]string{"validate", "--file", "x.csv", "--variant", "essay"}, &out, &err)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
}
