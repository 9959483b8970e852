package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	content := `document:
  title: Jane Doe
output:
  defaultDir: exports
export:
  htmlOnly: true
  timeout: 45s
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Document.Title != "Jane Doe" {
		t.Errorf("Document.Title = %q", cfg.Document.Title)
	}
	if cfg.Output.DefaultDir != "exports" {
		t.Errorf("Output.DefaultDir = %q", cfg.Output.DefaultDir)
	}
	if !cfg.Export.HTMLOnly {
		t.Error("Export.HTMLOnly = false, want true")
	}
	if cfg.Export.Timeout != "45s" {
		t.Errorf("Export.Timeout = %q", cfg.Export.Timeout)
	}
}

func TestLoadConfig_UnknownFieldRejected(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	if err := os.WriteFile(path, []byte("bogus: true\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfig(path)
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("LoadConfig() error = %v, want ErrConfigParse", err)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("LoadConfig() error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadConfig_MissingName(t *testing.T) {
	t.Parallel()

	// A bare name is searched in standard locations; this one exists in none.
	_, err := LoadConfig("definitely-not-a-real-resumeprint-profile")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("LoadConfig() error = %v, want ErrConfigNotFound", err)
	}
}
