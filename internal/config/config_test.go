package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	if len(cfg.Check.CreateFunctions) == 0 || cfg.Check.CreateFunctions[0] != "h" {
		t.Fatalf("default creators wrong: %v", cfg.Check.CreateFunctions)
	}
	if len(cfg.Check.MapMethods) != 2 {
		t.Fatalf("default map methods wrong: %v", cfg.Check.MapMethods)
	}
	if cfg.Check.MaxDiagnostics == 0 {
		t.Fatalf("default max diagnostics must be positive")
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[check]
create_functions = ["el"]
max_diagnostics = 10

[cache]
disabled = true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Check.CreateFunctions) != 1 || cfg.Check.CreateFunctions[0] != "el" {
		t.Fatalf("override not applied: %v", cfg.Check.CreateFunctions)
	}
	if cfg.Check.MaxDiagnostics != 10 {
		t.Fatalf("max_diagnostics = %d", cfg.Check.MaxDiagnostics)
	}
	// Untouched fields keep their defaults.
	if len(cfg.Check.MapMethods) != 2 {
		t.Fatalf("map methods lost their default: %v", cfg.Check.MapMethods)
	}
	if !cfg.Cache.Disabled {
		t.Fatalf("cache.disabled not applied")
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[check]
create_functons = ["el"]
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("typo key must be rejected")
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	path, ok, err := Find(nested)
	if err != nil || !ok {
		t.Fatalf("Find: ok=%v err=%v", ok, err)
	}
	if filepath.Dir(path) != root {
		t.Fatalf("found %q, want under %q", path, root)
	}
}

func TestDiscoverFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, path, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if path != "" {
		t.Fatalf("no manifest expected, found %q", path)
	}
	if len(cfg.Check.CreateFunctions) == 0 {
		t.Fatalf("fallback must carry defaults")
	}
}
