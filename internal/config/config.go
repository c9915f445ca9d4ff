// Package config loads marklint.toml: the per-project overrides for the
// checker's injected capabilities (creation functions, map methods) and
// output defaults. Configuration is optional; everything has a default.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the config file searched for upward from the start
// directory.
const ManifestName = "marklint.toml"

// Config is the decoded marklint.toml.
type Config struct {
	Check CheckConfig `toml:"check"`
	Cache CacheConfig `toml:"cache"`
}

// CheckConfig tunes the nesting checker.
type CheckConfig struct {
	// CreateFunctions are call names treated as element creation
	// expressions.
	CreateFunctions []string `toml:"create_functions"`
	// MapMethods are member-call names treated as collection transforms.
	MapMethods []string `toml:"map_methods"`
	// MaxDiagnostics caps the diagnostics kept per run. 0 keeps the
	// built-in default.
	MaxDiagnostics int `toml:"max_diagnostics"`
}

// CacheConfig tunes the on-disk result cache.
type CacheConfig struct {
	// Disabled switches the cache off entirely.
	Disabled bool `toml:"disabled"`
	// Dir overrides the cache directory.
	Dir string `toml:"dir"`
}

// Default returns the configuration used when no marklint.toml exists.
func Default() Config {
	return Config{
		Check: CheckConfig{
			CreateFunctions: []string{"h", "createElement", "jsx"},
			MapMethods:      []string{"map", "flatMap"},
			MaxDiagnostics:  256,
		},
	}
}

// Find walks up from startDir to locate marklint.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes one marklint.toml. Fields absent from the file keep their
// defaults; unknown keys are rejected to catch typos.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// Discover finds and loads the nearest marklint.toml above startDir,
// falling back to defaults when none exists. The returned path is empty
// in the fallback case.
func Discover(startDir string) (Config, string, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, path, err
	}
	return cfg, path, nil
}
