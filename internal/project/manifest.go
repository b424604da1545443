// Package project locates and parses quiver.toml, the optional per-tree
// tool configuration.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Manifest is a located and parsed quiver.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config is the quiver.toml schema. Все секции опциональны.
type Config struct {
	Format FormatConfig `toml:"format"`
	Live   LiveConfig   `toml:"live"`
	Check  CheckConfig  `toml:"check"`
}

type FormatConfig struct {
	IndentWidth int  `toml:"indent_width"`
	UseTabs     bool `toml:"use_tabs"`
}

type LiveConfig struct {
	DebounceMs int `toml:"debounce_ms"`
}

type CheckConfig struct {
	Jobs           int  `toml:"jobs"`
	Cache          bool `toml:"cache"`
	MaxDiagnostics int  `toml:"max_diagnostics"`
}

// DefaultConfig returns the configuration used when no quiver.toml exists.
func DefaultConfig() Config {
	return Config{
		Format: FormatConfig{IndentWidth: 4},
		Live:   LiveConfig{DebounceMs: 300},
		Check:  CheckConfig{Cache: true, MaxDiagnostics: 100},
	}
}

// Debounce returns the live-check delay as a duration.
func (c Config) Debounce() time.Duration {
	return time.Duration(c.Live.DebounceMs) * time.Millisecond
}

// FindQuiverToml walks up from startDir to locate quiver.toml.
func FindQuiverToml(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "quiver.toml")
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

// Load finds and parses the nearest quiver.toml. When none exists the
// defaults are returned with ok=false.
func Load(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindQuiverToml(startDir)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return &Manifest{Config: DefaultConfig()}, false, nil
	}
	cfg, err := loadConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if meta.IsDefined("format", "indent_width") && cfg.Format.IndentWidth < 1 {
		return Config{}, fmt.Errorf("%s: [format].indent_width must be positive", path)
	}
	if meta.IsDefined("live", "debounce_ms") && cfg.Live.DebounceMs < 0 {
		return Config{}, fmt.Errorf("%s: [live].debounce_ms must not be negative", path)
	}
	if meta.IsDefined("check", "jobs") && cfg.Check.Jobs < 0 {
		return Config{}, fmt.Errorf("%s: [check].jobs must not be negative", path)
	}
	if meta.IsDefined("check", "max_diagnostics") && cfg.Check.MaxDiagnostics < 1 {
		return Config{}, fmt.Errorf("%s: [check].max_diagnostics must be positive", path)
	}
	return cfg, nil
}
