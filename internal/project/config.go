// Package project locates and reads the scadc.toml project file. The file
// is optional: every setting has a default, and CLI flags override
// whatever the file says.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const ConfigName = "scadc.toml"

type Config struct {
	Build  BuildConfig  `toml:"build"`
	Output OutputConfig `toml:"output"`
}

type BuildConfig struct {
	// DefaultFn is the ambient segment count before any $fn assignment.
	DefaultFn float64 `toml:"default_fn"`

	// Out is the output directory for compiled files, relative to the
	// project root.
	Out string `toml:"out"`

	// Jobs caps concurrent compiles in directory builds.
	Jobs int `toml:"jobs"`
}

type OutputConfig struct {
	// Color is one of auto, on, off.
	Color string `toml:"color"`
}

// Default returns the configuration used when no scadc.toml exists.
func Default() Config {
	return Config{
		Build:  BuildConfig{DefaultFn: 32, Out: "dist"},
		Output: OutputConfig{Color: "auto"},
	}
}

// FindConfig walks up from startDir to locate scadc.toml.
func FindConfig(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ConfigName)
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

// Load reads and validates one config file. Settings absent from the file
// keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if meta.IsDefined("output", "color") {
		switch strings.TrimSpace(cfg.Output.Color) {
		case "auto", "on", "off":
		default:
			return Config{}, fmt.Errorf("%s: [output].color must be auto, on, or off", path)
		}
	}
	if cfg.Build.DefaultFn < 0 {
		return Config{}, fmt.Errorf("%s: [build].default_fn must not be negative", path)
	}
	return cfg, nil
}

// LoadFromDir finds and loads the nearest config above startDir, falling
// back to defaults when there is none. The returned root is the config's
// directory, or startDir when defaulting.
func LoadFromDir(startDir string) (cfg Config, root string, err error) {
	path, ok, err := FindConfig(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return Default(), startDir, nil
	}
	cfg, err = Load(path)
	if err != nil {
		return Config{}, "", err
	}
	return cfg, filepath.Dir(path), nil
}
