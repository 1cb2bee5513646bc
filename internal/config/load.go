package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// FileName is the name meshtool looks for when no -config flag is given.
const FileName = "meshtool.yaml"

// EnvConfig names an environment variable holding a config path. It is
// consulted after -config and before the directory search.
const EnvConfig = "MESHTOOL_CONFIG"

// Load builds the configuration from defaults, then the config file, then
// command-line flags, and validates the result.
func Load() (*Config, error) {
	cfg := Default()

	if path := resolveConfigPath(); path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func resolveConfigPath() string {
	if path := ConfigPath(); path != "" {
		return path
	}
	if path := os.Getenv(EnvConfig); path != "" {
		return path
	}
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return findConfigFile(wd)
}

// findConfigFile returns the nearest meshtool.yaml in dir or one of its
// parents, so a config at the root of a mesh collection applies to all of
// its subdirectories. The user config directory is tried last.
func findConfigFile(dir string) string {
	for {
		path := filepath.Join(dir, FileName)
		if isFile(path) {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if path := filepath.Join(ConfigDir(), FileName); isFile(path) {
		return path
	}
	return ""
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ConfigDir returns the OS-appropriate per-user config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Trimesh")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Trimesh")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "trimesh")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "trimesh")
	}
}

// loadFromFile decodes the YAML file at path over cfg. Keys absent from the
// file keep their current values; unknown keys are an error.
func loadFromFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
