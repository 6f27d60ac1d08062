// Package config loads and saves the .cmakemin.yaml project
// configuration. Values from the file are defaults; command-line flags
// override them.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// DefaultConfigFile is the configuration file looked up in the working
// directory.
const DefaultConfigFile = ".cmakemin.yaml"

// configFilePerm is the permission used when writing the config file.
const configFilePerm os.FileMode = 0o644

// Config is the main configuration structure for cmakemin.
type Config struct {
	// ToolsDirectory holds the unpacked CMake releases to probe.
	ToolsDirectory string `yaml:"tools_directory"`

	// LatestPatch restricts searches to the highest patch release per
	// minor version.
	LatestPatch bool `yaml:"latest_patch,omitempty"`

	// TrialArgs are extra arguments passed to cmake on every trial,
	// e.g. a generator selection.
	TrialArgs []string `yaml:"trial_args,omitempty"`

	// NoColor disables styled output.
	NoColor bool `yaml:"no_color,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{ToolsDirectory: "tools"}
}

// Load reads the configuration from path. A missing file yields the
// defaults; a present but malformed file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config file %q: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %q: %w", path, err)
	}
	if cfg.ToolsDirectory == "" {
		cfg.ToolsDirectory = Default().ToolsDirectory
	}
	return cfg, nil
}

// Save writes the configuration to path.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, configFilePerm); err != nil {
		return fmt.Errorf("writing config file %q: %w", path, err)
	}
	return nil
}
