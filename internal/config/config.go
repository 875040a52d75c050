// Package config loads gridwalk CLI defaults from an optional YAML or JSONC
// file and the environment.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Environment variables.
const (
	EnvConfig = "GRIDWALK_CONFIG"
	EnvFormat = "GRIDWALK_FORMAT"
)

var (
	errConfigRead    = errors.New("cannot read config file")
	errConfigInvalid = errors.New("invalid config file")
	errBadFormat     = errors.New("unknown output format")
	errBadLimit      = errors.New("limit cannot be negative")
)

// Config holds the CLI defaults that flags may override.
type Config struct {
	Format  string `yaml:"format" json:"format"`
	Strict  bool   `yaml:"strict" json:"strict"`
	Summary bool   `yaml:"summary" json:"summary"`
	Limit   int    `yaml:"limit" json:"limit"`
}

// fileConfig mirrors Config with pointers so absent keys keep lower layers.
type fileConfig struct {
	Format  *string `yaml:"format" json:"format"`
	Strict  *bool   `yaml:"strict" json:"strict"`
	Summary *bool   `yaml:"summary" json:"summary"`
	Limit   *int    `yaml:"limit" json:"limit"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Format: FormatText}
}

// Load resolves the configuration with the following precedence (highest wins):
// 1. Defaults
// 2. Config file: explicitPath, else $GRIDWALK_CONFIG, else the global
// file under $XDG_CONFIG_HOME/gridwalk or ~/.config/gridwalk
// 3. $GRIDWALK_FORMAT
//
// A missing global file is not an error; a missing explicit file is.
// The result is not validated: callers layer their overrides on top and
// then call Validate once.
// Returns the config and the path of the file that was loaded, if any.
func Load(explicitPath string, env map[string]string) (Config, string, error) {
	cfg := Default()

	path, required := explicitPath, true
	if path == "" {
		path = env[EnvConfig]
	}
	if path == "" {
		path, required = globalPath(env), false
	}

	loaded := ""
	if path != "" {
		fc, err := readFile(path)
		switch {
		case err == nil:
			apply(&cfg, fc)
			loaded = path
		case errors.Is(err, os.ErrNotExist) && !required:
		default:
			return Config{}, "", err
		}
	}

	if f := env[EnvFormat]; f != "" {
		cfg.Format = f
	}

	return cfg, loaded, nil
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: %q (want text, json or yaml)", errBadFormat, c.Format)
	}
	if c.Limit < 0 {
		return fmt.Errorf("%w: %d", errBadLimit, c.Limit)
	}

	return nil
}

// globalPath returns $XDG_CONFIG_HOME/gridwalk/config.yaml, falling back to
// ~/.config/gridwalk/config.yaml. Empty if neither can be determined.
func globalPath(env map[string]string) string {
	if xdg := env["XDG_CONFIG_HOME"]; xdg != "" {
		return filepath.Join(xdg, "gridwalk", "config.yaml")
	}
	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "gridwalk", "config.yaml")
	}

	return ""
}

// readFile decodes path as JSONC when its extension is .json or .jsonc,
// and as YAML otherwise.
func readFile(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("%w %s: %w", errConfigRead, path, err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		standardized, err := hujson.Standardize(data)
		if err != nil {
			return fileConfig{}, fmt.Errorf("%w %s: %w", errConfigInvalid, path, err)
		}
		if err := json.Unmarshal(standardized, &fc); err != nil {
			return fileConfig{}, fmt.Errorf("%w %s: %w", errConfigInvalid, path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return fileConfig{}, fmt.Errorf("%w %s: %w", errConfigInvalid, path, err)
		}
	}

	return fc, nil
}

func apply(cfg *Config, fc fileConfig) {
	if fc.Format != nil {
		cfg.Format = *fc.Format
	}
	if fc.Strict != nil {
		cfg.Strict = *fc.Strict
	}
	if fc.Summary != nil {
		cfg.Summary = *fc.Summary
	}
	if fc.Limit != nil {
		cfg.Limit = *fc.Limit
	}
}
