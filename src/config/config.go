package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrUnversioned is returned for a config without a version field.
var ErrUnversioned = errors.New("config has no version field; run 'badgekit migrate' to upgrade it")

// Config files tried, in order, when no path is given.
var defaultConfigFiles = []string{".badgekit.yml", ".badgekit.yaml", ".badgekit.toml"}

// Config is the top-level badgekit configuration.
type Config struct {
	Version  int          `yaml:"version" toml:"version"`
	Requires string       `yaml:"requires,omitempty" toml:"requires,omitempty"` // semver constraint on the badgekit binary
	Badges   BadgesConfig `yaml:"badges" toml:"badges"`
}

// Load reads configuration from a YAML or TOML file, chosen by extension.
// If path is empty, it tries the default files.
// Returns sensible defaults if no file exists.
func Load(path string) (*Config, error) {
	if path == "" {
		for _, candidate := range defaultConfigFiles {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
		if path == "" {
			return defaults(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaults(), nil
		}
		return nil, err
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes data over the defaults. ext selects the syntax: ".toml" for
// TOML, anything else for YAML.
func Parse(data []byte, ext string) (*Config, error) {
	if len(bytes.TrimSpace(data)) > 0 {
		ver, err := peekVersion(data, ext)
		if err == nil && ver == 0 {
			return nil, ErrUnversioned
		}
	}

	cfg := defaults()
	if err := unmarshal(data, ext, cfg); err != nil {
		syntax := "yaml"
		if isTOML(ext) {
			syntax = "toml"
		}
		return nil, fmt.Errorf("parsing %s: %w", syntax, err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Version: LatestVersion,
		Badges:  DefaultBadgesConfig(),
	}
}
