package config

import (
	"fmt"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// LatestVersion is the current config schema version.
const LatestVersion = 1

// legacyConfig is the unversioned layout: style defaults and the badge list
// at the top level.
type legacyConfig struct {
	OutputDir string            `yaml:"output_dir" toml:"output_dir"`
	Defaults  StyleConfig       `yaml:"defaults" toml:"defaults"`
	Badges    []BadgeItemConfig `yaml:"badges" toml:"badges"`
}

// MigrateToLatest rewrites raw config data at the latest schema version. ext
// selects the syntax as in Parse; the output uses the same syntax.
//
// Migration chain:
//
//	unversioned → 1 (top-level defaults and badges move under badges:)
//	1           → current (no-op)
func MigrateToLatest(data []byte, ext string) ([]byte, error) {
	ver, err := peekVersion(data, ext)
	if err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	switch ver {
	case LatestVersion:
		return data, nil
	case 0:
		return migrateUnversioned(data, ext)
	default:
		return nil, fmt.Errorf("migrate: unknown config version %d (latest supported: %d)", ver, LatestVersion)
	}
}

func migrateUnversioned(data []byte, ext string) ([]byte, error) {
	var old legacyConfig
	if err := unmarshal(data, ext, &old); err != nil {
		return nil, fmt.Errorf("migrate: config has no version field and is not in the unversioned layout: %w", err)
	}

	cfg := Config{Version: LatestVersion}
	cfg.Badges = BadgesConfig{
		OutputDir: old.OutputDir,
		Defaults:  old.Defaults,
		Items:     old.Badges,
	}
	if isTOML(ext) {
		return toml.Marshal(cfg)
	}
	return yaml.Marshal(cfg)
}

// peekVersion extracts the version field without decoding the rest.
// Returns 0 if no version field is present.
func peekVersion(data []byte, ext string) (int, error) {
	var probe struct {
		Version int `yaml:"version" toml:"version"`
	}
	if err := unmarshal(data, ext, &probe); err != nil {
		return 0, fmt.Errorf("reading version: %w", err)
	}
	return probe.Version, nil
}

func unmarshal(data []byte, ext string, v any) error {
	if isTOML(ext) {
		return toml.Unmarshal(data, v)
	}
	return yaml.Unmarshal(data, v)
}

func isTOML(ext string) bool {
	return strings.EqualFold(ext, ".toml")
}
