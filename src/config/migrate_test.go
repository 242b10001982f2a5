package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const legacyYAML = `output_dir: site/badges
defaults:
  font: go-mono
badges:
  - id: inbox
    content: "12"
`

const legacyTOML = `output_dir = "site/badges"

[defaults]
font = "go-mono"

[[badges]]
id = "inbox"
content = "12"
`

func TestMigrateLatestIsNoop(t *testing.T) {
	out, err := MigrateToLatest([]byte(sampleYAML), ".yml")
	require.NoError(t, err)
	assert.Equal(t, sampleYAML, string(out))
}

func TestMigrateUnversioned(t *testing.T) {
	for _, tc := range []struct{ ext, body string }{
		{".yml", legacyYAML},
		{".toml", legacyTOML},
	} {
		t.Run(tc.ext, func(t *testing.T) {
			out, err := MigrateToLatest([]byte(tc.body), tc.ext)
			require.NoError(t, err)

			cfg, err := Parse(out, tc.ext)
			require.NoError(t, err, "migrated output:\n%s", out)
			assert.Equal(t, LatestVersion, cfg.Version)
			assert.Equal(t, "site/badges", cfg.Badges.OutputDir)
			assert.Equal(t, "go-mono", cfg.Badges.Defaults.Font)
			require.Len(t, cfg.Badges.Items, 1)
			assert.Equal(t, "inbox", cfg.Badges.Items[0].ID)
			assert.Equal(t, "12", cfg.Badges.Items[0].Content)

			_, err = Validate(cfg, "1.0.0")
			assert.NoError(t, err)
		})
	}
}

func TestMigrateUnknownVersion(t *testing.T) {
	_, err := MigrateToLatest([]byte("version: 7\n"), ".yml")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unknown config version 7"), err.Error())
}

func TestMigrateRejectsUnrecognizedLayout(t *testing.T) {
	_, err := MigrateToLatest([]byte("badges:\n  items: []\n"), ".yml")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnversioned))
	assert.Contains(t, err.Error(), "not in the unversioned layout")
}
