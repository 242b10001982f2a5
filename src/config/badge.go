package config

import (
	"fmt"
	"path/filepath"

	"github.com/sofmeright/badgekit/src/badge"
	"github.com/sofmeright/badgekit/src/fonts"
)

// StyleConfig holds badge appearance. In defaults every field is set; in a
// badge item unset fields (zero strings, nil pointers) inherit the defaults.
type StyleConfig struct {
	Font     string   `yaml:"font,omitempty" toml:"font,omitempty"`           // built-in font name (default: "go-regular")
	FontSize *float64 `yaml:"font_size,omitempty" toml:"font_size,omitempty"` // measuring font size in points (default: 12)
	FontFile string   `yaml:"font_file,omitempty" toml:"font_file,omitempty"` // path to custom TTF/OTF (overrides Font)

	TextColor  string `yaml:"text_color,omitempty" toml:"text_color,omitempty"`   // name or hex (default: white)
	InsetColor string `yaml:"inset_color,omitempty" toml:"inset_color,omitempty"` // name, hex or "auto" for status-driven
	FrameColor string `yaml:"frame_color,omitempty" toml:"frame_color,omitempty"` // name or hex (default: white)

	FrameVisible    *bool    `yaml:"frame_visible,omitempty" toml:"frame_visible,omitempty"`
	Shining         *bool    `yaml:"shining,omitempty" toml:"shining,omitempty"`
	CornerRoundness *float64 `yaml:"corner_roundness,omitempty" toml:"corner_roundness,omitempty"` // fraction of height (default: 0.4)
	ScaleFactor     *float64 `yaml:"scale_factor,omitempty" toml:"scale_factor,omitempty"`         // default: 0.95
}

// BadgeItemConfig defines a single badge to generate.
type BadgeItemConfig struct {
	ID      string      `yaml:"id,omitempty" toml:"id,omitempty"`           // unique identifier
	Content string      `yaml:"content,omitempty" toml:"content,omitempty"` // label text, e.g. "3" or "99+"
	Status  string      `yaml:"status,omitempty" toml:"status,omitempty"`   // passed, warning, critical; drives inset_color "auto"
	Format  string      `yaml:"format,omitempty" toml:"format,omitempty"`   // svg or png (default: from output extension)
	Output  string      `yaml:"output,omitempty" toml:"output,omitempty"`   // file path (default: <output_dir>/<id>.<format>)
	Style   StyleConfig `yaml:"style,omitempty" toml:"style,omitempty"`     // per-badge overrides
}

// BadgesConfig holds badge generation configuration.
type BadgesConfig struct {
	OutputDir string            `yaml:"output_dir,omitempty" toml:"output_dir,omitempty"` // default: .badgekit/badges
	Defaults  StyleConfig       `yaml:"defaults,omitempty" toml:"defaults,omitempty"`
	Items     []BadgeItemConfig `yaml:"items,omitempty" toml:"items,omitempty"`
}

// DefaultStyleConfig mirrors badge.DefaultConfig.
func DefaultStyleConfig() StyleConfig {
	d := badge.DefaultConfig()
	return StyleConfig{
		Font:            fonts.DefaultFont,
		FontSize:        ptr(d.Font.Size),
		TextColor:       "white",
		InsetColor:      "red",
		FrameColor:      "white",
		FrameVisible:    ptr(d.FrameVisible),
		Shining:         ptr(d.Shining),
		CornerRoundness: ptr(d.CornerRoundness),
		ScaleFactor:     ptr(d.ScaleFactor),
	}
}

// DefaultBadgesConfig returns sensible defaults for badge generation.
func DefaultBadgesConfig() BadgesConfig {
	return BadgesConfig{
		OutputDir: ".badgekit/badges",
		Defaults:  DefaultStyleConfig(),
	}
}

// Merge returns s with every unset field taken from base.
func (s StyleConfig) Merge(base StyleConfig) StyleConfig {
	out := base
	if s.FontFile != "" {
		out.FontFile = s.FontFile
		out.Font = ""
	}
	if s.Font != "" {
		out.Font = s.Font
		if s.FontFile == "" {
			out.FontFile = ""
		}
	}
	setIf(&out.FontSize, s.FontSize)
	setStr(&out.TextColor, s.TextColor)
	setStr(&out.InsetColor, s.InsetColor)
	setStr(&out.FrameColor, s.FrameColor)
	setIf(&out.FrameVisible, s.FrameVisible)
	setIf(&out.Shining, s.Shining)
	setIf(&out.CornerRoundness, s.CornerRoundness)
	setIf(&out.ScaleFactor, s.ScaleFactor)
	return out
}

// FontFamily returns the family name a badge.Font should carry for s. Custom
// font files are registered under their path.
func (s StyleConfig) FontFamily() string {
	switch {
	case s.FontFile != "":
		return s.FontFile
	case s.Font != "":
		return s.Font
	default:
		return fonts.DefaultFont
	}
}

// BadgeConfig converts a fully merged style to a badge configuration. status
// is used when InsetColor is "auto".
func (s StyleConfig) BadgeConfig(status string) (badge.Config, error) {
	cfg := badge.DefaultConfig()
	cfg.Font = badge.Font{Family: s.FontFamily(), Size: deref(s.FontSize, cfg.Font.Size)}

	var err error
	if s.TextColor != "" {
		if cfg.TextColor, err = badge.ParseColor(s.TextColor); err != nil {
			return cfg, fmt.Errorf("text_color: %w", err)
		}
	}
	switch s.InsetColor {
	case "":
	case "auto":
		cfg.InsetColor = badge.StatusColor(status)
	default:
		if cfg.InsetColor, err = badge.ParseColor(s.InsetColor); err != nil {
			return cfg, fmt.Errorf("inset_color: %w", err)
		}
	}
	if s.FrameColor != "" {
		if cfg.FrameColor, err = badge.ParseColor(s.FrameColor); err != nil {
			return cfg, fmt.Errorf("frame_color: %w", err)
		}
	}

	cfg.FrameVisible = deref(s.FrameVisible, cfg.FrameVisible)
	cfg.Shining = deref(s.Shining, cfg.Shining)
	cfg.CornerRoundness = deref(s.CornerRoundness, cfg.CornerRoundness)
	cfg.ScaleFactor = deref(s.ScaleFactor, cfg.ScaleFactor)
	return cfg, nil
}

// BadgeSpec is a badge item with defaults applied.
type BadgeSpec struct {
	ID      string
	Content string
	Output  string
	Format  badge.Format
	Style   StyleConfig
	Config  badge.Config
}

// Resolve merges item over the badge defaults and fills in derived fields.
func (b BadgesConfig) Resolve(item BadgeItemConfig) (BadgeSpec, error) {
	style := item.Style.Merge(b.Defaults)

	format := badge.FormatSVG
	switch {
	case item.Format != "":
		f, err := badge.ParseFormat(item.Format)
		if err != nil {
			return BadgeSpec{}, fmt.Errorf("badge %s: %w", item.ID, err)
		}
		format = f
	case item.Output != "":
		format = badge.FormatFromPath(item.Output)
	}

	output := item.Output
	if output == "" {
		output = filepath.Join(b.OutputDir, item.ID+"."+string(format))
	}

	cfg, err := style.BadgeConfig(item.Status)
	if err != nil {
		return BadgeSpec{}, fmt.Errorf("badge %s: %w", item.ID, err)
	}

	return BadgeSpec{
		ID:      item.ID,
		Content: item.Content,
		Output:  output,
		Format:  format,
		Style:   style,
		Config:  cfg,
	}, nil
}

func ptr[T any](v T) *T { return &v }

func deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

func setIf[T any](dst **T, v *T) {
	if v != nil {
		*dst = v
	}
}

func setStr(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
