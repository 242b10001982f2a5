package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sofmeright/badgekit/src/badge"
	"github.com/sofmeright/badgekit/src/config"
	"github.com/sofmeright/badgekit/src/raster"
)

var badgeCmd = &cobra.Command{
	Use:   "badge",
	Short: "Badge rendering commands",
	Long:  "Render badges from config or ad-hoc flags, or inspect their computed size.",
}

func init() {
	rootCmd.AddCommand(badgeCmd)
}

// styleFlags collects per-invocation style overrides.
type styleFlags struct {
	font       string
	fontSize   float64
	fontFile   string
	textColor  string
	insetColor string
	frameColor string
	frame      bool
	shine      bool
	roundness  float64
	scale      float64
}

func (s *styleFlags) register(fs *pflag.FlagSet) {
	d := badge.DefaultConfig()
	fs.StringVar(&s.font, "font", "", "built-in font name (see 'badgekit fonts')")
	fs.Float64Var(&s.fontSize, "font-size", d.Font.Size, "measuring font size in points")
	fs.StringVar(&s.fontFile, "font-file", "", "path to a custom TTF/OTF font")
	fs.StringVar(&s.textColor, "text-color", "", "label color (name or hex)")
	fs.StringVar(&s.insetColor, "inset-color", "", "fill color (name, hex or auto)")
	fs.StringVar(&s.frameColor, "frame-color", "", "frame color (name or hex)")
	fs.BoolVar(&s.frame, "frame", d.FrameVisible, "draw the frame")
	fs.BoolVar(&s.shine, "shine", d.Shining, "draw the gloss highlight")
	fs.Float64Var(&s.roundness, "roundness", d.CornerRoundness, "corner radius as a fraction of height")
	fs.Float64Var(&s.scale, "scale", d.ScaleFactor, "scale factor")
}

// overrides returns a style holding only the flags the user set.
func (s *styleFlags) overrides(fs *pflag.FlagSet) config.StyleConfig {
	var out config.StyleConfig
	if fs.Changed("font") {
		out.Font = s.font
	}
	if fs.Changed("font-size") {
		out.FontSize = &s.fontSize
	}
	if fs.Changed("font-file") {
		out.FontFile = s.fontFile
	}
	if fs.Changed("text-color") {
		out.TextColor = s.textColor
	}
	if fs.Changed("inset-color") {
		out.InsetColor = s.insetColor
	}
	if fs.Changed("frame-color") {
		out.FrameColor = s.frameColor
	}
	if fs.Changed("frame") {
		out.FrameVisible = &s.frame
	}
	if fs.Changed("shine") {
		out.Shining = &s.shine
	}
	if fs.Changed("roundness") {
		out.CornerRoundness = &s.roundness
	}
	if fs.Changed("scale") {
		out.ScaleFactor = &s.scale
	}
	return out
}

// badgeRuntime bundles the font library, rasterizer and engine for one command.
type badgeRuntime struct {
	fonts  *badge.FontLibrary
	raster *raster.Renderer
	engine *badge.Engine
}

// newBadgeRuntime builds an engine and registers every custom font file the
// given styles reference.
func newBadgeRuntime(styles ...config.StyleConfig) (*badgeRuntime, error) {
	lib := badge.NewFontLibrary()
	for _, s := range styles {
		if s.FontFile == "" {
			continue
		}
		if _, err := lib.Lookup(s.FontFile); err == nil {
			continue
		}
		m, err := badge.LoadFontFile(s.FontFile)
		if err != nil {
			return nil, fmt.Errorf("loading badge font: %w", err)
		}
		lib.Add(s.FontFile, m)
	}

	r := raster.NewRenderer(lib)
	return &badgeRuntime{
		fonts:  lib,
		raster: r,
		engine: badge.NewEngine(lib, badge.WithRasterizer(r)),
	}, nil
}

func (rt *badgeRuntime) Close() error {
	return errors.Join(rt.raster.Close(), rt.fonts.Close())
}

// writeBadge writes data to path, or to stdout when path is "-".
func writeBadge(cmd *cobra.Command, path string, data []byte) error {
	if path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating badge directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing badge: %w", err)
	}
	return nil
}
