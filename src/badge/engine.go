package badge

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned for output formats the engine cannot produce.
var ErrUnknownFormat = errors.New("unknown badge format")

// Format is an encoded output type.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// ParseFormat accepts "svg" or "png" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatSVG, FormatPNG:
		return f, nil
	default:
		return "", fmt.Errorf("%w %q (supported: svg, png)", ErrUnknownFormat, s)
	}
}

// FormatFromPath picks a format from a file extension, defaulting to SVG.
func FormatFromPath(path string) Format {
	if strings.HasSuffix(strings.ToLower(path), ".png") {
		return FormatPNG
	}
	return FormatSVG
}

// Rasterizer renders a sized badge to an encoded bitmap.
type Rasterizer interface {
	Rasterize(b *Badge, size Size) ([]byte, error)
}

// Spec defines the content and appearance of a single badge.
type Spec struct {
	Content string
	Config  Config
	Format  Format
}

// Output is an encoded badge and the size it was rendered at.
type Output struct {
	Data   []byte
	Size   Size
	Format Format
}

// Engine generates badge files.
type Engine struct {
	fonts  *FontLibrary
	raster Rasterizer
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithRasterizer enables PNG output.
func WithRasterizer(r Rasterizer) EngineOption {
	return func(e *Engine) { e.raster = r }
}

// NewEngine creates a badge engine measuring text with lib.
func NewEngine(lib *FontLibrary, opts ...EngineOption) *Engine {
	e := &Engine{fonts: lib}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Fonts returns the engine's font library.
func (e *Engine) Fonts() *FontLibrary { return e.fonts }

// Generate sizes a fresh badge for spec and encodes it at its intrinsic size.
func (e *Engine) Generate(spec Spec) (Output, error) {
	if _, err := e.fonts.Resolve(spec.Config.Font.Family); err != nil {
		return Output{}, fmt.Errorf("loading badge font: %w", err)
	}

	b := New(e.fonts, WithConfig(spec.Config))
	b.SetContent(spec.Content)
	size := b.IntrinsicSize()

	format := spec.Format
	if format == "" {
		format = FormatSVG
	}

	switch format {
	case FormatSVG:
		surf := NewSVGSurface(e.fonts, size)
		if err := b.Draw(surf, NewRect(size)); err != nil {
			return Output{}, err
		}
		return Output{Data: surf.Bytes(), Size: size, Format: format}, nil
	case FormatPNG:
		if e.raster == nil {
			return Output{}, fmt.Errorf("%w %q: no rasterizer configured", ErrUnknownFormat, format)
		}
		data, err := e.raster.Rasterize(b, size)
		if err != nil {
			return Output{}, fmt.Errorf("rasterizing badge: %w", err)
		}
		return Output{Data: data, Size: size, Format: format}, nil
	default:
		return Output{}, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}
