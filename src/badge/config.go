package badge

import (
	"image/color"

	"github.com/sofmeright/badgekit/src/fonts"
)

// Font identifies a typeface and point size. Family is resolved by the
// Measurer or Surface that consumes it.
type Font struct {
	Family string
	Size   float64
}

// WithSize returns a copy of f at the given point size.
func (f Font) WithSize(size float64) Font {
	f.Size = size
	return f
}

// DefaultFont is the font a new badge starts with.
var DefaultFont = Font{Family: fonts.DefaultFont, Size: 12}

// Config holds the appearance of a badge. It is owned by a single Badge and
// read through the Badge's accessors.
type Config struct {
	Font       Font
	TextColor  color.NRGBA
	InsetColor color.NRGBA
	FrameColor color.NRGBA

	FrameVisible bool
	Shining      bool

	// CornerRoundness is a fraction of the rect height. Values outside [0, 1]
	// are accepted and produce malformed arcs.
	CornerRoundness float64

	// ScaleFactor multiplies every computed dimension.
	ScaleFactor float64
}

// Base dimensions, before ScaleFactor.
const (
	baseSide        = 20.0
	basePadding     = 15.0
	baseTextSize    = 13.5
	singleCharBoost = 0.20
	pufferRatio     = 0.10
	frameLineWidth  = 2.0
	frameScaleBoost = 0.25
)

var (
	White = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Red   = color.NRGBA{R: 0xff, A: 0xff}
)

// DefaultConfig returns the configuration a new badge starts with.
func DefaultConfig() Config {
	return Config{
		Font:            DefaultFont,
		TextColor:       White,
		InsetColor:      Red,
		FrameColor:      White,
		FrameVisible:    false,
		Shining:         false,
		CornerRoundness: 0.4,
		ScaleFactor:     0.95,
	}
}
