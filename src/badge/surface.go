package badge

import "image/color"

// Measurer reports the rendered extent of text in a given font.
type Measurer interface {
	Measure(text string, font Font) (width, height float64)
}

// ColorStop is one color position of a gradient. Offset is in [0, 1].
type ColorStop struct {
	Offset float64
	Color  color.NRGBA
}

// LinearGradient is a two-point gradient in surface coordinates.
type LinearGradient struct {
	From, To Point
	Stops    []ColorStop
}

// Surface is a host rendering target.
//
// Save and Restore bracket graphics state (clip in particular). Every Save
// must be paired with a Restore; Render guarantees this on all exit paths.
type Surface interface {
	Measurer

	Save()
	Restore()

	FillPath(s Shape, c color.NRGBA) error
	// ClipPath intersects the current clip with s until the matching Restore.
	ClipPath(s Shape) error
	// FillLinearGradient paints g over area, honoring the current clip.
	FillLinearGradient(g LinearGradient, area Rect) error
	StrokePath(s Shape, width float64, c color.NRGBA) error
	// DrawText draws text with its bounding box's top-left corner at at.
	DrawText(text string, font Font, c color.NRGBA, at Point) error
}

// Invalidator is the host layout system's invalidation entry point.
type Invalidator interface {
	InvalidateIntrinsicSize()
	RequestRedraw()
}

// NopInvalidator ignores every request.
type NopInvalidator struct{}

func (NopInvalidator) InvalidateIntrinsicSize() {}
func (NopInvalidator) RequestRedraw()           {}
