package badge

import (
	"fmt"
	"image/color"
	"log/slog"
)

// Shine gradient stops: near-white at the top fading to translucent light
// gray 40% of the way down.
var shineStops = []ColorStop{
	{Offset: 0, Color: color.NRGBA{R: 235, G: 235, B: 235, A: 255}},
	{Offset: 0.4, Color: color.NRGBA{R: 209, G: 209, B: 209, A: 102}},
}

// ShineGradient returns the gloss gradient for a badge drawn in rect with
// outline shape. It runs from the top of rect to the bottom of the shape.
func ShineGradient(rect Rect, shape Shape) LinearGradient {
	return LinearGradient{
		From:  Point{X: rect.MinX(), Y: rect.MinY()},
		To:    Point{X: rect.MinX(), Y: shape.Bounds().MaxY()},
		Stops: shineStops,
	}
}

// Render draws a badge into rect on s in four passes: fill, optional shine,
// optional frame, optional text. Each pass covers the previous one.
//
// The outline is built once and shared by the fill, the shine clip and the
// frame stroke, so the frame sits exactly on the fill edge. Graphics state is
// saved on entry and restored on every return.
func Render(s Surface, rect Rect, cfg Config, content string) (err error) {
	s.Save()
	defer s.Restore()

	if rect.Empty() {
		return nil
	}

	log := Logger()
	defer func() {
		if err != nil {
			log.Warn("badge: render aborted", slog.Any("error", err))
		}
	}()

	shape := BuildShape(rect, cfg.CornerRoundness)

	if err := s.FillPath(shape, cfg.InsetColor); err != nil {
		return fmt.Errorf("filling badge: %w", err)
	}

	if cfg.Shining {
		if err := drawShine(s, rect, shape); err != nil {
			return err
		}
	}

	if cfg.FrameVisible {
		if err := s.StrokePath(shape, FrameLineWidth(cfg.ScaleFactor), cfg.FrameColor); err != nil {
			return fmt.Errorf("stroking badge frame: %w", err)
		}
	}

	if !IsBlank(content) {
		font := cfg.Font.WithSize(TextFontSize(content, cfg.ScaleFactor))
		tw, th := s.Measure(content, font)
		at := Point{
			X: rect.X + rect.Width/2 - tw/2,
			Y: rect.Y + rect.Height/2 - th/2,
		}
		if err := s.DrawText(content, font, cfg.TextColor, at); err != nil {
			return fmt.Errorf("drawing badge text: %w", err)
		}
	}

	log.Debug("badge: rendered",
		slog.Float64("width", rect.Width),
		slog.Float64("height", rect.Height),
		slog.Bool("shining", cfg.Shining),
		slog.Bool("frame", cfg.FrameVisible))
	return nil
}

// drawShine confines the gloss to shape. The clip is dropped again before
// the frame is stroked.
func drawShine(s Surface, rect Rect, shape Shape) error {
	s.Save()
	defer s.Restore()

	if err := s.ClipPath(shape); err != nil {
		return fmt.Errorf("clipping badge shine: %w", err)
	}
	if err := s.FillLinearGradient(ShineGradient(rect, shape), rect); err != nil {
		return fmt.Errorf("painting badge shine: %w", err)
	}
	return nil
}
