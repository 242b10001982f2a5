// Package badgewidget hosts a badge in a Fyne user interface.
//
// The widget reports the badge's intrinsic size as its MinSize and refreshes
// whenever the badge asks for relayout or redraw. It implements none of
// Fyne's input interfaces, so taps, clicks and hovers reach whatever lies
// beneath it.
package badgewidget

import (
	"image"
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/sofmeright/badgekit/src/badge"
	"github.com/sofmeright/badgekit/src/raster"
)

// Badge is a Fyne widget wrapping a badge.Badge.
type Badge struct {
	widget.BaseWidget

	core   *badge.Badge
	raster *raster.Renderer
}

var _ badge.Invalidator = (*Badge)(nil)

// New creates a badge widget. Fonts are measured with lib and drawn with r.
// Blank content leaves the badge at its placeholder size.
func New(lib *badge.FontLibrary, r *raster.Renderer, content string, opts ...badge.Option) *Badge {
	w := &Badge{raster: r}
	w.core = badge.New(lib, opts...)
	w.core.SetInvalidator(w)
	w.ExtendBaseWidget(w)
	w.core.SetContent(content)
	return w
}

// Core returns the wrapped badge.
func (w *Badge) Core() *badge.Badge { return w.core }

// SetContent forwards to the core badge and returns its new size.
func (w *Badge) SetContent(content string) (badge.Size, bool) {
	return w.core.SetContent(content)
}

func (w *Badge) SetFont(f badge.Font) badge.Size         { return w.core.SetFont(f) }
func (w *Badge) SetScaleFactor(scale float64) badge.Size { return w.core.SetScaleFactor(scale) }
func (w *Badge) SetInsetColor(c color.NRGBA)             { w.core.SetInsetColor(c) }
func (w *Badge) SetTextColor(c color.NRGBA)              { w.core.SetTextColor(c) }
func (w *Badge) SetFrameColor(c color.NRGBA)             { w.core.SetFrameColor(c) }
func (w *Badge) SetFrameVisible(v bool)                  { w.core.SetFrameVisible(v) }
func (w *Badge) SetShining(v bool)                       { w.core.SetShining(v) }
func (w *Badge) SetCornerRoundness(r float64)            { w.core.SetCornerRoundness(r) }

// InvalidateIntrinsicSize makes Fyne query MinSize again.
func (w *Badge) InvalidateIntrinsicSize() {
	w.Refresh()
}

// RequestRedraw repaints the raster.
func (w *Badge) RequestRedraw() {
	w.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (w *Badge) CreateRenderer() fyne.WidgetRenderer {
	r := &badgeRenderer{w: w}
	r.img = canvas.NewRaster(r.draw)
	return r
}

type badgeRenderer struct {
	w   *Badge
	img *canvas.Raster
}

func (r *badgeRenderer) Layout(size fyne.Size) {
	r.img.Resize(size)
}

func (r *badgeRenderer) MinSize() fyne.Size {
	s := r.w.core.IntrinsicSize()
	return fyne.NewSize(float32(s.Width), float32(s.Height))
}

func (r *badgeRenderer) Refresh() {
	canvas.Refresh(r.img)
}

func (r *badgeRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.img}
}

func (r *badgeRenderer) Destroy() {}

// draw renders the badge at the widget's logical size onto a w×h pixel
// bitmap.
func (r *badgeRenderer) draw(w, h int) image.Image {
	size := r.w.Size()
	if size.Width <= 0 || size.Height <= 0 || w <= 0 || h <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	}

	density := float64(w) / float64(size.Width)
	img, err := r.w.raster.RenderScaled(r.w.core,
		badge.Size{Width: float64(size.Width), Height: float64(size.Height)}, density)
	if err != nil {
		badge.Logger().Warn("badgewidget: render failed", slog.Any("error", err))
		return image.NewNRGBA(image.Rect(0, 0, w, h))
	}
	return img
}
