package badgewidget

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/sofmeright/badgekit/src/badge"
	"github.com/sofmeright/badgekit/src/raster"
)

func newTestWidget(t *testing.T, content string) *Badge {
	t.Helper()
	test.NewApp()

	lib := badge.NewFontLibrary()
	r := raster.NewRenderer(lib)
	t.Cleanup(func() {
		r.Close()
		lib.Close()
	})
	return New(lib, r, content)
}

func toFyne(s badge.Size) fyne.Size {
	return fyne.NewSize(float32(s.Width), float32(s.Height))
}

func TestMinSizeTracksContent(t *testing.T) {
	w := newTestWidget(t, "7")
	if got, want := w.MinSize(), toFyne(w.Core().IntrinsicSize()); got != want {
		t.Errorf("MinSize() = %v, want %v", got, want)
	}
	single := w.MinSize()

	w.SetContent("1000")
	grown := w.MinSize()
	if grown.Width <= single.Width {
		t.Errorf("MinSize width did not grow: %v -> %v", single, grown)
	}
	if grown.Height != single.Height {
		t.Errorf("MinSize height changed: %v -> %v", single, grown)
	}
}

func TestBlankContentKeepsPlaceholder(t *testing.T) {
	w := newTestWidget(t, "")
	if got := w.MinSize(); got != fyne.NewSize(20, 20) {
		t.Errorf("MinSize() = %v, want 20×20 placeholder", got)
	}
}

func TestScaleFactorResizes(t *testing.T) {
	w := newTestWidget(t, "99+")
	before := w.MinSize()
	w.SetScaleFactor(1.9)
	after := w.MinSize()
	if after.Width < before.Width*1.99 || after.Height < before.Height*1.99 {
		t.Errorf("MinSize after doubling the scale = %v, before %v", after, before)
	}
}

func TestRasterRendersAtPixelDensity(t *testing.T) {
	w := newTestWidget(t, "5")
	w.Resize(w.MinSize())

	r := test.WidgetRenderer(w)
	objs := r.Objects()
	if len(objs) != 1 {
		t.Fatalf("renderer has %d objects, want 1", len(objs))
	}
	img, ok := objs[0].(*canvas.Raster)
	if !ok {
		t.Fatalf("renderer object is %T, want *canvas.Raster", objs[0])
	}

	out := img.Generator(38, 38)
	if b := out.Bounds(); b.Dx() != 38 || b.Dy() != 38 {
		t.Errorf("raster bounds = %v, want 38×38", b)
	}
}

func TestTapsPassThrough(t *testing.T) {
	if _, ok := any(&Badge{}).(fyne.Tappable); ok {
		t.Fatal("badge widget must not be tappable")
	}

	w := newTestWidget(t, "3")
	tapped := 0
	button := widget.NewButton("inbox", func() { tapped++ })

	win := test.NewWindow(container.NewStack(button, w))
	defer win.Close()
	win.Resize(fyne.NewSize(100, 60))

	test.TapCanvas(win.Canvas(), fyne.NewPos(50, 30))
	if tapped != 1 {
		t.Errorf("button beneath the badge tapped %d times, want 1", tapped)
	}
}

func TestStyleSettersForward(t *testing.T) {
	w := newTestWidget(t, "2")
	w.SetShining(true)
	w.SetFrameVisible(true)
	w.SetCornerRoundness(0.5)
	w.SetInsetColor(badge.White)
	w.SetTextColor(badge.Red)
	w.SetFrameColor(badge.Red)
	w.SetFont(badge.Font{Family: "go-bold", Size: 12})

	cfg := w.Core().Config()
	if !cfg.Shining || !cfg.FrameVisible || cfg.CornerRoundness != 0.5 ||
		cfg.InsetColor != badge.White || cfg.TextColor != badge.Red ||
		cfg.FrameColor != badge.Red || cfg.Font.Family != "go-bold" {
		t.Errorf("config not forwarded: %+v", cfg)
	}
}
