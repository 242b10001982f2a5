package badge

import (
	"image/color"
	"log/slog"
)

// placeholderSize is reported before any content has been set.
var placeholderSize = Size{Width: baseSide, Height: baseSide}

// Badge is a self-sizing notification indicator. It holds its configuration,
// its label and the size derived from them, and tells its host when that size
// changes.
//
// A Badge is not safe for concurrent use; drive it from the UI thread.
type Badge struct {
	cfg      Config
	content  string
	size     Size
	sized    bool
	measurer Measurer
	host     Invalidator
}

// Option configures a Badge at construction.
type Option func(*Badge)

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(b *Badge) { b.cfg = cfg }
}

// WithInvalidator attaches the host layout system.
func WithInvalidator(inv Invalidator) Option {
	return func(b *Badge) {
		if inv != nil {
			b.host = inv
		}
	}
}

// New creates a badge that measures its label with m.
func New(m Measurer, opts ...Option) *Badge {
	b := &Badge{
		cfg:      DefaultConfig(),
		size:     placeholderSize,
		measurer: m,
		host:     NopInvalidator{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SetInvalidator attaches the host after construction, for hosts that wrap
// the badge they are notified about.
func (b *Badge) SetInvalidator(inv Invalidator) {
	if inv == nil {
		inv = NopInvalidator{}
	}
	b.host = inv
}

// Content returns the current label.
func (b *Badge) Content() string { return b.content }

// Config returns a copy of the current configuration.
func (b *Badge) Config() Config { return b.cfg }

// IntrinsicSize returns the size the badge prefers. Before any content has
// been set this is an unscaled 20×20 placeholder.
func (b *Badge) IntrinsicSize() Size { return b.size }

// Sized reports whether the intrinsic size was derived from content.
func (b *Badge) Sized() bool { return b.sized }

// SetContent sets the label and recomputes the size. Blank content is ignored:
// the previous label and size are kept and false is returned.
func (b *Badge) SetContent(content string) (Size, bool) {
	if IsBlank(content) {
		return b.size, false
	}
	b.content = content
	return b.recompute(), true
}

// SetFont changes the measuring font and recomputes the size.
func (b *Badge) SetFont(f Font) Size {
	b.cfg.Font = f
	return b.refresh()
}

// SetScaleFactor changes the scale and recomputes the size.
func (b *Badge) SetScaleFactor(scale float64) Size {
	b.cfg.ScaleFactor = scale
	return b.refresh()
}

// Configure replaces the whole configuration and recomputes the size.
func (b *Badge) Configure(cfg Config) Size {
	b.cfg = cfg
	return b.refresh()
}

// SetTextColor sets the label color and requests a redraw.
func (b *Badge) SetTextColor(c color.NRGBA) {
	b.cfg.TextColor = c
	b.host.RequestRedraw()
}

// SetInsetColor sets the fill color and requests a redraw.
func (b *Badge) SetInsetColor(c color.NRGBA) {
	b.cfg.InsetColor = c
	b.host.RequestRedraw()
}

// SetFrameColor sets the frame stroke color and requests a redraw.
func (b *Badge) SetFrameColor(c color.NRGBA) {
	b.cfg.FrameColor = c
	b.host.RequestRedraw()
}

// SetFrameVisible toggles the frame stroke. The size is unaffected.
func (b *Badge) SetFrameVisible(v bool) {
	b.cfg.FrameVisible = v
	b.host.RequestRedraw()
}

// SetShining toggles the gloss overlay.
func (b *Badge) SetShining(v bool) {
	b.cfg.Shining = v
	b.host.RequestRedraw()
}

// SetCornerRoundness sets the corner radius as a fraction of the rect height
// and requests a redraw.
func (b *Badge) SetCornerRoundness(r float64) {
	b.cfg.CornerRoundness = r
	b.host.RequestRedraw()
}

// refresh recomputes when there is content to measure, and redraws either way.
func (b *Badge) refresh() Size {
	if IsBlank(b.content) {
		b.host.RequestRedraw()
		return b.size
	}
	return b.recompute()
}

func (b *Badge) recompute() Size {
	size, _ := Estimate(b.content, b.cfg.Font, b.cfg.ScaleFactor, b.measurer)
	b.size = size
	b.sized = true

	Logger().Debug("badge: size recomputed",
		slog.String("content", b.content),
		slog.Float64("width", size.Width),
		slog.Float64("height", size.Height),
		slog.Float64("scale", b.cfg.ScaleFactor))

	b.host.InvalidateIntrinsicSize()
	b.host.RequestRedraw()
	return size
}

// PointInside always reports false. The badge is decorative and lets every
// touch through to whatever lies beneath it.
func (b *Badge) PointInside(Point) bool { return false }

// Draw renders the badge into rect.
func (b *Badge) Draw(s Surface, rect Rect) error {
	return Render(s, rect, b.cfg, b.content)
}
