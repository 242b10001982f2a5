// Package raster renders badges to bitmaps with gogpu/gg.
package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/sofmeright/badgekit/src/badge"
)

// Surface adapts a gg.Context to badge.Surface.
type Surface struct {
	dc    *gg.Context
	faces *FaceCache
}

var _ badge.Surface = (*Surface)(nil)

// NewSurface wraps dc. Text is set with faces from cache.
func NewSurface(dc *gg.Context, cache *FaceCache) *Surface {
	return &Surface{dc: dc, faces: cache}
}

func (s *Surface) Measure(str string, f badge.Font) (float64, float64) {
	face, err := s.faces.Face(f)
	if err != nil {
		return 0, 0
	}
	return text.Measure(str, face)
}

func (s *Surface) Save()    { s.dc.Push() }
func (s *Surface) Restore() { s.dc.Pop() }

func (s *Surface) FillPath(sh badge.Shape, c color.NRGBA) error {
	s.tracePath(sh)
	s.dc.SetColor(c)
	return s.dc.Fill()
}

func (s *Surface) ClipPath(sh badge.Shape) error {
	s.tracePath(sh)
	s.dc.Clip()
	return nil
}

func (s *Surface) FillLinearGradient(g badge.LinearGradient, area badge.Rect) error {
	brush := gg.NewLinearGradientBrush(g.From.X, g.From.Y, g.To.X, g.To.Y)
	for _, stop := range g.Stops {
		brush.AddColorStop(stop.Offset, gg.FromColor(stop.Color))
	}
	s.dc.DrawRectangle(area.X, area.Y, area.Width, area.Height)
	s.dc.SetFillBrush(brush)
	return s.dc.Fill()
}

func (s *Surface) StrokePath(sh badge.Shape, width float64, c color.NRGBA) error {
	s.tracePath(sh)
	s.dc.SetLineWidth(width)
	s.dc.SetColor(c)
	return s.dc.Stroke()
}

func (s *Surface) DrawText(str string, f badge.Font, c color.NRGBA, at badge.Point) error {
	face, err := s.faces.Face(f)
	if err != nil {
		return err
	}
	s.dc.SetFont(face)
	s.dc.SetColor(c)
	s.dc.DrawString(str, at.X, at.Y+face.Metrics().Ascent)
	return nil
}

// tracePath replaces the current path with sh. gg arcs only start a subpath
// on an empty path, so each corner is joined to the previous one explicitly.
func (s *Surface) tracePath(sh badge.Shape) {
	s.dc.ClearPath()
	for i, a := range sh.Arcs() {
		p := a.StartPoint()
		if i == 0 {
			s.dc.MoveTo(p.X, p.Y)
		} else {
			s.dc.LineTo(p.X, p.Y)
		}
		s.dc.DrawArc(a.Center.X, a.Center.Y, a.Radius, a.Start, a.End)
	}
	s.dc.ClosePath()
}

// FaceCache resolves badge fonts to gg text faces, one source per family and
// one face per size.
type FaceCache struct {
	fonts *badge.FontLibrary

	mu      sync.Mutex
	sources map[string]*text.FontSource
	faces   map[badge.Font]text.Face
}

// NewFaceCache returns a cache reading font data from lib.
func NewFaceCache(lib *badge.FontLibrary) *FaceCache {
	return &FaceCache{
		fonts:   lib,
		sources: make(map[string]*text.FontSource),
		faces:   make(map[badge.Font]text.Face),
	}
}

// Face returns the face for f, loading its source on first use.
func (c *FaceCache) Face(f badge.Font) (text.Face, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if face, ok := c.faces[f]; ok {
		return face, nil
	}

	src, ok := c.sources[f.Family]
	if !ok {
		m, err := c.fonts.Resolve(f.Family)
		if err != nil {
			return nil, err
		}
		src, err = text.NewFontSource(m.Data())
		if err != nil {
			return nil, fmt.Errorf("loading font source %s: %w", f.Family, err)
		}
		c.sources[f.Family] = src
	}

	face := src.Face(f.Size)
	c.faces[f] = face
	return face, nil
}

// Close releases every loaded font source.
func (c *FaceCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var firstErr error
	for family, src := range c.sources {
		if err := src.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing font source %s: %w", family, err)
		}
		delete(c.sources, family)
	}
	clear(c.faces)
	return firstErr
}

// Renderer draws badges into fresh gg contexts. It implements
// badge.Rasterizer.
type Renderer struct {
	faces *FaceCache
}

var _ badge.Rasterizer = (*Renderer)(nil)

// NewRenderer returns a renderer using lib for fonts.
func NewRenderer(lib *badge.FontLibrary) *Renderer {
	return &Renderer{faces: NewFaceCache(lib)}
}

// PixelSize rounds a badge size up to whole pixels, at least 1×1.
func PixelSize(size badge.Size) (w, h int) {
	w = max(1, int(math.Ceil(size.Width)))
	h = max(1, int(math.Ceil(size.Height)))
	return w, h
}

// Render draws b at size and returns the image.
func (r *Renderer) Render(b *badge.Badge, size badge.Size) (image.Image, error) {
	return r.RenderScaled(b, size, 1)
}

// RenderScaled draws b at size on a bitmap with density pixels per unit.
// The badge scale factor is multiplied by density so text and frame keep
// their proportions on high-density displays.
func (r *Renderer) RenderScaled(b *badge.Badge, size badge.Size, density float64) (image.Image, error) {
	dc, err := r.draw(b, size, density)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return dc.Image(), nil
}

// Rasterize renders b and encodes it as PNG.
func (r *Renderer) Rasterize(b *badge.Badge, size badge.Size) ([]byte, error) {
	dc, err := r.draw(b, size, 1)
	if err != nil {
		return nil, err
	}
	defer dc.Close()

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) draw(b *badge.Badge, size badge.Size, density float64) (*gg.Context, error) {
	if density <= 0 {
		density = 1
	}
	scaled := badge.Size{Width: size.Width * density, Height: size.Height * density}
	w, h := PixelSize(scaled)
	dc := gg.NewContext(w, h)

	cfg := b.Config()
	cfg.ScaleFactor *= density
	if err := badge.Render(NewSurface(dc, r.faces), badge.NewRect(scaled), cfg, b.Content()); err != nil {
		dc.Close()
		return nil, err
	}
	return dc, nil
}

// Close releases cached fonts.
func (r *Renderer) Close() error {
	return r.faces.Close()
}
