package badge

import "math"

// Point is a position on the rendering surface. Origin is top-left, y grows downward.
type Point struct {
	X, Y float64
}

// Size is a width/height pair.
type Size struct {
	Width  float64
	Height float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect returns a rect with origin (0, 0) and the given size.
func NewRect(s Size) Rect {
	return Rect{Width: s.Width, Height: s.Height}
}

// MinX returns the left edge of r.
func (r Rect) MinX() float64 { return r.X }

// MinY returns the top edge of r.
func (r Rect) MinY() float64 { return r.Y }

// MaxX returns the right edge of r.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY returns the bottom edge of r.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Inset shrinks r by d on all four sides. Negative d grows it.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, Width: r.Width - 2*d, Height: r.Height - 2*d}
}

// Empty reports whether r has no drawable area or carries non-finite values.
func (r Rect) Empty() bool {
	for _, v := range [...]float64{r.X, r.Y, r.Width, r.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether p lies inside r (edges inclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX() && p.X <= r.MaxX() && p.Y >= r.MinY() && p.Y <= r.MaxY()
}
