package badge

import "math"

// Arc is a circular arc swept clockwise on screen (counter-clockwise in the
// y-down angle convention) from Start to End radians around Center.
type Arc struct {
	Center Point
	Radius float64
	Start  float64
	End    float64
}

// Sweep returns the angular length of a, in (0, 2π].
func (a Arc) Sweep() float64 {
	d := a.End - a.Start
	for d <= 0 {
		d += 2 * math.Pi
	}
	return d
}

// PointAt returns the point on a's circle at angle theta.
func (a Arc) PointAt(theta float64) Point {
	return Point{
		X: a.Center.X + a.Radius*math.Cos(theta),
		Y: a.Center.Y + a.Radius*math.Sin(theta),
	}
}

func (a Arc) StartPoint() Point { return a.PointAt(a.Start) }
func (a Arc) EndPoint() Point   { return a.PointAt(a.End) }

// Shape is the closed badge outline: four quarter arcs joined by straight
// edges. Shapes are plain values; two shapes built from the same inputs
// compare equal with ==.
type Shape struct {
	arcs   [4]Arc
	bounds Rect
}

// Arcs returns the corner arcs in drawing order: top-right, bottom-right,
// bottom-left, top-left.
func (s Shape) Arcs() [4]Arc { return s.arcs }

// Bounds returns the inset rect the shape is traced in.
func (s Shape) Bounds() Rect { return s.bounds }

const (
	angleRight = 0.0
	angleDown  = math.Pi / 2
	angleLeft  = math.Pi
	angleUp    = 3 * math.Pi / 2
)

// BuildShape traces the badge outline inside rect. The rect is shrunk by 10%
// of its height on every side, and corners use a radius of
// rect.Height*roundness.
func BuildShape(rect Rect, roundness float64) Shape {
	puffer := rect.Height * pufferRatio
	radius := rect.Height * roundness
	b := rect.Inset(puffer)

	minX, minY, maxX, maxY := b.MinX(), b.MinY(), b.MaxX(), b.MaxY()
	return Shape{
		bounds: b,
		arcs: [4]Arc{
			{Center: Point{maxX - radius, minY + radius}, Radius: radius, Start: angleUp, End: angleRight},
			{Center: Point{maxX - radius, maxY - radius}, Radius: radius, Start: angleRight, End: angleDown},
			{Center: Point{minX + radius, maxY - radius}, Radius: radius, Start: angleDown, End: angleLeft},
			{Center: Point{minX + radius, minY + radius}, Radius: radius, Start: angleLeft, End: angleUp},
		},
	}
}
