package badge

import (
	"math"
	"testing"
)

func approxPoint(a, b Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestBuildShapeGeometry(t *testing.T) {
	rect := Rect{Width: 36, Height: 20}
	sh := BuildShape(rect, 0.25)

	wantBounds := Rect{X: 2, Y: 2, Width: 32, Height: 16}
	if sh.Bounds() != wantBounds {
		t.Fatalf("Bounds() = %+v, want %+v", sh.Bounds(), wantBounds)
	}

	want := [4]struct {
		center     Point
		start, end float64
	}{
		{Point{29, 7}, 3 * math.Pi / 2, 0},
		{Point{29, 13}, 0, math.Pi / 2},
		{Point{7, 13}, math.Pi / 2, math.Pi},
		{Point{7, 7}, math.Pi, 3 * math.Pi / 2},
	}
	for i, a := range sh.Arcs() {
		if !approxPoint(a.Center, want[i].center) {
			t.Errorf("arc %d center = %+v, want %+v", i, a.Center, want[i].center)
		}
		if a.Radius != 5 {
			t.Errorf("arc %d radius = %g, want 5", i, a.Radius)
		}
		if a.Start != want[i].start || a.End != want[i].end {
			t.Errorf("arc %d angles = (%g, %g), want (%g, %g)", i, a.Start, a.End, want[i].start, want[i].end)
		}
		if !approx(a.Sweep(), math.Pi/2) {
			t.Errorf("arc %d sweep = %g, want π/2", i, a.Sweep())
		}
	}
}

func TestBuildShapeIsClosedLoop(t *testing.T) {
	sh := BuildShape(Rect{X: 3, Y: 4, Width: 50, Height: 20}, 0.4)
	arcs := sh.Arcs()
	b := sh.Bounds()

	// Each arc ends on the edge the next one starts from.
	edges := []struct {
		name string
		ok   func(end, next Point) bool
	}{
		{"right", func(end, next Point) bool { return approx(end.X, b.MaxX()) && approx(next.X, b.MaxX()) }},
		{"bottom", func(end, next Point) bool { return approx(end.Y, b.MaxY()) && approx(next.Y, b.MaxY()) }},
		{"left", func(end, next Point) bool { return approx(end.X, b.MinX()) && approx(next.X, b.MinX()) }},
		{"top", func(end, next Point) bool { return approx(end.Y, b.MinY()) && approx(next.Y, b.MinY()) }},
	}
	for i, e := range edges {
		end := arcs[i].EndPoint()
		next := arcs[(i+1)%4].StartPoint()
		if !e.ok(end, next) {
			t.Errorf("%s edge: arc %d ends at %+v, arc %d starts at %+v", e.name, i, end, (i+1)%4, next)
		}
	}
}

func TestBuildShapeDeterministic(t *testing.T) {
	rect := Rect{X: 1, Y: 2, Width: 40, Height: 19}
	a := BuildShape(rect, 0.4)
	b := BuildShape(rect, 0.4)
	if a != b {
		t.Error("shapes built from the same inputs differ")
	}
	if c := BuildShape(rect, 0.3); a == c {
		t.Error("shapes with different roundness compare equal")
	}
}

func TestArcSweepWraps(t *testing.T) {
	a := Arc{Start: 3 * math.Pi / 2, End: 0}
	if !approx(a.Sweep(), math.Pi/2) {
		t.Errorf("Sweep() = %g, want π/2", a.Sweep())
	}
	full := Arc{Start: 1, End: 1}
	if !approx(full.Sweep(), 2*math.Pi) {
		t.Errorf("zero-length arc Sweep() = %g, want 2π", full.Sweep())
	}
}

func TestRectEmpty(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"normal", Rect{Width: 10, Height: 10}, false},
		{"zero width", Rect{Height: 10}, true},
		{"negative height", Rect{Width: 10, Height: -1}, true},
		{"nan", Rect{X: math.NaN(), Width: 10, Height: 10}, true},
		{"inf", Rect{Width: math.Inf(1), Height: 10}, true},
	}
	for _, tt := range tests {
		if got := tt.r.Empty(); got != tt.want {
			t.Errorf("%s: Empty() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
