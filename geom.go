package chartkit

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Point is a position on the drawing surface in pixel coordinates.
type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) lengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Rect is an axis-aligned rectangle in pixel coordinates. Min is the top-left
// corner, Max the bottom-right.
type Rect struct {
	Min, Max Point
}

func RectXYWH(x, y, w, h float64) Rect {
	return Rect{Min: Point{X: x, Y: y}, Max: Point{X: x + w, Y: y + h}}
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

func (r Rect) Empty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// Expanded returns r grown by margin on every side.
func (r Rect) Expanded(margin float64) Rect {
	return Rect{
		Min: Point{X: r.Min.X - margin, Y: r.Min.Y - margin},
		Max: Point{X: r.Max.X + margin, Y: r.Max.Y + margin},
	}
}

func clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// distSqrToLine returns the shortest squared distance between point and the
// line segment from start to end.
func distSqrToLine(start, end, point Point) float64 {
	v := end.Sub(start)
	vLengthSqr := v.lengthSquared()
	if vLengthSqr < 1e-12 {
		return start.Sub(point).lengthSquared()
	}
	ap := point.Sub(start)
	mu := (ap.X*v.X + ap.Y*v.Y) / vLengthSqr
	switch {
	case mu < 0:
		return start.Sub(point).lengthSquared()
	case mu > 1:
		return end.Sub(point).lengthSquared()
	default:
		closest := Point{X: start.X + mu*v.X, Y: start.Y + mu*v.Y}
		return closest.Sub(point).lengthSquared()
	}
}

// rectSelectTest measures the pixel distance from pos to the rectangle
// outline, or reports a direct hit for points inside a filled rectangle.
func rectSelectTest(r Rect, pos Point, filled bool, tolerance float64) float64 {
	if filled && r.Contains(pos) {
		return tolerance * 0.99
	}
	corners := [4]Point{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
	}
	best := math.Inf(1)
	for i := range corners {
		d := distSqrToLine(corners[i], corners[(i+1)%4], pos)
		if d < best {
			best = d
		}
	}
	return math.Sqrt(best)
}
