package geom

import (
	"fmt"
	"math"
)

// Rect represents an axis-aligned rectangle.
// Min is the top-left corner (minimum coordinates).
// Max is the bottom-right corner (maximum coordinates).
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two points.
// The points are normalized so Min <= Max.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// RectWH creates a rectangle from an origin and a width and height.
// Negative sizes are normalized so Min <= Max.
func RectWH(x, y, w, h float64) Rect {
	return NewRect(Pt(x, y), Pt(x+w, y+h))
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Size returns the width and height as a vector.
func (r Rect) Size() Vec2 {
	return Vec2{X: r.Width(), Y: r.Height()}
}

// Area returns the area of the rectangle.
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// IsEmpty returns true if the rectangle has zero area.
func (r Rect) IsEmpty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return r.Min.Midpoint(r.Max)
}

// TopLeft returns the minimum corner.
func (r Rect) TopLeft() Point {
	return r.Min
}

// TopRight returns the top-right corner.
func (r Rect) TopRight() Point {
	return Point{X: r.Max.X, Y: r.Min.Y}
}

// BottomLeft returns the bottom-left corner.
func (r Rect) BottomLeft() Point {
	return Point{X: r.Min.X, Y: r.Max.Y}
}

// BottomRight returns the maximum corner.
func (r Rect) BottomRight() Point {
	return r.Max
}

// MidTop returns the midpoint of the top edge.
func (r Rect) MidTop() Point {
	return Point{X: r.Center().X, Y: r.Min.Y}
}

// MidBottom returns the midpoint of the bottom edge.
func (r Rect) MidBottom() Point {
	return Point{X: r.Center().X, Y: r.Max.Y}
}

// MidLeft returns the midpoint of the left edge.
func (r Rect) MidLeft() Point {
	return Point{X: r.Min.X, Y: r.Center().Y}
}

// MidRight returns the midpoint of the right edge.
func (r Rect) MidRight() Point {
	return Point{X: r.Max.X, Y: r.Center().Y}
}

// Corners returns the four corners in clockwise order starting at Min.
func (r Rect) Corners() [4]Point {
	return [4]Point{r.TopLeft(), r.TopRight(), r.BottomRight(), r.BottomLeft()}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// ContainsRect returns true if the rectangle other lies entirely within r.
func (r Rect) ContainsRect(other Rect) bool {
	return r.Contains(other.Min) && r.Contains(other.Max)
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// UnionPoint returns the smallest rectangle containing both r and p.
func (r Rect) UnionPoint(p Point) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, p.X), Y: math.Min(r.Min.Y, p.Y)},
		Max: Point{X: math.Max(r.Max.X, p.X), Y: math.Max(r.Max.Y, p.Y)},
	}
}

// Intersect returns the overlap of r and other.
// If the rectangles do not overlap, the result is empty (IsEmpty reports true).
func (r Rect) Intersect(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Max(r.Min.X, other.Min.X), Y: math.Max(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Min(r.Max.X, other.Max.X), Y: math.Min(r.Max.Y, other.Max.Y)},
	}
}

// Inset returns the rectangle shrunk by d on all sides.
// A negative d grows the rectangle. Shrinking by more than half the
// rectangle's extent yields an empty rectangle.
func (r Rect) Inset(d float64) Rect {
	return Rect{
		Min: Pt(r.Min.X+d, r.Min.Y+d),
		Max: Pt(r.Max.X-d, r.Max.Y-d),
	}
}

// Offset returns the rectangle translated by the vector v.
func (r Rect) Offset(v Vec2) Rect {
	return Rect{
		Min: r.Min.Translate(v),
		Max: r.Max.Translate(v),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(%v, %v)", r.Min, r.Max)
}
