package geom

import (
	"fmt"
	"math"
)

// Point represents a 2D position.
// For directions and magnitudes, use [Vec2]; the distinction keeps curve
// geometry code readable (a tangent is a Vec2, a curve point is a Point).
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Translate returns the point displaced by the vector v.
func (p Point) Translate(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Vec2 returns the point as a displacement from the origin.
func (p Point) Vec2() Vec2 {
	return Vec2(p)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// DistanceSquared returns the squared distance between two points.
// This is faster than Distance when you only need to compare distances.
func (p Point) DistanceSquared(q Point) float64 {
	return p.Sub(q).LengthSq()
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return Point{
		X: 0.5 * (p.X + q.X),
		Y: 0.5 * (p.Y + q.Y),
	}
}

// Rotate returns the point rotated by angle radians around the origin.
func (p Point) Rotate(angle float64) Point {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Clamp restricts the point to lie within the rectangle r.
func (p Point) Clamp(r Rect) Point {
	return Point{
		X: Clamp(p.X, r.Min.X, r.Max.X),
		Y: Clamp(p.Y, r.Min.Y, r.Max.Y),
	}
}

// IsFinite returns true if both coordinates are finite (not Inf, not NaN).
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// Approx returns true if two points are approximately equal within epsilon.
func (p Point) Approx(q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) < epsilon && math.Abs(p.Y-q.Y) < epsilon
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
