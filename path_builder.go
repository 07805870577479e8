package geom

// PathBuilder provides a fluent interface for path construction.
// All methods return the builder for chaining.
type PathBuilder struct {
	path *Path
}

// BuildPath starts a new path builder.
func BuildPath() *PathBuilder {
	return &PathBuilder{path: NewPath()}
}

// MoveTo moves to a new position.
func (b *PathBuilder) MoveTo(pt Point) *PathBuilder {
	b.path.MoveTo(pt)
	return b
}

// LineTo draws a line to a position.
func (b *PathBuilder) LineTo(pt Point) *PathBuilder {
	b.path.LineTo(pt)
	return b
}

// QuadTo draws a quadratic Bezier curve.
func (b *PathBuilder) QuadTo(ctrl, pt Point) *PathBuilder {
	b.path.QuadTo(ctrl, pt)
	return b
}

// CubicTo draws a cubic Bezier curve.
func (b *PathBuilder) CubicTo(ctrl1, ctrl2, pt Point) *PathBuilder {
	b.path.CubicTo(ctrl1, ctrl2, pt)
	return b
}

// Close closes the current subpath.
func (b *PathBuilder) Close() *PathBuilder {
	b.path.Close()
	return b
}

// Rect adds a rectangle to the path as a closed subpath.
func (b *PathBuilder) Rect(r Rect) *PathBuilder {
	b.path.MoveTo(r.TopLeft())
	b.path.LineTo(r.TopRight())
	b.path.LineTo(r.BottomRight())
	b.path.LineTo(r.BottomLeft())
	b.path.Close()
	return b
}

// Polyline adds straight line segments through the given points,
// starting a new subpath at the first point.
func (b *PathBuilder) Polyline(points []Point) *PathBuilder {
	if len(points) == 0 {
		return b
	}
	b.path.MoveTo(points[0])
	for _, pt := range points[1:] {
		b.path.LineTo(pt)
	}
	return b
}

// Spline adds a smooth curve through the given points as a new subpath,
// using [HermiteSpline].
func (b *PathBuilder) Spline(points []Point, closed bool) *PathBuilder {
	s := HermiteSpline(points, closed)
	if s.IsEmpty() {
		return b
	}
	b.path.MoveTo(s.Start)
	for _, seg := range s.Segments {
		b.path.CubicTo(seg.Ctrl1, seg.Ctrl2, seg.End)
	}
	if s.Closed {
		b.path.Close()
	}
	return b
}

// Path returns the constructed path.
func (b *PathBuilder) Path() *Path {
	return b.path
}
