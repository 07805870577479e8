package geom

// SplineSegment is one cubic Bezier piece of a [Spline].
// The segment's start point is implicit: the previous segment's end point,
// or [Spline.Start] for the first segment.
type SplineSegment struct {
	Ctrl1, Ctrl2 Point
	End          Point
}

// Spline is a smooth piecewise-cubic curve through an ordered point sequence,
// produced by [HermiteSpline]. The zero value is an empty spline.
type Spline struct {
	Start    Point
	Segments []SplineSegment
	Closed   bool
}

// HermiteSpline builds a smooth curve that passes through every input point,
// in order, as a sequence of cubic Bezier segments.
//
// Tangents at each point are derived from its neighbors (the cardinal spline
// construction): the tangent at a point is the average of the vector to the
// next point and the vector from the previous point. At the two true
// endpoints of an open curve the one-sided difference is used instead, so no
// point outside the sequence is required. Control points are offset from the
// on-curve points by a third of the tangent, which converts the Hermite form
// to Bezier form exactly.
//
// Behavior by input size:
//   - 0 or 1 points: an empty spline (no segments).
//   - 2 points: a single straight segment with degenerate control points.
//   - 3 or more points: n segments, where n = len(points) for a closed
//     curve and len(points)-1 for an open one.
//
// If closed is true, indexing wraps around the sequence and the final
// segment ends exactly at points[0], with tangent continuity across the
// seam. Fewer than 3 points cannot form a loop, so the result is open.
//
// The function is pure and total: any finite input produces a valid spline,
// and identical inputs produce identical outputs. Duplicate consecutive
// points are not special-cased; they simply yield zero-length tangent spans.
func HermiteSpline(points []Point, closed bool) Spline {
	switch len(points) {
	case 0:
		return Spline{}
	case 1:
		return Spline{Start: points[0]}
	case 2:
		return Spline{
			Start: points[0],
			Segments: []SplineSegment{
				{Ctrl1: points[0], Ctrl2: points[1], End: points[1]},
			},
		}
	}

	count := len(points)
	n := count - 1
	if closed {
		n = count
	}

	segments := make([]SplineSegment, 0, n)
	for i := 0; i < n; i++ {
		cur := points[i]
		nextIdx := (i + 1) % count
		next := points[nextIdx]

		tanCur := splineTangent(points, i, closed)
		tanNext := splineTangent(points, nextIdx, closed)

		segments = append(segments, SplineSegment{
			Ctrl1: cur.Translate(tanCur.Div(3)),
			Ctrl2: next.Translate(tanNext.Div(3).Neg()),
			End:   next,
		})
	}

	return Spline{Start: points[0], Segments: segments, Closed: closed}
}

// splineTangent returns the tangent vector at points[i].
// Interior points (and every point of a closed curve) use the averaged
// neighbor difference 0.5*(next-cur) + 0.5*(cur-prev). The first and last
// point of an open curve use the one-sided difference.
func splineTangent(points []Point, i int, closed bool) Vec2 {
	n := len(points)
	if !closed {
		if i == 0 {
			return points[1].Sub(points[0])
		}
		if i == n-1 {
			return points[n-1].Sub(points[n-2])
		}
	}
	next := points[(i+1)%n]
	prev := points[(i-1+n)%n]
	return next.Sub(prev).Mul(0.5)
}

// IsEmpty returns true if the spline has no segments.
func (s Spline) IsEmpty() bool {
	return len(s.Segments) == 0
}

// Cubics expands the spline into standalone cubic Bezier curves with
// explicit start points.
func (s Spline) Cubics() []CubicBez {
	if s.IsEmpty() {
		return nil
	}
	cubics := make([]CubicBez, 0, len(s.Segments))
	start := s.Start
	for _, seg := range s.Segments {
		cubics = append(cubics, CubicBez{P0: start, P1: seg.Ctrl1, P2: seg.Ctrl2, P3: seg.End})
		start = seg.End
	}
	return cubics
}

// Path converts the spline to a renderable path.
// A closed spline already ends at its start point, so Close only marks the
// subpath as closed for the consumer.
func (s Spline) Path() *Path {
	p := NewPath()
	if s.IsEmpty() {
		return p
	}
	p.MoveTo(s.Start)
	for _, seg := range s.Segments {
		p.CubicTo(seg.Ctrl1, seg.Ctrl2, seg.End)
	}
	if s.Closed {
		p.Close()
	}
	return p
}

// Flatten approximates the spline as a polyline, sampling each segment at
// steps uniform parameter values. The result starts at the spline's start
// point. steps values below 1 are treated as 1.
func (s Spline) Flatten(steps int) []Point {
	if s.IsEmpty() {
		return nil
	}
	if steps < 1 {
		steps = 1
	}
	out := make([]Point, 0, len(s.Segments)*steps+1)
	out = append(out, s.Start)
	for _, c := range s.Cubics() {
		for k := 1; k <= steps; k++ {
			out = append(out, c.Eval(float64(k)/float64(steps)))
		}
	}
	return out
}

// BoundingBox returns the axis-aligned bounding box of the spline.
// Returns an empty rect positioned at the start point for an empty spline.
func (s Spline) BoundingBox() Rect {
	cubics := s.Cubics()
	if len(cubics) == 0 {
		return Rect{Min: s.Start, Max: s.Start}
	}
	bbox := cubics[0].BoundingBox()
	for _, c := range cubics[1:] {
		bbox = bbox.Union(c.BoundingBox())
	}
	return bbox
}
