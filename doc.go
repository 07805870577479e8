// Package geom provides 2D geometry, color, and image utilities for Go.
//
// # Overview
//
// geom is a small value-type library for 2D graphics code in the GoGPU
// ecosystem. It provides points, vectors, rectangles, affine transforms,
// Bézier curves, and a Hermite spline builder that turns an ordered point
// sequence into a smooth piecewise-cubic curve. Color helpers (RGBA, HSBA,
// hex parsing, perceptual blending) live alongside the geometry since the
// two are almost always used together.
//
// All types are plain values with no hidden state. Every operation is a
// pure function of its inputs, so concurrent use needs no synchronization.
//
// # Quick Start
//
//	import "github.com/gogpu/geom"
//
//	// Build a smooth curve through a sequence of points.
//	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(40, 80), geom.Pt(120, 20)}
//	spline := geom.HermiteSpline(pts, false)
//
//	// Convert it to a path for a rendering layer.
//	path := spline.Path()
//
// The rendering layer is external to this package: geom only computes
// geometry. A renderer walks [Path.Elements] and translates each element
// into its own native path representation.
//
// # Subpackages
//
// Image helpers (rotation, scaling, cropping) live in
// [github.com/gogpu/geom/imageutil]. URL query editing helpers live in
// [github.com/gogpu/geom/urlutil].
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increases counter-clockwise
package geom
