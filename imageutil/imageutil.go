// Package imageutil provides small, stateless image transformations:
// rotation by quarter turns, mirroring, scaling, and cropping.
//
// Resampling goes through two backends. [Resize], [Fit], and [Fill] use
// Lanczos filtering via disintegration/imaging, which is the right default
// for photographic content. [Scale] exposes the golang.org/x/image/draw
// interpolators for callers that need to trade quality for speed.
//
// All functions return a new image and never modify their input.
package imageutil

import (
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"github.com/gogpu/geom"
)

// Interpolator selects the resampling kernel used by [Scale].
type Interpolator int

const (
	// Nearest is fastest and preserves hard pixel edges.
	Nearest Interpolator = iota
	// Bilinear is a reasonable default for moderate scale factors.
	Bilinear
	// CatmullRom is the highest quality kernel, best for downscaling.
	CatmullRom
)

func (q Interpolator) scaler() draw.Scaler {
	switch q {
	case Nearest:
		return draw.NearestNeighbor
	case Bilinear:
		return draw.BiLinear
	default:
		return draw.CatmullRom
	}
}

// Rotate90 rotates the image 90 degrees counter-clockwise.
func Rotate90(img image.Image) *image.NRGBA {
	return imaging.Rotate90(img)
}

// Rotate180 rotates the image 180 degrees.
func Rotate180(img image.Image) *image.NRGBA {
	return imaging.Rotate180(img)
}

// Rotate270 rotates the image 270 degrees counter-clockwise.
func Rotate270(img image.Image) *image.NRGBA {
	return imaging.Rotate270(img)
}

// FlipH mirrors the image horizontally (left to right).
func FlipH(img image.Image) *image.NRGBA {
	return imaging.FlipH(img)
}

// FlipV mirrors the image vertically (top to bottom).
func FlipV(img image.Image) *image.NRGBA {
	return imaging.FlipV(img)
}

// Resize scales the image to exactly width x height using Lanczos filtering.
// Non-positive dimensions are clamped to 1.
func Resize(img image.Image, width, height int) *image.NRGBA {
	width, height = clampSize(width, height, "Resize")
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

// Fit scales the image down to fit within width x height while preserving
// its aspect ratio. Images already within the bounds are returned unscaled.
func Fit(img image.Image, width, height int) *image.NRGBA {
	width, height = clampSize(width, height, "Fit")
	return imaging.Fit(img, width, height, imaging.Lanczos)
}

// Fill scales and center-crops the image to exactly cover width x height
// while preserving its aspect ratio.
func Fill(img image.Image, width, height int) *image.NRGBA {
	width, height = clampSize(width, height, "Fill")
	return imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos)
}

// Scale resamples the image to width x height with the given interpolator.
// Non-positive dimensions are clamped to 1.
func Scale(img image.Image, width, height int, q Interpolator) *image.NRGBA {
	width, height = clampSize(width, height, "Scale")
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	q.scaler().Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	geom.Logger().Debug("imageutil: scaled image",
		"src", img.Bounds().Size(), "dst", dst.Bounds().Size())
	return dst
}

// Crop extracts the given region. The rectangle is clamped to the image
// bounds, so the result may be smaller than requested; an empty
// intersection yields an empty image.
func Crop(img image.Image, r image.Rectangle) *image.NRGBA {
	clamped := r.Intersect(img.Bounds())
	if clamped != r {
		geom.Logger().Warn("imageutil: crop rect clamped to image bounds",
			"requested", r, "clamped", clamped)
	}
	return imaging.Crop(img, clamped)
}

// clampSize restricts dimensions to at least 1x1, logging when input is
// degenerate.
func clampSize(width, height int, op string) (int, int) {
	if width < 1 || height < 1 {
		geom.Logger().Warn("imageutil: non-positive dimensions clamped",
			"op", op, "width", width, "height", height)
		width = max(width, 1)
		height = max(height, 1)
	}
	return width, height
}
