package imageutil

import (
	"image"
	"image/color"
	"testing"
)

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

// twoPixel returns a 2x1 image: red at (0,0), blue at (1,0).
func twoPixel() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, red)
	img.SetNRGBA(1, 0, blue)
	return img
}

// solid returns a w x h image filled with a single color.
func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestRotate_Dimensions(t *testing.T) {
	img := solid(4, 2, red)

	tests := []struct {
		name string
		got  *image.NRGBA
		w, h int
	}{
		{"rotate90 swaps", Rotate90(img), 2, 4},
		{"rotate180 keeps", Rotate180(img), 4, 2},
		{"rotate270 swaps", Rotate270(img), 2, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.got.Bounds()
			if b.Dx() != tt.w || b.Dy() != tt.h {
				t.Errorf("got %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.w, tt.h)
			}
		})
	}
}

func TestRotate180_MovesPixels(t *testing.T) {
	got := Rotate180(twoPixel())
	if got.NRGBAAt(0, 0) != blue || got.NRGBAAt(1, 0) != red {
		t.Errorf("Rotate180 pixels = %v, %v, want blue, red",
			got.NRGBAAt(0, 0), got.NRGBAAt(1, 0))
	}
}

func TestRotate_FullTurnIsIdentity(t *testing.T) {
	img := twoPixel()
	got := Rotate90(Rotate90(Rotate90(Rotate90(img))))
	if got.NRGBAAt(0, 0) != red || got.NRGBAAt(1, 0) != blue {
		t.Errorf("four quarter turns changed the image: %v, %v",
			got.NRGBAAt(0, 0), got.NRGBAAt(1, 0))
	}
}

func TestFlip(t *testing.T) {
	t.Run("horizontal swaps columns", func(t *testing.T) {
		got := FlipH(twoPixel())
		if got.NRGBAAt(0, 0) != blue || got.NRGBAAt(1, 0) != red {
			t.Errorf("FlipH pixels = %v, %v", got.NRGBAAt(0, 0), got.NRGBAAt(1, 0))
		}
	})

	t.Run("vertical swaps rows", func(t *testing.T) {
		img := image.NewNRGBA(image.Rect(0, 0, 1, 2))
		img.SetNRGBA(0, 0, red)
		img.SetNRGBA(0, 1, blue)
		got := FlipV(img)
		if got.NRGBAAt(0, 0) != blue || got.NRGBAAt(0, 1) != red {
			t.Errorf("FlipV pixels = %v, %v", got.NRGBAAt(0, 0), got.NRGBAAt(0, 1))
		}
	})

	t.Run("double flip is identity", func(t *testing.T) {
		got := FlipH(FlipH(twoPixel()))
		if got.NRGBAAt(0, 0) != red || got.NRGBAAt(1, 0) != blue {
			t.Error("FlipH twice changed the image")
		}
	})
}

func TestResize(t *testing.T) {
	img := solid(4, 4, red)
	got := Resize(img, 2, 2)

	b := got.Bounds()
	if b.Dx() != 2 || b.Dy() != 2 {
		t.Fatalf("got %dx%d, want 2x2", b.Dx(), b.Dy())
	}
	// Resampling a solid image keeps the color.
	if got.NRGBAAt(0, 0) != red {
		t.Errorf("pixel = %v, want solid red", got.NRGBAAt(0, 0))
	}
}

func TestResize_ClampsDegenerate(t *testing.T) {
	got := Resize(solid(4, 4, red), 0, -3)
	b := got.Bounds()
	if b.Dx() != 1 || b.Dy() != 1 {
		t.Errorf("got %dx%d, want 1x1", b.Dx(), b.Dy())
	}
}

func TestFit_PreservesAspect(t *testing.T) {
	img := solid(4, 2, red)
	got := Fit(img, 2, 2)

	b := got.Bounds()
	if b.Dx() != 2 || b.Dy() != 1 {
		t.Errorf("got %dx%d, want 2x1", b.Dx(), b.Dy())
	}
}

func TestFill_CoversExactly(t *testing.T) {
	img := solid(4, 2, red)
	got := Fill(img, 2, 2)

	b := got.Bounds()
	if b.Dx() != 2 || b.Dy() != 2 {
		t.Errorf("got %dx%d, want 2x2", b.Dx(), b.Dy())
	}
}

func TestScale(t *testing.T) {
	img := solid(4, 4, red)

	for _, q := range []Interpolator{Nearest, Bilinear, CatmullRom} {
		got := Scale(img, 8, 8, q)
		b := got.Bounds()
		if b.Dx() != 8 || b.Dy() != 8 {
			t.Errorf("interpolator %d: got %dx%d, want 8x8", q, b.Dx(), b.Dy())
		}
		if got.NRGBAAt(4, 4) != red {
			t.Errorf("interpolator %d: pixel = %v, want solid red", q, got.NRGBAAt(4, 4))
		}
	}
}

func TestCrop(t *testing.T) {
	img := twoPixel()

	t.Run("exact region", func(t *testing.T) {
		got := Crop(img, image.Rect(1, 0, 2, 1))
		b := got.Bounds()
		if b.Dx() != 1 || b.Dy() != 1 {
			t.Fatalf("got %dx%d, want 1x1", b.Dx(), b.Dy())
		}
		if got.NRGBAAt(0, 0) != blue {
			t.Errorf("pixel = %v, want blue", got.NRGBAAt(0, 0))
		}
	})

	t.Run("clamped to bounds", func(t *testing.T) {
		got := Crop(img, image.Rect(-5, -5, 10, 10))
		b := got.Bounds()
		if b.Dx() != 2 || b.Dy() != 1 {
			t.Errorf("got %dx%d, want 2x1", b.Dx(), b.Dy())
		}
	})

	t.Run("disjoint region is empty", func(t *testing.T) {
		got := Crop(img, image.Rect(10, 10, 20, 20))
		if !got.Bounds().Empty() {
			t.Errorf("got bounds %v, want empty", got.Bounds())
		}
	})
}
