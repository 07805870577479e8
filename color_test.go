package geom

import (
	"image/color"
	"math"
	"testing"
)

func colorApprox(a, b RGBA, eps float64) bool {
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}

func TestHex(t *testing.T) {
	tests := []struct {
		name   string
		hex    string
		expect RGBA
	}{
		{"rrggbb", "#FF8000", NewRGBA(1, 128.0/255, 0, 1)},
		{"no hash", "FF8000", NewRGBA(1, 128.0/255, 0, 1)},
		{"short rgb", "#F80", NewRGBA(1, 136.0/255, 0, 1)},
		{"short rgba", "#F80C", NewRGBA(1, 136.0/255, 0, 204.0/255)},
		{"rrggbbaa", "#FF800080", NewRGBA(1, 128.0/255, 0, 128.0/255)},
		{"lowercase", "#ff8000", NewRGBA(1, 128.0/255, 0, 1)},
		{"invalid length", "#12345", Black},
		{"empty", "", Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hex(tt.hex); !colorApprox(got, tt.expect, 1e-9) {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.hex, got, tt.expect)
			}
		})
	}
}

func TestRGBA_HexString(t *testing.T) {
	tests := []struct {
		name   string
		c      RGBA
		expect string
	}{
		{"opaque", RGB(1, 0, 0), "#FF0000"},
		{"with alpha", NewRGBA(1, 0, 0, 0), "#FF000000"},
		{"round trip", Hex("#12AB34"), "#12AB34"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.HexString(); got != tt.expect {
				t.Errorf("HexString() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestRGBA_ColorConversion(t *testing.T) {
	c := NewRGBA(1, 0.5, 0, 1)
	std := c.Color()
	nrgba, ok := std.(color.NRGBA)
	if !ok {
		t.Fatalf("Color() returned %T, want color.NRGBA", std)
	}
	if nrgba.R != 255 || nrgba.A != 255 {
		t.Errorf("Color() = %+v", nrgba)
	}

	back := FromColor(std)
	if !colorApprox(back, c, 1.0/255) {
		t.Errorf("round trip = %+v, want ~%+v", back, c)
	}
}

func TestFromColor_Transparent(t *testing.T) {
	got := FromColor(color.NRGBA{})
	if got != (RGBA{}) {
		t.Errorf("FromColor(transparent) = %+v, want zero value", got)
	}
}

func TestRGBA_Lerp(t *testing.T) {
	a, b := Black, White
	if got := a.Lerp(b, 0.5); !colorApprox(got, NewRGBA(0.5, 0.5, 0.5, 1), 1e-10) {
		t.Errorf("Lerp(0.5) = %+v", got)
	}
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %+v, want %+v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %+v, want %+v", got, b)
	}
}

func TestRGBA_WithAlphaClamped(t *testing.T) {
	c := RGB(1, 0, 0).WithAlpha(0.25)
	if c.A != 0.25 || c.R != 1 {
		t.Errorf("WithAlpha = %+v", c)
	}
	over := NewRGBA(1.5, -0.2, 0.5, 2).Clamped()
	if over != NewRGBA(1, 0, 0.5, 1) {
		t.Errorf("Clamped() = %+v", over)
	}
}

func TestHSL(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		expect  RGBA
	}{
		{"red", 0, 1, 0.5, Red},
		{"green", 120, 1, 0.5, Green},
		{"blue", 240, 1, 0.5, Blue},
		{"white", 0, 0, 1, White},
		{"black", 0, 0, 0, Black},
		{"gray", 180, 0, 0.5, RGB(0.5, 0.5, 0.5)},
		{"negative hue wraps", -120, 1, 0.5, Blue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSL(tt.h, tt.s, tt.l); !colorApprox(got, tt.expect, 1e-9) {
				t.Errorf("HSL(%v, %v, %v) = %+v, want %+v", tt.h, tt.s, tt.l, got, tt.expect)
			}
		})
	}
}
