package geom

import (
	"math"
	"testing"
)

func TestRGBA_HSBA(t *testing.T) {
	tests := []struct {
		name   string
		c      RGBA
		expect HSBA
	}{
		{"red", Red, HSBA{H: 0, S: 1, B: 1, A: 1}},
		{"green", Green, HSBA{H: 120, S: 1, B: 1, A: 1}},
		{"blue", Blue, HSBA{H: 240, S: 1, B: 1, A: 1}},
		{"yellow", Yellow, HSBA{H: 60, S: 1, B: 1, A: 1}},
		{"cyan", Cyan, HSBA{H: 180, S: 1, B: 1, A: 1}},
		{"magenta", Magenta, HSBA{H: 300, S: 1, B: 1, A: 1}},
		{"orange", RGB(1, 0.5, 0), HSBA{H: 30, S: 1, B: 1, A: 1}},
		{"white", White, HSBA{H: 0, S: 0, B: 1, A: 1}},
		{"black", Black, HSBA{H: 0, S: 0, B: 0, A: 1}},
		{"gray", RGB(0.5, 0.5, 0.5), HSBA{H: 0, S: 0, B: 0.5, A: 1}},
		{"half alpha", RGB(1, 0, 0).WithAlpha(0.5), HSBA{H: 0, S: 1, B: 1, A: 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.HSBA()
			if math.Abs(got.H-tt.expect.H) > 1e-9 ||
				math.Abs(got.S-tt.expect.S) > 1e-9 ||
				math.Abs(got.B-tt.expect.B) > 1e-9 ||
				math.Abs(got.A-tt.expect.A) > 1e-9 {
				t.Errorf("%+v.HSBA() = %+v, want %+v", tt.c, got, tt.expect)
			}
		})
	}
}

func TestHSBA_RGBA(t *testing.T) {
	tests := []struct {
		name   string
		h      HSBA
		expect RGBA
	}{
		{"red", HSBA{H: 0, S: 1, B: 1, A: 1}, Red},
		{"orange", HSBA{H: 30, S: 1, B: 1, A: 1}, RGB(1, 0.5, 0)},
		{"green", HSBA{H: 120, S: 1, B: 1, A: 1}, Green},
		{"desaturated", HSBA{H: 0, S: 0, B: 0.7, A: 1}, RGB(0.7, 0.7, 0.7)},
		{"dark blue", HSBA{H: 240, S: 1, B: 0.5, A: 1}, RGB(0, 0, 0.5)},
		{"hue wraps", HSBA{H: 360, S: 1, B: 1, A: 1}, Red},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.h.RGBA(); !colorApprox(got, tt.expect, 1e-9) {
				t.Errorf("%+v.RGBA() = %+v, want %+v", tt.h, got, tt.expect)
			}
		})
	}
}

func TestHSBA_RoundTrip(t *testing.T) {
	colors := []RGBA{
		Red, Green, Blue, Yellow, Cyan, Magenta,
		RGB(1, 0.5, 0),
		RGB(0.2, 0.4, 0.6),
		RGB(0.9, 0.1, 0.5).WithAlpha(0.3),
		RGB(0.33, 0.33, 0.33),
	}

	for _, c := range colors {
		back := c.HSBA().RGBA()
		if !colorApprox(back, c, 1e-12) {
			t.Errorf("round trip of %+v = %+v", c, back)
		}
	}
}

func TestNewHSBA_NormalizesHue(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{370, 10},
		{-30, 330},
		{720, 0},
		{359.5, 359.5},
	}
	for _, tt := range tests {
		if got := NewHSBA(tt.in, 1, 1, 1).H; math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NewHSBA hue %v normalized to %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHSBA_HueEdits(t *testing.T) {
	h := Red.HSBA()
	if got := h.WithHue(120).RGBA(); !colorApprox(got, Green, 1e-9) {
		t.Errorf("WithHue(120) = %+v, want green", got)
	}
	if got := h.RotateHue(-120).RGBA(); !colorApprox(got, Blue, 1e-9) {
		t.Errorf("RotateHue(-120) = %+v, want blue", got)
	}
}
