package geom

import "math"

// HSBA represents a color in the hue/saturation/brightness (HSV) model
// with an alpha channel. H is hue in degrees [0, 360); S, B, and A are
// in [0, 1].
type HSBA struct {
	H, S, B, A float64
}

// NewHSBA creates an HSBA color, normalizing hue into [0, 360).
func NewHSBA(h, s, b, a float64) HSBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return HSBA{H: h, S: s, B: b, A: a}
}

// HSBA converts the color to the hue/saturation/brightness model.
// Achromatic colors (grays) report zero hue and zero saturation.
func (c RGBA) HSBA() HSBA {
	max := math.Max(c.R, math.Max(c.G, c.B))
	min := math.Min(c.R, math.Min(c.G, c.B))
	delta := max - min

	out := HSBA{B: max, A: c.A}
	if max > 0 {
		out.S = delta / max
	}
	if delta == 0 {
		return out
	}

	switch max {
	case c.R:
		out.H = 60 * math.Mod((c.G-c.B)/delta, 6)
	case c.G:
		out.H = 60 * ((c.B-c.R)/delta + 2)
	default:
		out.H = 60 * ((c.R-c.G)/delta + 4)
	}
	if out.H < 0 {
		out.H += 360
	}
	return out
}

// RGBA converts the color back to RGB components.
// The round trip RGBA -> HSBA -> RGBA is exact for in-gamut colors.
func (h HSBA) RGBA() RGBA {
	hue := math.Mod(h.H, 360)
	if hue < 0 {
		hue += 360
	}

	c := h.B * h.S
	x := c * (1 - math.Abs(math.Mod(hue/60, 2)-1))
	m := h.B - c

	var r, g, b float64
	switch {
	case hue < 60:
		r, g, b = c, x, 0
	case hue < 120:
		r, g, b = x, c, 0
	case hue < 180:
		r, g, b = 0, c, x
	case hue < 240:
		r, g, b = 0, x, c
	case hue < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGBA{R: r + m, G: g + m, B: b + m, A: h.A}
}

// WithHue returns the color with its hue replaced (degrees).
func (h HSBA) WithHue(hue float64) HSBA {
	return NewHSBA(hue, h.S, h.B, h.A)
}

// RotateHue returns the color with its hue rotated by delta degrees.
func (h HSBA) RotateHue(delta float64) HSBA {
	return NewHSBA(h.H+delta, h.S, h.B, h.A)
}
