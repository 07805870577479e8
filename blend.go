package geom

import colorful "github.com/lucasb-eyer/go-colorful"

// Perceptual color blending built on go-colorful. Plain RGB lerps darken
// and shift hue when mixing saturated colors; blending in CIE Lab keeps
// midpoints perceptually between the inputs.

// Mix blends two colors in CIE Lab space. t=0 returns c, t=1 returns other.
// Alpha is interpolated linearly.
func (c RGBA) Mix(other RGBA, t float64) RGBA {
	a := colorful.Color{R: Clamp01(c.R), G: Clamp01(c.G), B: Clamp01(c.B)}
	b := colorful.Color{R: Clamp01(other.R), G: Clamp01(other.G), B: Clamp01(other.B)}
	m := a.BlendLab(b, t).Clamped()
	return RGBA{R: m.R, G: m.G, B: m.B, A: Lerp(c.A, other.A, t)}
}

// Lighten returns the color with its HSL lightness increased by amount.
// The result is clamped to the displayable range.
func (c RGBA) Lighten(amount float64) RGBA {
	return c.adjustLightness(amount)
}

// Darken returns the color with its HSL lightness decreased by amount.
// The result is clamped to the displayable range.
func (c RGBA) Darken(amount float64) RGBA {
	return c.adjustLightness(-amount)
}

func (c RGBA) adjustLightness(delta float64) RGBA {
	col := colorful.Color{R: Clamp01(c.R), G: Clamp01(c.G), B: Clamp01(c.B)}
	h, s, l := col.Hsl()
	out := colorful.Hsl(h, s, Clamp01(l+delta)).Clamped()
	return RGBA{R: out.R, G: out.G, B: out.B, A: c.A}
}
