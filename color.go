package pipeline

// Color is an unpremultiplied RGBA color with float32 channels in [0, 1].
type Color struct {
	R, G, B, A float32
}

// ColorFromRGBA8 creates a color from 8-bit unpremultiplied channels.
func ColorFromRGBA8(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// Premultiply multiplies the color channels by alpha.
// Pipelines and pixel buffers work exclusively with premultiplied colors.
func (c Color) Premultiply() PremultipliedColor {
	return PremultipliedColor{
		R: c.R * c.A,
		G: c.G * c.A,
		B: c.B * c.A,
		A: c.A,
	}
}

// PremultipliedColor is a premultiplied RGBA color with float32 channels.
type PremultipliedColor struct {
	R, G, B, A float32
}

// RGBA8 converts the color to 8-bit channels, rounding to nearest.
func (c PremultipliedColor) RGBA8() (r, g, b, a uint8) {
	return packU8(c.R), packU8(c.G), packU8(c.B), packU8(c.A)
}

// packU8 converts a [0, 1] float channel to a byte, rounding to nearest.
func packU8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}
