package pipeline

import "github.com/gogpu/pipeline/internal/wide"

// Parameter blocks are the per-stage data a compiled program carries next to
// each stage function. The compiler stores them opaquely and forwards them to
// the kernel; layout is a contract between the code that configures a stage
// and the kernel that consumes it. Blocks are caller-owned and must outlive
// every run of any program referencing them.

// SpreadMode selects how a sampler tiles coordinates outside the source.
type SpreadMode int

const (
	// SpreadPad clamps coordinates to the edge of the source.
	SpreadPad SpreadMode = iota
	// SpreadRepeat wraps coordinates around the source.
	SpreadRepeat
	// SpreadReflect mirrors coordinates at every source boundary.
	SpreadReflect
)

// String returns the spread mode name.
func (m SpreadMode) String() string {
	switch m {
	case SpreadPad:
		return "Pad"
	case SpreadRepeat:
		return "Repeat"
	case SpreadReflect:
		return "Reflect"
	default:
		return "Unknown"
	}
}

// PixelsCtx describes a destination pixel buffer for load/store stages.
// Pixels holds premultiplied RGBA, 4 bytes per pixel; Stride is in pixels
// and may exceed the drawn width for sub-rectangle rendering.
type PixelsCtx struct {
	Pixels []uint8
	Stride int
}

func (c *PixelsCtx) offset(dx, dy int) int {
	return (c.Stride*dy + dx) * 4
}

// slice returns the buffer starting at pixel (dx, dy).
func (c *PixelsCtx) slice(dx, dy int) []uint8 {
	return c.Pixels[c.offset(dx, dy):]
}

// MaskCtx describes an 8-bit coverage mask for ScaleU8/LerpU8 stages.
// Shift is the mask's horizontal offset in destination coordinates, so a
// narrow mask can cover a span that does not start at x=0.
type MaskCtx struct {
	Pixels []uint8
	Stride int
	Shift  int
}

// row returns the mask bytes for destination pixel (dx, dy) onward.
func (c *MaskCtx) row(dx, dy int) []uint8 {
	return c.Pixels[c.Stride*dy+dx-c.Shift:]
}

// GatherCtx describes a bounded source buffer for sampling stages.
// Pixels holds premultiplied RGBA, 4 bytes per pixel. Unlike PixelsCtx,
// gather coordinates are computed per lane and clamped against Width and
// Height before indexing.
type GatherCtx struct {
	Pixels []uint8
	Stride int
	Width  int
	Height int
}

// SamplerCtx carries a gather source plus the tiling parameters the
// bilinear and bicubic samplers need.
type SamplerCtx struct {
	Gather     GatherCtx
	SpreadMode SpreadMode
	InvWidth   float32 // cache of 1/Gather.Width
	InvHeight  float32 // cache of 1/Gather.Height
}

// NewSamplerCtx builds a SamplerCtx with the inverse extents precomputed.
func NewSamplerCtx(gather GatherCtx, mode SpreadMode) *SamplerCtx {
	return &SamplerCtx{
		Gather:     gather,
		SpreadMode: mode,
		InvWidth:   1 / float32(gather.Width),
		InvHeight:  1 / float32(gather.Height),
	}
}

// UniformColorCtx carries one premultiplied color in both representations:
// floats for the high-precision tier and packed [0, 255] integers for the
// low-precision tier.
type UniformColorCtx struct {
	R, G, B, A float32
	RGBA       [4]uint16
}

// NewUniformColorCtx packs a premultiplied color into a stage parameter.
func NewUniformColorCtx(c PremultipliedColor) *UniformColorCtx {
	return &UniformColorCtx{
		R: c.R, G: c.G, B: c.B, A: c.A,
		RGBA: [4]uint16{
			uint16(c.R*255 + 0.5),
			uint16(c.G*255 + 0.5),
			uint16(c.B*255 + 0.5),
			uint16(c.A*255 + 0.5),
		},
	}
}

// GradientColor is an unpremultiplied RGBA color used in gradient math.
// Unlike Color it is not restricted to [0, 1]: gradient evaluation stores
// colors in factor/bias form, where both parts can be any float.
type GradientColor struct {
	R, G, B, A float32
}

// EvenlySpaced2StopGradientCtx evaluates a two-stop gradient as a single
// fused multiply-add: color = t*Factor + Bias.
type EvenlySpaced2StopGradientCtx struct {
	Factor GradientColor
	Bias   GradientColor
}

// GradientCtx holds a multi-stop gradient in factor/bias form.
//
// Len is the stop count. Factors and Biases must hold at least Len entries;
// index 0 is the color used before the first stop. TValues holds the stop
// positions in [0, 1], and must be monotonically non-decreasing.
type GradientCtx struct {
	Len     int
	Factors []GradientColor
	Biases  []GradientColor
	TValues []float32
}

// PushConstColor appends a constant (factor-free) gradient segment.
func (c *GradientCtx) PushConstColor(color GradientColor) {
	c.Factors = append(c.Factors, GradientColor{})
	c.Biases = append(c.Biases, color)
}

// TwoPointConicalGradientCtx carries the focal parameter of a two-point
// conical gradient plus per-lane scratch written by the degenerate-mask
// stage and read back by ApplyVectorMask. Because the mask is mutated
// during execution, a program referencing this block must not run
// concurrently with another program sharing it.
type TwoPointConicalGradientCtx struct {
	Mask wide.Mask8
	P0   float32
}

// TileCtx carries the scale factor for the RepeatX/Y and ReflectX/Y stages.
type TileCtx struct {
	Scale    float32
	InvScale float32 // cache of 1/Scale
}

// NewTileCtx builds a TileCtx with the inverse scale precomputed.
func NewTileCtx(scale float32) *TileCtx {
	return &TileCtx{Scale: scale, InvScale: 1 / scale}
}
