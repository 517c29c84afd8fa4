package pipeline

import (
	"image"

	"github.com/gogpu/pipeline/internal/wide"
)

// The low-precision tier. Color channels live as 8-bit values widened to
// uint16, 16 pixels per chunk, which keeps the arithmetic in cheap integer
// lanes at the cost of rounding error and a sparse stage table: stages with
// no uint16 rendition stay nil here and force the pipeline onto the
// high-precision tier at link time.
//
// Coordinates cannot be expressed in uint16 channels, so the batch carries
// dedicated float registers for x and y alongside the color registers.

const lowpStageWidth = 16

type lowpStageFn func(s *lowpState)

type lowpState struct {
	program []any
	idx     int

	r, g, b, a     wide.U16x16
	dr, dg, db, da wide.U16x16

	// x and y hold pixel-space (or gradient-space) coordinates between the
	// seed stage and whatever stage consumes them.
	x, y wide.F32x16

	tail int // active lanes, 1..lowpStageWidth
	dx   int
	dy   int
}

func (s *lowpState) nextStage(offset int) {
	s.idx += offset
	s.program[s.idx].(lowpStageFn)(s)
}

func (s *lowpState) stageCtx() any {
	return s.program[s.idx+1]
}

func lowpJustReturn(*lowpState) {}

func lowpStart(program []any, rect image.Rectangle) {
	var s lowpState
	s.program = program

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		x := rect.Min.X
		for ; x+lowpStageWidth <= rect.Max.X; x += lowpStageWidth {
			s.idx, s.dx, s.dy, s.tail = 0, x, y, lowpStageWidth
			program[0].(lowpStageFn)(&s)
		}
		if x != rect.Max.X {
			s.idx, s.dx, s.dy, s.tail = 0, x, y, rect.Max.X-x
			program[0].(lowpStageFn)(&s)
		}
	}
}

// lowpStages holds the low-precision kernels. A nil entry means the stage has
// no uint16 rendition; the linker falls back to the high-precision tier when
// it meets one.
var lowpStages = [stageCount]lowpStageFn{
	StageMoveSourceToDestination:   lowpMoveSourceToDestination,
	StageMoveDestinationToSource:   lowpMoveDestinationToSource,
	StagePremultiply:               lowpPremultiply,
	StageUniformColor:              lowpUniformColor,
	StageSeedShader:                lowpSeedShader,
	StageLoadDestination:           lowpLoadDestination,
	StageStore:                     lowpStore,
	StageScaleU8:                   lowpScaleU8,
	StageLerpU8:                    lowpLerpU8,
	StageScale1Float:               lowpScale1Float,
	StageLerp1Float:                lowpLerp1Float,
	StageDestinationAtop:           lowpDestinationAtop,
	StageDestinationIn:             lowpDestinationIn,
	StageDestinationOut:            lowpDestinationOut,
	StageDestinationOver:           lowpDestinationOver,
	StageSourceAtop:                lowpSourceAtop,
	StageSourceIn:                  lowpSourceIn,
	StageSourceOut:                 lowpSourceOut,
	StageSourceOver:                lowpSourceOver,
	StageClear:                     lowpClear,
	StageModulate:                  lowpModulate,
	StageMultiply:                  lowpMultiply,
	StagePlus:                      lowpPlus,
	StageScreen:                    lowpScreen,
	StageXor:                       lowpXor,
	StageDarken:                    lowpDarken,
	StageDifference:                lowpDifference,
	StageExclusion:                 lowpExclusion,
	StageHardLight:                 lowpHardLight,
	StageLighten:                   lowpLighten,
	StageOverlay:                   lowpOverlay,
	StageSourceOverRGBA:            lowpSourceOverRGBA,
	StageTransform:                 lowpTransform,
	StagePadX1:                     lowpPadX1,
	StageReflectX1:                 lowpReflectX1,
	StageRepeatX1:                  lowpRepeatX1,
	StageGradient:                  lowpGradient,
	StageEvenlySpaced2StopGradient: lowpEvenlySpaced2StopGradient,
	StageXYToRadius:                lowpXYToRadius,
}

func lowpMoveSourceToDestination(s *lowpState) {
	s.dr, s.dg, s.db, s.da = s.r, s.g, s.b, s.a
	s.nextStage(1)
}

func lowpMoveDestinationToSource(s *lowpState) {
	s.r, s.g, s.b, s.a = s.dr, s.dg, s.db, s.da
	s.nextStage(1)
}

func lowpPremultiply(s *lowpState) {
	s.r = s.r.Mul(s.a).Div255()
	s.g = s.g.Mul(s.a).Div255()
	s.b = s.b.Mul(s.a).Div255()
	s.nextStage(1)
}

func lowpUniformColor(s *lowpState) {
	ctx := s.stageCtx().(*UniformColorCtx)
	s.r = wide.SplatU16(ctx.RGBA[0])
	s.g = wide.SplatU16(ctx.RGBA[1])
	s.b = wide.SplatU16(ctx.RGBA[2])
	s.a = wide.SplatU16(ctx.RGBA[3])
	s.nextStage(2)
}

func lowpSeedShader(s *lowpState) {
	iota16 := wide.F32x16{
		0.5, 1.5, 2.5, 3.5, 4.5, 5.5, 6.5, 7.5,
		8.5, 9.5, 10.5, 11.5, 12.5, 13.5, 14.5, 15.5,
	}

	s.x = wide.SplatF32x16(float32(s.dx)).Add(iota16)
	s.y = wide.SplatF32x16(float32(s.dy) + 0.5)

	s.r, s.g, s.b, s.a = wide.U16x16{}, wide.U16x16{}, wide.U16x16{}, wide.U16x16{}
	s.dr, s.dg, s.db, s.da = wide.U16x16{}, wide.U16x16{}, wide.U16x16{}, wide.U16x16{}

	s.nextStage(1)
}

func lowpLoadDestination(s *lowpState) {
	ctx := s.stageCtx().(*PixelsCtx)
	s.dr, s.dg, s.db, s.da = lowpLoad8888(ctx.slice(s.dx, s.dy), s.tail)
	s.nextStage(2)
}

func lowpStore(s *lowpState) {
	ctx := s.stageCtx().(*PixelsCtx)
	lowpStore8888(ctx.slice(s.dx, s.dy), s.tail, s.r, s.g, s.b, s.a)
	s.nextStage(2)
}

func lowpSourceOverRGBA(s *lowpState) {
	ctx := s.stageCtx().(*PixelsCtx)
	row := ctx.slice(s.dx, s.dy)
	s.dr, s.dg, s.db, s.da = lowpLoad8888(row, s.tail)
	invA := s.a.Inv()
	s.r = s.r.Add(s.dr.Mul(invA).Div255())
	s.g = s.g.Add(s.dg.Mul(invA).Div255())
	s.b = s.b.Add(s.db.Mul(invA).Div255())
	s.a = s.a.Add(s.da.Mul(invA).Div255())
	lowpStore8888(row, s.tail, s.r, s.g, s.b, s.a)
	s.nextStage(2)
}

func lowpScaleU8(s *lowpState) {
	ctx := s.stageCtx().(*MaskCtx)
	c := lowpLoadMask(ctx.row(s.dx, s.dy), s.tail)
	s.r = s.r.Mul(c).Div255()
	s.g = s.g.Mul(c).Div255()
	s.b = s.b.Mul(c).Div255()
	s.a = s.a.Mul(c).Div255()
	s.nextStage(2)
}

func lowpLerpU8(s *lowpState) {
	ctx := s.stageCtx().(*MaskCtx)
	c := lowpLoadMask(ctx.row(s.dx, s.dy), s.tail)
	s.r = lowpLerp(s.dr, s.r, c)
	s.g = lowpLerp(s.dg, s.g, c)
	s.b = lowpLerp(s.db, s.b, c)
	s.a = lowpLerp(s.da, s.a, c)
	s.nextStage(2)
}

func lowpScale1Float(s *lowpState) {
	c := lowpFromFloat(*s.stageCtx().(*float32))
	s.r = s.r.Mul(c).Div255()
	s.g = s.g.Mul(c).Div255()
	s.b = s.b.Mul(c).Div255()
	s.a = s.a.Mul(c).Div255()
	s.nextStage(2)
}

func lowpLerp1Float(s *lowpState) {
	c := lowpFromFloat(*s.stageCtx().(*float32))
	s.r = lowpLerp(s.dr, s.r, c)
	s.g = lowpLerp(s.dg, s.g, c)
	s.b = lowpLerp(s.db, s.b, c)
	s.a = lowpLerp(s.da, s.a, c)
	s.nextStage(2)
}

// lowpBlend applies f to each color channel and to alpha.
func (s *lowpState) lowpBlend(f func(sc, dc, sa, da wide.U16x16) wide.U16x16) {
	r := f(s.r, s.dr, s.a, s.da)
	g := f(s.g, s.dg, s.a, s.da)
	b := f(s.b, s.db, s.a, s.da)
	a := f(s.a, s.da, s.a, s.da)
	s.r, s.g, s.b, s.a = r, g, b, a
	s.nextStage(1)
}

// lowpBlendColors applies f to the color channels and source-over to alpha.
func (s *lowpState) lowpBlendColors(f func(sc, dc, sa, da wide.U16x16) wide.U16x16) {
	r := f(s.r, s.dr, s.a, s.da)
	g := f(s.g, s.dg, s.a, s.da)
	b := f(s.b, s.db, s.a, s.da)
	a := s.a.Add(s.da.Mul(s.a.Inv()).Div255())
	s.r, s.g, s.b, s.a = r, g, b, a
	s.nextStage(1)
}

func lowpClear(s *lowpState) {
	s.lowpBlend(func(_, _, _, _ wide.U16x16) wide.U16x16 { return wide.U16x16{} })
}

func lowpSourceAtop(s *lowpState) {
	s.lowpBlend(func(sc, dc, sa, da wide.U16x16) wide.U16x16 {
		return sc.Mul(da).Add(dc.Mul(sa.Inv())).Div255()
	})
}

func lowpDestinationAtop(s *lowpState) {
	s.lowpBlend(func(sc, dc, sa, da wide.U16x16) wide.U16x16 {
		return dc.Mul(sa).Add(sc.Mul(da.Inv())).Div255()
	})
}

func lowpSourceIn(s *lowpState) {
	s.lowpBlend(func(sc, _, _, da wide.U16x16) wide.U16x16 {
		return sc.Mul(da).Div255()
	})
}

func lowpDestinationIn(s *lowpState) {
	s.lowpBlend(func(_, dc, sa, _ wide.U16x16) wide.U16x16 {
		return dc.Mul(sa).Div255()
	})
}

func lowpSourceOut(s *lowpState) {
	s.lowpBlend(func(sc, _, _, da wide.U16x16) wide.U16x16 {
		return sc.Mul(da.Inv()).Div255()
	})
}

func lowpDestinationOut(s *lowpState) {
	s.lowpBlend(func(_, dc, sa, _ wide.U16x16) wide.U16x16 {
		return dc.Mul(sa.Inv()).Div255()
	})
}

func lowpSourceOver(s *lowpState) {
	s.lowpBlend(func(sc, dc, sa, _ wide.U16x16) wide.U16x16 {
		return sc.Add(dc.Mul(sa.Inv()).Div255())
	})
}

func lowpDestinationOver(s *lowpState) {
	s.lowpBlend(func(sc, dc, _, da wide.U16x16) wide.U16x16 {
		return dc.Add(sc.Mul(da.Inv()).Div255())
	})
}

func lowpModulate(s *lowpState) {
	s.lowpBlend(func(sc, dc, _, _ wide.U16x16) wide.U16x16 {
		return sc.Mul(dc).Div255()
	})
}

func lowpMultiply(s *lowpState) {
	s.lowpBlend(func(sc, dc, sa, da wide.U16x16) wide.U16x16 {
		return sc.Mul(da.Inv()).Add(dc.Mul(sa.Inv())).Add(sc.Mul(dc)).Div255()
	})
}

func lowpScreen(s *lowpState) {
	s.lowpBlend(func(sc, dc, _, _ wide.U16x16) wide.U16x16 {
		return sc.Add(dc).Sub(sc.Mul(dc).Div255())
	})
}

func lowpXor(s *lowpState) {
	s.lowpBlend(func(sc, dc, sa, da wide.U16x16) wide.U16x16 {
		return sc.Mul(da.Inv()).Add(dc.Mul(sa.Inv())).Div255()
	})
}

func lowpPlus(s *lowpState) {
	s.lowpBlend(func(sc, dc, _, _ wide.U16x16) wide.U16x16 {
		return sc.Add(dc).Min(wide.SplatU16(255))
	})
}

func lowpDarken(s *lowpState) {
	s.lowpBlendColors(func(sc, dc, sa, da wide.U16x16) wide.U16x16 {
		return sc.Add(dc).Sub(sc.Mul(da).Max(dc.Mul(sa)).Div255())
	})
}

func lowpLighten(s *lowpState) {
	s.lowpBlendColors(func(sc, dc, sa, da wide.U16x16) wide.U16x16 {
		return sc.Add(dc).Sub(sc.Mul(da).Min(dc.Mul(sa)).Div255())
	})
}

func lowpDifference(s *lowpState) {
	s.lowpBlendColors(func(sc, dc, sa, da wide.U16x16) wide.U16x16 {
		twice := sc.Mul(da).Min(dc.Mul(sa)).Div255()
		return sc.Add(dc).Sub(twice.Add(twice))
	})
}

func lowpExclusion(s *lowpState) {
	s.lowpBlendColors(func(sc, dc, _, _ wide.U16x16) wide.U16x16 {
		twice := sc.Mul(dc).Div255()
		return sc.Add(dc).Sub(twice.Add(twice))
	})
}

func lowpHardLight(s *lowpState) {
	s.lowpBlendColors(func(sc, dc, sa, da wide.U16x16) wide.U16x16 {
		lite := sa.Mul(da).Sub(lowpTwo(sa.Sub(sc).Mul(da.Sub(dc))))
		mixed := lowpTwo(sc).Le(sa).Select(lowpTwo(sc.Mul(dc)), lite)
		return sc.Mul(da.Inv()).Add(dc.Mul(sa.Inv())).Add(mixed).Div255()
	})
}

func lowpOverlay(s *lowpState) {
	s.lowpBlendColors(func(sc, dc, sa, da wide.U16x16) wide.U16x16 {
		lite := sa.Mul(da).Sub(lowpTwo(sa.Sub(sc).Mul(da.Sub(dc))))
		mixed := lowpTwo(dc).Le(da).Select(lowpTwo(sc.Mul(dc)), lite)
		return sc.Mul(da.Inv()).Add(dc.Mul(sa.Inv())).Add(mixed).Div255()
	})
}

func lowpTransform(s *lowpState) {
	ts := s.stageCtx().(*Transform)

	x := s.x.MulAdd(wide.SplatF32x16(ts.A), s.y.MulAdd(wide.SplatF32x16(ts.B), wide.SplatF32x16(ts.C)))
	y := s.x.MulAdd(wide.SplatF32x16(ts.D), s.y.MulAdd(wide.SplatF32x16(ts.E), wide.SplatF32x16(ts.F)))
	s.x = x
	s.y = y

	s.nextStage(2)
}

// Gradient position warps, same shapes as the high-precision tier.

func lowpPadX1(s *lowpState) {
	s.x = s.x.Normalize()
	s.nextStage(1)
}

func lowpReflectX1(s *lowpState) {
	one := wide.SplatF32x16(1)
	shifted := s.x.Sub(one)
	folded := shifted.Mul(wide.SplatF32x16(0.5)).Floor()
	s.x = shifted.Sub(folded.Add(folded)).Sub(one).Abs().Normalize()
	s.nextStage(1)
}

func lowpRepeatX1(s *lowpState) {
	s.x = s.x.Sub(s.x.Floor()).Normalize()
	s.nextStage(1)
}

func lowpGradient(s *lowpState) {
	ctx := s.stageCtx().(*GradientCtx)

	// Slot 0 holds the color used before the first stop, so counting starts
	// at stop 1.
	t := s.x
	var idx [lowpStageWidth]int
	for i := 1; i < ctx.Len; i++ {
		tt := ctx.TValues[i]
		for lane := range idx {
			if t[lane] >= tt {
				idx[lane]++
			}
		}
	}

	var fr, fg, fb, fa, br, bg, bb, ba wide.F32x16
	for lane, slot := range idx {
		f := ctx.Factors[slot]
		bias := ctx.Biases[slot]
		fr[lane], fg[lane], fb[lane], fa[lane] = f.R, f.G, f.B, f.A
		br[lane], bg[lane], bb[lane], ba[lane] = bias.R, bias.G, bias.B, bias.A
	}

	s.r, s.g, s.b, s.a = lowpRoundColors(
		t.MulAdd(fr, br),
		t.MulAdd(fg, bg),
		t.MulAdd(fb, bb),
		t.MulAdd(fa, ba),
	)

	s.nextStage(2)
}

func lowpEvenlySpaced2StopGradient(s *lowpState) {
	ctx := s.stageCtx().(*EvenlySpaced2StopGradientCtx)

	t := s.x
	s.r, s.g, s.b, s.a = lowpRoundColors(
		t.MulAdd(wide.SplatF32x16(ctx.Factor.R), wide.SplatF32x16(ctx.Bias.R)),
		t.MulAdd(wide.SplatF32x16(ctx.Factor.G), wide.SplatF32x16(ctx.Bias.G)),
		t.MulAdd(wide.SplatF32x16(ctx.Factor.B), wide.SplatF32x16(ctx.Bias.B)),
		t.MulAdd(wide.SplatF32x16(ctx.Factor.A), wide.SplatF32x16(ctx.Bias.A)),
	)

	s.nextStage(2)
}

func lowpXYToRadius(s *lowpState) {
	s.x = s.x.Mul(s.x).Add(s.y.Mul(s.y)).Sqrt()
	s.nextStage(1)
}

// lowpRoundColors converts float channels to 8-bit ones. The color channels
// are clamped first; alpha is trusted to already sit in [0, 1] because
// gradient stop colors are premultiplied.
func lowpRoundColors(rf, gf, bf, af wide.F32x16) (r, g, b, a wide.U16x16) {
	half := wide.SplatF32x16(0.5)
	scale := wide.SplatF32x16(255)
	r = rf.Normalize().MulAdd(scale, half).ToU16()
	g = gf.Normalize().MulAdd(scale, half).ToU16()
	b = bf.Normalize().MulAdd(scale, half).ToU16()
	a = af.MulAdd(scale, half).ToU16()
	return r, g, b, a
}

// lowpLoad8888 widens n premultiplied RGBA8 pixels into uint16 channels.
// Lanes past n are zero.
func lowpLoad8888(data []uint8, n int) (r, g, b, a wide.U16x16) {
	for i := 0; i < n; i++ {
		r[i] = uint16(data[i*4+0])
		g[i] = uint16(data[i*4+1])
		b[i] = uint16(data[i*4+2])
		a[i] = uint16(data[i*4+3])
	}
	return r, g, b, a
}

// lowpStore8888 narrows n lanes back to bytes. Channels are known to be
// in 0..255 already.
func lowpStore8888(data []uint8, n int, r, g, b, a wide.U16x16) {
	for i := 0; i < n; i++ {
		data[i*4+0] = uint8(r[i])
		data[i*4+1] = uint8(g[i])
		data[i*4+2] = uint8(b[i])
		data[i*4+3] = uint8(a[i])
	}
}

// lowpLoadMask widens n coverage bytes. Lanes past n are zero.
func lowpLoadMask(data []uint8, n int) wide.U16x16 {
	var c wide.U16x16
	for i := 0; i < n; i++ {
		c[i] = uint16(data[i])
	}
	return c
}

func lowpFromFloat(f float32) wide.U16x16 {
	return wide.SplatU16(uint16(f*255 + 0.5))
}

// lowpLerp interpolates between from and to with an 8-bit weight.
func lowpLerp(from, to, t wide.U16x16) wide.U16x16 {
	return from.Mul(t.Inv()).Add(to.Mul(t)).Div255()
}

func lowpTwo(v wide.U16x16) wide.U16x16 {
	return v.Add(v)
}
