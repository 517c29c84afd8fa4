package pipeline

import (
	"math"

	"github.com/gogpu/pipeline/internal/wide"
)

// Shader stages of the high-precision tier: the coordinate generators, tiling
// warps, texture samplers and gradient evaluators. These all follow the same
// convention: r carries x (or the gradient position t) and g carries y until
// a sampling or gradient stage turns the pair into a color.

func highpTransform(s *highpState) {
	ts := s.stageCtx().(*Transform)

	x := s.r.MulAdd(wide.SplatF32(ts.A), s.g.MulAdd(wide.SplatF32(ts.B), wide.SplatF32(ts.C)))
	y := s.r.MulAdd(wide.SplatF32(ts.D), s.g.MulAdd(wide.SplatF32(ts.E), wide.SplatF32(ts.F)))
	s.r = x
	s.g = y

	s.nextStage(2)
}

// Tile x or y to [0, limit). The gather stage hard-clamps its input to that
// range anyway, so these only need the basic repeat or mirroring.

func highpReflectX(s *highpState) {
	ctx := s.stageCtx().(*TileCtx)
	s.r = highpExclusiveReflect(s.r, ctx.Scale, ctx.InvScale)
	s.nextStage(2)
}

func highpReflectY(s *highpState) {
	ctx := s.stageCtx().(*TileCtx)
	s.g = highpExclusiveReflect(s.g, ctx.Scale, ctx.InvScale)
	s.nextStage(2)
}

func highpRepeatX(s *highpState) {
	ctx := s.stageCtx().(*TileCtx)
	s.r = highpExclusiveRepeat(s.r, ctx.Scale, ctx.InvScale)
	s.nextStage(2)
}

func highpRepeatY(s *highpState) {
	ctx := s.stageCtx().(*TileCtx)
	s.g = highpExclusiveRepeat(s.g, ctx.Scale, ctx.InvScale)
	s.nextStage(2)
}

func highpExclusiveRepeat(v wide.F32x8, limit, invLimit float32) wide.F32x8 {
	return v.Sub(v.Mul(wide.SplatF32(invLimit)).Floor().Mul(wide.SplatF32(limit)))
}

// highpExclusiveReflect mirrors v around each multiple of limit so that the
// result lands in [0, limit), with limit itself folding back to the inside.
func highpExclusiveReflect(v wide.F32x8, limit, invLimit float32) wide.F32x8 {
	lim := wide.SplatF32(limit)
	shifted := v.Sub(lim)
	period := shifted.Mul(wide.SplatF32(invLimit * 0.5)).Floor()
	return shifted.Sub(highpTwo(lim).Mul(period)).Sub(lim).Abs()
}

func highpGather(s *highpState) {
	ctx := s.stageCtx().(*GatherCtx)
	s.r, s.g, s.b, s.a = highpGatherLoad(ctx, s.r, s.g)
	s.nextStage(2)
}

// highpGatherLoad clamps the coordinates into the pixel grid and fetches one
// premultiplied RGBA8 pixel per lane.
func highpGatherLoad(ctx *GatherCtx, x, y wide.F32x8) (r, g, b, a wide.F32x8) {
	// Exclusive -> inclusive.
	w := ulpSub(float32(ctx.Width))
	h := ulpSub(float32(ctx.Height))
	x = x.Max(wide.F32x8{}).Min(wide.SplatF32(w))
	y = y.Max(wide.F32x8{}).Min(wide.SplatF32(h))

	const factor = 1.0 / 255.0
	for i := range x {
		idx := (int(y[i])*ctx.Stride + int(x[i])) * 4
		r[i] = float32(ctx.Pixels[idx+0]) * factor
		g[i] = float32(ctx.Pixels[idx+1]) * factor
		b[i] = float32(ctx.Pixels[idx+2]) * factor
		a[i] = float32(ctx.Pixels[idx+3]) * factor
	}
	return r, g, b, a
}

// ulpSub returns the largest float32 strictly below v.
func ulpSub(v float32) float32 {
	return math.Float32frombits(math.Float32bits(v) - 1)
}

func highpBilinear(s *highpState) {
	ctx := s.stageCtx().(*SamplerCtx)

	x := s.r
	fx := x.Add(wide.SplatF32(0.5)).Fract()
	y := s.g
	fy := y.Add(wide.SplatF32(0.5)).Fract()
	one := wide.SplatF32(1)
	wx := [2]wide.F32x8{one.Sub(fx), fx}
	wy := [2]wide.F32x8{one.Sub(fy), fy}

	s.r, s.g, s.b, s.a = highpSampler(ctx, x, y, wx[:], wy[:], -0.5)

	s.nextStage(2)
}

func highpBicubic(s *highpState) {
	ctx := s.stageCtx().(*SamplerCtx)

	x := s.r
	fx := x.Add(wide.SplatF32(0.5)).Fract()
	y := s.g
	fy := y.Add(wide.SplatF32(0.5)).Fract()
	one := wide.SplatF32(1)
	wx := [4]wide.F32x8{bicubicFar(one.Sub(fx)), bicubicNear(one.Sub(fx)), bicubicNear(fx), bicubicFar(fx)}
	wy := [4]wide.F32x8{bicubicFar(one.Sub(fy)), bicubicNear(one.Sub(fy)), bicubicNear(fy), bicubicFar(fy)}

	s.r, s.g, s.b, s.a = highpSampler(ctx, x, y, wx[:], wy[:], -1.5)

	s.nextStage(2)
}

// The bicubic filter combines 16 pixels at +/- 0.5 and +/- 1.5 offsets from
// the sample center with a non-uniform cubic kernel, heavier near the center.
// Split into a near-0.5 part and a far-1.5 part.

func bicubicNear(t wide.F32x8) wide.F32x8 {
	// 1/18 + 9/18t + 27/18t^2 - 21/18t^3
	return t.MulAdd(
		t.MulAdd(wide.SplatF32(-21.0/18.0).MulAdd(t, wide.SplatF32(27.0/18.0)), wide.SplatF32(9.0/18.0)),
		wide.SplatF32(1.0/18.0),
	)
}

func bicubicFar(t wide.F32x8) wide.F32x8 {
	// -6/18t^2 + 7/18t^3 == t^2 (7/18t - 6/18)
	return t.Mul(t).Mul(wide.SplatF32(7.0 / 18.0).MulAdd(t, wide.SplatF32(-6.0/18.0)))
}

// highpSampler accumulates a len(wx) x len(wy) neighborhood around (cx, cy),
// tiling each tap through the sampler's spread mode before the fetch.
func highpSampler(ctx *SamplerCtx, cx, cy wide.F32x8, wx, wy []wide.F32x8, start float32) (r, g, b, a wide.F32x8) {
	one := wide.SplatF32(1)
	y := cy.Add(wide.SplatF32(start))
	for j := range wy {
		x := cx.Add(wide.SplatF32(start))
		for i := range wx {
			tx := highpTile(x, ctx.SpreadMode, float32(ctx.Gather.Width), ctx.InvWidth)
			ty := highpTile(y, ctx.SpreadMode, float32(ctx.Gather.Height), ctx.InvHeight)
			rr, gg, bb, aa := highpGatherLoad(&ctx.Gather, tx, ty)

			w := wx[i].Mul(wy[j])
			r = w.MulAdd(rr, r)
			g = w.MulAdd(gg, g)
			b = w.MulAdd(bb, b)
			a = w.MulAdd(aa, a)

			x = x.Add(one)
		}
		y = y.Add(one)
	}
	return r, g, b, a
}

func highpTile(v wide.F32x8, mode SpreadMode, limit, invLimit float32) wide.F32x8 {
	switch mode {
	case SpreadRepeat:
		return highpExclusiveRepeat(v, limit, invLimit)
	case SpreadReflect:
		return highpExclusiveReflect(v, limit, invLimit)
	default:
		return v
	}
}

// Gradient position warps: fold an unbounded t in r down to [0, 1].

func highpPadX1(s *highpState) {
	s.r = s.r.Normalize()
	s.nextStage(1)
}

func highpReflectX1(s *highpState) {
	one := wide.SplatF32(1)
	shifted := s.r.Sub(one)
	s.r = shifted.Sub(highpTwo(shifted.Mul(wide.SplatF32(0.5)).Floor())).Sub(one).Abs().Normalize()
	s.nextStage(1)
}

func highpRepeatX1(s *highpState) {
	s.r = s.r.Fract().Normalize()
	s.nextStage(1)
}

func highpGradient(s *highpState) {
	ctx := s.stageCtx().(*GradientCtx)

	// Slot 0 holds the color used before the first stop, so counting starts
	// at stop 1: every stop at or below t bumps the lane's slot index.
	t := s.r
	var idx [highpStageWidth]int
	for i := 1; i < ctx.Len; i++ {
		tt := ctx.TValues[i]
		for lane := range idx {
			if t[lane] >= tt {
				idx[lane]++
			}
		}
	}

	s.r, s.g, s.b, s.a = highpGradientLookup(ctx, idx, t)

	s.nextStage(2)
}

func highpGradientLookup(ctx *GradientCtx, idx [highpStageWidth]int, t wide.F32x8) (r, g, b, a wide.F32x8) {
	var fr, fg, fb, fa, br, bg, bb, ba wide.F32x8
	for lane, slot := range idx {
		f := ctx.Factors[slot]
		bias := ctx.Biases[slot]
		fr[lane], fg[lane], fb[lane], fa[lane] = f.R, f.G, f.B, f.A
		br[lane], bg[lane], bb[lane], ba[lane] = bias.R, bias.G, bias.B, bias.A
	}

	r = t.MulAdd(fr, br)
	g = t.MulAdd(fg, bg)
	b = t.MulAdd(fb, bb)
	a = t.MulAdd(fa, ba)
	return r, g, b, a
}

func highpEvenlySpaced2StopGradient(s *highpState) {
	ctx := s.stageCtx().(*EvenlySpaced2StopGradientCtx)

	t := s.r
	s.r = t.MulAdd(wide.SplatF32(ctx.Factor.R), wide.SplatF32(ctx.Bias.R))
	s.g = t.MulAdd(wide.SplatF32(ctx.Factor.G), wide.SplatF32(ctx.Bias.G))
	s.b = t.MulAdd(wide.SplatF32(ctx.Factor.B), wide.SplatF32(ctx.Bias.B))
	s.a = t.MulAdd(wide.SplatF32(ctx.Factor.A), wide.SplatF32(ctx.Bias.A))

	s.nextStage(2)
}

func highpXYToRadius(s *highpState) {
	x2 := s.r.Mul(s.r)
	y2 := s.g.Mul(s.g)
	s.r = x2.Add(y2).Sqrt()
	s.nextStage(1)
}

func highpXYTo2PtConicalFocalOnCircle(s *highpState) {
	x := s.r
	y := s.g
	s.r = x.Add(y.Mul(y).Div(x))
	s.nextStage(1)
}

func highpXYTo2PtConicalWellBehaved(s *highpState) {
	ctx := s.stageCtx().(*TwoPointConicalGradientCtx)

	x := s.r
	y := s.g
	s.r = x.Mul(x).Add(y.Mul(y)).Sqrt().Sub(x.Mul(wide.SplatF32(ctx.P0)))

	s.nextStage(2)
}

func highpXYTo2PtConicalGreater(s *highpState) {
	ctx := s.stageCtx().(*TwoPointConicalGradientCtx)

	x := s.r
	y := s.g
	s.r = x.Mul(x).Sub(y.Mul(y)).Sqrt().Sub(x.Mul(wide.SplatF32(ctx.P0)))

	s.nextStage(2)
}

// highpMask2PtConicalDegenerates zeroes non-positive and NaN gradient
// positions and records the surviving lanes so a later ApplyVectorMask stage
// can knock out the degenerate ones.
func highpMask2PtConicalDegenerates(s *highpState) {
	ctx := s.stageCtx().(*TwoPointConicalGradientCtx)

	t := s.r
	degenerate := t.Le(wide.F32x8{}).Or(t.Ne(t))
	s.r = degenerate.Select(wide.F32x8{}, t)
	ctx.Mask = degenerate.Not()

	s.nextStage(2)
}

func highpApplyVectorMask(s *highpState) {
	ctx := s.stageCtx().(*TwoPointConicalGradientCtx)

	zero := wide.F32x8{}
	s.r = ctx.Mask.Select(s.r, zero)
	s.g = ctx.Mask.Select(s.g, zero)
	s.b = ctx.Mask.Select(s.b, zero)
	s.a = ctx.Mask.Select(s.a, zero)

	s.nextStage(2)
}
