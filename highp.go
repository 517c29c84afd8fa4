package pipeline

import (
	"image"
	"math"

	"github.com/gogpu/pipeline/internal/wide"
)

// The high-precision tier. Implements every stage, 8 pixels per chunk,
// with all channels kept as float32 in [0, 1].
//
// Execution is threaded: every kernel finishes by advancing the program
// cursor past itself (and its parameter slot, if it has one) and invoking
// the next program entry. The call depth is bounded by the stage count of
// the pipeline, which in practice is a dozen or two.

const highpStageWidth = 8

type highpStageFn func(s *highpState)

// highpState is the in-flight batch: source and destination color registers
// plus the program cursor and chunk position. Kernels mutate it in place;
// nothing escapes to the heap during a run.
type highpState struct {
	program []any
	idx     int

	r, g, b, a     wide.F32x8
	dr, dg, db, da wide.F32x8

	tail int // active lanes, 1..highpStageWidth
	dx   int
	dy   int
}

// nextStage advances past the current stage (offset 1) or the current stage
// plus its parameter slot (offset 2) and runs the next program entry.
func (s *highpState) nextStage(offset int) {
	s.idx += offset
	s.program[s.idx].(highpStageFn)(s)
}

// stageCtx returns the running stage's parameter block.
func (s *highpState) stageCtx() any {
	return s.program[s.idx+1]
}

// highpJustReturn is the tier sentinel: it ends the chunk by not dispatching.
func highpJustReturn(*highpState) {}

func highpStart(program []any, rect image.Rectangle) {
	var s highpState
	s.program = program

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		x := rect.Min.X
		for ; x+highpStageWidth <= rect.Max.X; x += highpStageWidth {
			s.idx, s.dx, s.dy, s.tail = 0, x, y, highpStageWidth
			program[0].(highpStageFn)(&s)
		}
		if x != rect.Max.X {
			s.idx, s.dx, s.dy, s.tail = 0, x, y, rect.Max.X-x
			program[0].(highpStageFn)(&s)
		}
	}
}

// highpStages maps every stage kind to its high-precision kernel. The table
// is populated once and read-only afterwards; it must not contain nil.
var highpStages = [stageCount]highpStageFn{
	StageMoveSourceToDestination:     highpMoveSourceToDestination,
	StageMoveDestinationToSource:     highpMoveDestinationToSource,
	StageClamp0:                      highpClamp0,
	StageClampA:                      highpClampA,
	StagePremultiply:                 highpPremultiply,
	StageUniformColor:                highpUniformColor,
	StageSeedShader:                  highpSeedShader,
	StageLoadDestination:             highpLoadDestination,
	StageStore:                       highpStore,
	StageGather:                      highpGather,
	StageScaleU8:                     highpScaleU8,
	StageLerpU8:                      highpLerpU8,
	StageScale1Float:                 highpScale1Float,
	StageLerp1Float:                  highpLerp1Float,
	StageDestinationAtop:             highpDestinationAtop,
	StageDestinationIn:               highpDestinationIn,
	StageDestinationOut:              highpDestinationOut,
	StageDestinationOver:             highpDestinationOver,
	StageSourceAtop:                  highpSourceAtop,
	StageSourceIn:                    highpSourceIn,
	StageSourceOut:                   highpSourceOut,
	StageSourceOver:                  highpSourceOver,
	StageClear:                       highpClear,
	StageModulate:                    highpModulate,
	StageMultiply:                    highpMultiply,
	StagePlus:                        highpPlus,
	StageScreen:                      highpScreen,
	StageXor:                         highpXor,
	StageColorBurn:                   highpColorBurn,
	StageColorDodge:                  highpColorDodge,
	StageDarken:                      highpDarken,
	StageDifference:                  highpDifference,
	StageExclusion:                   highpExclusion,
	StageHardLight:                   highpHardLight,
	StageLighten:                     highpLighten,
	StageOverlay:                     highpOverlay,
	StageSoftLight:                   highpSoftLight,
	StageHue:                         highpHue,
	StageSaturation:                  highpSaturation,
	StageColor:                       highpColor,
	StageLuminosity:                  highpLuminosity,
	StageSourceOverRGBA:              highpSourceOverRGBA,
	StageTransform:                   highpTransform,
	StageReflectX:                    highpReflectX,
	StageReflectY:                    highpReflectY,
	StageRepeatX:                     highpRepeatX,
	StageRepeatY:                     highpRepeatY,
	StageBilinear:                    highpBilinear,
	StageBicubic:                     highpBicubic,
	StagePadX1:                       highpPadX1,
	StageReflectX1:                   highpReflectX1,
	StageRepeatX1:                    highpRepeatX1,
	StageGradient:                    highpGradient,
	StageEvenlySpaced2StopGradient:   highpEvenlySpaced2StopGradient,
	StageXYToRadius:                  highpXYToRadius,
	StageXYTo2PtConicalFocalOnCircle: highpXYTo2PtConicalFocalOnCircle,
	StageXYTo2PtConicalWellBehaved:   highpXYTo2PtConicalWellBehaved,
	StageXYTo2PtConicalGreater:       highpXYTo2PtConicalGreater,
	StageMask2PtConicalDegenerates:   highpMask2PtConicalDegenerates,
	StageApplyVectorMask:             highpApplyVectorMask,
}

func highpMoveSourceToDestination(s *highpState) {
	s.dr, s.dg, s.db, s.da = s.r, s.g, s.b, s.a
	s.nextStage(1)
}

func highpMoveDestinationToSource(s *highpState) {
	s.r, s.g, s.b, s.a = s.dr, s.dg, s.db, s.da
	s.nextStage(1)
}

func highpClamp0(s *highpState) {
	zero := wide.F32x8{}
	s.r = s.r.Max(zero)
	s.g = s.g.Max(zero)
	s.b = s.b.Max(zero)
	s.a = s.a.Max(zero)
	s.nextStage(1)
}

func highpClampA(s *highpState) {
	one := wide.SplatF32(1)
	s.r = s.r.Min(one)
	s.g = s.g.Min(one)
	s.b = s.b.Min(one)
	s.a = s.a.Min(one)
	s.nextStage(1)
}

func highpPremultiply(s *highpState) {
	s.r = s.r.Mul(s.a)
	s.g = s.g.Mul(s.a)
	s.b = s.b.Mul(s.a)
	s.nextStage(1)
}

func highpUniformColor(s *highpState) {
	ctx := s.stageCtx().(*UniformColorCtx)
	s.r = wide.SplatF32(ctx.R)
	s.g = wide.SplatF32(ctx.G)
	s.b = wide.SplatF32(ctx.B)
	s.a = wide.SplatF32(ctx.A)
	s.nextStage(2)
}

func highpSeedShader(s *highpState) {
	iota8 := wide.F32x8{0.5, 1.5, 2.5, 3.5, 4.5, 5.5, 6.5, 7.5}

	s.r = wide.SplatF32(float32(s.dx)).Add(iota8)
	s.g = wide.SplatF32(float32(s.dy) + 0.5)
	s.b = wide.SplatF32(1)
	s.a = wide.F32x8{}

	s.dr = wide.F32x8{}
	s.dg = wide.F32x8{}
	s.db = wide.F32x8{}
	s.da = wide.F32x8{}

	s.nextStage(1)
}

func highpLoadDestination(s *highpState) {
	ctx := s.stageCtx().(*PixelsCtx)
	s.dr, s.dg, s.db, s.da = highpLoad8888(ctx.slice(s.dx, s.dy), s.tail)
	s.nextStage(2)
}

func highpStore(s *highpState) {
	ctx := s.stageCtx().(*PixelsCtx)
	highpStore8888(ctx.slice(s.dx, s.dy), s.tail, s.r, s.g, s.b, s.a)
	s.nextStage(2)
}

func highpSourceOverRGBA(s *highpState) {
	ctx := s.stageCtx().(*PixelsCtx)
	row := ctx.slice(s.dx, s.dy)
	s.dr, s.dg, s.db, s.da = highpLoad8888(row, s.tail)
	invA := highpInv(s.a)
	s.r = s.dr.MulAdd(invA, s.r)
	s.g = s.dg.MulAdd(invA, s.g)
	s.b = s.db.MulAdd(invA, s.b)
	s.a = s.da.MulAdd(invA, s.a)
	highpStore8888(row, s.tail, s.r, s.g, s.b, s.a)
	s.nextStage(2)
}

func highpScaleU8(s *highpState) {
	ctx := s.stageCtx().(*MaskCtx)
	c := highpLoadMask(ctx.row(s.dx, s.dy), s.tail)
	s.r = s.r.Mul(c)
	s.g = s.g.Mul(c)
	s.b = s.b.Mul(c)
	s.a = s.a.Mul(c)
	s.nextStage(2)
}

func highpLerpU8(s *highpState) {
	ctx := s.stageCtx().(*MaskCtx)
	c := highpLoadMask(ctx.row(s.dx, s.dy), s.tail)
	s.r = s.dr.Lerp(s.r, c)
	s.g = s.dg.Lerp(s.g, c)
	s.b = s.db.Lerp(s.b, c)
	s.a = s.da.Lerp(s.a, c)
	s.nextStage(2)
}

func highpScale1Float(s *highpState) {
	c := wide.SplatF32(*s.stageCtx().(*float32))
	s.r = s.r.Mul(c)
	s.g = s.g.Mul(c)
	s.b = s.b.Mul(c)
	s.a = s.a.Mul(c)
	s.nextStage(2)
}

func highpLerp1Float(s *highpState) {
	c := wide.SplatF32(*s.stageCtx().(*float32))
	s.r = s.dr.Lerp(s.r, c)
	s.g = s.dg.Lerp(s.g, c)
	s.b = s.db.Lerp(s.b, c)
	s.a = s.da.Lerp(s.a, c)
	s.nextStage(2)
}

// highpBlend applies f to each color channel and to alpha.
func (s *highpState) highpBlend(f func(sc, dc, sa, da wide.F32x8) wide.F32x8) {
	r := f(s.r, s.dr, s.a, s.da)
	g := f(s.g, s.dg, s.a, s.da)
	b := f(s.b, s.db, s.a, s.da)
	a := f(s.a, s.da, s.a, s.da)
	s.r, s.g, s.b, s.a = r, g, b, a
	s.nextStage(1)
}

// highpBlendColors applies f to the color channels and source-over to alpha,
// the standard shape for the separable non-Porter-Duff modes.
func (s *highpState) highpBlendColors(f func(sc, dc, sa, da wide.F32x8) wide.F32x8) {
	r := f(s.r, s.dr, s.a, s.da)
	g := f(s.g, s.dg, s.a, s.da)
	b := f(s.b, s.db, s.a, s.da)
	a := s.da.MulAdd(highpInv(s.a), s.a)
	s.r, s.g, s.b, s.a = r, g, b, a
	s.nextStage(1)
}

func highpClear(s *highpState) {
	s.highpBlend(func(_, _, _, _ wide.F32x8) wide.F32x8 { return wide.F32x8{} })
}

func highpSourceAtop(s *highpState) {
	s.highpBlend(func(sc, dc, sa, da wide.F32x8) wide.F32x8 {
		return sc.Mul(da).Add(dc.Mul(highpInv(sa)))
	})
}

func highpDestinationAtop(s *highpState) {
	s.highpBlend(func(sc, dc, sa, da wide.F32x8) wide.F32x8 {
		return dc.Mul(sa).Add(sc.Mul(highpInv(da)))
	})
}

func highpSourceIn(s *highpState) {
	s.highpBlend(func(sc, _, _, da wide.F32x8) wide.F32x8 {
		return sc.Mul(da)
	})
}

func highpDestinationIn(s *highpState) {
	s.highpBlend(func(_, dc, sa, _ wide.F32x8) wide.F32x8 {
		return dc.Mul(sa)
	})
}

func highpSourceOut(s *highpState) {
	s.highpBlend(func(sc, _, _, da wide.F32x8) wide.F32x8 {
		return sc.Mul(highpInv(da))
	})
}

func highpDestinationOut(s *highpState) {
	s.highpBlend(func(_, dc, sa, _ wide.F32x8) wide.F32x8 {
		return dc.Mul(highpInv(sa))
	})
}

func highpSourceOver(s *highpState) {
	s.highpBlend(func(sc, dc, sa, _ wide.F32x8) wide.F32x8 {
		return dc.MulAdd(highpInv(sa), sc)
	})
}

func highpDestinationOver(s *highpState) {
	s.highpBlend(func(sc, dc, _, da wide.F32x8) wide.F32x8 {
		return sc.MulAdd(highpInv(da), dc)
	})
}

func highpModulate(s *highpState) {
	s.highpBlend(func(sc, dc, _, _ wide.F32x8) wide.F32x8 {
		return sc.Mul(dc)
	})
}

func highpMultiply(s *highpState) {
	s.highpBlend(func(sc, dc, sa, da wide.F32x8) wide.F32x8 {
		return sc.Mul(highpInv(da)).Add(dc.Mul(highpInv(sa))).Add(sc.Mul(dc))
	})
}

func highpScreen(s *highpState) {
	s.highpBlend(func(sc, dc, _, _ wide.F32x8) wide.F32x8 {
		return sc.Add(dc).Sub(sc.Mul(dc))
	})
}

func highpXor(s *highpState) {
	s.highpBlend(func(sc, dc, sa, da wide.F32x8) wide.F32x8 {
		return sc.Mul(highpInv(da)).Add(dc.Mul(highpInv(sa)))
	})
}

func highpPlus(s *highpState) {
	s.highpBlend(func(sc, dc, _, _ wide.F32x8) wide.F32x8 {
		return sc.Add(dc).Min(wide.SplatF32(1))
	})
}

func highpDarken(s *highpState) {
	s.highpBlendColors(func(sc, dc, sa, da wide.F32x8) wide.F32x8 {
		return sc.Add(dc).Sub(sc.Mul(da).Max(dc.Mul(sa)))
	})
}

func highpLighten(s *highpState) {
	s.highpBlendColors(func(sc, dc, sa, da wide.F32x8) wide.F32x8 {
		return sc.Add(dc).Sub(sc.Mul(da).Min(dc.Mul(sa)))
	})
}

func highpDifference(s *highpState) {
	s.highpBlendColors(func(sc, dc, sa, da wide.F32x8) wide.F32x8 {
		return sc.Add(dc).Sub(highpTwo(sc.Mul(da).Min(dc.Mul(sa))))
	})
}

func highpExclusion(s *highpState) {
	s.highpBlendColors(func(sc, dc, _, _ wide.F32x8) wide.F32x8 {
		return sc.Add(dc).Sub(highpTwo(sc.Mul(dc)))
	})
}

func highpColorBurn(s *highpState) {
	s.highpBlendColors(func(sc, dc, sa, da wide.F32x8) wide.F32x8 {
		general := sa.Mul(da.Sub(da.Min(da.Sub(dc).Mul(sa).Mul(sc.Recip())))).
			Add(sc.Mul(highpInv(da))).Add(dc.Mul(highpInv(sa)))
		return dc.Eq(da).Select(
			dc.Add(sc.Mul(highpInv(da))),
			sc.Eq(wide.F32x8{}).Select(dc.Mul(highpInv(sa)), general),
		)
	})
}

func highpColorDodge(s *highpState) {
	s.highpBlendColors(func(sc, dc, sa, da wide.F32x8) wide.F32x8 {
		general := sa.Mul(da.Min(dc.Mul(sa).Mul(sa.Sub(sc).Recip()))).
			Add(sc.Mul(highpInv(da))).Add(dc.Mul(highpInv(sa)))
		return dc.Eq(wide.F32x8{}).Select(
			sc.Mul(highpInv(da)),
			sc.Eq(sa).Select(sc.Add(dc.Mul(highpInv(sa))), general),
		)
	})
}

func highpHardLight(s *highpState) {
	s.highpBlendColors(func(sc, dc, sa, da wide.F32x8) wide.F32x8 {
		return sc.Mul(highpInv(da)).Add(dc.Mul(highpInv(sa))).Add(
			highpTwo(sc).Le(sa).Select(
				highpTwo(sc.Mul(dc)),
				sa.Mul(da).Sub(highpTwo(da.Sub(dc).Mul(sa.Sub(sc)))),
			),
		)
	})
}

func highpOverlay(s *highpState) {
	s.highpBlendColors(func(sc, dc, sa, da wide.F32x8) wide.F32x8 {
		return sc.Mul(highpInv(da)).Add(dc.Mul(highpInv(sa))).Add(
			highpTwo(dc).Le(da).Select(
				highpTwo(sc.Mul(dc)),
				sa.Mul(da).Sub(highpTwo(da.Sub(dc).Mul(sa.Sub(sc)))),
			),
		)
	})
}

func highpSoftLight(s *highpState) {
	s.highpBlendColors(func(sc, dc, sa, da wide.F32x8) wide.F32x8 {
		m := da.Gt(wide.F32x8{}).Select(dc.Div(da), wide.F32x8{})
		s2 := highpTwo(sc)
		m4 := highpTwo(highpTwo(m))
		one := wide.SplatF32(1)

		// The logic forks three ways:
		//    1. dark source?
		//    2. light source, dark destination?
		//    3. light source, light destination?
		darkSrc := dc.Mul(sa.Add(s2.Sub(sa).Mul(one.Sub(m))))
		darkDst := m4.Mul(m4).Add(m4).Mul(m.Sub(one)).Add(wide.SplatF32(7).Mul(m))
		liteDst := m.RecipSqrt().Recip().Sub(m)
		liteSrc := dc.Mul(sa).Add(da.Mul(s2.Sub(sa)).
			Mul(highpTwo(highpTwo(dc)).Le(da).Select(darkDst, liteDst))) // 2 or 3?

		return sc.Mul(highpInv(da)).Add(dc.Mul(highpInv(sa))).
			Add(s2.Le(sa).Select(darkSrc, liteSrc)) // 1 or (2 or 3)?
	})
}

// Non-separable blend modes, based on
// https://www.w3.org/TR/compositing-1/#blendingnonseparable
// with the extra terms needed to make the math work on premultiplied inputs.

func highpHue(s *highpState) {
	rr := s.r.Mul(s.a)
	gg := s.g.Mul(s.a)
	bb := s.b.Mul(s.a)

	rr, gg, bb = highpSetSat(rr, gg, bb, highpSat(s.dr, s.dg, s.db).Mul(s.a))
	rr, gg, bb = highpSetLum(rr, gg, bb, highpLum(s.dr, s.dg, s.db).Mul(s.a))
	rr, gg, bb = highpClipColor(rr, gg, bb, s.a.Mul(s.da))

	s.r = s.r.Mul(highpInv(s.da)).Add(s.dr.Mul(highpInv(s.a))).Add(rr)
	s.g = s.g.Mul(highpInv(s.da)).Add(s.dg.Mul(highpInv(s.a))).Add(gg)
	s.b = s.b.Mul(highpInv(s.da)).Add(s.db.Mul(highpInv(s.a))).Add(bb)
	s.a = s.a.Add(s.da).Sub(s.a.Mul(s.da))
	s.nextStage(1)
}

func highpSaturation(s *highpState) {
	rr := s.dr.Mul(s.a)
	gg := s.dg.Mul(s.a)
	bb := s.db.Mul(s.a)

	rr, gg, bb = highpSetSat(rr, gg, bb, highpSat(s.r, s.g, s.b).Mul(s.da))
	rr, gg, bb = highpSetLum(rr, gg, bb, highpLum(s.dr, s.dg, s.db).Mul(s.a)) // (This is not redundant.)
	rr, gg, bb = highpClipColor(rr, gg, bb, s.a.Mul(s.da))

	s.r = s.r.Mul(highpInv(s.da)).Add(s.dr.Mul(highpInv(s.a))).Add(rr)
	s.g = s.g.Mul(highpInv(s.da)).Add(s.dg.Mul(highpInv(s.a))).Add(gg)
	s.b = s.b.Mul(highpInv(s.da)).Add(s.db.Mul(highpInv(s.a))).Add(bb)
	s.a = s.a.Add(s.da).Sub(s.a.Mul(s.da))
	s.nextStage(1)
}

func highpColor(s *highpState) {
	rr := s.r.Mul(s.da)
	gg := s.g.Mul(s.da)
	bb := s.b.Mul(s.da)

	rr, gg, bb = highpSetLum(rr, gg, bb, highpLum(s.dr, s.dg, s.db).Mul(s.a))
	rr, gg, bb = highpClipColor(rr, gg, bb, s.a.Mul(s.da))

	s.r = s.r.Mul(highpInv(s.da)).Add(s.dr.Mul(highpInv(s.a))).Add(rr)
	s.g = s.g.Mul(highpInv(s.da)).Add(s.dg.Mul(highpInv(s.a))).Add(gg)
	s.b = s.b.Mul(highpInv(s.da)).Add(s.db.Mul(highpInv(s.a))).Add(bb)
	s.a = s.a.Add(s.da).Sub(s.a.Mul(s.da))
	s.nextStage(1)
}

func highpLuminosity(s *highpState) {
	rr := s.dr.Mul(s.a)
	gg := s.dg.Mul(s.a)
	bb := s.db.Mul(s.a)

	rr, gg, bb = highpSetLum(rr, gg, bb, highpLum(s.r, s.g, s.b).Mul(s.da))
	rr, gg, bb = highpClipColor(rr, gg, bb, s.a.Mul(s.da))

	s.r = s.r.Mul(highpInv(s.da)).Add(s.dr.Mul(highpInv(s.a))).Add(rr)
	s.g = s.g.Mul(highpInv(s.da)).Add(s.dg.Mul(highpInv(s.a))).Add(gg)
	s.b = s.b.Mul(highpInv(s.da)).Add(s.db.Mul(highpInv(s.a))).Add(bb)
	s.a = s.a.Add(s.da).Sub(s.a.Mul(s.da))
	s.nextStage(1)
}

func highpSat(r, g, b wide.F32x8) wide.F32x8 {
	return r.Max(g.Max(b)).Sub(r.Min(g.Min(b)))
}

func highpLum(r, g, b wide.F32x8) wide.F32x8 {
	return r.Mul(wide.SplatF32(0.30)).
		Add(g.Mul(wide.SplatF32(0.59))).
		Add(b.Mul(wide.SplatF32(0.11)))
}

// highpSetSat maps the min channel to 0, the max channel to sat, and scales
// the middle channel proportionally.
func highpSetSat(r, g, b, sat wide.F32x8) (wide.F32x8, wide.F32x8, wide.F32x8) {
	mn := r.Min(g.Min(b))
	mx := r.Max(g.Max(b))
	span := mx.Sub(mn)

	gray := span.Eq(wide.F32x8{})
	scale := func(c wide.F32x8) wide.F32x8 {
		return gray.Select(wide.F32x8{}, c.Sub(mn).Mul(sat).Div(span))
	}
	return scale(r), scale(g), scale(b)
}

func highpSetLum(r, g, b, lum wide.F32x8) (wide.F32x8, wide.F32x8, wide.F32x8) {
	diff := lum.Sub(highpLum(r, g, b))
	return r.Add(diff), g.Add(diff), b.Add(diff)
}

func highpClipColor(r, g, b, a wide.F32x8) (wide.F32x8, wide.F32x8, wide.F32x8) {
	mn := r.Min(g.Min(b))
	mx := r.Max(g.Max(b))
	l := highpLum(r, g, b)

	clip := func(c wide.F32x8) wide.F32x8 {
		c = mx.Ge(wide.F32x8{}).Select(c, l.Add(c.Sub(l).Mul(l).Div(l.Sub(mn))))
		c = mx.Gt(a).Select(l.Add(c.Sub(l).Mul(a.Sub(l)).Div(mx.Sub(l))), c)
		// Without this we may dip just a little negative.
		return c.Max(wide.F32x8{})
	}
	return clip(r), clip(g), clip(b)
}

// highpLoad8888 reads n premultiplied RGBA8 pixels into float registers.
// Lanes past n are zero.
func highpLoad8888(data []uint8, n int) (r, g, b, a wide.F32x8) {
	const factor = 1.0 / 255.0
	for i := 0; i < n; i++ {
		r[i] = float32(data[i*4+0]) * factor
		g[i] = float32(data[i*4+1]) * factor
		b[i] = float32(data[i*4+2]) * factor
		a[i] = float32(data[i*4+3]) * factor
	}
	return r, g, b, a
}

// highpStore8888 writes n lanes back as premultiplied RGBA8.
func highpStore8888(data []uint8, n int, r, g, b, a wide.F32x8) {
	for i := 0; i < n; i++ {
		data[i*4+0] = highpUnnorm(r[i])
		data[i*4+1] = highpUnnorm(g[i])
		data[i*4+2] = highpUnnorm(b[i])
		data[i*4+3] = highpUnnorm(a[i])
	}
}

// highpUnnorm converts a [0, 1] channel to a byte, rounding half to even to
// match hardware float-to-int conversion.
func highpUnnorm(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(math.RoundToEven(float64(v) * 255))
	}
}

// highpLoadMask reads n coverage bytes as [0, 1] floats. Lanes past n are zero.
func highpLoadMask(data []uint8, n int) wide.F32x8 {
	const factor = 1.0 / 255.0
	var c wide.F32x8
	for i := 0; i < n; i++ {
		c[i] = float32(data[i]) * factor
	}
	return c
}

func highpInv(v wide.F32x8) wide.F32x8 {
	return wide.SplatF32(1).Sub(v)
}

func highpTwo(v wide.F32x8) wide.F32x8 {
	return v.Add(v)
}
