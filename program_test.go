package pipeline

import (
	"image"
	"testing"
)

func solidBuilder(pm *Pixmap, c Color) *Builder {
	b := NewBuilder()
	b.PushWithContext(StageUniformColor, NewUniformColorCtx(c.Premultiply()))
	b.PushWithContext(StageStore, pm.PixelsCtx())
	return b
}

func TestCompileSelectsLowPrecision(t *testing.T) {
	pm := NewPixmap(1, 1)
	p := solidBuilder(pm, Color{R: 1, A: 1}).Compile()
	if p.IsHighPrecision() {
		t.Fatal("all-low-precision pipeline compiled to the high-precision tier")
	}
}

func TestCompileFallsBackOnMissingKernel(t *testing.T) {
	pm := NewPixmap(1, 1)
	b := solidBuilder(pm, Color{R: 1, A: 1})
	b.Push(StageClamp0) // no low-precision kernel
	if !b.Compile().IsHighPrecision() {
		t.Fatal("pipeline with Clamp0 compiled to the low-precision tier")
	}
}

func TestCompileForceHighPrecision(t *testing.T) {
	pm := NewPixmap(1, 1)
	b := solidBuilder(pm, Color{R: 1, A: 1})
	b.SetForceHighPrecision(true)
	if !b.Compile().IsHighPrecision() {
		t.Fatal("forced pipeline compiled to the low-precision tier")
	}
}

func TestRunEmptyPipeline(t *testing.T) {
	p := NewBuilder().Compile()
	if p.IsHighPrecision() {
		t.Error("empty pipeline should link on the low-precision tier")
	}
	// Must terminate immediately via the sentinel.
	p.Run(image.Rect(0, 0, 64, 64))
}

func TestRunEmptyRect(t *testing.T) {
	pm := NewPixmap(4, 4)
	p := solidBuilder(pm, Color{R: 1, A: 1}).Compile()
	p.Run(image.Rect(2, 2, 2, 2))
	for i, v := range pm.Data() {
		if v != 0 {
			t.Fatalf("byte %d = %d after empty-rect run, want 0", i, v)
		}
	}
}

// Stages must execute oldest-first: a later uniform color wins.
func TestRunStageOrder(t *testing.T) {
	pm := NewPixmap(1, 1)

	var b Builder
	b.PushWithContext(StageUniformColor, NewUniformColorCtx(Color{R: 1, A: 1}.Premultiply()))
	b.PushWithContext(StageUniformColor, NewUniformColorCtx(Color{G: 1, A: 1}.Premultiply()))
	b.PushWithContext(StageStore, pm.PixelsCtx())
	b.Compile().Run(pm.Rect())

	r, g, _, a := pm.Pixel(0, 0)
	if r != 0 || g != 255 || a != 255 {
		t.Fatalf("pixel = (%d, %d, _, %d), want (0, 255, _, 255)", r, g, a)
	}
}

// Chunked execution must cover rows that are not a multiple of either tier's
// batch width, and must not touch pixels outside the rectangle.
func TestRunChunksAndTail(t *testing.T) {
	for _, force := range []bool{false, true} {
		name := "lowp"
		if force {
			name = "highp"
		}
		t.Run(name, func(t *testing.T) {
			pm := NewPixmap(25, 3)
			b := solidBuilder(pm, Color{B: 1, A: 1})
			b.SetForceHighPrecision(force)
			b.Compile().Run(image.Rect(2, 1, 23, 2))

			for y := 0; y < 3; y++ {
				for x := 0; x < 25; x++ {
					_, _, bl, a := pm.Pixel(x, y)
					inside := y == 1 && x >= 2 && x < 23
					if inside && (bl != 255 || a != 255) {
						t.Fatalf("pixel (%d, %d) = (_, _, %d, %d), want (255, 255)", x, y, bl, a)
					}
					if !inside && (bl != 0 || a != 0) {
						t.Fatalf("pixel (%d, %d) written outside the rect", x, y)
					}
				}
			}
		})
	}
}

// A failed low-precision attempt shares the buffer with the high-precision
// retry, and the buffer can be reused for later compilations. Neither may
// leak entries from a previous occupant.
func TestCompileIntoBufferReuse(t *testing.T) {
	pm := NewPixmap(1, 1)

	fallback := solidBuilder(pm, Color{R: 1, A: 1})
	fallback.Push(StageClamp0)
	lowp := solidBuilder(pm, Color{G: 1, A: 1})

	// Big enough for either pipeline.
	buf := make([]any, 2*fallback.Len()+1)

	p := fallback.CompileInto(buf)
	if !p.IsHighPrecision() {
		t.Fatal("expected high-precision fallback")
	}
	p.Run(pm.Rect())
	if r, _, _, _ := pm.Pixel(0, 0); r != 255 {
		t.Fatalf("fallback pipeline stored r = %d, want 255", r)
	}

	p = lowp.CompileInto(buf)
	if p.IsHighPrecision() {
		t.Fatal("expected low-precision pipeline on reuse")
	}
	p.Run(pm.Rect())
	r, g, _, _ := pm.Pixel(0, 0)
	if r != 0 || g != 255 {
		t.Fatalf("reused buffer stored (%d, %d), want (0, 255)", r, g)
	}
}

// The two tiers may round differently but must agree within 1/255 per channel.
func TestTiersAgreeWithinOneStep(t *testing.T) {
	src := ColorFromRGBA8(13, 211, 87, 160)

	run := func(force bool) (uint8, uint8, uint8, uint8) {
		pm := NewPixmap(1, 1)
		pm.Fill(ColorFromRGBA8(90, 30, 220, 140))
		var b Builder
		b.SetForceHighPrecision(force)
		b.PushWithContext(StageUniformColor, NewUniformColorCtx(src.Premultiply()))
		b.PushWithContext(StageLoadDestination, pm.PixelsCtx())
		b.Push(StageSourceOver)
		b.PushWithContext(StageStore, pm.PixelsCtx())
		b.Compile().Run(pm.Rect())
		return pm.Pixel(0, 0)
	}

	lr, lg, lb, la := run(false)
	hr, hg, hb, ha := run(true)
	diff := func(x, y uint8) int {
		d := int(x) - int(y)
		if d < 0 {
			d = -d
		}
		return d
	}
	if diff(lr, hr) > 1 || diff(lg, hg) > 1 || diff(lb, hb) > 1 || diff(la, ha) > 1 {
		t.Fatalf("tiers disagree: lowp (%d, %d, %d, %d) vs highp (%d, %d, %d, %d)",
			lr, lg, lb, la, hr, hg, hb, ha)
	}
}
