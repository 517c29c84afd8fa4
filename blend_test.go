package pipeline

import "testing"

// runBlend composes uniform-color + load + blend + store over a single pixel
// and returns the stored bytes. Source is rgba8(220, 140, 75, 180)
// premultiplied, destination rgba8(50, 127, 150, 200) premultiplied.
func runBlend(t *testing.T, mode Stage, forceHighp bool) (r, g, b, a uint8) {
	t.Helper()

	pm := NewPixmap(1, 1)
	pm.Fill(ColorFromRGBA8(50, 127, 150, 200))

	var builder Builder
	builder.SetForceHighPrecision(forceHighp)
	builder.PushWithContext(StageUniformColor,
		NewUniformColorCtx(ColorFromRGBA8(220, 140, 75, 180).Premultiply()))
	builder.PushWithContext(StageLoadDestination, pm.PixelsCtx())
	builder.Push(mode)
	builder.PushWithContext(StageStore, pm.PixelsCtx())

	p := builder.Compile()
	if got := p.IsHighPrecision(); got != forceHighp {
		t.Fatalf("IsHighPrecision() = %v, want %v", got, forceHighp)
	}
	p.Run(pm.Rect())

	return pm.Pixel(0, 0)
}

type blendGolden struct {
	mode       Stage
	r, g, b, a uint8
}

func TestBlendModesLowPrecision(t *testing.T) {
	tests := []blendGolden{
		{StageClear, 0, 0, 0, 0},
		{StageSourceOver, 167, 129, 88, 239},
		{StageDestinationOver, 73, 122, 130, 239},
		{StageSourceIn, 122, 78, 42, 141},
		{StageDestinationIn, 28, 71, 83, 141},
		{StageSourceOut, 34, 22, 12, 39},
		{StageDestinationOut, 12, 30, 35, 59},
		{StageSourceAtop, 133, 107, 76, 200},
		{StageDestinationAtop, 61, 92, 95, 180},
		{StageXor, 45, 51, 46, 98},
		{StagePlus, 194, 199, 171, 255},
		{StageModulate, 24, 39, 25, 141},
		{StageScreen, 170, 160, 146, 239},
		{StageOverlay, 92, 128, 106, 239},
		{StageDarken, 72, 121, 88, 239},
		{StageLighten, 166, 128, 129, 239},
		{StageHardLight, 154, 128, 95, 239},
		{StageDifference, 138, 57, 87, 239},
		{StageExclusion, 146, 121, 121, 239},
		{StageMultiply, 69, 90, 71, 238},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			r, g, b, a := runBlend(t, tt.mode, false)
			if r != tt.r || g != tt.g || b != tt.b || a != tt.a {
				t.Errorf("pixel = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.r, tt.g, tt.b, tt.a)
			}
		})
	}
}

func TestBlendModesHighPrecision(t *testing.T) {
	tests := []blendGolden{
		{StageClear, 0, 0, 0, 0},
		{StageSourceOver, 167, 128, 88, 239},
		{StageDestinationOver, 72, 121, 129, 239},
		{StageSourceIn, 122, 78, 42, 141},
		{StageDestinationIn, 28, 71, 83, 141},
		{StageSourceOut, 33, 21, 11, 39},
		{StageDestinationOut, 11, 29, 35, 59},
		{StageSourceAtop, 133, 107, 76, 200},
		{StageDestinationAtop, 61, 92, 95, 180},
		{StageXor, 45, 51, 46, 98},
		{StagePlus, 194, 199, 171, 255},
		{StageModulate, 24, 39, 24, 141},
		{StageScreen, 171, 160, 146, 239},
		{StageOverlay, 92, 128, 106, 239},
		{StageDarken, 72, 121, 88, 239},
		{StageLighten, 167, 128, 129, 239},
		{StageColorDodge, 186, 192, 164, 239},
		{StageColorBurn, 54, 63, 46, 239},
		{StageHardLight, 155, 128, 95, 239},
		{StageSoftLight, 98, 124, 115, 239},
		{StageDifference, 139, 58, 88, 239},
		{StageExclusion, 147, 121, 122, 239},
		{StageMultiply, 69, 89, 71, 239},
		{StageHue, 128, 103, 74, 239},
		{StageSaturation, 59, 126, 140, 239},
		{StageColor, 139, 100, 60, 239},
		{StageLuminosity, 100, 149, 157, 239},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			r, g, b, a := runBlend(t, tt.mode, true)
			if r != tt.r || g != tt.g || b != tt.b || a != tt.a {
				t.Errorf("pixel = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.r, tt.g, tt.b, tt.a)
			}
		})
	}
}

// Blend modes without a low-precision kernel must force the fallback on
// their own, without SetForceHighPrecision.
func TestBlendFallbackMatchesForced(t *testing.T) {
	modes := []Stage{
		StageColorDodge, StageColorBurn, StageSoftLight,
		StageHue, StageSaturation, StageColor, StageLuminosity,
	}
	for _, mode := range modes {
		t.Run(mode.String(), func(t *testing.T) {
			pm := NewPixmap(1, 1)
			pm.Fill(ColorFromRGBA8(50, 127, 150, 200))

			var builder Builder
			builder.PushWithContext(StageUniformColor,
				NewUniformColorCtx(ColorFromRGBA8(220, 140, 75, 180).Premultiply()))
			builder.PushWithContext(StageLoadDestination, pm.PixelsCtx())
			builder.Push(mode)
			builder.PushWithContext(StageStore, pm.PixelsCtx())

			p := builder.Compile()
			if !p.IsHighPrecision() {
				t.Fatalf("pipeline with %v compiled low precision", mode)
			}
			p.Run(pm.Rect())

			r, g, b, a := pm.Pixel(0, 0)
			wantR, wantG, wantB, wantA := runBlend(t, mode, true)
			if r != wantR || g != wantG || b != wantB || a != wantA {
				t.Errorf("fallback pixel = (%d, %d, %d, %d), forced = (%d, %d, %d, %d)",
					r, g, b, a, wantR, wantG, wantB, wantA)
			}
		})
	}
}
